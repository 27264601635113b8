package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/devportfolio/portfolio-api/internal/models"
	"github.com/devportfolio/portfolio-api/pkg/adminclient"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func (c *cli) newResumesCmd() (cmd *cobra.Command) {
	cmd = &cobra.Command{Use: "resumes", Short: "Manage resumes"}

	var (
		meta     adminclient.ResumeUpload
		isPublic bool
	)
	upload := &cobra.Command{
		Use:   "upload <file.pdf>",
		Short: "Upload a PDF resume",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var f *os.File
			f, err = os.Open(args[0])
			if err != nil {
				err = errors.Wrapf(err, "failed to open %s", args[0])
				return err
			}
			defer f.Close()

			u := meta
			u.FileName = filepath.Base(args[0])
			u.Content = f
			if cmd.Flags().Changed("public") {
				u.IsPublic = &isPublic
			}
			return c.withSession(func(ctx context.Context, session *adminclient.Session) error {
				resume, err := session.UploadResume(ctx, u)
				if err != nil {
					return err
				}
				return c.printJSON(resume)
			})
		},
	}
	upload.Flags().StringVar(&meta.Title, "title", "", "resume title")
	upload.Flags().StringVar(&meta.Version, "version", "", "version label")
	upload.Flags().StringVar(&meta.Description, "description", "", "short description")
	upload.Flags().StringVar(&meta.Tags, "tags", "", "comma separated tags")
	upload.Flags().BoolVar(&isPublic, "public", true, "list on the public site")

	var updateFile string
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update resume metadata from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var req models.UpdateResumeRequest
			if err := c.decodeFile(updateFile, &req); err != nil {
				return err
			}
			return c.withSession(func(ctx context.Context, session *adminclient.Session) error {
				resume, err := session.UpdateResume(ctx, args[0], &req)
				if err != nil {
					return err
				}
				return c.printJSON(resume)
			})
		},
	}
	update.Flags().StringVarP(&updateFile, "file", "f", "-", "JSON body, - for stdin")

	var outPath string
	download := &cobra.Command{
		Use:   "download <id>",
		Short: "Download a public resume",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withSession(func(ctx context.Context, session *adminclient.Session) (err error) {
				path := outPath
				if path == "" {
					path = args[0] + ".pdf"
				}
				var f *os.File
				f, err = os.Create(path)
				if err != nil {
					err = errors.Wrapf(err, "failed to create %s", path)
					return err
				}

				var d *adminclient.Download
				d, err = session.DownloadResume(ctx, args[0], f)
				closeErr := f.Close()
				if err != nil {
					_ = os.Remove(path) //nolint:errcheck // partial download
					return err
				}
				if closeErr != nil {
					err = errors.Wrapf(closeErr, "failed to write %s", path)
					return err
				}
				c.printf("Saved %s (%d bytes, served as %q)\n", path, d.Size, d.FileName)
				return err
			})
		},
	}
	download.Flags().StringVarP(&outPath, "out", "o", "", "output path, defaults to <id>.pdf")

	cmd.AddCommand(
		c.listCmd("List resumes", func(ctx context.Context, s *adminclient.Session) (any, error) {
			return s.ListResumes(ctx)
		}),
		c.idCmd("get", "Show one resume", func(ctx context.Context, s *adminclient.Session, id string) (any, error) {
			return s.GetResume(ctx, id)
		}),
		upload,
		update,
		c.deleteCmd("resume", func(ctx context.Context, s *adminclient.Session, id string) error {
			return s.DeleteResume(ctx, id)
		}),
		c.idCmd("toggle-active", "Make a resume the active one, or deactivate it", func(ctx context.Context, s *adminclient.Session, id string) (any, error) {
			return s.ToggleResumeActive(ctx, id)
		}),
		c.idCmd("toggle-public", "Toggle public visibility", func(ctx context.Context, s *adminclient.Session, id string) (any, error) {
			return s.ToggleResumePublic(ctx, id)
		}),
		download,
	)
	return cmd
}

func (c *cli) newMessagesCmd() (cmd *cobra.Command) {
	cmd = &cobra.Command{Use: "messages", Short: "Read contact messages"}

	var onlyRead, onlyUnread bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List contact messages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if onlyRead && onlyUnread {
				return errors.New("--read and --unread are mutually exclusive")
			}
			var filter *bool
			switch {
			case onlyRead:
				filter = &onlyRead
			case onlyUnread:
				read := false
				filter = &read
			}
			return c.withSession(func(ctx context.Context, session *adminclient.Session) error {
				messages, err := session.ListMessages(ctx, filter)
				if err != nil {
					return err
				}
				return c.printJSON(messages)
			})
		},
	}
	list.Flags().BoolVar(&onlyRead, "read", false, "only read messages")
	list.Flags().BoolVar(&onlyUnread, "unread", false, "only unread messages")

	cmd.AddCommand(
		list,
		c.idCmd("read", "Mark a message as read", func(ctx context.Context, s *adminclient.Session, id string) (any, error) {
			return s.MarkMessageRead(ctx, id)
		}),
		c.idCmd("toggle", "Flip the read flag", func(ctx context.Context, s *adminclient.Session, id string) (any, error) {
			return s.ToggleMessageRead(ctx, id)
		}),
		c.deleteCmd("message", func(ctx context.Context, s *adminclient.Session, id string) error {
			return s.DeleteMessage(ctx, id)
		}),
	)
	return cmd
}

func (c *cli) newImagesCmd() (cmd *cobra.Command) {
	cmd = &cobra.Command{Use: "images", Short: "Manage uploaded images"}

	upload := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload an image and print its public URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var f *os.File
			f, err = os.Open(args[0])
			if err != nil {
				err = errors.Wrapf(err, "failed to open %s", args[0])
				return err
			}
			defer f.Close()

			return c.withSession(func(ctx context.Context, session *adminclient.Session) error {
				image, err := session.UploadImage(ctx, filepath.Base(args[0]), f)
				if err != nil {
					return err
				}
				return c.printJSON(image)
			})
		},
	}

	remove := &cobra.Command{
		Use:   "delete <url>",
		Short: "Delete an uploaded image by URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withSession(func(ctx context.Context, session *adminclient.Session) error {
				if err := session.DeleteImage(ctx, args[0]); err != nil {
					return err
				}
				c.printf("Deleted %s\n", args[0])
				return nil
			})
		},
	}

	cmd.AddCommand(upload, remove)
	return cmd
}

func (c *cli) newContactCmd() (cmd *cobra.Command) {
	var req models.ContactRequest

	cmd = &cobra.Command{
		Use:   "contact",
		Short: "Send a message through the public contact form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withSession(func(ctx context.Context, session *adminclient.Session) error {
				msg, err := session.SubmitContact(ctx, req)
				if err != nil {
					return err
				}
				c.printf("Message %s sent\n", msg.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "your name")
	cmd.Flags().StringVar(&req.Email, "email", "", "reply address")
	cmd.Flags().StringVar(&req.Subject, "subject", "", "subject line")
	cmd.Flags().StringVar(&req.Message, "message", "", "message body")
	return cmd
}
