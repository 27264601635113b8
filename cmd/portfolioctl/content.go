package main

import (
	"context"

	"github.com/devportfolio/portfolio-api/internal/models"
	"github.com/devportfolio/portfolio-api/pkg/adminclient"
	"github.com/spf13/cobra"
)

// idCmd builds a command that takes a single id and prints what fn returns
func (c *cli) idCmd(use, short string, fn func(ctx context.Context, session *adminclient.Session, id string) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withSession(func(ctx context.Context, session *adminclient.Session) error {
				result, err := fn(ctx, session, args[0])
				if err != nil {
					return err
				}
				return c.printJSON(result)
			})
		},
	}
}

// deleteCmd builds a "delete <id>" command around fn
func (c *cli) deleteCmd(noun string, fn func(ctx context.Context, session *adminclient.Session, id string) error) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a " + noun,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withSession(func(ctx context.Context, session *adminclient.Session) error {
				if err := fn(ctx, session, args[0]); err != nil {
					return err
				}
				c.printf("Deleted %s %s\n", noun, args[0])
				return nil
			})
		},
	}
}

// listCmd builds an argument-less "list" command
func (c *cli) listCmd(short string, fn func(ctx context.Context, session *adminclient.Session) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withSession(func(ctx context.Context, session *adminclient.Session) error {
				result, err := fn(ctx, session)
				if err != nil {
					return err
				}
				return c.printJSON(result)
			})
		},
	}
}

func (c *cli) newProjectsCmd() (cmd *cobra.Command) {
	cmd = &cobra.Command{Use: "projects", Short: "Manage projects"}

	var (
		query    adminclient.ProjectQuery
		featured bool
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("featured") {
				query.Featured = &featured
			}
			return c.withSession(func(ctx context.Context, session *adminclient.Session) error {
				projects, total, err := session.ListProjects(ctx, query)
				if err != nil {
					return err
				}
				return c.printJSON(map[string]any{"projects": projects, "total": total})
			})
		},
	}
	list.Flags().StringVar(&query.Category, "category", "", "only this category")
	list.Flags().BoolVar(&featured, "featured", false, "filter by featured flag")
	list.Flags().IntVar(&query.Page, "page", 0, "page number")
	list.Flags().IntVar(&query.Limit, "limit", 0, "page size")

	var createFile string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a project from a JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var req models.CreateProjectRequest
			if err := c.decodeFile(createFile, &req); err != nil {
				return err
			}
			return c.withSession(func(ctx context.Context, session *adminclient.Session) error {
				project, err := session.CreateProject(ctx, &req)
				if err != nil {
					return err
				}
				return c.printJSON(project)
			})
		},
	}
	create.Flags().StringVarP(&createFile, "file", "f", "-", "JSON body, - for stdin")

	var updateFile string
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a project from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var req models.UpdateProjectRequest
			if err := c.decodeFile(updateFile, &req); err != nil {
				return err
			}
			return c.withSession(func(ctx context.Context, session *adminclient.Session) error {
				project, err := session.UpdateProject(ctx, args[0], &req)
				if err != nil {
					return err
				}
				return c.printJSON(project)
			})
		},
	}
	update.Flags().StringVarP(&updateFile, "file", "f", "-", "JSON body, - for stdin")

	stats := &cobra.Command{
		Use:   "stats",
		Short: "Show project counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withSession(func(ctx context.Context, session *adminclient.Session) error {
				result, err := session.ProjectStats(ctx)
				if err != nil {
					return err
				}
				return c.printJSON(result)
			})
		},
	}

	cmd.AddCommand(
		list,
		c.idCmd("get", "Show one project", func(ctx context.Context, s *adminclient.Session, id string) (any, error) {
			return s.GetProject(ctx, id)
		}),
		create,
		update,
		c.deleteCmd("project", func(ctx context.Context, s *adminclient.Session, id string) error {
			return s.DeleteProject(ctx, id)
		}),
		c.idCmd("feature", "Toggle the featured flag", func(ctx context.Context, s *adminclient.Session, id string) (any, error) {
			return s.ToggleProjectFeatured(ctx, id)
		}),
		stats,
	)
	return cmd
}

func (c *cli) newSkillsCmd() (cmd *cobra.Command) {
	cmd = &cobra.Command{Use: "skills", Short: "Manage skills"}

	var createFile, updateFile string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a skill from a JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var req models.CreateSkillRequest
			if err := c.decodeFile(createFile, &req); err != nil {
				return err
			}
			return c.withSession(func(ctx context.Context, session *adminclient.Session) error {
				skill, err := session.CreateSkill(ctx, &req)
				if err != nil {
					return err
				}
				return c.printJSON(skill)
			})
		},
	}
	create.Flags().StringVarP(&createFile, "file", "f", "-", "JSON body, - for stdin")

	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a skill from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var req models.UpdateSkillRequest
			if err := c.decodeFile(updateFile, &req); err != nil {
				return err
			}
			return c.withSession(func(ctx context.Context, session *adminclient.Session) error {
				skill, err := session.UpdateSkill(ctx, args[0], &req)
				if err != nil {
					return err
				}
				return c.printJSON(skill)
			})
		},
	}
	update.Flags().StringVarP(&updateFile, "file", "f", "-", "JSON body, - for stdin")

	icons := &cobra.Command{
		Use:   "icons",
		Short: "List the icon catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withSession(func(ctx context.Context, session *adminclient.Session) error {
				catalog, err := session.SkillIcons(ctx)
				if err != nil {
					return err
				}
				return c.printJSON(catalog)
			})
		},
	}

	cmd.AddCommand(
		c.listCmd("List skills", func(ctx context.Context, s *adminclient.Session) (any, error) {
			return s.ListSkills(ctx)
		}),
		create,
		update,
		c.deleteCmd("skill", func(ctx context.Context, s *adminclient.Session, id string) error {
			return s.DeleteSkill(ctx, id)
		}),
		c.idCmd("toggle", "Toggle whether a skill is shown", func(ctx context.Context, s *adminclient.Session, id string) (any, error) {
			return s.ToggleSkillActive(ctx, id)
		}),
		icons,
	)
	return cmd
}

func (c *cli) newJourneyCmd() (cmd *cobra.Command) {
	cmd = &cobra.Command{Use: "journey", Short: "Manage journey milestones"}

	var input adminclient.JourneyInput
	bind := func(sub *cobra.Command) {
		sub.Flags().StringVar(&input.Year, "year", "", "milestone year")
		sub.Flags().StringVar(&input.Title, "title", "", "milestone title")
		sub.Flags().StringVar(&input.Description, "description", "", "milestone description")
		sub.Flags().IntVar(&input.DisplayOrder, "order", 0, "display order")
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "Add a milestone",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withSession(func(ctx context.Context, session *adminclient.Session) error {
				milestone, err := session.CreateJourney(ctx, input)
				if err != nil {
					return err
				}
				return c.printJSON(milestone)
			})
		},
	}
	bind(add)

	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a milestone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withSession(func(ctx context.Context, session *adminclient.Session) error {
				milestone, err := session.UpdateJourney(ctx, args[0], input)
				if err != nil {
					return err
				}
				return c.printJSON(milestone)
			})
		},
	}
	bind(update)

	cmd.AddCommand(
		c.listCmd("List milestones", func(ctx context.Context, s *adminclient.Session) (any, error) {
			return s.ListJourney(ctx)
		}),
		add,
		update,
		c.deleteCmd("milestone", func(ctx context.Context, s *adminclient.Session, id string) error {
			return s.DeleteJourney(ctx, id)
		}),
	)
	return cmd
}

func (c *cli) newHighlightsCmd() (cmd *cobra.Command) {
	cmd = &cobra.Command{Use: "highlights", Short: "Manage portfolio highlights"}

	var createFile, updateFile string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a highlight from a JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var req models.CreateHighlightRequest
			if err := c.decodeFile(createFile, &req); err != nil {
				return err
			}
			return c.withSession(func(ctx context.Context, session *adminclient.Session) error {
				highlight, err := session.CreateHighlight(ctx, &req)
				if err != nil {
					return err
				}
				return c.printJSON(highlight)
			})
		},
	}
	create.Flags().StringVarP(&createFile, "file", "f", "-", "JSON body, - for stdin")

	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a highlight from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var req models.UpdateHighlightRequest
			if err := c.decodeFile(updateFile, &req); err != nil {
				return err
			}
			return c.withSession(func(ctx context.Context, session *adminclient.Session) error {
				highlight, err := session.UpdateHighlight(ctx, args[0], &req)
				if err != nil {
					return err
				}
				return c.printJSON(highlight)
			})
		},
	}
	update.Flags().StringVarP(&updateFile, "file", "f", "-", "JSON body, - for stdin")

	cmd.AddCommand(
		c.listCmd("List highlights", func(ctx context.Context, s *adminclient.Session) (any, error) {
			return s.ListHighlights(ctx)
		}),
		create,
		update,
		c.deleteCmd("highlight", func(ctx context.Context, s *adminclient.Session, id string) error {
			return s.DeleteHighlight(ctx, id)
		}),
		c.idCmd("toggle-active", "Toggle whether a highlight is shown", func(ctx context.Context, s *adminclient.Session, id string) (any, error) {
			return s.ToggleHighlightActive(ctx, id)
		}),
		c.idCmd("toggle-featured", "Toggle the featured flag", func(ctx context.Context, s *adminclient.Session, id string) (any, error) {
			return s.ToggleHighlightFeatured(ctx, id)
		}),
	)
	return cmd
}
