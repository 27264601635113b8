package main

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/devportfolio/portfolio-api/internal/models"
	"github.com/devportfolio/portfolio-api/pkg/adminclient"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func (c *cli) newLoginCmd() (cmd *cobra.Command) {
	var username, password string

	cmd = &cobra.Command{
		Use:   "login",
		Short: "Log in and save the session token",
		Long: `Log in as the site administrator. Missing credentials are read from
PORTFOLIO_USERNAME / PORTFOLIO_PASSWORD, then from standard input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			reader := bufio.NewReader(c.in)
			username, err = c.credential(reader, username, "username", "Username: ")
			if err != nil {
				return err
			}
			password, err = c.credential(reader, password, "password", "Password: ")
			if err != nil {
				return err
			}

			return c.withSession(func(ctx context.Context, session *adminclient.Session) (err error) {
				var result *models.LoginResponse
				result, err = session.Login(ctx, username, password)
				if err != nil {
					return err
				}
				c.printf("Logged in as %s (session expires %s)\n", result.Admin.Username, result.ExpiresAt.Local().Format(time.RFC1123))
				return err
			})
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "admin username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "admin password")
	return cmd
}

// credential resolves a login value from the flag, the environment, then a prompt
func (c *cli) credential(reader *bufio.Reader, flagValue, key, prompt string) (value string, err error) {
	value = flagValue
	if value == "" {
		value = c.settings.GetString(key)
	}
	if value != "" {
		return value, err
	}

	_, _ = fmt.Fprint(c.errOut, prompt) //nolint:errcheck // terminal output
	value, err = reader.ReadString('\n')
	value = strings.TrimRight(value, "\r\n")
	if value != "" {
		err = nil
	}
	if err != nil || value == "" {
		err = errors.Errorf("%s is required", key)
		return value, err
	}
	return value, err
}

func (c *cli) newLogoutCmd() (cmd *cobra.Command) {
	cmd = &cobra.Command{
		Use:   "logout",
		Short: "Revoke the session token and forget it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var session *adminclient.Session
			session, err = c.openSession()
			if errors.Is(err, adminclient.ErrCorruptTokenFile) {
				return c.discardSessionFile()
			}
			if err != nil {
				return err
			}
			if !session.IsAuthenticated() {
				c.printf("Not logged in\n")
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), c.settings.GetDuration("timeout"))
			defer cancel()
			err = session.RevokeAndLogout(ctx)
			if err != nil {
				err = errors.Wrap(err, "logged out locally but the server did not confirm revocation")
				return err
			}
			c.printf("Logged out\n")
			return err
		},
	}
	return cmd
}

func (c *cli) newWhoamiCmd() (cmd *cobra.Command) {
	cmd = &cobra.Command{
		Use:   "whoami",
		Short: "Show the admin behind the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			return c.withSession(func(ctx context.Context, session *adminclient.Session) (err error) {
				var admin *models.Admin
				admin, err = session.Verify(ctx)
				if err != nil {
					return err
				}
				return c.printJSON(admin)
			})
		},
	}
	return cmd
}

func (c *cli) newStatsCmd() (cmd *cobra.Command) {
	cmd = &cobra.Command{
		Use:   "stats",
		Short: "Show dashboard statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			return c.withSession(func(ctx context.Context, session *adminclient.Session) (err error) {
				var stats *models.Statistics
				stats, err = session.Statistics(ctx)
				if err != nil {
					return err
				}
				return c.printJSON(stats)
			})
		},
	}
	return cmd
}

// discardSessionFile removes a session file that can no longer be read. There
// is no token to revoke, so only the local state is reset.
func (c *cli) discardSessionFile() error {
	store, err := c.tokenStore()
	if err != nil {
		return err
	}
	if err := store.Clear(); err != nil {
		return err
	}
	c.printf("Removed unreadable session file\nLogged out\n")
	return nil
}
