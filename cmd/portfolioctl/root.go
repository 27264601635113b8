package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/devportfolio/portfolio-api/pkg/adminclient"
	"github.com/devportfolio/portfolio-api/pkg/httpclient"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cli carries what every command needs: resolved settings and the streams to use
type cli struct {
	settings *viper.Viper
	in       io.Reader
	out      io.Writer
	errOut   io.Writer
}

func newRootCmd(in io.Reader, out, errOut io.Writer) (rootCmd *cobra.Command) {
	c := &cli{settings: viper.New(), in: in, out: out, errOut: errOut}

	rootCmd = &cobra.Command{
		Use:   "portfolioctl",
		Short: "Manage portfolio content from the command line",
		Long: `portfolioctl talks to the portfolio API as the site administrator.

Log in once; the session token is kept in a private file and reused until it
expires or you log out.

Environment:
  PORTFOLIO_API_BASE_URL  API base URL (default http://localhost:4000/api)
  PORTFOLIO_TOKEN_FILE    session file (default ~/.portfolioctl/session.json)
  PORTFOLIO_USERNAME      login username
  PORTFOLIO_PASSWORD      login password`,
		SilenceUsage: true,
	}
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	flags := rootCmd.PersistentFlags()
	flags.String("api-url", "", "API base URL")
	flags.String("token-file", "", "session file")
	flags.Duration("timeout", httpclient.DefaultTimeout, "request timeout")

	c.settings.SetEnvPrefix("PORTFOLIO")
	c.settings.SetDefault("api_base_url", adminclient.DefaultBaseURL)
	c.settings.SetDefault("timeout", httpclient.DefaultTimeout)
	for _, key := range []string{"api_base_url", "token_file", "username", "password"} {
		_ = c.settings.BindEnv(key) //nolint:errcheck // only fails without a key
	}
	_ = c.settings.BindPFlag("api_base_url", flags.Lookup("api-url"))  //nolint:errcheck // flag exists
	_ = c.settings.BindPFlag("token_file", flags.Lookup("token-file")) //nolint:errcheck // flag exists
	_ = c.settings.BindPFlag("timeout", flags.Lookup("timeout"))       //nolint:errcheck // flag exists

	rootCmd.AddCommand(
		c.newLoginCmd(),
		c.newLogoutCmd(),
		c.newWhoamiCmd(),
		c.newStatsCmd(),
		c.newProjectsCmd(),
		c.newSkillsCmd(),
		c.newJourneyCmd(),
		c.newHighlightsCmd(),
		c.newResumesCmd(),
		c.newMessagesCmd(),
		c.newImagesCmd(),
		c.newContactCmd(),
	)
	return rootCmd
}

// openSession restores the saved session, if any
// tokenStore opens the session file named by --token-file or the default path
func (c *cli) tokenStore() (*adminclient.FileTokenStore, error) {
	tokenFile := c.settings.GetString("token_file")
	if tokenFile == "" {
		var err error
		tokenFile, err = adminclient.DefaultTokenPath()
		if err != nil {
			return nil, err
		}
	}
	return adminclient.NewFileTokenStore(tokenFile), nil
}

func (c *cli) openSession() (session *adminclient.Session, err error) {
	var store *adminclient.FileTokenStore
	store, err = c.tokenStore()
	if err != nil {
		return session, err
	}

	client := httpclient.NewClientWithTimeout(c.settings.GetDuration("timeout"))
	session, err = adminclient.NewSession(c.settings.GetString("api_base_url"), client, store)
	if err != nil {
		err = errors.Wrap(err, "failed to open session")
		return session, err
	}
	return session, err
}

// withSession runs fn against the saved session with a bounded context
func (c *cli) withSession(fn func(ctx context.Context, session *adminclient.Session) error) (err error) {
	var session *adminclient.Session
	session, err = c.openSession()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.settings.GetDuration("timeout")+5*time.Second)
	defer cancel()

	err = fn(ctx, session)
	if errors.Is(err, adminclient.ErrNotAuthenticated) {
		err = errors.New("not logged in, run `portfolioctl login` first")
	}
	return err
}

func (c *cli) printJSON(v any) (err error) {
	var data []byte
	data, err = json.MarshalIndent(v, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to encode output")
		return err
	}
	_, err = fmt.Fprintln(c.out, string(data))
	return err
}

func (c *cli) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...) //nolint:errcheck // terminal output
}

// decodeFile reads a JSON request body from path, or stdin for "-"
func (c *cli) decodeFile(path string, v any) (err error) {
	var r io.Reader
	if path == "-" {
		r = c.in
	} else {
		var f *os.File
		f, err = os.Open(path)
		if err != nil {
			err = errors.Wrapf(err, "failed to open %s", path)
			return err
		}
		defer f.Close()
		r = f
	}

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	err = dec.Decode(v)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse %s", path)
		return err
	}
	return err
}
