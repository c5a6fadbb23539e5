package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/birdsong/birdsong-cli/internal/api"
	"github.com/birdsong/birdsong-cli/internal/debug"
	"github.com/birdsong/birdsong-cli/internal/filter"
)

// rootFlags holds global CLI flags.
type rootFlags struct {
	Format  string
	JQ      string
	Debug   bool
	Profile string
	BaseURL string
}

// flags is package-level mutable state that MUST be reset at the start of
// every Execute() call. Tests depend on this reset to get clean state.
var flags = rootFlags{
	Format: defaultFormat(),
}

func defaultFormat() string {
	if value := strings.TrimSpace(os.Getenv("BIRDSONG_FORMAT")); value != "" {
		return strings.ToLower(value)
	}
	return string(api.FormatJSON)
}

// Execute runs the root command.
func Execute(ctx context.Context, args []string) error {
	// Reset flags to defaults for each execution — see the invariant
	// comment on the flags declaration above.
	flags = rootFlags{
		Format: defaultFormat(),
	}

	root := &cobra.Command{
		Use:           "bird",
		Short:         "CLI client for Twitter-compatible microblogging APIs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			debugEnabled := flags.Debug || debug.FromEnv()
			debug.SetupLogger(debugEnabled)
			cmd.SetContext(debug.WithDebug(cmd.Context(), debugEnabled))

			format, ok := api.ParseFormat(flags.Format)
			if !ok {
				return fmt.Errorf("invalid value for --format: %q (supported: json, xml, rss, atom)", flags.Format)
			}
			if flags.JQ != "" && format != api.FormatJSON {
				return fmt.Errorf("--jq requires --format json")
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.Format, "format", flags.Format, "output format: json, xml, rss, or atom")
	pf.StringVar(&flags.JQ, "jq", "", "filter JSON output with a jq expression")
	pf.BoolVar(&flags.Debug, "debug", false, "enable debug logging")
	pf.StringVar(&flags.Profile, "profile", "", "credential profile to use")
	pf.StringVar(&flags.BaseURL, "base-url", "", "override the API base URL")

	root.AddCommand(
		newAuthCmd(),
		newStatusCmd(),
		newTimelineCmd(),
		newUserCmd(),
		newDMCmd(),
		newFriendCmd(),
		newFavoriteCmd(),
		newNotifyCmd(),
		newBlockCmd(),
		newAccountCmd(),
		newAPICmd(),
		newVersionCmd(),
	)

	root.SetArgs(args)
	// SilenceErrors suppresses cobra's own reporting, so the error is
	// printed here exactly once before main maps it to an exit code.
	err := root.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, pflag.ErrHelp) {
		_, _ = fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
	}
	return err
}

// outputFormat returns the validated global format flag.
func outputFormat() api.Format {
	format, ok := api.ParseFormat(flags.Format)
	if !ok {
		return api.FormatJSON
	}
	return format
}

// printResponse renders the three-way call outcome: body, no-content, or the
// silent-no-op nil Response a credential-less POST yields.
func printResponse(cmd *cobra.Command, resp *api.Response) error {
	if resp == nil {
		// Preserved quirk: POST without credentials never hits the network.
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "request not sent: no credentials (run 'bird auth login')")
		return nil
	}
	if resp.NoContent {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "no content")
		return nil
	}

	out := cmd.OutOrStdout()
	if flags.JQ != "" {
		filtered, err := filter.ApplyBytes(resp.Body, flags.JQ)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, filtered)
		return nil
	}
	_, _ = fmt.Fprintln(out, strings.TrimRight(string(resp.Body), "\n"))
	return nil
}
