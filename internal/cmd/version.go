package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/birdsong/birdsong-cli/internal/update"
)

// version is set at build time via ldflags.
var version = "dev"

func newVersionCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:     "version",
		Aliases: []string{"v"},
		Short:   "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "birdsong-cli version %s\n", version)

			if !check {
				return
			}
			// Non-blocking; fails silently when the release check does.
			result := update.CheckForUpdate(cmd.Context(), version)
			if result == nil {
				return
			}
			errOut := cmd.ErrOrStderr()
			if result.UpdateAvailable {
				_, _ = fmt.Fprintf(errOut, "\nUpdate available: %s -> %s\n", result.CurrentVersion, result.LatestVersion)
				_, _ = fmt.Fprintf(errOut, "Download: %s\n", result.UpdateURL)
			} else {
				_, _ = fmt.Fprintln(errOut, "up to date")
			}
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "check for a newer release")
	return cmd
}
