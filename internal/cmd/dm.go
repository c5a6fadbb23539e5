package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/birdsong/birdsong-cli/internal/api"
	"github.com/birdsong/birdsong-cli/internal/cli"
)

func newDMCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dm",
		Short: "Read and send direct messages",
	}
	cmd.AddCommand(newDMListCmd(), newDMSentCmd(), newDMSendCmd(), newDMDestroyCmd())
	return cmd
}

// dmFlags are the since/since_id/page filters shared by the listings.
type dmFlags struct {
	Since   string
	SinceID string
	Page    int
}

func (f *dmFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Since, "since", "", "only messages after this date (\"2h ago\", \"yesterday\", or an HTTP-date)")
	cmd.Flags().StringVar(&f.SinceID, "since-id", "", "only messages after this id")
	cmd.Flags().IntVar(&f.Page, "page", 0, "page of results to fetch")
}

// resolveSince converts the --since expression to the HTTP-date the API
// expects.
func (f *dmFlags) resolveSince() error {
	if f.Since == "" {
		return nil
	}
	since, err := cli.ParseSince(f.Since, time.Now())
	if err != nil {
		return err
	}
	f.Since = since
	return nil
}

func (f dmFlags) options() api.MessageOptions {
	return api.MessageOptions{Since: f.Since, SinceID: f.SinceID, Page: f.Page}
}

func newDMListCmd() *cobra.Command {
	var df dmFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List direct messages sent to you",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := df.resolveSince(); err != nil {
				return err
			}
			client, creds, err := requireClient()
			if err != nil {
				return err
			}
			resp, err := client.DirectMessages().List(cmd.Context(), outputFormat(), creds, df.options())
			if err != nil {
				return err
			}
			return printResponse(cmd, resp)
		},
	}
	df.register(cmd)
	return cmd
}

func newDMSentCmd() *cobra.Command {
	var df dmFlags

	cmd := &cobra.Command{
		Use:   "sent",
		Short: "List direct messages you sent",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := df.resolveSince(); err != nil {
				return err
			}
			client, creds, err := requireClient()
			if err != nil {
				return err
			}
			resp, err := client.DirectMessages().Sent(cmd.Context(), outputFormat(), creds, df.options())
			if err != nil {
				return err
			}
			return printResponse(cmd, resp)
		},
	}
	df.register(cmd)
	return cmd
}

func newDMSendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send <user> <text>",
		Short: "Send a direct message",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, creds, err := getClient()
			if err != nil {
				return err
			}
			resp, err := client.DirectMessages().Send(cmd.Context(), outputFormat(), creds, args[0], args[1])
			if err != nil {
				return err
			}
			return printResponse(cmd, resp)
		},
	}
}

func newDMDestroyCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "destroy <id>",
		Aliases: []string{"delete", "rm"},
		Short:   "Delete a direct message",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, creds, err := getClient()
			if err != nil {
				return err
			}
			resp, err := client.DirectMessages().Destroy(cmd.Context(), outputFormat(), creds, args[0])
			if err != nil {
				return err
			}
			return printResponse(cmd, resp)
		},
	}
}
