package cmd

import (
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Post, show, and delete statuses",
	}
	cmd.AddCommand(newStatusUpdateCmd(), newStatusShowCmd(), newStatusDestroyCmd())
	return cmd
}

func newStatusUpdateCmd() *cobra.Command {
	var inReplyTo string

	cmd := &cobra.Command{
		Use:   "update <text>",
		Short: "Post a new status",
		Example: `  bird status update "out for a walk"
  bird status update "@bob agreed" --in-reply-to 1431`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, creds, err := getClient()
			if err != nil {
				return err
			}
			resp, err := client.Statuses().Update(cmd.Context(), outputFormat(), creds, args[0], inReplyTo)
			if err != nil {
				return err
			}
			return printResponse(cmd, resp)
		},
	}
	cmd.Flags().StringVar(&inReplyTo, "in-reply-to", "", "id of the status being replied to")
	return cmd
}

func newStatusShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id-or-url>",
		Short: "Show a single status",
		Example: `  bird status show 1431
  bird status show https://twitter.com/alice/statuses/1431`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := statusIDArg(args[0])
			if err != nil {
				return err
			}
			client, _, err := getClient()
			if err != nil {
				return err
			}
			resp, err := client.Statuses().Show(cmd.Context(), outputFormat(), id)
			if err != nil {
				return err
			}
			return printResponse(cmd, resp)
		},
	}
}

func newStatusDestroyCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "destroy <id>",
		Aliases: []string{"delete", "rm"},
		Short:   "Delete a status you posted",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := statusIDArg(args[0])
			if err != nil {
				return err
			}
			client, creds, err := getClient()
			if err != nil {
				return err
			}
			resp, err := client.Statuses().Destroy(cmd.Context(), outputFormat(), creds, id)
			if err != nil {
				return err
			}
			return printResponse(cmd, resp)
		},
	}
}
