package cmd

import (
	"github.com/spf13/cobra"
)

func newBlockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "block",
		Short: "Block and unblock users",
	}
	cmd.AddCommand(newBlockAddCmd(), newBlockRemoveCmd())
	return cmd
}

func newBlockAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "add <user>",
		Aliases: []string{"create"},
		Short:   "Block a user",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, creds, err := getClient()
			if err != nil {
				return err
			}
			resp, err := client.Blocks().Create(cmd.Context(), outputFormat(), creds, args[0])
			if err != nil {
				return err
			}
			return printResponse(cmd, resp)
		},
	}
}

func newBlockRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <user>",
		Aliases: []string{"destroy", "rm"},
		Short:   "Unblock a user",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, creds, err := getClient()
			if err != nil {
				return err
			}
			resp, err := client.Blocks().Destroy(cmd.Context(), outputFormat(), creds, args[0])
			if err != nil {
				return err
			}
			return printResponse(cmd, resp)
		},
	}
}
