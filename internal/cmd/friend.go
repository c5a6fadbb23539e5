package cmd

import (
	"github.com/spf13/cobra"
)

func newFriendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "friend",
		Short: "Manage friendships",
	}
	cmd.AddCommand(newFriendAddCmd(), newFriendRemoveCmd(), newFriendExistsCmd())
	return cmd
}

func newFriendAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "add <user>",
		Aliases: []string{"create"},
		Short:   "Befriend a user",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, creds, err := getClient()
			if err != nil {
				return err
			}
			resp, err := client.Friendships().Create(cmd.Context(), outputFormat(), creds, args[0])
			if err != nil {
				return err
			}
			return printResponse(cmd, resp)
		},
	}
}

func newFriendRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <user>",
		Aliases: []string{"destroy", "rm"},
		Short:   "End a friendship",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, creds, err := getClient()
			if err != nil {
				return err
			}
			resp, err := client.Friendships().Destroy(cmd.Context(), outputFormat(), creds, args[0])
			if err != nil {
				return err
			}
			return printResponse(cmd, resp)
		},
	}
}

func newFriendExistsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exists <user-a> <user-b>",
		Short: "Check whether user-a follows user-b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, creds, err := getClient()
			if err != nil {
				return err
			}
			resp, err := client.Friendships().Exists(cmd.Context(), outputFormat(), creds, args[0], args[1])
			if err != nil {
				return err
			}
			return printResponse(cmd, resp)
		},
	}
}
