package cmd

import (
	"github.com/spf13/cobra"
)

func newNotifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Control device notifications per user",
	}
	cmd.AddCommand(newNotifyFollowCmd(), newNotifyLeaveCmd())
	return cmd
}

func newNotifyFollowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "follow <user>",
		Short: "Enable notifications for a user's updates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, creds, err := getClient()
			if err != nil {
				return err
			}
			resp, err := client.Notifications().Follow(cmd.Context(), outputFormat(), creds, args[0])
			if err != nil {
				return err
			}
			return printResponse(cmd, resp)
		},
	}
}

func newNotifyLeaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leave <user>",
		Short: "Disable notifications for a user's updates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, creds, err := getClient()
			if err != nil {
				return err
			}
			resp, err := client.Notifications().Leave(cmd.Context(), outputFormat(), creds, args[0])
			if err != nil {
				return err
			}
			return printResponse(cmd, resp)
		},
	}
}
