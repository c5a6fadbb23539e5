package cmd

import (
	"github.com/spf13/cobra"
)

func newFavoriteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "favorite",
		Aliases: []string{"fav"},
		Short:   "Manage favorite statuses",
	}
	cmd.AddCommand(newFavoriteListCmd(), newFavoriteAddCmd(), newFavoriteRemoveCmd())
	return cmd
}

func newFavoriteListCmd() *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "list [user]",
		Short: "List favorites (yours, or a named user's)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, creds, err := getClient()
			if err != nil {
				return err
			}
			id := ""
			if len(args) > 0 {
				id = args[0]
			}
			resp, err := client.Favorites().List(cmd.Context(), outputFormat(), creds, id, page)
			if err != nil {
				return err
			}
			return printResponse(cmd, resp)
		},
	}
	cmd.Flags().IntVar(&page, "page", 0, "page of results to fetch")
	return cmd
}

func newFavoriteAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "add <status-id>",
		Aliases: []string{"create"},
		Short:   "Favorite a status",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, creds, err := getClient()
			if err != nil {
				return err
			}
			resp, err := client.Favorites().Create(cmd.Context(), outputFormat(), creds, args[0])
			if err != nil {
				return err
			}
			return printResponse(cmd, resp)
		},
	}
}

func newFavoriteRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <status-id>",
		Aliases: []string{"destroy", "rm"},
		Short:   "Un-favorite a status",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, creds, err := getClient()
			if err != nil {
				return err
			}
			resp, err := client.Favorites().Destroy(cmd.Context(), outputFormat(), creds, args[0])
			if err != nil {
				return err
			}
			return printResponse(cmd, resp)
		},
	}
}
