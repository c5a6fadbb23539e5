package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/birdsong/birdsong-cli/internal/api"
)

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Look up users and social graphs",
	}
	cmd.AddCommand(
		newUserShowCmd(),
		newUserFriendsCmd(),
		newUserFollowersCmd(),
		newUserFeaturedCmd(),
	)
	return cmd
}

func newUserShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <user> [user...]",
		Short: "Show extended user information",
		Long: `Show extended user information for one or more users.

Multiple users are fetched concurrently. With more than one user the
responses are printed in argument order, one per line header.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, creds, err := getClient()
			if err != nil {
				return err
			}

			format := outputFormat()
			responses := make([]*api.Response, len(args))

			names := make([]string, len(args))
			for i, arg := range args {
				if names[i], err = userArg(arg); err != nil {
					return err
				}
			}

			g, ctx := errgroup.WithContext(cmd.Context())
			for i, name := range names {
				i, name := i, name
				g.Go(func() error {
					resp, err := client.Users().Show(ctx, format, creds, name)
					if err != nil {
						return fmt.Errorf("user %q: %w", name, err)
					}
					responses[i] = resp
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			for i, resp := range responses {
				if len(names) > 1 {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", strings.TrimSpace(names[i]))
				}
				if err := printResponse(cmd, resp); err != nil {
					return err
				}
			}
			return nil
		},
	}
	return cmd
}

func newUserFriendsCmd() *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "friends [user]",
		Short: "List the users someone follows (defaults to you)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, creds, err := getClient()
			if err != nil {
				return err
			}
			id := ""
			if len(args) > 0 {
				if id, err = userArg(args[0]); err != nil {
					return err
				}
			}
			resp, err := client.Statuses().Friends(cmd.Context(), outputFormat(), creds, id, page)
			if err != nil {
				return err
			}
			return printResponse(cmd, resp)
		},
	}
	cmd.Flags().IntVar(&page, "page", 0, "page of results to fetch")
	return cmd
}

func newUserFollowersCmd() *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "followers",
		Short: "List your followers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, creds, err := requireClient()
			if err != nil {
				return err
			}
			resp, err := client.Statuses().Followers(cmd.Context(), outputFormat(), creds, page)
			if err != nil {
				return err
			}
			return printResponse(cmd, resp)
		},
	}
	cmd.Flags().IntVar(&page, "page", 0, "page of results to fetch")
	return cmd
}

func newUserFeaturedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "featured",
		Short: "List featured users",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, err := getClient()
			if err != nil {
				return err
			}
			resp, err := client.Statuses().Featured(cmd.Context(), outputFormat())
			if err != nil {
				return err
			}
			return printResponse(cmd, resp)
		},
	}
}
