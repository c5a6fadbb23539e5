package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/birdsong/birdsong-cli/internal/api"
	"github.com/birdsong/birdsong-cli/internal/cli"
)

// timelineFlags are shared by the timeline subcommands; not every backend
// honors every filter, so they are passed through as-is.
type timelineFlags struct {
	Since   string
	SinceID string
	Count   int
	Page    int
}

func (f *timelineFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Since, "since", "", "only statuses after this date (\"2h ago\", \"yesterday\", or an HTTP-date)")
	cmd.Flags().StringVar(&f.SinceID, "since-id", "", "only statuses after this id")
	cmd.Flags().IntVar(&f.Count, "count", 0, "number of statuses to fetch")
	cmd.Flags().IntVar(&f.Page, "page", 0, "page of results to fetch")
}

// resolveSince converts the --since expression to the HTTP-date the API
// expects. The conversion happens once, before any request is built.
func (f *timelineFlags) resolveSince() error {
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

func (f timelineFlags) options(id string) api.TimelineOptions {
	return api.TimelineOptions{
		ID:      id,
		Since:   f.Since,
		SinceID: f.SinceID,
		Count:   f.Count,
		Page:    f.Page,
	}
}

func newTimelineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "timeline",
		Aliases: []string{"tl"},
		Short:   "Fetch timelines",
	}
	cmd.AddCommand(
		newTimelinePublicCmd(),
		newTimelineFriendsCmd(),
		newTimelineUserCmd(),
		newTimelineRepliesCmd(),
	)
	return cmd
}

func newTimelinePublicCmd() *cobra.Command {
	var sinceID string

	cmd := &cobra.Command{
		Use:   "public",
		Short: "Fetch the public timeline (no authentication needed)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, err := getClient()
			if err != nil {
				return err
			}
			resp, err := client.Statuses().PublicTimeline(cmd.Context(), outputFormat(), sinceID)
			if err != nil {
				return err
			}
			return printResponse(cmd, resp)
		},
	}
	cmd.Flags().StringVar(&sinceID, "since-id", "", "only statuses after this id")
	return cmd
}

func newTimelineFriendsCmd() *cobra.Command {
	var tf timelineFlags

	cmd := &cobra.Command{
		Use:   "friends [user]",
		Short: "Fetch your friends timeline, or a named user's",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := tf.resolveSince(); err != nil {
				return err
			}
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
			resp, err := client.Statuses().FriendsTimeline(cmd.Context(), outputFormat(), creds, tf.options(id))
			if err != nil {
				return err
			}
			return printResponse(cmd, resp)
		},
	}
	tf.register(cmd)
	return cmd
}

func newTimelineUserCmd() *cobra.Command {
	var tf timelineFlags

	cmd := &cobra.Command{
		Use:   "user <user>",
		Short: "Fetch a single user's timeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := tf.resolveSince(); err != nil {
				return err
			}
			client, creds, err := getClient()
			if err != nil {
				return err
			}
			id, err := userArg(args[0])
			if err != nil {
				return err
			}
			resp, err := client.Statuses().UserTimeline(cmd.Context(), outputFormat(), creds, tf.options(id))
			if err != nil {
				return err
			}
			return printResponse(cmd, resp)
		},
	}
	tf.register(cmd)
	return cmd
}

func newTimelineRepliesCmd() *cobra.Command {
	var tf timelineFlags

	cmd := &cobra.Command{
		Use:   "replies",
		Short: "Fetch your 20 most recent @replies",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := tf.resolveSince(); err != nil {
				return err
			}
			client, creds, err := requireClient()
			if err != nil {
				return err
			}
			resp, err := client.Statuses().Replies(cmd.Context(), outputFormat(), creds, tf.options(""))
			if err != nil {
				return err
			}
			return printResponse(cmd, resp)
		},
	}
	tf.register(cmd)
	return cmd
}
