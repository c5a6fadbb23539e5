package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/birdsong/birdsong-cli/internal/api"
)

func newAccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account settings and status",
	}
	cmd.AddCommand(
		newAccountVerifyCmd(),
		newAccountRateLimitCmd(),
		newAccountEndSessionCmd(),
		newAccountDeviceCmd(),
		newAccountProfileCmd(),
		newAccountColorsCmd(),
	)
	return cmd
}

func newAccountVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Verify the stored credentials",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, creds, err := requireClient()
			if err != nil {
				return err
			}
			resp, err := client.Account().VerifyCredentials(cmd.Context(), outputFormat(), creds)
			if err != nil {
				return err
			}
			return printResponse(cmd, resp)
		},
	}
}

func newAccountRateLimitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rate-limit",
		Short: "Show the remaining API request budget",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, creds, err := getClient()
			if err != nil {
				return err
			}
			resp, err := client.Account().RateLimitStatus(cmd.Context(), outputFormat(), creds)
			if err != nil {
				return err
			}
			return printResponse(cmd, resp)
		},
	}
}

func newAccountEndSessionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "end-session",
		Short: "End the current server session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, creds, err := getClient()
			if err != nil {
				return err
			}
			resp, err := client.Account().EndSession(cmd.Context(), outputFormat(), creds)
			if err != nil {
				return err
			}
			return printResponse(cmd, resp)
		},
	}
}

func newAccountDeviceCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "device <sms|im|none>",
		Short:     "Set which device receives notifications",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"sms", "im", "none"},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "sms", "im", "none":
			default:
				return fmt.Errorf("invalid value for device: %q (must be sms, im, or none)", args[0])
			}
			client, creds, err := getClient()
			if err != nil {
				return err
			}
			resp, err := client.Account().UpdateDeliveryDevice(cmd.Context(), outputFormat(), creds, args[0])
			if err != nil {
				return err
			}
			return printResponse(cmd, resp)
		},
	}
}

func newAccountProfileCmd() *cobra.Command {
	var profile api.Profile

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Update profile fields",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if profile == (api.Profile{}) {
				return fmt.Errorf("at least one profile flag is required")
			}
			client, creds, err := getClient()
			if err != nil {
				return err
			}
			resp, err := client.Account().UpdateProfile(cmd.Context(), outputFormat(), creds, profile)
			if err != nil {
				return err
			}
			return printResponse(cmd, resp)
		},
	}
	cmd.Flags().StringVar(&profile.Name, "name", "", "display name")
	cmd.Flags().StringVar(&profile.Email, "email", "", "account email")
	cmd.Flags().StringVar(&profile.URL, "url", "", "homepage URL")
	cmd.Flags().StringVar(&profile.Location, "location", "", "location")
	cmd.Flags().StringVar(&profile.Description, "description", "", "bio text")
	return cmd
}

func newAccountColorsCmd() *cobra.Command {
	var colors api.ProfileColors

	cmd := &cobra.Command{
		Use:   "colors",
		Short: "Update profile colors (hex values)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if colors == (api.ProfileColors{}) {
				return fmt.Errorf("at least one color flag is required")
			}
			client, creds, err := getClient()
			if err != nil {
				return err
			}
			resp, err := client.Account().UpdateProfileColors(cmd.Context(), outputFormat(), creds, colors)
			if err != nil {
				return err
			}
			return printResponse(cmd, resp)
		},
	}
	cmd.Flags().StringVar(&colors.Background, "background", "", "background color")
	cmd.Flags().StringVar(&colors.Text, "text", "", "text color")
	cmd.Flags().StringVar(&colors.Link, "link", "", "link color")
	cmd.Flags().StringVar(&colors.SidebarFill, "sidebar-fill", "", "sidebar fill color")
	cmd.Flags().StringVar(&colors.SidebarBorder, "sidebar-border", "", "sidebar border color")
	return cmd
}
