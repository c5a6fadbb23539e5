package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/birdsong/birdsong-cli/internal/api"
	"github.com/birdsong/birdsong-cli/internal/config"
	"github.com/birdsong/birdsong-cli/internal/validation"
)

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage stored credentials",
	}
	cmd.AddCommand(newAuthLoginCmd(), newAuthLogoutCmd(), newAuthStatusCmd())
	return cmd
}

func newAuthLoginCmd() *cobra.Command {
	var baseURL string
	var username string
	var password string
	var source string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store credentials in the system keyring",
		Example: `  bird auth login --username alice --password s3cret
  bird auth login --base-url https://example.com --username alice --password s3cret --source myapp`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if baseURL == "" {
				baseURL = api.DefaultBaseURL
			}
			base, err := validation.ValidateBaseURL(baseURL)
			if err != nil {
				return err
			}
			account := config.Account{
				BaseURL:  base,
				Username: username,
				Password: password,
				Source:   source,
			}
			if err := config.Save(flags.Profile, account); err != nil {
				return err
			}

			// Verify before declaring success; bad credentials stored
			// silently would surface as confusing no-ops later.
			client, creds, err := getClient()
			if err != nil {
				return err
			}
			if _, err := client.Account().VerifyCredentials(cmd.Context(), api.FormatJSON, creds); err != nil {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "warning: credentials stored but verification failed:", err)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s\n", username)
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "", "API base URL (default "+api.DefaultBaseURL+")")
	cmd.Flags().StringVar(&username, "username", "", "account username")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.Flags().StringVar(&source, "source", "", "attribution source appended to posts")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newAuthLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove stored credentials",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.Delete(flags.Profile); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func newAuthStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show stored profiles and verify the active one",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			profiles, err := config.List()
			if err != nil {
				return err
			}
			if len(profiles) == 0 {
				_, _ = fmt.Fprintln(out, "no profiles configured")
				return nil
			}
			for _, p := range profiles {
				_, _ = fmt.Fprintln(out, p)
			}

			client, creds, err := requireClient()
			if err != nil {
				return err
			}
			resp, err := client.Account().VerifyCredentials(cmd.Context(), api.FormatJSON, creds)
			if err != nil {
				return fmt.Errorf("credential check failed: %w", err)
			}
			user, err := api.DecodeUser(resp.Body)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, "authenticated as %s (@%s)\n", user.Name, user.ScreenName)
			return nil
		},
	}
}
