package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/birdsong/birdsong-cli/internal/api"
)

func newAPICmd() *cobra.Command {
	var fields []string
	var list bool

	cmd := &cobra.Command{
		Use:   "api <operation>",
		Short: "Invoke any catalog operation directly",
		Long: `Invoke any operation from the API catalog by name.

Operation names follow <resource>.<action>, e.g. statuses.update or
friendships.exists; flat listings use the bare resource name
(direct_messages, favorites). Parameters are passed with repeated -f flags.
The catalog decides which parameters land in the URL path, the query
string, or the POST body, and which output formats the operation accepts.`,
		Example: `  # list every operation
  bird api --list

  # fetch a user timeline as atom
  bird api statuses.user_timeline -f id=alice --format atom

  # check a friendship
  bird api friendships.exists -f user_a=alice -f user_b=bob

  # post a status and pull the new id out of the response
  bird api statuses.update -f status="hello" --jq .id`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				for _, name := range api.OperationNames() {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}
			if len(args) == 0 {
				return fmt.Errorf("operation name is required (or use --list)")
			}

			client, creds, err := getClient()
			if err != nil {
				return err
			}

			params := map[string]string{}
			for _, field := range fields {
				key, value, found := strings.Cut(field, "=")
				if !found || key == "" {
					return fmt.Errorf("invalid field %q: expected key=value", field)
				}
				params[key] = value
			}

			resp, err := client.Invoke(cmd.Context(), args[0], outputFormat(), params, creds)
			if err != nil {
				return err
			}
			return printResponse(cmd, resp)
		},
	}

	cmd.Flags().StringArrayVarP(&fields, "field", "f", nil, "request parameter as key=value (repeatable)")
	cmd.Flags().BoolVar(&list, "list", false, "list all catalog operations")
	return cmd
}
