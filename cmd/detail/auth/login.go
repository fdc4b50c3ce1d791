package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/usedetail/detail-cli/cmd/detail/internal/cli"
	"github.com/usedetail/detail-cli/pkg/output"
	"github.com/usedetail/detail-cli/pkg/prompt"
)

func createLoginCmd() *cobra.Command {
	var token string

	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Login with an API token",
		Long: `Authenticate with a Detail API token (dtl_live_...).

The token is verified against the API before it is stored.

Examples:
  detail auth login --token dtl_live_abc123
  detail auth login`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if token == "" {
				if !cli.IsInteractive() {
					return cli.ErrTokenRequired
				}

				input, err := prompt.NewPrompt().ReadText("Please enter your API token")
				if err != nil {
					return err
				}
				token = input
			}

			// Verify the token before storing it; NewClientWithToken also
			// rejects tokens without the dtl_ prefix.
			client, err := cli.NewClientWithToken(token)
			if err != nil {
				return err
			}

			user, err := client.CurrentUser(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to authenticate, please check your token: %w", err)
			}

			if err := cli.ConfigManager().SaveToken(token); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, output.Success(output.IconPass+" Successfully authenticated!"))
			fmt.Fprintf(out, "Logged in as: %s\n", user.Email)
			fmt.Fprintln(out, "\nExample commands:")
			fmt.Fprintln(out, "  detail bugs list <owner/repo>")
			fmt.Fprintln(out, "  detail bugs show <bug_id>")

			return nil
		},
	}

	loginCmd.Flags().StringVar(&token, "token", "", "API token (dtl_live_...)")

	return loginCmd
}
