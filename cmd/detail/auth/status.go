package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/usedetail/detail-cli/cmd/detail/internal/cli"
	"github.com/usedetail/detail-cli/pkg/output"
)

func createStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show current authentication status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			client, err := cli.NewClient()
			if err != nil {
				fmt.Fprintln(out, output.Failure(output.IconFail+" Not authenticated"))
				fmt.Fprintln(out, "\nRun `detail auth login` to authenticate")
				return nil
			}

			user, err := client.CurrentUser(cmd.Context())
			if err != nil {
				fmt.Fprintln(out, output.Failure(output.IconFail+" Authentication invalid"))
				fmt.Fprintf(out, "Error: %v\n", err)
				fmt.Fprintln(out, "\nRun `detail auth login` to re-authenticate")
				return nil
			}

			fmt.Fprintln(out, output.Success(output.IconPass+" Authenticated"))
			fmt.Fprintf(out, "Email: %s\n", user.Email)
			fmt.Fprintf(out, "API URL: %s\n", client.BaseURL())
			return nil
		},
	}
}
