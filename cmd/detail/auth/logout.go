package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/usedetail/detail-cli/cmd/detail/internal/cli"
	"github.com/usedetail/detail-cli/pkg/output"
)

func createLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout and remove stored credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cli.ConfigManager().ClearToken(); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), output.Success(output.IconPass+" Logged out successfully"))
			return nil
		},
	}
}
