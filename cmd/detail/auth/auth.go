// Package auth provides authentication commands for the Detail CLI.
package auth

import (
	"github.com/spf13/cobra"
)

// CreateAuthCmd creates the auth command with all its subcommands.
func CreateAuthCmd() *cobra.Command {
	authCmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage login credentials",
		Long:  `Commands for authenticating the Detail CLI with an API token.`,
	}

	authCmd.AddCommand(
		createLoginCmd(),
		createLogoutCmd(),
		createStatusCmd(),
	)

	return authCmd
}
