// Package repos provides repository commands for the Detail CLI.
package repos

import (
	"github.com/spf13/cobra"
)

// CreateReposCmd creates the repos command with all its subcommands.
func CreateReposCmd() *cobra.Command {
	reposCmd := &cobra.Command{
		Use:   "repos",
		Short: "Manage repos tracked with Detail",
		Long:  `Commands for listing the repositories you have access to.`,
	}

	reposCmd.AddCommand(createListCmd())

	return reposCmd
}
