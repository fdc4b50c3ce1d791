// Package bugs provides bug report commands for the Detail CLI.
package bugs

import (
	"github.com/spf13/cobra"
)

// CreateBugsCmd creates the bugs command with all its subcommands.
func CreateBugsCmd() *cobra.Command {
	bugsCmd := &cobra.Command{
		Use:   "bugs",
		Short: "Manage bug reports",
		Long:  `Commands for listing, inspecting and closing bug reports.`,
	}

	bugsCmd.AddCommand(createListCmd())
	bugsCmd.AddCommand(createShowCmd())
	bugsCmd.AddCommand(createCloseCmd())

	return bugsCmd
}
