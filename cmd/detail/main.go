// Package main provides the command-line interface for the Detail bug
// tracker.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/usedetail/detail-cli/cmd/detail/auth"
	"github.com/usedetail/detail-cli/cmd/detail/bugs"
	"github.com/usedetail/detail-cli/cmd/detail/internal/cli"
	"github.com/usedetail/detail-cli/cmd/detail/repos"
	"github.com/usedetail/detail-cli/pkg/upgrade"
)

const longAbout = `Detail CLI - Manage bugs from your terminal

Common workflow:
  1. List pending bugs:   detail bugs list <owner/repo>
  2. View a bug report:   detail bugs show <bug_id>
  3. Fix the bug
  4. Close the bug:       detail bugs close <bug_id>`

func main() {
	rootCmd := &cobra.Command{
		Use:           "detail",
		Short:         "Detail CLI - Manage bugs from your terminal",
		Long:          longAbout,
		Version:       cli.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			maybeCheckForUpdates(cmd)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&cli.Quiet, "quiet", "q", false, "Suppress all output except errors and results")
	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cli.APIURL, "api-url", os.Getenv("DETAIL_API_URL"), "API endpoint override (for testing)")
	_ = rootCmd.PersistentFlags().MarkHidden("api-url")

	rootCmd.AddCommand(
		auth.CreateAuthCmd(),
		bugs.CreateBugsCmd(),
		repos.CreateReposCmd(),
		createVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// createVersionCmd creates the version command.
func createVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "detail-cli v%s\n", cli.Version)
		},
	}
}

// maybeCheckForUpdates runs the periodic release check unless the invocation
// requested machine-readable output, which the notice would corrupt.
func maybeCheckForUpdates(cmd *cobra.Command) {
	if cli.Quiet || isSilent(cmd) {
		return
	}

	log := cli.Logger()
	checker := upgrade.NewChecker(upgrade.NewCheckerParams{
		Config:  cli.ConfigManager(),
		Logger:  log,
		Source:  upgrade.NewGitHubReleaseSource(),
		Version: cli.Version,
	})

	if err := checker.Check(cmd.Context()); err != nil && cli.Verbose {
		// The release check is best-effort; never fail the command.
		log.Logf("Warning: failed to check for updates: %v", err)
	}
}

// isSilent reports whether the command produces machine-readable output.
func isSilent(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("format")
	if flag == nil {
		return false
	}
	return flag.Value.String() != "table"
}
