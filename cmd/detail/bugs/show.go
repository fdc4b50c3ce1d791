package bugs

import (
	"github.com/spf13/cobra"

	"github.com/usedetail/detail-cli/cmd/detail/internal/cli"
	"github.com/usedetail/detail-cli/pkg/api"
	"github.com/usedetail/detail-cli/pkg/output"
)

func createShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <bug_id>",
		Short: "Show the full details of a bug report",
		Long: `Show the full details of a bug report, including its summary and,
when closed, how it was closed.

Examples:
  detail bugs show bug_abc123`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bugID, err := api.NewBugID(args[0])
			if err != nil {
				return err
			}

			client, err := cli.NewClient()
			if err != nil {
				return err
			}

			bug, err := client.GetBug(cmd.Context(), bugID)
			if err != nil {
				return err
			}

			renderer := output.NewSectionRenderer()
			renderer.KeyValue(bug.Title, bugDetails(bug))
			if bug.Summary != "" {
				renderer.Markdown("Summary", bug.Summary)
			}
			renderer.Print(cmd.OutOrStdout())

			return nil
		},
	}
}

// bugDetails builds the key/value pairs for the detail view.
func bugDetails(bug *api.Bug) [][2]string {
	file := "-"
	if bug.FilePath != nil {
		file = *bug.FilePath
	}

	security := "No"
	if bug.IsSecurityVulnerability != nil && *bug.IsSecurityVulnerability {
		security = output.Failure("Yes")
	}

	pairs := [][2]string{
		{"ID", bug.ID.String()},
		{"File", file},
		{"Security", security},
		{"Created", output.FormatDateTime(bug.CreatedAt)},
	}

	if bug.Close == nil {
		pairs = append(pairs, [2]string{"Status", api.StatePending.Label()})
		return pairs
	}

	pairs = append(pairs,
		[2]string{"Status", bug.Close.State.Label()},
		[2]string{"Closed", output.FormatDateTime(bug.Close.CreatedAt)},
	)
	if bug.Close.DismissalReason != nil {
		pairs = append(pairs, [2]string{"Reason", bug.Close.DismissalReason.Label()})
	}
	if bug.Close.Notes != nil {
		pairs = append(pairs, [2]string{"Notes", *bug.Close.Notes})
	}

	return pairs
}
