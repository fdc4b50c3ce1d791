package bugs

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/usedetail/detail-cli/cmd/detail/internal/cli"
	"github.com/usedetail/detail-cli/pkg/api"
	"github.com/usedetail/detail-cli/pkg/closer"
	"github.com/usedetail/detail-cli/pkg/output"
	"github.com/usedetail/detail-cli/pkg/prompt"
)

func createCloseCmd() *cobra.Command {
	var (
		stateStr  string
		reasonStr string
		notes     string
	)

	closeCmd := &cobra.Command{
		Use:   "close <bug_id>",
		Short: "Close a bug report",
		Long: `Close a bug report as resolved or dismissed.

Dismissing a bug requires a dismissal reason. Missing values are prompted
for when running interactively.

Examples:
  detail bugs close bug_abc123 --state resolved
  detail bugs close bug_abc123 --state dismissed --dismissal-reason not-a-bug
  detail bugs close bug_abc123`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bugID, err := api.NewBugID(args[0])
			if err != nil {
				return err
			}

			input, err := closeInput(cmd, stateStr, reasonStr, notes)
			if err != nil {
				return err
			}

			interactive := cli.IsInteractive()
			var prompter prompt.Prompter
			if interactive {
				prompter = prompt.NewPrompt()
			}

			req, err := closer.Resolve(input, interactive, prompter)
			if err != nil {
				return err
			}

			client, err := cli.NewClient()
			if err != nil {
				return err
			}

			result, err := client.CloseBug(cmd.Context(), bugID, req)
			if err != nil {
				return fmt.Errorf("failed to close bug %s: %w", bugID, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), output.Success(fmt.Sprintf(
				"%s Closed %s as %s", output.IconPass, bugID, result.State.Label())))
			return nil
		},
	}

	closeCmd.Flags().StringVar(&stateStr, "state", "", "Close state (resolved, dismissed)")
	closeCmd.Flags().StringVar(&reasonStr, "dismissal-reason", "", "Dismissal reason (not-a-bug, wont-fix, duplicate, other)")
	closeCmd.Flags().StringVar(&notes, "notes", "", "Optional notes about the close")

	return closeCmd
}

// closeInput parses the changed flags into the close-flow input. Flags that
// were not provided stay nil so the flow can prompt for them.
func closeInput(cmd *cobra.Command, stateStr, reasonStr, notes string) (closer.Input, error) {
	var input closer.Input

	if cmd.Flags().Changed("state") {
		state, err := api.ParseCloseState(stateStr)
		if err != nil {
			return closer.Input{}, err
		}
		input.State = &state
	}

	if cmd.Flags().Changed("dismissal-reason") {
		reason, err := api.ParseDismissalReason(reasonStr)
		if err != nil {
			return closer.Input{}, err
		}
		input.Reason = &reason
	}

	if cmd.Flags().Changed("notes") {
		input.Notes = &notes
	}

	return input, nil
}
