package repos

import (
	"github.com/spf13/cobra"

	"github.com/usedetail/detail-cli/cmd/detail/internal/cli"
	"github.com/usedetail/detail-cli/pkg/output"
	"github.com/usedetail/detail-cli/pkg/paginate"
)

func createListCmd() *cobra.Command {
	var (
		limit     int
		page      int
		formatStr string
	)

	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all repositories you have access to",
		Long: `List all repositories you have access to.

Examples:
  detail repos list
  detail repos list --limit 20 --page 2
  detail repos list --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := output.ParseFormat(formatStr)
			if err != nil {
				return err
			}
			if err := cli.ValidatePagination(limit, page); err != nil {
				return err
			}

			client, err := cli.NewClient()
			if err != nil {
				return err
			}

			result, err := client.ListRepos(cmd.Context(), limit, paginate.Offset(page, limit))
			if err != nil {
				return err
			}

			return output.List(cmd.OutOrStdout(), output.RepoRows(result.Repos), result.Total, page, limit, format)
		},
	}

	listCmd.Flags().IntVar(&limit, "limit", 50, "Maximum number of results per page")
	listCmd.Flags().IntVar(&page, "page", 1, "Page number (starts at 1)")
	listCmd.Flags().StringVar(&formatStr, "format", "table", "Output format (table, json, csv)")

	return listCmd
}
