package bugs

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/usedetail/detail-cli/cmd/detail/internal/cli"
	"github.com/usedetail/detail-cli/pkg/api"
	"github.com/usedetail/detail-cli/pkg/output"
	"github.com/usedetail/detail-cli/pkg/paginate"
	"github.com/usedetail/detail-cli/pkg/resolve"
)

func createListCmd() *cobra.Command {
	var (
		statusStr    string
		securityOnly bool
		limit        int
		page         int
		formatStr    string
	)

	listCmd := &cobra.Command{
		Use:     "list <repository>",
		Aliases: []string{"ls"},
		Short:   "List bug reports for a repository",
		Long: `List bug reports for a repository.

The repository may be given as owner/repo or as a bare name when it is
unambiguous across your accessible repositories.

Examples:
  detail bugs list usedetail/cli
  detail bugs list cli --status resolved
  detail bugs list usedetail/cli --security-only
  detail bugs list usedetail/cli --limit 20 --page 2 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := output.ParseFormat(formatStr)
			if err != nil {
				return err
			}
			if err := cli.ValidatePagination(limit, page); err != nil {
				return err
			}
			status, err := api.ParseCloseState(statusStr)
			if err != nil {
				return err
			}

			client, err := cli.NewClient()
			if err != nil {
				return err
			}

			repoID, err := resolve.RepositoryID(cmd.Context(), client, args[0])
			if err != nil {
				return err
			}

			var (
				bugs  []api.Bug
				total int
			)
			if securityOnly {
				bugs, total, err = securityPage(cmd.Context(), client, repoID, status, limit, page)
			} else {
				var result api.BugsPage
				result, err = client.ListBugs(cmd.Context(), repoID, status, limit, paginate.Offset(page, limit))
				bugs, total = result.Bugs, result.Total
			}
			if err != nil {
				return err
			}

			return output.List(cmd.OutOrStdout(), output.BugRows(bugs), total, page, limit, format)
		},
	}

	listCmd.Flags().StringVar(&statusStr, "status", "pending", "Filter by status (pending, resolved, dismissed)")
	listCmd.Flags().BoolVar(&securityOnly, "security-only", false, "Only show security vulnerabilities")
	listCmd.Flags().IntVar(&limit, "limit", 50, "Maximum number of results per page")
	listCmd.Flags().IntVar(&page, "page", 1, "Page number (starts at 1)")
	listCmd.Flags().StringVar(&formatStr, "format", "table", "Output format (table, json, csv)")

	return listCmd
}

// securityPage fetches every matching bug, filters to security
// vulnerabilities client-side, and slices out the requested page. The server
// has no security filter, so the page math runs against the filtered total.
func securityPage(ctx context.Context, client api.Client, repoID api.RepoID, status api.CloseState, limit, page int) ([]api.Bug, int, error) {
	filtered, err := paginate.All(paginate.DefaultPageSize, func(offset int) (paginate.Page[api.Bug], error) {
		result, err := client.ListBugs(ctx, repoID, status, paginate.DefaultPageSize, offset)
		if err != nil {
			return paginate.Page[api.Bug]{}, err
		}

		var kept []api.Bug
		for _, bug := range result.Bugs {
			if bug.IsSecurityVulnerability != nil && *bug.IsSecurityVulnerability {
				kept = append(kept, bug)
			}
		}

		// PageItemCount stays at the raw server count so short-page
		// termination is unaffected by the filter.
		return paginate.Page[api.Bug]{
			Items:         kept,
			Total:         result.Total,
			PageItemCount: len(result.Bugs),
		}, nil
	})
	if err != nil {
		return nil, 0, err
	}

	total := len(filtered)
	start := paginate.Offset(page, limit)
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return filtered[start:end], total, nil
}
