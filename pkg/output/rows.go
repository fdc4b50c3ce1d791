package output

import "github.com/usedetail/detail-cli/pkg/api"

// BugRow maps an api.Bug to listing columns. Embedding keeps the json shape
// of the underlying record.
type BugRow struct {
	api.Bug
}

// Headers returns the bug listing columns.
func (r BugRow) Headers() []string {
	return []string{"ID", "TITLE", "FILE", "SECURITY", "CREATED"}
}

// Row returns the listing values for this bug.
func (r BugRow) Row() []string {
	file := "-"
	if r.FilePath != nil {
		file = *r.FilePath
	}

	security := "-"
	if r.IsSecurityVulnerability != nil {
		if *r.IsSecurityVulnerability {
			security = "Yes"
		} else {
			security = "No"
		}
	}

	return []string{r.ID.String(), r.Title, file, security, FormatDate(r.CreatedAt)}
}

// BugRows wraps bugs for listing.
func BugRows(bugs []api.Bug) []BugRow {
	rows := make([]BugRow, len(bugs))
	for i, bug := range bugs {
		rows[i] = BugRow{bug}
	}
	return rows
}

// RepoRow maps an api.Repo to listing columns.
type RepoRow struct {
	api.Repo
}

// Headers returns the repository listing columns.
func (r RepoRow) Headers() []string {
	return []string{"REPOSITORY", "ORGANIZATION", "VISIBILITY", "BRANCH"}
}

// Row returns the listing values for this repository.
func (r RepoRow) Row() []string {
	return []string{r.FullName, r.OrgName, r.Visibility, r.PrimaryBranch}
}

// RepoRows wraps repositories for listing.
func RepoRows(repos []api.Repo) []RepoRow {
	rows := make([]RepoRow, len(repos))
	for i, repo := range repos {
		rows[i] = RepoRow{repo}
	}
	return rows
}
