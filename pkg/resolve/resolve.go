// Package resolve turns free-form repository identifiers into canonical
// repository IDs.
package resolve

import (
	"context"
	"fmt"
	"strings"

	"github.com/usedetail/detail-cli/pkg/api"
	"github.com/usedetail/detail-cli/pkg/paginate"
)

// Repository resolves an identifier against an in-memory set of accessible
// repositories. Two shapes are accepted: a bare name (`cli`) or a qualified
// `owner/name` (`usedetail/cli`). Matching is exact and case-sensitive.
func Repository(identifier string, repos []api.Repo) (api.RepoID, error) {
	if strings.Contains(identifier, "/") {
		return resolveQualified(identifier, repos)
	}
	return resolveBareName(identifier, repos)
}

// resolveQualified resolves an owner/name identifier by exact full-name match.
func resolveQualified(identifier string, repos []api.Repo) (api.RepoID, error) {
	parts := strings.Split(identifier, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", fmt.Errorf(
			"%w: %q. Please use owner/repo (e.g., 'usedetail/cli') or just the repo name. "+
				"Run 'detail repos list' to see your repositories",
			ErrInvalidFormat, identifier)
	}

	for _, repo := range repos {
		if repo.FullName == identifier {
			return repo.ID, nil
		}
	}

	return "", fmt.Errorf(
		"%w: %q. Make sure you have access to this repository",
		ErrNotFound, identifier)
}

// resolveBareName resolves a bare name, collecting every repository with that
// name so collisions can be reported.
func resolveBareName(identifier string, repos []api.Repo) (api.RepoID, error) {
	var matches []api.Repo
	for _, repo := range repos {
		if repo.Name == identifier {
			matches = append(matches, repo)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf(
			"%w: %q. Run 'detail repos list' to see your repositories",
			ErrNotFound, identifier)
	case 1:
		return matches[0].ID, nil
	default:
		candidates := make([]string, len(matches))
		for i, repo := range matches {
			candidates[i] = repo.FullName
		}
		return "", &AmbiguousError{Name: identifier, Candidates: candidates}
	}
}

// RepositoryID fetches the full accessible-repository listing and resolves
// the identifier against it. The listing is fetched once per call and never
// cached across invocations.
func RepositoryID(ctx context.Context, client api.Client, identifier string) (api.RepoID, error) {
	repos, err := paginate.All(paginate.DefaultPageSize, func(offset int) (paginate.Page[api.Repo], error) {
		page, err := client.ListRepos(ctx, paginate.DefaultPageSize, offset)
		if err != nil {
			return paginate.Page[api.Repo]{}, err
		}
		return paginate.Page[api.Repo]{
			Items:         page.Repos,
			Total:         page.Total,
			PageItemCount: len(page.Repos),
		}, nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to fetch repositories while resolving identifier: %w", err)
	}

	return Repository(identifier, repos)
}
