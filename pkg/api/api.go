// Package api provides a typed HTTP client for the Detail bug-tracking
// service.
package api

import "context"

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=api.go -destination=mocks/client.gen.go -package=mocks

// Client interface provides access to the Detail API.
type Client interface {
	// CurrentUser fetches the authenticated user.
	CurrentUser(ctx context.Context) (*User, error)

	// ListRepos fetches one page of the accessible-repository listing.
	ListRepos(ctx context.Context, limit, offset int) (ReposPage, error)

	// ListBugs fetches one page of bugs for a repository, filtered by status.
	ListBugs(ctx context.Context, repoID RepoID, status CloseState, limit, offset int) (BugsPage, error)

	// GetBug fetches a single bug.
	GetBug(ctx context.Context, bugID BugID) (*Bug, error)

	// CloseBug closes a bug with the given state, reason and notes.
	CloseBug(ctx context.Context, bugID BugID, req CloseRequest) (*BugClose, error)

	// BaseURL returns the API endpoint this client talks to.
	BaseURL() string
}
