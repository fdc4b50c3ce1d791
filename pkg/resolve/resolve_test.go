//go:build unit

package resolve

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/usedetail/detail-cli/pkg/api"
	"github.com/usedetail/detail-cli/pkg/api/mocks"
)

func fixtureRepos() []api.Repo {
	return []api.Repo{
		{ID: "repo_1", Name: "cli", OwnerName: "usedetail", FullName: "usedetail/cli", OrgName: "usedetail"},
		{ID: "repo_2", Name: "cli", OwnerName: "acme", FullName: "acme/cli", OrgName: "acme"},
		{ID: "repo_3", Name: "backend", OwnerName: "usedetail", FullName: "usedetail/backend", OrgName: "usedetail"},
	}
}

func TestRepository_QualifiedMatch(t *testing.T) {
	id, err := Repository("acme/cli", fixtureRepos())
	require.NoError(t, err)
	assert.Equal(t, api.RepoID("repo_2"), id)
}

func TestRepository_QualifiedNotFound(t *testing.T) {
	_, err := Repository("acme/backend", fixtureRepos())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "access")
}

func TestRepository_QualifiedCaseSensitive(t *testing.T) {
	_, err := Repository("Acme/CLI", fixtureRepos())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_InvalidFormat(t *testing.T) {
	tests := []string{
		"owner/repo/extra",
		"/cli",
		"owner/",
		"/",
		"a/b/c/d",
	}

	for _, identifier := range tests {
		t.Run(identifier, func(t *testing.T) {
			_, err := Repository(identifier, fixtureRepos())
			assert.ErrorIs(t, err, ErrInvalidFormat)
		})
	}
}

func TestRepository_BareNameUniqueMatch(t *testing.T) {
	id, err := Repository("backend", fixtureRepos())
	require.NoError(t, err)
	assert.Equal(t, api.RepoID("repo_3"), id)
}

func TestRepository_BareNameNotFound(t *testing.T) {
	_, err := Repository("frontend", fixtureRepos())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "detail repos list")
}

func TestRepository_BareNameAmbiguous(t *testing.T) {
	_, err := Repository("cli", fixtureRepos())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAmbiguous)

	// Every colliding full name is enumerated, the first suggested.
	assert.Contains(t, err.Error(), "usedetail/cli")
	assert.Contains(t, err.Error(), "acme/cli")
	assert.Contains(t, err.Error(), `"usedetail/cli"`)

	var ambiguous *AmbiguousError
	require.ErrorAs(t, err, &ambiguous)
	assert.Equal(t, []string{"usedetail/cli", "acme/cli"}, ambiguous.Candidates)
}

func TestRepository_EmptySet(t *testing.T) {
	_, err := Repository("cli", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepositoryID_PaginatesUntilShortPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)

	// The wanted repo is on the second page; pagination must continue past
	// the first full page.
	firstPage := make([]api.Repo, 100)
	for i := range firstPage {
		firstPage[i] = api.Repo{
			ID:       api.RepoID("repo_" + string(rune('a'+i%26))),
			Name:     "filler",
			FullName: "org/filler",
		}
	}

	mockClient.EXPECT().
		ListRepos(gomock.Any(), 100, 0).
		Return(api.ReposPage{Repos: firstPage, Total: 101}, nil)
	mockClient.EXPECT().
		ListRepos(gomock.Any(), 100, 100).
		Return(api.ReposPage{
			Repos: []api.Repo{{ID: "repo_target", Name: "cli", FullName: "usedetail/cli"}},
			Total: 101,
		}, nil)

	id, err := RepositoryID(context.Background(), mockClient, "usedetail/cli")
	require.NoError(t, err)
	assert.Equal(t, api.RepoID("repo_target"), id)
}

func TestRepositoryID_FetchFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	fetchErr := errors.New("connection reset")

	mockClient.EXPECT().
		ListRepos(gomock.Any(), 100, 0).
		Return(api.ReposPage{}, fetchErr)

	_, err := RepositoryID(context.Background(), mockClient, "usedetail/cli")
	require.Error(t, err)
	assert.ErrorIs(t, err, fetchErr)
	assert.Contains(t, err.Error(), "resolving identifier")
}
