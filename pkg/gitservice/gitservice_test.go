package gitservice_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/circleous/gitbib/pkg/git"
	"github.com/circleous/gitbib/pkg/gitservice"
)

func TestListOrgRepositoriesDispatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"name": "foo", "full_name": "bar/foo", "owner": {"login": "bar"}}]`)
	}))
	defer srv.Close()

	gs, err := gitservice.NewGitService(context.Background(), &gitservice.Options{
		GithubBaseURL: srv.URL + "/",
	})
	require.NoError(t, err)

	repos, err := gs.ListOrgRepositories(context.Background(), git.GITHUB, "bar")
	require.NoError(t, err)
	require.Len(t, repos, 1)
	assert.Equal(t, "bar/foo", repos[0].FullName)

	_, err = gs.ListOrgRepositories(context.Background(), "gitlab", "bar")
	assert.EqualError(t, err, `unsupported service type "gitlab"`)
}

func TestIsSupported(t *testing.T) {
	assert.True(t, gitservice.IsSupported(git.GITHUB))
	assert.False(t, gitservice.IsSupported("gitlab"))
	assert.False(t, gitservice.IsSupported(""))
}
