package github

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"emperror.dev/errors"
	"github.com/google/go-github/v39/github"
	"github.com/rs/zerolog/log"

	"github.com/circleous/gitbib/pkg/git"
)

// DefaultBaseURL is the public github REST API root
const DefaultBaseURL = "https://api.github.com/"

type githubService struct {
	client *github.Client
}

// Service exported interface for github service
type Service interface {
	// ListOrgRepositories return the public repositories of an organization, in
	// the order the API returned them
	ListOrgRepositories(ctx context.Context, org string) ([]git.Repository, error)
}

// NewGithubClientWithBaseURL create new github api client against an API root,
// DefaultBaseURL or e.g. a GitHub Enterprise server
func NewGithubClientWithBaseURL(ctx context.Context, baseURL string) (Service, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid base url %q", baseURL)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}

	hc := &http.Client{Transport: newLoggingTransport(http.DefaultTransport)}
	client := github.NewClient(hc)
	client.BaseURL = u

	return &githubService{
		client: client,
	}, nil
}

// ListOrgRepositories issues a single GET /orgs/{org}/repos?type=public. Only the
// first page is requested, so organizations with more repositories than one page
// holds come back truncated.
func (ghs *githubService) ListOrgRepositories(ctx context.Context, org string) ([]git.Repository, error) {
	if org == "" {
		return nil, errors.New("organization name is empty")
	}

	gitRepos, resp, err := ghs.client.Repositories.ListByOrg(ctx, org, &github.RepositoryListByOrgOptions{
		Type: git.PublicVisibility,
	})
	if err != nil {
		return nil, requestError(org, resp, err)
	}

	repos := make([]git.Repository, 0, len(gitRepos))
	for _, gitRepo := range gitRepos {
		repos = append(repos, toRepository(gitRepo))
	}

	log.Debug().Str("organization", org).Int("repositories", len(repos)).
		Msg("listed repositories")

	return repos, nil
}

func requestError(org string, resp *github.Response, err error) error {
	if rlErr, ok := err.(*github.RateLimitError); ok {
		log.Warn().Str("organization", org).Time("reset", rlErr.Rate.Reset.Time).
			Msgf("rate limit %d reached", rlErr.Rate.Limit)
	}

	if resp == nil || resp.Response == nil {
		return &git.RequestError{Organization: org, Err: err}
	}

	// a 2xx with an undecodable body is not a request failure
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return errors.Wrapf(err, "failed to decode repositories of %q", org)
	}

	return &git.RequestError{
		Organization: org,
		StatusCode:   resp.StatusCode,
		Err:          err,
	}
}

func toRepository(gitRepo *github.Repository) git.Repository {
	repo := git.Repository{
		Name:     gitRepo.GetName(),
		FullName: gitRepo.GetFullName(),
		Owner: git.Owner{
			Login: gitRepo.GetOwner().GetLogin(),
		},
	}
	if gitRepo.CreatedAt != nil {
		repo.CreatedAt = gitRepo.CreatedAt.Time
	}
	return repo
}
