package gitservice

import (
	"context"

	"emperror.dev/errors"

	"github.com/circleous/gitbib/pkg/git"
	"github.com/circleous/gitbib/pkg/gitservice/github"
)

// Options configures the per-service clients
type Options struct {
	// GithubBaseURL is the github REST API root, defaults to api.github.com
	GithubBaseURL string
}

// Service lists repositories across all supported git services
type Service interface {
	// ListOrgRepositories return the public repositories of an organization
	// hosted on serviceType
	ListOrgRepositories(ctx context.Context, serviceType, org string) ([]git.Repository, error)
}

type gitService struct {
	github github.Service
}

// NewGitService creates the clients for every supported service
func NewGitService(ctx context.Context, opt *Options) (Service, error) {
	if opt == nil {
		opt = &Options{}
	}

	baseURL := opt.GithubBaseURL
	if baseURL == "" {
		baseURL = github.DefaultBaseURL
	}

	ghs, err := github.NewGithubClientWithBaseURL(ctx, baseURL)
	if err != nil {
		return nil, err
	}

	return &gitService{github: ghs}, nil
}

// IsSupported reports whether serviceType can be listed
func IsSupported(serviceType string) bool {
	return serviceType == git.GITHUB
}

func (gs *gitService) ListOrgRepositories(ctx context.Context, serviceType, org string) ([]git.Repository, error) {
	switch serviceType {
	case git.GITHUB:
		return gs.github.ListOrgRepositories(ctx, org)
	default:
		return nil, errors.Errorf("unsupported service type %q", serviceType)
	}
}
