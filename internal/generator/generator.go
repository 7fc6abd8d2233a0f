package generator

import (
	"context"
	"time"

	"emperror.dev/errors"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/rs/zerolog/log"

	"github.com/circleous/gitbib/internal/database"
	"github.com/circleous/gitbib/pkg/bibtex"
	"github.com/circleous/gitbib/pkg/gitservice"
)

type generator struct {
	config *Config
	gs     gitservice.Service
	fs     billy.Filesystem
	db     database.Service
	stat   runStat
	now    func() time.Time
}

// Service is the main interface for generator module
type Service interface {
	// Run processes every configured organization sequentially
	Run(ctx context.Context) error
	// Stat returns the counters of the last Run
	Stat() Stat
	Close()
}

// Option overrides a dependency of the generator
type Option func(*generator)

// WithGitService replaces the repository lister
func WithGitService(gs gitservice.Service) Option {
	return func(g *generator) { g.gs = gs }
}

// WithFilesystem replaces the output filesystem, by default files go to
// config.OutputDir on disk
func WithFilesystem(fs billy.Filesystem) Option {
	return func(g *generator) { g.fs = fs }
}

// WithDatabase replaces the run ledger, by default it's opened from
// config.Database when set
func WithDatabase(db database.Service) Option {
	return func(g *generator) { g.db = db }
}

// New init generator
func New(config *Config, opts ...Option) (Service, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	g := &generator{
		config: config,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.gs == nil {
		gs, err := gitservice.NewGitService(context.Background(), &gitservice.Options{
			GithubBaseURL: config.BaseURL,
		})
		if err != nil {
			return nil, err
		}
		g.gs = gs
	}

	if g.fs == nil {
		g.fs = osfs.New(config.OutputDir)
	}

	if g.db == nil && config.Database != "" {
		db, err := database.NewDatabase(config.Database)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open database")
		}
		if err := db.Initialize(); err != nil {
			db.Close()
			return nil, errors.Wrap(err, "failed to initialize database")
		}
		g.db = db
	}

	return g, nil
}

// Run list, format and write every organization in configuration order. With
// on_error = "abort" the first failure is returned as is, with "continue" the
// failures are combined and returned after the last organization.
func (g *generator) Run(ctx context.Context) error {
	var errs []error

	g.stat.Reset()

	for _, org := range g.config.Organizations {
		log.Debug().Str("organization", org.Name).Str("type", org.Type).
			Msg("processing org")

		err := g.processOrganization(ctx, org)
		if err == nil {
			continue
		}

		g.stat.IncreaseFailures(1)
		if g.config.OnError != ContinueOnError {
			return err
		}

		log.Error().Err(err).Str("organization", org.Name).
			Msg("failed to process organization")
		errs = append(errs, err)
	}

	stat := g.stat.Snapshot()
	log.Info().Uint("organizations", stat.Organizations).
		Uint("repositories", stat.Repositories).
		Uint("files", stat.Files).
		Uint("failures", stat.Failures).
		Msg("done")

	return errors.Combine(errs...)
}

// processOrganization formats every repository before the file is opened, so a
// missing field leaves any previous file untouched
func (g *generator) processOrganization(ctx context.Context, org OrganizationConfig) error {
	repos, err := g.gs.ListOrgRepositories(ctx, org.Type, org.Name)
	if err != nil {
		return err
	}

	entries := make([]string, 0, len(repos))
	for _, repo := range repos {
		entry, err := bibtex.FromRepository(repo, g.config.HTMLHost)
		if err != nil {
			return err
		}
		entries = append(entries, entry.String())
	}

	path, err := bibtex.WriteFile(g.fs, org.Name, entries)
	if err != nil {
		return err
	}

	g.stat.IncreaseOrganization(1)
	g.stat.IncreaseRepositories(uint(len(entries)))
	g.stat.IncreaseFiles(1)

	log.Info().Str("organization", org.Name).Str("file", path).
		Int("repositories", len(entries)).Msg("wrote bibliography")

	if g.db != nil {
		err = g.db.RecordRun(ctx, database.Run{
			Organization: org.Name,
			Repositories: len(entries),
			OutputFile:   path,
			WrittenAt:    g.now(),
		})
		if err != nil {
			return errors.Wrapf(err, "failed to record run of %q", org.Name)
		}
	}

	return nil
}

func (g *generator) Stat() Stat {
	return g.stat.Snapshot()
}

func (g *generator) Close() {
	if g.db != nil {
		g.db.Close()
	}
}
