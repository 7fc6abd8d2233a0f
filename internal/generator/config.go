package generator

import (
	"os"
	"path/filepath"
	"strings"

	"emperror.dev/errors"
	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v2"

	"github.com/circleous/gitbib/pkg/bibtex"
	"github.com/circleous/gitbib/pkg/git"
	"github.com/circleous/gitbib/pkg/gitservice"
	"github.com/circleous/gitbib/pkg/gitservice/github"
)

const (
	// AbortOnError stops the whole run at the first failing organization
	AbortOnError = "abort"
	// ContinueOnError logs a failing organization and moves on to the next one
	ContinueOnError = "continue"
)

var (
	defaultOrganization = "anoma"
	defaultOutputDir    = "."
	defaultOnError      = AbortOnError
)

// OrganizationConfig is per organization configuration struct
type OrganizationConfig struct {
	// Type is the type of git service will be used to query, defaults to github
	Type string `toml:"type" yaml:"type"`

	// Name is the name of the organization, also used as the output file prefix
	Name string `toml:"name" yaml:"name"`
}

// Config is the configuration struct for the generator. It can be created with
// ParseConfig or DefaultConfig.
type Config struct {
	// Organizations are processed in order, one bibliography file each
	Organizations []OrganizationConfig `toml:"organization" yaml:"organization"`

	// OutputDir is where <organization>-repos.bib files are written
	OutputDir string `toml:"output_dir" yaml:"output_dir"`

	// BaseURL is the github REST API root
	BaseURL string `toml:"base_url" yaml:"base_url"`

	// HTMLHost is the host used for the url field of every citation
	HTMLHost string `toml:"html_host" yaml:"html_host"`

	// OnError is either "abort" or "continue"
	OnError string `toml:"on_error" yaml:"on_error"`

	// Database is an optional sqlite path, every written file gets recorded there
	Database string `toml:"database" yaml:"database"`
}

// DefaultConfig returns the configuration used when no config file exists
func DefaultConfig() *Config {
	config := &Config{}
	config.setDefaults()
	return config
}

// ParseConfig builds a Config from a toml file, or a yaml file when the
// extension is .yaml or .yml
func ParseConfig(configPath string) (*Config, error) {
	var config Config

	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read config file")
		}
		if err := yaml.UnmarshalStrict(data, &config); err != nil {
			return nil, errors.Wrapf(err, "failed to parse %s", configPath)
		}
	default:
		meta, err := toml.DecodeFile(configPath, &config)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse %s", configPath)
		}
		for _, key := range meta.Undecoded() {
			log.Warn().Str("key", key.String()).Str("file", configPath).
				Msg("unknown config key")
		}
	}

	config.setDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// WithOrganizations replaces the configured organizations with github
// organizations named names
func (c *Config) WithOrganizations(names []string) *Config {
	cp := *c
	cp.Organizations = make([]OrganizationConfig, 0, len(names))
	for _, name := range names {
		cp.Organizations = append(cp.Organizations, OrganizationConfig{
			Type: git.GITHUB,
			Name: name,
		})
	}
	return &cp
}

func (c *Config) setDefaults() {
	if len(c.Organizations) == 0 {
		c.Organizations = []OrganizationConfig{{Name: defaultOrganization}}
	}

	for i := range c.Organizations {
		if c.Organizations[i].Type == "" {
			c.Organizations[i].Type = git.GITHUB
		}
	}

	if c.BaseURL == "" {
		c.BaseURL = github.DefaultBaseURL
	}
	if c.OutputDir == "" {
		c.OutputDir = defaultOutputDir
	}
	if c.HTMLHost == "" {
		c.HTMLHost = bibtex.DefaultHost
	}
	if c.OnError == "" {
		c.OnError = defaultOnError
	}
}

// Validate checks every organization can be processed
func (c *Config) Validate() error {
	if len(c.Organizations) == 0 {
		return errors.New("no organization configured")
	}

	for _, org := range c.Organizations {
		if org.Name == "" {
			return errors.New("organization name can't be empty")
		}
		if !gitservice.IsSupported(org.Type) {
			return errors.Errorf("organization %q has unsupported type %q", org.Name, org.Type)
		}
	}

	if c.OnError != AbortOnError && c.OnError != ContinueOnError {
		return errors.Errorf("invalid on_error %q choose either %q or %q",
			c.OnError, AbortOnError, ContinueOnError)
	}

	return nil
}
