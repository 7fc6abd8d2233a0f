package cmd

import (
	"os"

	"emperror.dev/errors"
	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/circleous/gitbib/internal/generator"
)

var rootCmd = &cobra.Command{
	Use:   "gitbib [organization...]",
	Short: "gitbib writes a BibTeX entry for every public repository of an organization",
	Long: `gitbib lists the public repositories of GitHub organizations and writes one
<organization>-repos.bib file per organization. Organizations given as arguments
replace the ones from the config file.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	// errors are logged once by Execute
	SilenceErrors: true,
	SilenceUsage:  true,

	Args:              cobra.ArbitraryArgs,
	PersistentPreRunE: initLogger,
	RunE:              generate,
}

var (
	confPath string
	silent   bool
	verbose  bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&confPath, "config", "c", "",
		"config file (default $XDG_CONFIG_HOME/gitbib/config.toml when present)")
	rootCmd.PersistentFlags().BoolVarP(&silent, "silent", "s", false, "silent, only error or panic output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "more verbose for debug output")
}

func initLogger(_ *cobra.Command, _ []string) error {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if silent && verbose {
		return errors.New("choose only one of silent or verbose output")
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if silent {
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	}

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	return nil
}

// loadConfig reads --config, then the xdg config file, and falls back to the
// built-in defaults
func loadConfig() (*generator.Config, error) {
	path := confPath
	if path == "" {
		found, err := xdg.SearchConfigFile("gitbib/config.toml")
		if err != nil {
			log.Debug().Msg("no config file found, using defaults")
			return generator.DefaultConfig(), nil
		}
		path = found
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.Errorf("config file %s not exists", path)
	}

	conf, err := generator.ParseConfig(path)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("file", path).Msg("loaded config")

	return conf, nil
}

// Execute root cobra executor
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("")
		os.Exit(1)
	}
}
