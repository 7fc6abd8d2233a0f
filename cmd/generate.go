package cmd

import (
	"github.com/spf13/cobra"

	"github.com/circleous/gitbib/internal/generator"
)

func generate(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig()
	if err != nil {
		return err
	}
	if len(args) > 0 {
		conf = conf.WithOrganizations(args)
	}

	g, err := generator.New(conf)
	if err != nil {
		return err
	}
	defer g.Close()

	return g.Run(cmd.Context())
}
