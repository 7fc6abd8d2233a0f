package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"emperror.dev/errors"
	"github.com/spf13/cobra"

	"github.com/circleous/gitbib/internal/database"
)

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of runs to show, 0 shows all")
	rootCmd.AddCommand(historyCmd)
}

var (
	historyLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show previously written bibliography files",
	Long: `Show previously written bibliography files, newest first. Requires the
database option in the config file.`,
	Args: cobra.NoArgs,
	RunE: history,
}

func history(cmd *cobra.Command, _ []string) error {
	conf, err := loadConfig()
	if err != nil {
		return err
	}
	if conf.Database == "" {
		return errors.New("no database configured")
	}

	db, err := database.NewDatabase(conf.Database)
	if err != nil {
		return errors.Wrapf(err, "failed to open database %s", conf.Database)
	}
	defer db.Close()

	if err := db.Initialize(); err != nil {
		return errors.Wrap(err, "failed to initialize database")
	}

	runs, err := db.ListRuns(cmd.Context(), historyLimit)
	if err != nil {
		return errors.Wrap(err, "failed to list runs")
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "WRITTEN AT\tORGANIZATION\tREPOSITORIES\tFILE")
	for _, run := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", run.WrittenAt.Local().Format(time.RFC3339),
			run.Organization, run.Repositories, run.OutputFile)
	}
	return tw.Flush()
}
