package commands

import (
	"log/slog"
	"time"

	"banks-etl/internal/pipeline"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run [--config <path/to/config.json5>]",
	Short: "Scrapes the source page, converts currencies, writes the CSV and the database table, then prints the reports.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		t1 := time.Now()
		report, err := pipeline.Run(cmd.Context(), cfg, pipeline.Options{
			Out: cmd.OutOrStdout(),
		})
		if err != nil {
			return err
		}
		t2 := time.Now()

		slog.Info(
			"etl finished",
			"rows", len(report.Table.Rows),
			"csv", cfg.OutputCSVPath,
			"table", cfg.TableName,
			"seconds", t2.Sub(t1).Seconds(),
		)
		return nil
	},
}
