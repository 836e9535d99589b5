package commands

import (
	"fmt"

	"banks-etl/internal/extract"
	"banks-etl/internal/pipeline"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(extractCmd)
}

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Scrapes the source page and prints the table without converting or loading it.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client, err := pipeline.NewClient(cfg)
		if err != nil {
			return err
		}

		scraped, err := extract.Extract(cmd.Context(), client, cfg.SourceURL, cfg.ColumnPair())
		if err != nil {
			return fmt.Errorf("extract: %w", err)
		}

		t := table.NewWriter()
		t.SetStyle(table.StyleRounded)
		t.SetOutputMirror(cmd.OutOrStdout())
		t.AppendHeader(table.Row{"#", scraped.Columns[0], scraped.Columns[1]})
		for i, record := range scraped.Rows {
			t.AppendRow(table.Row{i + 1, record.Name, record.MarketCapUSD})
		}
		t.Render()
		return nil
	},
}
