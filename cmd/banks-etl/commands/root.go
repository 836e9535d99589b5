package commands

import (
	"context"

	"banks-etl/internal/pipeline"
	"banks-etl/internal/telemetry"
	"banks-etl/lib/serviceutil"

	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "banks-etl",
	Short: "banks-etl scrapes the largest banks by market capitalization and loads them in several currencies.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(verbose)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "banks-etl.json5", "The json5 config file, a missing file means defaults.")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging.")
}

func loadConfig() (pipeline.Config, error) {
	return pipeline.LoadConfig(configPath)
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		serviceutil.Fatal("banks-etl failed", err)
	}
}
