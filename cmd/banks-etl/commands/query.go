package commands

import (
	"fmt"
	"strings"

	"banks-etl/internal/query"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(queryCmd)
}

var queryCmd = &cobra.Command{
	Use:   "query <sql>",
	Short: "Runs a read-only query against the configured store and prints the result.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		db, err := cfg.Store.Open()
		if err != nil {
			return fmt.Errorf("open store %s: %w", cfg.Store, err)
		}
		defer db.Close()

		result, err := query.Run(cmd.Context(), db, strings.Join(args, " "))
		if err != nil {
			return err
		}
		return query.Render(cmd.OutOrStdout(), result)
	},
}
