package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/brazilian-soccer/internal/app"
	"github.com/riskibarqy/brazilian-soccer/internal/config"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Load the CSV dataset into postgres, replacing existing records",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if cfg.DBURL == "" {
			return fmt.Errorf("DB_URL is required for import")
		}

		svc, closeDB, err := app.NewImporter(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer func() { _ = closeDB() }()

		result, err := svc.Import(cmd.Context())
		if err != nil {
			return fmt.Errorf("import: %w", err)
		}
		if err := printJSON(cmd.OutOrStdout(), result); err != nil {
			return err
		}
		if result.FailedCount > 0 {
			return fmt.Errorf("%d of %d import tasks failed", result.FailedCount, result.TaskCount)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
