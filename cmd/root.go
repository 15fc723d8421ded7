package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/dd-checklist/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "dd-checklist",
	Short: "Due diligence document checklist generator",
	Long:  "Generates formatted due-diligence document checklists for M&A transactions, tailored by deal type, sector, jurisdiction and language (EN/PT).",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
