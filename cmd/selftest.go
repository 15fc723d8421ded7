package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/dd-checklist/internal/checklist"
	"github.com/sells-group/dd-checklist/internal/i18n"
	"github.com/sells-group/dd-checklist/internal/model"
	"github.com/sells-group/dd-checklist/internal/rulebase"
)

var selftestOutDir string

// selftestContexts are the two fixture checklists exercising the full
// resolve → present → render path without user input.
var selftestContexts = []model.DealContext{
	{
		Target:       "TechVida Lda",
		DealType:     model.DealTypeShareDeal,
		Sector:       model.SectorTechnology,
		Jurisdiction: model.JurisdictionPortugal,
		Language:     i18n.LanguageEN,
	},
	{
		Target:       "Farma Saúde SA",
		DealType:     model.DealTypeMerger,
		Sector:       model.SectorHealthcare,
		Jurisdiction: model.JurisdictionPortugal,
		Language:     i18n.LanguagePT,
	},
}

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Generate the two example checklists",
	RunE: func(cmd *cobra.Command, _ []string) error {
		outDir := selftestOutDir
		if outDir == "" {
			outDir = cfg.Output.Dir
		}
		gen := checklist.New(rulebase.New(), i18n.NewTable(), outDir, nil)

		// Checklists are independent and the reference data is read-only,
		// so the fixtures can render concurrently.
		var g errgroup.Group
		paths := make([]string, len(selftestContexts))
		for i, dc := range selftestContexts {
			g.Go(func() error {
				path, err := gen.Generate(dc)
				if err != nil {
					return err
				}
				paths[i] = path
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		for _, path := range paths {
			cmd.Printf("Generated: %s\n", path)
		}
		zap.L().Info("selftest complete", zap.Int("checklists", len(paths)))
		return nil
	},
}

func init() {
	selftestCmd.Flags().StringVar(&selftestOutDir, "out", "", "output directory (defaults to config)")
	rootCmd.AddCommand(selftestCmd)
}
