package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/dd-checklist/internal/checklist"
	"github.com/sells-group/dd-checklist/internal/i18n"
	"github.com/sells-group/dd-checklist/internal/model"
	"github.com/sells-group/dd-checklist/internal/rulebase"
)

var (
	generateTarget       string
	generateDealType     string
	generateSector       string
	generateJurisdiction string
	generateLanguage     string
	generateCustomFile   string
	generateOutDir       string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a checklist workbook from flags",
	RunE: func(cmd *cobra.Command, _ []string) error {
		langInput := generateLanguage
		if langInput == "" {
			langInput = cfg.Output.Language
		}
		lang, err := i18n.ParseLanguage(langInput)
		if err != nil {
			return err
		}

		var custom []model.CustomDocument
		if generateCustomFile != "" {
			custom, err = loadCustomDocuments(generateCustomFile)
			if err != nil {
				return err
			}
		}

		outDir := generateOutDir
		if outDir == "" {
			outDir = cfg.Output.Dir
		}

		dc := model.DealContext{
			Target:       generateTarget,
			DealType:     model.DealType(generateDealType),
			Sector:       model.Sector(generateSector),
			Jurisdiction: model.Jurisdiction(generateJurisdiction),
			Language:     lang,
			Custom:       custom,
		}

		gen := checklist.New(rulebase.New(), i18n.NewTable(), outDir, nil)
		path, err := gen.Generate(dc)
		if err != nil {
			return err
		}

		cmd.Printf("Generated: %s\n", path)
		return nil
	},
}

// loadCustomDocuments reads caller-supplied documents from a YAML file. The
// file is a list of {category, name, required, priority} entries; tuples are
// validated when the deal context is resolved.
func loadCustomDocuments(path string) ([]model.CustomDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "generate: read custom documents %s", path)
	}
	var docs []model.CustomDocument
	if err := yaml.Unmarshal(data, &docs); err != nil {
		return nil, eris.Wrapf(err, "generate: parse custom documents %s", path)
	}
	return docs, nil
}

func init() {
	generateCmd.Flags().StringVar(&generateTarget, "target", "", "target company name (required)")
	generateCmd.Flags().StringVar(&generateDealType, "deal", string(model.DealTypeShareDeal), "deal type: Share Deal, Asset Deal, Merger")
	generateCmd.Flags().StringVar(&generateSector, "sector", string(model.SectorTechnology), "sector: Healthcare, Technology, Industrial, Real Estate, Financial Services, Retail")
	generateCmd.Flags().StringVar(&generateJurisdiction, "jurisdiction", string(model.JurisdictionPortugal), "jurisdiction: Portugal, Spain, International")
	generateCmd.Flags().StringVar(&generateLanguage, "lang", "", "output language: EN or PT (defaults to config)")
	generateCmd.Flags().StringVar(&generateCustomFile, "custom", "", "path to YAML file with custom documents")
	generateCmd.Flags().StringVar(&generateOutDir, "out", "", "output directory (defaults to config)")
	_ = generateCmd.MarkFlagRequired("target")
	rootCmd.AddCommand(generateCmd)
}
