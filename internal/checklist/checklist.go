// Package checklist is the programmatic entry point: it wires the resolver,
// the presentation adapter and the workbook renderer into one call that
// turns a deal context into a generated file.
package checklist

import (
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/dd-checklist/internal/i18n"
	"github.com/sells-group/dd-checklist/internal/model"
	"github.com/sells-group/dd-checklist/internal/present"
	"github.com/sells-group/dd-checklist/internal/resolver"
	"github.com/sells-group/dd-checklist/internal/rulebase"
	"github.com/sells-group/dd-checklist/internal/workbook"
)

// Generator resolves, presents and renders checklists. Safe for concurrent
// use; it only reads the immutable rule base and translation table.
type Generator struct {
	resolver  *resolver.Resolver
	presenter *present.Presenter
	outDir    string
}

// New builds a Generator writing workbooks into outDir. A nil now falls
// back to time.Now.
func New(rules *rulebase.Base, translations *i18n.Table, outDir string, now func() time.Time) *Generator {
	return &Generator{
		resolver:  resolver.New(rules, translations),
		presenter: present.New(translations, now),
		outDir:    outDir,
	}
}

// Resolve exposes the resolver for callers that need the document list
// without rendering, such as the interactive preview.
func (g *Generator) Resolve(dc model.DealContext) (*resolver.Checklist, error) {
	return g.resolver.Resolve(dc)
}

// Generate resolves the context and writes its workbook, returning the
// generated file path. Validation errors propagate to the caller unchanged.
func (g *Generator) Generate(dc model.DealContext) (string, error) {
	requestID := uuid.NewString()

	ck, err := g.resolver.Resolve(dc)
	if err != nil {
		return "", err
	}

	m, err := g.presenter.Present(ck)
	if err != nil {
		return "", eris.Wrap(err, "checklist: present")
	}

	path := filepath.Join(g.outDir, m.Filename)
	if err := workbook.Write(m, path); err != nil {
		return "", eris.Wrap(err, "checklist: render workbook")
	}

	zap.L().Info("checklist generated",
		zap.String("request_id", requestID),
		zap.String("target", dc.Target),
		zap.String("deal_type", string(dc.DealType)),
		zap.String("sector", string(dc.Sector)),
		zap.String("jurisdiction", string(dc.Jurisdiction)),
		zap.String("language", string(dc.Language)),
		zap.Int("documents", ck.Stats.Total),
		zap.String("path", path),
	)
	return path, nil
}
