// Package rulebase holds the static reference data deciding which document
// requests apply to a deal. The applicable set for a request is the union of
// the always-on core set and the three axis subsets (deal type, sector,
// jurisdiction). The axes are orthogonal and additive.
package rulebase

import (
	"slices"

	"github.com/sells-group/dd-checklist/internal/model"
)

// Template is one document request before localization. It carries a
// translation key, not final text.
type Template struct {
	Category model.Category
	Key      string
	Required bool
	Priority model.Priority
}

// Base is the process-wide rule base. Loaded once at startup and read-only
// afterwards, so concurrent resolution needs no locking.
type Base struct {
	core           []Template
	byDealType     map[model.DealType][]Template
	bySector       map[model.Sector][]Template
	byJurisdiction map[model.Jurisdiction][]Template
}

// New builds the rule base from the static tables below.
func New() *Base {
	return &Base{
		core:           coreTemplates,
		byDealType:     dealTypeTemplates,
		bySector:       sectorTemplates,
		byJurisdiction: jurisdictionTemplates,
	}
}

// Core returns the documents requested on every deal regardless of axes.
func (b *Base) Core() []Template {
	return slices.Clone(b.core)
}

// ForDealType returns the deal-type-specific document templates.
func (b *Base) ForDealType(dt model.DealType) []Template {
	return slices.Clone(b.byDealType[dt])
}

// ForSector returns the sector-specific document templates.
func (b *Base) ForSector(s model.Sector) []Template {
	return slices.Clone(b.bySector[s])
}

// ForJurisdiction returns the jurisdiction-specific document templates.
func (b *Base) ForJurisdiction(j model.Jurisdiction) []Template {
	return slices.Clone(b.byJurisdiction[j])
}

// All returns every template across the core set and all axis subsets.
// Used by consistency tests to verify translation coverage.
func (b *Base) All() []Template {
	out := slices.Clone(b.core)
	for _, dt := range model.DealTypes() {
		out = append(out, b.byDealType[dt]...)
	}
	for _, s := range model.Sectors() {
		out = append(out, b.bySector[s]...)
	}
	for _, j := range model.Jurisdictions() {
		out = append(out, b.byJurisdiction[j]...)
	}
	return out
}
