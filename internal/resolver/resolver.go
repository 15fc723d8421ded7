// Package resolver computes the final document set for a deal: the union of
// the applicable rule-base subsets, merged with caller-supplied custom
// documents, localized into the requested language.
package resolver

import (
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/dd-checklist/internal/i18n"
	"github.com/sells-group/dd-checklist/internal/model"
	"github.com/sells-group/dd-checklist/internal/rulebase"
)

// Stats holds the derived counts for a resolved checklist. The per-category
// and per-priority sums always equal Total.
type Stats struct {
	Total      int
	ByCategory map[model.Category]int
	ByPriority map[model.Priority]int
}

// Checklist is the resolved output for one DealContext. Immutable after
// creation; discarded once the renderer has consumed it.
type Checklist struct {
	Context   model.DealContext
	Documents []model.DocumentEntry
	Stats     Stats
}

// Resolver merges rule-base subsets and custom entries into checklists. It
// only reads the injected rule base and translation table, so a single
// Resolver is safe for concurrent use.
type Resolver struct {
	rules        *rulebase.Base
	translations *i18n.Table
}

// New returns a Resolver over the given reference data.
func New(rules *rulebase.Base, translations *i18n.Table) *Resolver {
	return &Resolver{rules: rules, translations: translations}
}

// Resolve validates the context and produces its checklist. Ordering is
// category-major in canonical category order, rule-base insertion order
// within each category, custom entries at the end of their category group.
// Resolving the same context twice yields identical output.
func (r *Resolver) Resolve(dc model.DealContext) (*Checklist, error) {
	if err := dc.Validate(); err != nil {
		return nil, err
	}

	var templates []rulebase.Template
	templates = append(templates, r.rules.Core()...)
	templates = append(templates, r.rules.ForDealType(dc.DealType)...)
	templates = append(templates, r.rules.ForSector(dc.Sector)...)
	templates = append(templates, r.rules.ForJurisdiction(dc.Jurisdiction)...)

	groups := make(map[model.Category][]model.DocumentEntry)
	seen := make(map[model.Category]map[string]bool)
	for _, t := range templates {
		if seen[t.Category] == nil {
			seen[t.Category] = make(map[string]bool)
		}
		if seen[t.Category][t.Key] {
			continue
		}
		seen[t.Category][t.Key] = true

		name, err := r.translations.Translate(t.Key, dc.Language)
		if err != nil {
			return nil, eris.Wrap(err, "resolver: localize document name")
		}
		groups[t.Category] = append(groups[t.Category], model.DocumentEntry{
			Category: t.Category,
			Key:      t.Key,
			Name:     name,
			Required: t.Required,
			Priority: t.Priority,
			Source:   model.SourceBaseRule,
		})
	}

	for i, c := range dc.Custom {
		entry, err := c.Entry()
		if err != nil {
			return nil, eris.Wrapf(err, "resolver: custom document %d", i+1)
		}
		if idx := r.findByName(groups[entry.Category], entry.Name); idx >= 0 {
			// Same name in the same category overrides the existing entry
			// instead of adding a duplicate row.
			existing := &groups[entry.Category][idx]
			existing.Required = entry.Required
			existing.Priority = entry.Priority
			existing.Source = model.SourceCustom
			continue
		}
		groups[entry.Category] = append(groups[entry.Category], entry)
	}

	var docs []model.DocumentEntry
	for _, cat := range model.Categories() {
		docs = append(docs, groups[cat]...)
	}
	if len(docs) == 0 {
		return nil, eris.New("resolver: empty document set")
	}

	return &Checklist{
		Context:   dc,
		Documents: docs,
		Stats:     computeStats(docs),
	}, nil
}

// findByName matches case-insensitively against the displayed name and, for
// base-rule entries, against every language rendering of the entry's key, so
// matching is independent of the context language.
func (r *Resolver) findByName(entries []model.DocumentEntry, name string) int {
	for i, e := range entries {
		if strings.EqualFold(e.Name, name) {
			return i
		}
		if e.Key == "" {
			continue
		}
		for _, lang := range i18n.Languages() {
			text, err := r.translations.Translate(e.Key, lang)
			if err == nil && strings.EqualFold(text, name) {
				return i
			}
		}
	}
	return -1
}

func computeStats(docs []model.DocumentEntry) Stats {
	s := Stats{
		Total:      len(docs),
		ByCategory: make(map[model.Category]int),
		ByPriority: make(map[model.Priority]int),
	}
	for _, d := range docs {
		s.ByCategory[d.Category]++
		s.ByPriority[d.Priority]++
	}
	return s
}
