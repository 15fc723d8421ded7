// Package present maps a resolved checklist into the language-neutral model
// the workbook renderer consumes. The renderer never inspects the deal
// context or the rule base directly.
package present

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/sells-group/dd-checklist/internal/i18n"
	"github.com/sells-group/dd-checklist/internal/model"
	"github.com/sells-group/dd-checklist/internal/resolver"
)

// Row is one checklist line ready for rendering. Tracking fields (received
// date, responsible, comments) start blank.
type Row struct {
	Category     string
	Name         string
	Required     string
	Priority     model.Priority
	ReceivedDate string
	Status       string
	Responsible  string
	Comments     string
	Source       model.Source
}

// LabelValue is a localized label with its display value.
type LabelValue struct {
	Label string
	Value string
}

// CountRow is one line of a summary breakdown table.
type CountRow struct {
	Label    string
	Count    int
	Priority model.Priority // set for priority breakdown rows, for fills
}

// Summary is the content of the summary sheet.
type Summary struct {
	Title           string
	Meta            []LabelValue
	ByCategoryTitle string
	ByPriorityTitle string
	CategoryHeader  string
	PriorityHeader  string
	CountHeader     string
	ByCategory      []CountRow
	ByPriority      []CountRow
}

// Instructions is the content of the instructions sheet.
type Instructions struct {
	Title            string
	HowToUseTitle    string
	HowToUseItems    []string
	StatusDefsTitle  string
	StatusHeader     string
	DefinitionHeader string
	StatusDefs       []LabelValue
	TimelineTitle    string
	PhaseHeader      string
	ActivitiesHeader string
	Timeline         []LabelValue
	ContactsTitle    string
	ContactsHeaders  []string
	ContactsRoles    []string
}

// Model is the fully localized bundle handed to the workbook renderer.
type Model struct {
	ChecklistSheet    string
	SummarySheet      string
	InstructionsSheet string

	Headers         []string
	Rows            []Row
	StatusOptions   []string
	PriorityOptions []string
	DefaultStatus   string

	Summary      Summary
	Instructions Instructions

	Filename string
}

// Presenter builds presentation models. The clock is injected so filename
// and timestamp derivation stay deterministic under test.
type Presenter struct {
	translations *i18n.Table
	now          func() time.Time
}

// New returns a Presenter. A nil now falls back to time.Now.
func New(translations *i18n.Table, now func() time.Time) *Presenter {
	if now == nil {
		now = time.Now
	}
	return &Presenter{translations: translations, now: now}
}

// Present converts a resolved checklist into the renderer model. Any missing
// translation surfaces as an error; it is never silently defaulted.
func (p *Presenter) Present(ck *resolver.Checklist) (*Model, error) {
	lang := ck.Context.Language
	tr := func(key string) (string, error) {
		return p.translations.Translate(key, lang)
	}

	m := &Model{PriorityOptions: priorityOptions()}

	var err error
	if m.ChecklistSheet, err = tr(i18n.KeySheetChecklist); err != nil {
		return nil, err
	}
	if m.SummarySheet, err = tr(i18n.KeySheetSummary); err != nil {
		return nil, err
	}
	if m.InstructionsSheet, err = tr(i18n.KeySheetInstructions); err != nil {
		return nil, err
	}

	for _, key := range i18n.HeaderKeys() {
		h, err := tr(key)
		if err != nil {
			return nil, err
		}
		m.Headers = append(m.Headers, h)
	}

	for _, st := range model.Statuses() {
		label, err := tr(st.TranslationKey())
		if err != nil {
			return nil, err
		}
		m.StatusOptions = append(m.StatusOptions, label)
		if st == model.StatusPending {
			m.DefaultStatus = label
		}
	}

	yes, err := tr(i18n.KeyValueYes)
	if err != nil {
		return nil, err
	}
	no, err := tr(i18n.KeyValueNo)
	if err != nil {
		return nil, err
	}
	for _, d := range ck.Documents {
		required := no
		if d.Required {
			required = yes
		}
		m.Rows = append(m.Rows, Row{
			Category: string(d.Category),
			Name:     d.Name,
			Required: required,
			Priority: d.Priority,
			Status:   m.DefaultStatus,
			Source:   d.Source,
		})
	}

	if m.Summary, err = p.buildSummary(ck, tr); err != nil {
		return nil, err
	}
	if m.Instructions, err = p.buildInstructions(tr); err != nil {
		return nil, err
	}

	m.Filename = Filename(ck.Context.Target, p.now())
	return m, nil
}

func (p *Presenter) buildSummary(ck *resolver.Checklist, tr func(string) (string, error)) (Summary, error) {
	var s Summary
	var err error
	if s.Title, err = tr(i18n.KeySummaryTitle); err != nil {
		return s, err
	}

	metaKeys := []struct {
		labelKey string
		valueKey string
		literal  string
	}{
		{i18n.KeySummaryTarget, "", ck.Context.Target},
		{i18n.KeySummaryDealType, ck.Context.DealType.TranslationKey(), ""},
		{i18n.KeySummarySector, ck.Context.Sector.TranslationKey(), ""},
		{i18n.KeySummaryJurisdiction, ck.Context.Jurisdiction.TranslationKey(), ""},
		{i18n.KeySummaryDate, "", p.now().Format("2006-01-02 15:04")},
		{i18n.KeySummaryTotalDocs, "", fmt.Sprintf("%d", ck.Stats.Total)},
	}
	for _, mk := range metaKeys {
		label, err := tr(mk.labelKey)
		if err != nil {
			return s, err
		}
		value := mk.literal
		if mk.valueKey != "" {
			if value, err = tr(mk.valueKey); err != nil {
				return s, err
			}
		}
		s.Meta = append(s.Meta, LabelValue{Label: label, Value: value})
	}

	if s.ByCategoryTitle, err = tr(i18n.KeySummaryByCategory); err != nil {
		return s, err
	}
	if s.ByPriorityTitle, err = tr(i18n.KeySummaryByPriority); err != nil {
		return s, err
	}
	if s.CategoryHeader, err = tr(i18n.KeySummaryCategory); err != nil {
		return s, err
	}
	if s.PriorityHeader, err = tr(i18n.KeySummaryPriority); err != nil {
		return s, err
	}
	if s.CountHeader, err = tr(i18n.KeySummaryCount); err != nil {
		return s, err
	}

	for _, cat := range model.Categories() {
		if n := ck.Stats.ByCategory[cat]; n > 0 {
			s.ByCategory = append(s.ByCategory, CountRow{Label: string(cat), Count: n})
		}
	}
	for _, prio := range model.Priorities() {
		if n := ck.Stats.ByPriority[prio]; n > 0 {
			s.ByPriority = append(s.ByPriority, CountRow{Label: string(prio), Count: n, Priority: prio})
		}
	}
	return s, nil
}

func (p *Presenter) buildInstructions(tr func(string) (string, error)) (Instructions, error) {
	var ins Instructions
	var err error
	if ins.Title, err = tr(i18n.KeyInstructionsTitle); err != nil {
		return ins, err
	}
	if ins.HowToUseTitle, err = tr(i18n.KeyHowToUse); err != nil {
		return ins, err
	}
	for _, key := range i18n.HowToUseKeys() {
		item, err := tr(key)
		if err != nil {
			return ins, err
		}
		ins.HowToUseItems = append(ins.HowToUseItems, item)
	}

	if ins.StatusDefsTitle, err = tr(i18n.KeyStatusDefinitions); err != nil {
		return ins, err
	}
	if ins.StatusHeader, err = tr(i18n.KeyStatusHeader); err != nil {
		return ins, err
	}
	if ins.DefinitionHeader, err = tr(i18n.KeyDefinitionHeader); err != nil {
		return ins, err
	}
	for _, st := range model.Statuses() {
		label, err := tr(st.TranslationKey())
		if err != nil {
			return ins, err
		}
		def, err := tr(st.DefinitionKey())
		if err != nil {
			return ins, err
		}
		ins.StatusDefs = append(ins.StatusDefs, LabelValue{Label: label, Value: def})
	}

	if ins.TimelineTitle, err = tr(i18n.KeyTimelineTitle); err != nil {
		return ins, err
	}
	if ins.PhaseHeader, err = tr(i18n.KeyTimelinePhaseHeader); err != nil {
		return ins, err
	}
	if ins.ActivitiesHeader, err = tr(i18n.KeyTimelineActivities); err != nil {
		return ins, err
	}
	for _, pair := range i18n.TimelineKeys() {
		phase, err := tr(pair[0])
		if err != nil {
			return ins, err
		}
		activities, err := tr(pair[1])
		if err != nil {
			return ins, err
		}
		ins.Timeline = append(ins.Timeline, LabelValue{Label: phase, Value: activities})
	}

	if ins.ContactsTitle, err = tr(i18n.KeyContactsTitle); err != nil {
		return ins, err
	}
	for _, key := range i18n.ContactHeaderKeys() {
		h, err := tr(key)
		if err != nil {
			return ins, err
		}
		ins.ContactsHeaders = append(ins.ContactsHeaders, h)
	}
	for _, key := range i18n.ContactRoleKeys() {
		role, err := tr(key)
		if err != nil {
			return ins, err
		}
		ins.ContactsRoles = append(ins.ContactsRoles, role)
	}
	return ins, nil
}

func priorityOptions() []string {
	out := make([]string, 0, len(model.Priorities()))
	for _, p := range model.Priorities() {
		out = append(out, string(p))
	}
	return out
}

// Filename derives the workbook file name from the target company and
// generation date: {sanitized}_DD_Checklist_{YYYYMMDD}.xlsx. Characters
// unsafe for filenames become underscores.
func Filename(target string, now time.Time) string {
	sanitized := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '_' || r == '-' {
			return r
		}
		return '_'
	}, target)
	sanitized = strings.TrimSpace(sanitized)
	sanitized = strings.ReplaceAll(sanitized, " ", "_")
	return fmt.Sprintf("%s_DD_Checklist_%s.xlsx", sanitized, now.Format("20060102"))
}
