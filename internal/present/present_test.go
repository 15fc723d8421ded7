package present

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/dd-checklist/internal/i18n"
	"github.com/sells-group/dd-checklist/internal/model"
	"github.com/sells-group/dd-checklist/internal/resolver"
	"github.com/sells-group/dd-checklist/internal/rulebase"
)

var fixedNow = time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC)

func resolve(t *testing.T, lang i18n.Language) *resolver.Checklist {
	t.Helper()
	r := resolver.New(rulebase.New(), i18n.NewTable())
	ck, err := r.Resolve(model.DealContext{
		Target:       "TechVida Lda",
		DealType:     model.DealTypeShareDeal,
		Sector:       model.SectorTechnology,
		Jurisdiction: model.JurisdictionPortugal,
		Language:     lang,
	})
	require.NoError(t, err)
	return ck
}

func TestPresentEnglish(t *testing.T) {
	t.Parallel()
	p := New(i18n.NewTable(), func() time.Time { return fixedNow })

	m, err := p.Present(resolve(t, i18n.LanguageEN))
	require.NoError(t, err)

	assert.Equal(t, "Checklist", m.ChecklistSheet)
	assert.Equal(t, "Summary", m.SummarySheet)
	assert.Equal(t, "Instructions", m.InstructionsSheet)
	assert.Equal(t, []string{
		"Category", "Document Name", "Required", "Priority",
		"Received Date", "Status", "Responsible", "Comments",
	}, m.Headers)
	assert.Equal(t, []string{"Pending", "Received", "Reviewed", "Missing"}, m.StatusOptions)
	assert.Equal(t, []string{"High", "Medium", "Low"}, m.PriorityOptions)
	assert.Equal(t, "Pending", m.DefaultStatus)
	assert.Equal(t, "TechVida_Lda_DD_Checklist_20260828.xlsx", m.Filename)

	for _, row := range m.Rows {
		assert.Contains(t, []string{"Yes", "No"}, row.Required)
		assert.Equal(t, "Pending", row.Status)
		assert.Empty(t, row.ReceivedDate)
		assert.Empty(t, row.Responsible)
		assert.Empty(t, row.Comments)
	}
}

func TestPresentPortuguese(t *testing.T) {
	t.Parallel()
	p := New(i18n.NewTable(), func() time.Time { return fixedNow })

	m, err := p.Present(resolve(t, i18n.LanguagePT))
	require.NoError(t, err)

	assert.Equal(t, "Resumo", m.SummarySheet)
	assert.Equal(t, "Instruções", m.InstructionsSheet)
	assert.Equal(t, "Pendente", m.DefaultStatus)
	assert.Equal(t, "Categoria", m.Headers[0])

	require.NotEmpty(t, m.Rows)
	for _, row := range m.Rows {
		assert.Contains(t, []string{"Sim", "Não"}, row.Required)
	}

	// Axis values are localized in the summary metadata; the target is
	// displayed verbatim.
	assert.Equal(t, "TechVida Lda", m.Summary.Meta[0].Value)
	assert.Equal(t, "Tecnologia", m.Summary.Meta[2].Value)
	assert.Equal(t, "Portugal", m.Summary.Meta[3].Value)
}

func TestPresentSummary(t *testing.T) {
	t.Parallel()
	p := New(i18n.NewTable(), func() time.Time { return fixedNow })

	ck := resolve(t, i18n.LanguageEN)
	m, err := p.Present(ck)
	require.NoError(t, err)

	assert.Equal(t, "Due Diligence — Summary", m.Summary.Title)
	require.Len(t, m.Summary.Meta, 6)
	assert.Equal(t, "2026-08-28 10:30", m.Summary.Meta[4].Value)
	assert.Equal(t, "49", m.Summary.Meta[5].Value)

	catTotal := 0
	for _, row := range m.Summary.ByCategory {
		catTotal += row.Count
	}
	prioTotal := 0
	for _, row := range m.Summary.ByPriority {
		prioTotal += row.Count
		assert.True(t, row.Priority.Valid())
	}
	assert.Equal(t, ck.Stats.Total, catTotal)
	assert.Equal(t, ck.Stats.Total, prioTotal)
	assert.Len(t, m.Rows, ck.Stats.Total)
}

func TestPresentInstructions(t *testing.T) {
	t.Parallel()
	p := New(i18n.NewTable(), func() time.Time { return fixedNow })

	m, err := p.Present(resolve(t, i18n.LanguageEN))
	require.NoError(t, err)

	ins := m.Instructions
	assert.Equal(t, "Instructions", ins.Title)
	assert.Len(t, ins.HowToUseItems, 6)
	assert.Len(t, ins.StatusDefs, 4)
	assert.Equal(t, "Pending", ins.StatusDefs[0].Label)
	assert.Len(t, ins.Timeline, 6)
	assert.Equal(t, "Week 1-2", ins.Timeline[0].Label)
	assert.Len(t, ins.ContactsHeaders, 5)
	assert.Len(t, ins.ContactsRoles, 6)
}

func TestFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target string
		want   string
	}{
		{"plain", "TechVida Lda", "TechVida_Lda_DD_Checklist_20260828.xlsx"},
		{"accents kept", "Farma Saúde SA", "Farma_Saúde_SA_DD_Checklist_20260828.xlsx"},
		{"unsafe characters replaced", "A/B: C?", "A_B__C__DD_Checklist_20260828.xlsx"},
		{"hyphen kept", "Acme-Corp", "Acme-Corp_DD_Checklist_20260828.xlsx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Filename(tt.target, fixedNow))
		})
	}
}
