package workbook

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/dd-checklist/internal/i18n"
	"github.com/sells-group/dd-checklist/internal/model"
	"github.com/sells-group/dd-checklist/internal/present"
	"github.com/sells-group/dd-checklist/internal/resolver"
	"github.com/sells-group/dd-checklist/internal/rulebase"
)

func buildModel(t *testing.T, lang i18n.Language) *present.Model {
	t.Helper()
	table := i18n.NewTable()
	r := resolver.New(rulebase.New(), table)
	ck, err := r.Resolve(model.DealContext{
		Target:       "TechVida Lda",
		DealType:     model.DealTypeShareDeal,
		Sector:       model.SectorTechnology,
		Jurisdiction: model.JurisdictionPortugal,
		Language:     lang,
	})
	require.NoError(t, err)

	now := func() time.Time { return time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC) }
	m, err := present.New(table, now).Present(ck)
	require.NoError(t, err)
	return m
}

func TestWrite(t *testing.T) {
	t.Parallel()
	m := buildModel(t, i18n.LanguageEN)

	path := filepath.Join(t.TempDir(), m.Filename)
	require.NoError(t, Write(m, path))

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	require.Len(t, f.Sheets, 3)
	assert.Equal(t, "Checklist", f.Sheets[0].Name)
	assert.Equal(t, "Summary", f.Sheets[1].Name)
	assert.Equal(t, "Instructions", f.Sheets[2].Name)

	checklist := f.Sheets[0]
	require.Len(t, checklist.Rows, len(m.Rows)+1)

	header := checklist.Rows[0]
	require.Len(t, header.Cells, len(m.Headers))
	for i, want := range m.Headers {
		assert.Equal(t, want, header.Cells[i].String())
	}

	first := checklist.Rows[1]
	require.Len(t, first.Cells, 8)
	assert.Equal(t, m.Rows[0].Category, first.Cells[0].String())
	assert.Equal(t, m.Rows[0].Name, first.Cells[1].String())
	assert.Equal(t, "Pending", first.Cells[5].String())
	assert.Empty(t, first.Cells[4].String(), "received date starts blank")
}

func TestWriteLocalizedSheets(t *testing.T) {
	t.Parallel()
	m := buildModel(t, i18n.LanguagePT)

	path := filepath.Join(t.TempDir(), "pt.xlsx")
	require.NoError(t, Write(m, path))

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	require.Len(t, f.Sheets, 3)
	assert.Equal(t, "Resumo", f.Sheets[1].Name)
	assert.Equal(t, "Instruções", f.Sheets[2].Name)

	summary := f.Sheets[1]
	require.NotEmpty(t, summary.Rows)
	assert.Equal(t, "Due Diligence — Resumo", summary.Rows[0].Cells[0].String())
}

func TestWriteSummaryCounts(t *testing.T) {
	t.Parallel()
	m := buildModel(t, i18n.LanguageEN)

	path := filepath.Join(t.TempDir(), "counts.xlsx")
	require.NoError(t, Write(m, path))

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)

	// Every category and priority breakdown label lands on the summary sheet.
	content := make(map[string]bool)
	for _, row := range f.Sheets[1].Rows {
		for _, cell := range row.Cells {
			content[cell.String()] = true
		}
	}
	for _, row := range m.Summary.ByCategory {
		assert.True(t, content[row.Label], "missing category row %s", row.Label)
	}
	for _, row := range m.Summary.ByPriority {
		assert.True(t, content[row.Label], "missing priority row %s", row.Label)
	}
	assert.True(t, content["Total Documents"])
}
