package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomDocumentEntry(t *testing.T) {
	t.Parallel()

	t.Run("valid tuple converts", func(t *testing.T) {
		t.Parallel()
		entry, err := CustomDocument{
			Category: "IP",
			Name:     "Patent Portfolio Review",
			Required: true,
			Priority: "High",
		}.Entry()
		require.NoError(t, err)
		assert.Equal(t, CategoryIP, entry.Category)
		assert.Equal(t, "Patent Portfolio Review", entry.Name)
		assert.True(t, entry.Required)
		assert.Equal(t, PriorityHigh, entry.Priority)
		assert.Equal(t, SourceCustom, entry.Source)
		assert.Empty(t, entry.Key, "custom entries carry no translation key")
	})

	t.Run("trims whitespace", func(t *testing.T) {
		t.Parallel()
		entry, err := CustomDocument{Category: " Legal ", Name: "  Escrow Agreement ", Priority: " Low "}.Entry()
		require.NoError(t, err)
		assert.Equal(t, CategoryLegal, entry.Category)
		assert.Equal(t, "Escrow Agreement", entry.Name)
		assert.Equal(t, PriorityLow, entry.Priority)
	})

	t.Run("rejects malformed tuples", func(t *testing.T) {
		t.Parallel()
		bad := []CustomDocument{
			{Category: "IP", Name: "", Priority: "High"},
			{Category: "IP", Name: "   ", Priority: "High"},
			{Category: "Marketing", Name: "Brand Study", Priority: "High"},
			{Category: "IP", Name: "Brand Study", Priority: "Critical"},
			{Category: "", Name: "Brand Study", Priority: "High"},
		}
		for _, c := range bad {
			_, err := c.Entry()
			require.Error(t, err, "%+v", c)
			assert.True(t, errors.Is(err, ErrInvalidCustomEntry))
		}
	})
}
