package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategories(t *testing.T) {
	t.Parallel()

	cats := Categories()
	assert.Len(t, cats, 8)
	assert.Equal(t, CategoryLegal, cats[0], "Legal leads the canonical order")
	assert.Equal(t, CategoryCompliance, cats[len(cats)-1])

	for _, c := range cats {
		assert.True(t, c.Valid())
	}
	assert.False(t, Category("Marketing").Valid())
	assert.False(t, Category("").Valid())
}

func TestPriorityValid(t *testing.T) {
	t.Parallel()

	for _, p := range Priorities() {
		assert.True(t, p.Valid())
	}
	assert.False(t, Priority("Urgent").Valid())
	assert.False(t, Priority("high").Valid(), "priority values are case-sensitive")
}

func TestStatusKeys(t *testing.T) {
	t.Parallel()

	for _, s := range Statuses() {
		assert.NotEmpty(t, s.TranslationKey())
		assert.NotEmpty(t, s.DefinitionKey())
	}
	assert.Empty(t, Status("Archived").TranslationKey())
}
