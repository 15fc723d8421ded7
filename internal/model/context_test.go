package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/dd-checklist/internal/i18n"
)

func validContext() DealContext {
	return DealContext{
		Target:       "TechVida Lda",
		DealType:     DealTypeShareDeal,
		Sector:       SectorTechnology,
		Jurisdiction: JurisdictionPortugal,
		Language:     i18n.LanguageEN,
	}
}

func TestDealContextValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid context passes", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validContext().Validate())
	})

	t.Run("rejects bad enum values", func(t *testing.T) {
		t.Parallel()
		mutations := map[string]func(*DealContext){
			"empty target":      func(dc *DealContext) { dc.Target = "  " },
			"bad deal type":     func(dc *DealContext) { dc.DealType = "Joint Venture" },
			"bad sector":        func(dc *DealContext) { dc.Sector = "Agriculture" },
			"bad jurisdiction":  func(dc *DealContext) { dc.Jurisdiction = "France" },
			"bad language":      func(dc *DealContext) { dc.Language = "FR" },
			"lowercase variant": func(dc *DealContext) { dc.DealType = "share deal" },
		}
		for name, mutate := range mutations {
			t.Run(name, func(t *testing.T) {
				t.Parallel()
				dc := validContext()
				mutate(&dc)
				err := dc.Validate()
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidContext))
			})
		}
	})

	t.Run("rejects malformed custom documents", func(t *testing.T) {
		t.Parallel()
		dc := validContext()
		dc.Custom = []CustomDocument{{Category: "IP", Name: "", Required: true, Priority: "High"}}
		err := dc.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidCustomEntry))
		assert.False(t, errors.Is(err, ErrInvalidContext))
	})
}

func TestTranslationKeys(t *testing.T) {
	t.Parallel()

	for _, dt := range DealTypes() {
		assert.NotEmpty(t, dt.TranslationKey())
	}
	for _, s := range Sectors() {
		assert.NotEmpty(t, s.TranslationKey())
	}
	for _, j := range Jurisdictions() {
		assert.NotEmpty(t, j.TranslationKey())
	}
	assert.Empty(t, DealType("Joint Venture").TranslationKey())
}

func TestEnumSetSizes(t *testing.T) {
	t.Parallel()

	assert.Len(t, DealTypes(), 3)
	assert.Len(t, Sectors(), 6)
	assert.Len(t, Jurisdictions(), 3)
}
