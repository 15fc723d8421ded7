package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCustomDocuments(t *testing.T) {
	t.Parallel()

	t.Run("parses yaml list", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "custom.yaml")
		content := `
- category: IP
  name: Patent Portfolio Review
  required: true
  priority: High
- category: Legal
  name: Escrow side letter
  required: false
  priority: Low
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		docs, err := loadCustomDocuments(path)
		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, "IP", docs[0].Category)
		assert.Equal(t, "Patent Portfolio Review", docs[0].Name)
		assert.True(t, docs[0].Required)
		assert.Equal(t, "High", docs[0].Priority)
		assert.False(t, docs[1].Required)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := loadCustomDocuments(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o644))
		_, err := loadCustomDocuments(path)
		assert.Error(t, err)
	})
}
