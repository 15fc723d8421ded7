package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	expected := []string{"generate", "interactive", "selftest"}
	for _, name := range expected {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "dd-checklist", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestGenerateCommand_Flags(t *testing.T) {
	for _, flagName := range []string{"target", "deal", "sector", "jurisdiction", "lang", "custom", "out"} {
		flag := generateCmd.Flags().Lookup(flagName)
		require.NotNil(t, flag, "generate should have --%s flag", flagName)
	}

	assert.Equal(t, "Share Deal", generateCmd.Flags().Lookup("deal").DefValue)
	assert.Equal(t, "Technology", generateCmd.Flags().Lookup("sector").DefValue)
	assert.Equal(t, "Portugal", generateCmd.Flags().Lookup("jurisdiction").DefValue)
}

func TestSelftestCommand_Fixtures(t *testing.T) {
	require.Len(t, selftestContexts, 2)

	en, pt := selftestContexts[0], selftestContexts[1]
	assert.Equal(t, "Technology", string(en.Sector))
	assert.Equal(t, "Share Deal", string(en.DealType))
	assert.Equal(t, "EN", string(en.Language))
	assert.Equal(t, "Healthcare", string(pt.Sector))
	assert.Equal(t, "Merger", string(pt.DealType))
	assert.Equal(t, "PT", string(pt.Language))

	for _, dc := range selftestContexts {
		dc.Custom = nil
		assert.NoError(t, dc.Validate())
	}
}
