package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/deal-atlas/pkg/models/domain"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Defaults(t *testing.T) {
	s, err := LoadSettings("", nil, nil)

	require.NoError(t, err)
	assert.Equal(t, "info", s.LogLevel)
	assert.False(t, s.Summary)
	assert.Empty(t, s.Categories)
	assert.Equal(t, DiscountRange{Min: 10, Max: 40}, s.Discount)
}

func TestLoadSettings_ValidYAML_PopulatesAllFields(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "deal-atlas.yaml")
	content := `log_level: debug
summary: true
discount:
  min: 5
  max: 55.5
categories:
  - name: snacks
    keywords: [chips, pretzels]
  - name: meat
    keywords: [chicken]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	// When
	s, err := LoadSettings(path, nil, nil)

	// Then
	require.NoError(t, err)
	assert.Equal(t, "debug", s.LogLevel)
	assert.True(t, s.Summary)
	assert.Equal(t, DiscountRange{Min: 5, Max: 55.5}, s.Discount)
	assert.Equal(t, []domain.CategoryKeywords{
		{Name: "snacks", Keywords: []string{"chips", "pretzels"}},
		{Name: "meat", Keywords: []string{"chicken"}},
	}, s.Categories)
}

func TestLoadSettings_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deal-atlas.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\n"), 0o644))
	t.Setenv("DEAL_ATLAS_LOG_LEVEL", "warn")
	t.Setenv("DEAL_ATLAS_DISCOUNT_MAX", "60")

	s, err := LoadSettings(path, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, "warn", s.LogLevel)
	assert.Equal(t, 60.0, s.Discount.Max)
}

func TestLoadSettings_ChangedFlagWins(t *testing.T) {
	t.Setenv("DEAL_ATLAS_LOG_LEVEL", "warn")
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log-level", "info", "")
	flags.Bool("summary", false, "")
	require.NoError(t, flags.Parse([]string{"--log-level", "error"}))

	s, err := LoadSettings("", flags, map[string]string{
		KeyLogLevel: "log-level",
		KeySummary:  "summary",
	})

	require.NoError(t, err)
	assert.Equal(t, "error", s.LogLevel)
	assert.False(t, s.Summary)
}

func TestLoadSettings_MissingFile_ReturnsError(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "missing.yaml"), nil, nil)

	assert.Error(t, err)
}
