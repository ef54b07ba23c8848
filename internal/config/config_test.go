package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/flightdeck/internal/common"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(t *testing.T) *viper.Viper {
	t.Helper()
	v := viper.New()
	SetDefaults(v)
	return v
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(newViper(t))
	require.NoError(t, err)

	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, 256, cfg.LLM.MaxTokens)
	assert.Equal(t, 20, cfg.Search.PageSize)
	assert.Equal(t, 100, cfg.Search.AILimit)
	assert.Equal(t, "2025-10-09", cfg.Search.FallbackDate)
	assert.Len(t, cfg.Search.AvailableDates, 5)
	assert.Equal(t, 5*time.Minute, cfg.Search.CacheTTL)
	assert.False(t, strings.HasPrefix(cfg.Database.Path, "~"))
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFromYAML(t *testing.T) {
	v := newViper(t)
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(`
llm:
  provider: OpenAI
  model: gpt-4o-mini
search:
  page_size: 50
  fallback_date: "2025-10-03"
  cache_ttl: 1m
database:
  path: ":memory:"
logging:
  level: debug
  format: json
`)))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, 50, cfg.Search.PageSize)
	assert.Equal(t, "2025-10-03", cfg.Search.FallbackDate)
	assert.Equal(t, time.Minute, cfg.Search.CacheTTL)
	assert.Equal(t, ":memory:", cfg.Database.Path)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   any
		wantErr error
	}{
		{"empty search url", KeySearchURL, "", common.ErrMissingConfig},
		{"zero page size", KeySearchPageSize, 0, common.ErrInvalidConfig},
		{"negative ai limit", KeySearchAILimit, -1, common.ErrInvalidConfig},
		{"bad fallback date", KeySearchFallbackDate, "09/10/2025", common.ErrInvalidConfig},
		{"bad log level", KeyLoggingLevel, "loud", common.ErrInvalidConfig},
		{"bad log format", KeyLoggingFormat, "xml", common.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newViper(t)
			v.Set(tt.key, tt.value)
			_, err := Load(v)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("FLIGHTDECK_TEST_DIR", "/tmp/fd")

	assert.Equal(t, filepath.Join(home, "data/db.sqlite"), ExpandPath("~/data/db.sqlite"))
	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, "/tmp/fd/db.sqlite", ExpandPath("$FLIGHTDECK_TEST_DIR/db.sqlite"))
	assert.Equal(t, ":memory:", ExpandPath(":memory:"))
	assert.Equal(t, "", ExpandPath(""))
}
