package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func load(t *testing.T, configFile string) (*Config, error) {
	t.Helper()
	loader, err := NewConfigLoader(configFile)
	require.NoError(t, err)
	return loader.Load()
}

func TestConfigLoader_Load_Defaults(t *testing.T) {
	cfg, err := load(t, writeConfigFile(t, ""))
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, 0, cfg.Server.RateLimitEvery)
	assert.Empty(t, cfg.Server.CORS.AllowedOrigins)
	assert.Equal(t, int64(500_000), cfg.Usage.FreeCharacterLimit)
	assert.Equal(t, int64(1_000_000_000_000), cfg.Usage.ProCharacterLimit)
	assert.Equal(t, int64(10), cfg.Usage.ProCountMultiplier)
	assert.Empty(t, cfg.Seed.TranslationsFile)
}

func TestConfigLoader_Load(t *testing.T) {
	seedFile := filepath.Join(t.TempDir(), "translations.yaml")
	require.NoError(t, os.WriteFile(seedFile, []byte("[]\n"), 0644))

	cfg, err := load(t, writeConfigFile(t, `
server:
  port: 9000
  rate_limit_every: 3
  cors:
    allowed_origins:
      - http://localhost:5173
usage:
  free_character_limit: 1000
  pro_character_limit: 2000
  pro_count_multiplier: 5
seed:
  translations_file: `+seedFile+`
`))
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 3, cfg.Server.RateLimitEvery)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Server.CORS.AllowedOrigins)
	assert.Equal(t, int64(1000), cfg.Usage.FreeCharacterLimit)
	assert.Equal(t, int64(2000), cfg.Usage.ProCharacterLimit)
	assert.Equal(t, int64(5), cfg.Usage.ProCountMultiplier)
	assert.Equal(t, seedFile, cfg.Seed.TranslationsFile)
}

func TestConfigLoader_Load_ValidationErrors(t *testing.T) {
	tests := []struct {
		name        string
		contents    string
		wantMessage string
	}{
		{
			name: "invalid port",
			contents: `
server:
  port: -1
`,
			wantMessage: "port",
		},
		{
			name: "negative rate limit",
			contents: `
server:
  rate_limit_every: -5
`,
			wantMessage: "rate_limit_every",
		},
		{
			name: "missing seed file",
			contents: `
seed:
  translations_file: /does/not/exist.yaml
`,
			wantMessage: "must be an existing and readable file",
		},
		{
			name: "zero free character limit",
			contents: `
usage:
  free_character_limit: 0
`,
			wantMessage: "free_character_limit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(t, writeConfigFile(t, tt.contents))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
			assert.Contains(t, err.Error(), tt.wantMessage)
		})
	}
}

func TestConfigLoader_Load_MissingConfigFileUsesDefaults(t *testing.T) {
	// No explicit config file and none in the search path: defaults apply.
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	cfg, err := load(t, "")
	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.Server.Port)
}

func TestConfigLoader_Load_UnreadableConfigFile(t *testing.T) {
	path := writeConfigFile(t, "server: [broken")
	_, err := load(t, path)
	assert.Error(t, err)
}
