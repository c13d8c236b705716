package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/deeplmock/internal/testutil"
)

func setConfigFile(t *testing.T, path string) {
	t.Helper()

	previous := configFile
	configFile = path
	t.Cleanup(func() {
		configFile = previous
	})
}

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		debugMode bool
		wantLevel slog.Level
	}{
		{
			name:      "debug mode enabled",
			debugMode: true,
			wantLevel: slog.LevelDebug,
		},
		{
			name:      "debug mode disabled",
			debugMode: false,
			wantLevel: slog.LevelInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupLogger(tt.debugMode)
			logger := slog.Default()
			assert.NotNil(t, logger)
			assert.Equal(t, tt.wantLevel <= slog.LevelDebug, logger.Enabled(nil, slog.LevelDebug))
		})
	}
}

func TestLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := testutil.SetupTestConfig(t, tmpDir)
	setConfigFile(t, cfgPath)

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORS.AllowedOrigins)
	assert.NotEmpty(t, cfg.Seed.TranslationsFile)
}

func TestNewServeCommand(t *testing.T) {
	cmd := newServeCommand()

	assert.Equal(t, "serve", cmd.Use)
	assert.Equal(t, "Run the mock translation API server", cmd.Short)
	assert.NotNil(t, cmd.RunE)
}

func TestNewCheckCommand(t *testing.T) {
	cmd := newCheckCommand()

	assert.Equal(t, "check", cmd.Use)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Flags().Lookup("base-url"))
	assert.NotNil(t, cmd.Flags().Lookup("auth-key"))
	assert.NotNil(t, cmd.Flags().Lookup("tier"))
}
