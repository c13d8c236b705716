// Package testutil provides shared test helpers for creating config file fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupTestConfig creates a config file with a seed translations file for
// testing. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	seedFile := filepath.Join(tmpDir, "translations.yaml")
	require.NoError(t, os.WriteFile(seedFile, []byte(`- source_lang: en
  target_lang: ja
  request: Good morning
  response: おはよう
`), 0644))

	configContent := fmt.Sprintf(`server:
  port: 8000
  cors:
    allowed_origins:
      - http://localhost:3000
usage:
  free_character_limit: 500000
  pro_character_limit: 1000000000000
  pro_count_multiplier: 10
seed:
  translations_file: %s
`, seedFile)

	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	return configPath
}
