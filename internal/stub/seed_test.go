package stub

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeedFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "translations.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadTranslationTable(t *testing.T) {
	t.Run("loads and normalizes entries", func(t *testing.T) {
		path := writeSeedFile(t, `
- source_lang: EN
  target_lang: JA
  request: Good morning
  response: おはよう
- source_lang: ja
  target_lang: en
  request: おはよう
  response: Good morning
`)

		entries, err := LoadTranslationTable(path)
		require.NoError(t, err)
		assert.Equal(t, []TranslationEntry{
			{SourceLang: "en", TargetLang: "ja", Request: "Good morning", Response: "おはよう"},
			{SourceLang: "ja", TargetLang: "en", Request: "おはよう", Response: "Good morning"},
		}, entries)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadTranslationTable(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeSeedFile(t, "not: [valid")
		_, err := LoadTranslationTable(path)
		assert.Error(t, err)
	})

	t.Run("incomplete entry", func(t *testing.T) {
		path := writeSeedFile(t, `
- source_lang: en
  target_lang: ja
  request: Good morning
`)
		_, err := LoadTranslationTable(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "required")
	})

	t.Run("seeded entries are served by the translator", func(t *testing.T) {
		path := writeSeedFile(t, `
- source_lang: en
  target_lang: ja
  request: Good morning
  response: おはよう
`)
		entries, err := LoadTranslationTable(path)
		require.NoError(t, err)

		counter := NewCharacterCounter()
		translator := NewTranslator(append(DefaultTranslationTable(), entries...), counter)
		assert.Equal(t, []string{"おはよう"}, translator.Translate("en", "ja", []string{"Good morning"}))
	})
}
