package stub

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadTranslationTable reads extra translation entries from a YAML file.
// The file holds a list of entries in the TranslationEntry shape. Language
// fields are lowercased on load. An entry missing a language, request or
// response field fails the load, so a broken seed file is caught at
// startup rather than at lookup time.
func LoadTranslationTable(path string) ([]TranslationEntry, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}

	var entries []TranslationEntry
	if err := yaml.Unmarshal(contents, &entries); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal(%s) > %w", path, err)
	}

	for i, entry := range entries {
		if entry.SourceLang == "" || entry.TargetLang == "" || entry.Request == "" || entry.Response == "" {
			return nil, fmt.Errorf("translation entry %d in %s: source_lang, target_lang, request and response are all required", i, path)
		}
		entries[i].SourceLang = strings.ToLower(entry.SourceLang)
		entries[i].TargetLang = strings.ToLower(entry.TargetLang)
	}
	return entries, nil
}
