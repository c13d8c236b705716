// Package stub implements the canned-response engines behind the mock
// translation API: the translation lookup table, the usage counter, the
// language catalog and the glossary store. The engines hold all mutable
// state themselves and are safe for concurrent use by the HTTP layer.
package stub

import (
	"strings"
	"sync"
	"unicode/utf8"
)

// TranslationEntry is one row of the static lookup table. Language fields
// are stored lowercase; the request text is matched exactly.
type TranslationEntry struct {
	SourceLang string `yaml:"source_lang"`
	TargetLang string `yaml:"target_lang"`
	Request    string `yaml:"request"`
	Response   string `yaml:"response"`
}

// DefaultTranslationTable returns the built-in en/ja/fr demo entries.
func DefaultTranslationTable() []TranslationEntry {
	return []TranslationEntry{
		{SourceLang: "en", TargetLang: "ja", Request: "Hello", Response: "こんにちは"},
		{SourceLang: "ja", TargetLang: "en", Request: "こんにちは", Response: "Hello"},
		{SourceLang: "en", TargetLang: "fr", Request: "Hello", Response: "Bonjour"},
		{SourceLang: "fr", TargetLang: "en", Request: "Bonjour", Response: "Hello"},
		{SourceLang: "ja", TargetLang: "fr", Request: "こんにちは", Response: "Bonjour"},
		{SourceLang: "fr", TargetLang: "ja", Request: "Bonjour", Response: "こんにちは"},
	}
}

// CharacterCounter is the process-wide tally of characters submitted for
// translation. There is a single counter shared by both tiers.
type CharacterCounter struct {
	mu    sync.Mutex
	total int64
}

// NewCharacterCounter creates a counter starting at zero.
func NewCharacterCounter() *CharacterCounter {
	return &CharacterCounter{}
}

// Add increments the counter by n characters.
func (c *CharacterCounter) Add(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.total += int64(n)
}

// Total returns the current counter value.
func (c *CharacterCounter) Total() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

// Translator resolves translate requests against a fixed table.
type Translator struct {
	table   []TranslationEntry
	counter *CharacterCounter
}

// NewTranslator creates a Translator over the given table. The table is
// normalized once: language fields are lowercased. The counter records
// every submitted character as a side effect of Translate.
func NewTranslator(table []TranslationEntry, counter *CharacterCounter) *Translator {
	normalized := make([]TranslationEntry, len(table))
	for i, entry := range table {
		entry.SourceLang = strings.ToLower(entry.SourceLang)
		entry.TargetLang = strings.ToLower(entry.TargetLang)
		normalized[i] = entry
	}
	return &Translator{
		table:   normalized,
		counter: counter,
	}
}

// Translate returns one translation per input string. An empty sourceLang
// means any source. Language codes are matched case-insensitively, the
// text exactly. When sourceLang equals targetLang the input is returned
// unchanged. When any string has no table match, the whole batch falls
// back to echoing the original texts; absence of a match is never an
// error. Every submitted string increments the character counter
// regardless of which path produced the result.
func (t *Translator) Translate(sourceLang, targetLang string, texts []string) []string {
	sourceLang = strings.ToLower(sourceLang)
	targetLang = strings.ToLower(targetLang)

	for _, text := range texts {
		t.counter.Add(utf8.RuneCountInString(text))
	}

	if sourceLang != "" && sourceLang == targetLang {
		return texts
	}

	results := make([]string, 0, len(texts))
	for _, text := range texts {
		response, ok := t.lookup(sourceLang, targetLang, text)
		if !ok {
			// Batch-level fallback: one miss echoes the entire input.
			return texts
		}
		results = append(results, response)
	}
	return results
}

func (t *Translator) lookup(sourceLang, targetLang, text string) (string, bool) {
	for _, entry := range t.table {
		if entry.TargetLang != targetLang {
			continue
		}
		if sourceLang != "" && entry.SourceLang != sourceLang {
			continue
		}
		if entry.Request == text {
			return entry.Response, true
		}
	}
	return "", false
}
