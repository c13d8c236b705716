package stub

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrGlossaryNotFound reports an unknown glossary id. The HTTP layer maps
// it to a 404 response.
var ErrGlossaryNotFound = errors.New("Glossary not found")

// LanguagePair is an ordered source/target language combination.
type LanguagePair struct {
	SourceLang string
	TargetLang string
}

// GlossaryDictionary is the per-pair summary of a stored dictionary. Only
// the entry count survives; the raw entries text is discarded once counted.
type GlossaryDictionary struct {
	SourceLang string
	TargetLang string
	EntryCount int
}

// Glossary is a stored glossary record. At most one dictionary exists per
// (source_lang, target_lang) pair.
type Glossary struct {
	ID           string
	Name         string
	Dictionaries []GlossaryDictionary
	CreationTime time.Time
}

// DictionaryInput is the raw dictionary shape accepted by Create and Patch.
type DictionaryInput struct {
	SourceLang    string
	TargetLang    string
	Entries       string
	EntriesFormat string
}

// GlossaryStore is the in-memory glossary table. Callers hold only ids;
// all returned records are copies.
type GlossaryStore struct {
	mu         sync.Mutex
	glossaries map[string]*Glossary

	newID func() string
	now   func() time.Time
}

// NewGlossaryStore creates an empty store with random uuid ids.
func NewGlossaryStore() *GlossaryStore {
	return &GlossaryStore{
		glossaries: map[string]*Glossary{},
		newID:      uuid.NewString,
		now:        time.Now,
	}
}

// Create stores a new glossary with a fresh id and the current timestamp
// and returns the stored record. Each dictionary's entry count is the
// number of non-blank lines in its entries text.
func (s *GlossaryStore) Create(name string, dictionaries []DictionaryInput) Glossary {
	s.mu.Lock()
	defer s.mu.Unlock()

	glossary := &Glossary{
		ID:           s.newID(),
		Name:         name,
		Dictionaries: countDictionaries(dictionaries),
		CreationTime: s.now().UTC(),
	}
	s.glossaries[glossary.ID] = glossary
	return copyGlossary(glossary)
}

// List returns all stored glossaries. Order is not guaranteed.
func (s *GlossaryStore) List() []Glossary {
	s.mu.Lock()
	defer s.mu.Unlock()

	glossaries := make([]Glossary, 0, len(s.glossaries))
	for _, glossary := range s.glossaries {
		glossaries = append(glossaries, copyGlossary(glossary))
	}
	return glossaries
}

// Get returns the glossary with the given id or ErrGlossaryNotFound.
func (s *GlossaryStore) Get(id string) (Glossary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	glossary, ok := s.glossaries[id]
	if !ok {
		return Glossary{}, ErrGlossaryNotFound
	}
	return copyGlossary(glossary), nil
}

// Delete removes the glossary with the given id. Unknown ids yield
// ErrGlossaryNotFound.
func (s *GlossaryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.glossaries[id]; !ok {
		return ErrGlossaryNotFound
	}
	delete(s.glossaries, id)
	return nil
}

// Patch replaces the glossary's name and merges in the given dictionaries.
// The new dictionaries are appended after the existing ones and the
// combined list is collapsed by language pair, later entries winning, so a
// patched-in dictionary replaces a pre-existing one for the same pair.
// Unknown ids yield ErrGlossaryNotFound.
func (s *GlossaryStore) Patch(id, name string, dictionaries []DictionaryInput) (Glossary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	glossary, ok := s.glossaries[id]
	if !ok {
		return Glossary{}, ErrGlossaryNotFound
	}

	glossary.Name = name
	combined := append(glossary.Dictionaries, countDictionaries(dictionaries)...)
	glossary.Dictionaries = collapseByPair(combined)
	return copyGlossary(glossary), nil
}

// SupportedLanguagePairs returns the static list of pairs glossaries can
// be created for, independent of store contents.
func (s *GlossaryStore) SupportedLanguagePairs() []LanguagePair {
	return []LanguagePair{
		{SourceLang: "EN", TargetLang: "FR"},
		{SourceLang: "DE", TargetLang: "EN"},
		{SourceLang: "EN", TargetLang: "JA"},
	}
}

// CountEntries counts the non-blank lines of a dictionary's entries text.
func CountEntries(entries string) int {
	count := 0
	for _, line := range strings.Split(entries, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}

func countDictionaries(inputs []DictionaryInput) []GlossaryDictionary {
	dictionaries := make([]GlossaryDictionary, 0, len(inputs))
	for _, input := range inputs {
		dictionaries = append(dictionaries, GlossaryDictionary{
			SourceLang: input.SourceLang,
			TargetLang: input.TargetLang,
			EntryCount: CountEntries(input.Entries),
		})
	}
	return dictionaries
}

// collapseByPair keeps one dictionary per language pair. The slot keeps
// the position of the pair's first occurrence while the value comes from
// its last occurrence.
func collapseByPair(dictionaries []GlossaryDictionary) []GlossaryDictionary {
	indexes := map[LanguagePair]int{}
	collapsed := make([]GlossaryDictionary, 0, len(dictionaries))
	for _, dictionary := range dictionaries {
		pair := LanguagePair{
			SourceLang: dictionary.SourceLang,
			TargetLang: dictionary.TargetLang,
		}
		if i, ok := indexes[pair]; ok {
			collapsed[i] = dictionary
			continue
		}
		indexes[pair] = len(collapsed)
		collapsed = append(collapsed, dictionary)
	}
	return collapsed
}

func copyGlossary(glossary *Glossary) Glossary {
	copied := *glossary
	copied.Dictionaries = make([]GlossaryDictionary, len(glossary.Dictionaries))
	copy(copied.Dictionaries, glossary.Dictionaries)
	return copied
}
