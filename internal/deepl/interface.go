// Package deepl provides a client for the mocked translation API. The
// smoke-check command and the end-to-end tests drive a running server
// through it.
package deepl

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=../mocks/deepl/mock_api.go -package=mock_deepl

// API is the client surface of the mocked translation service.
type API interface {
	Health(ctx context.Context) (string, error)
	Translate(ctx context.Context, request TranslateRequest) ([]string, error)
	Usage(ctx context.Context) (Usage, error)
	Languages(ctx context.Context, direction string) ([]Language, error)
	CreateGlossary(ctx context.Context, request GlossaryRequest) (Glossary, error)
	ListGlossaries(ctx context.Context) ([]Glossary, error)
	PatchGlossary(ctx context.Context, glossaryID string, request GlossaryRequest) error
	DeleteGlossary(ctx context.Context, glossaryID string) error
	GlossaryLanguagePairs(ctx context.Context) ([]LanguagePair, error)
}

// TranslateRequest holds one translate call. SourceLang may be empty to
// let the server match any source language.
type TranslateRequest struct {
	SourceLang string
	TargetLang string
	Texts      []string
}

// Usage is the count/limit pair the usage endpoint reports.
type Usage struct {
	CharacterCount int64 `json:"character_count"`
	CharacterLimit int64 `json:"character_limit"`
}

// Language is one supported-language record.
type Language struct {
	Language string `json:"language"`
	Name     string `json:"name"`
}

// DictionaryEntries is the raw per-pair dictionary sent on glossary
// create and patch calls.
type DictionaryEntries struct {
	SourceLang    string `json:"source_lang"`
	TargetLang    string `json:"target_lang"`
	Entries       string `json:"entries"`
	EntriesFormat string `json:"entries_format"`
}

// GlossaryRequest is the body of glossary create and patch calls.
type GlossaryRequest struct {
	Name         string              `json:"name"`
	Dictionaries []DictionaryEntries `json:"dictionaries"`
}

// GlossaryDictionary is the per-pair summary the server stores.
type GlossaryDictionary struct {
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
	EntryCount int    `json:"entry_count"`
}

// Glossary is a stored glossary record.
type Glossary struct {
	GlossaryID   string               `json:"glossary_id"`
	Name         string               `json:"name"`
	Dictionaries []GlossaryDictionary `json:"dictionaries"`
	CreationTime string               `json:"creation_time"`
}

// LanguagePair is one supported glossary language pair.
type LanguagePair struct {
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}
