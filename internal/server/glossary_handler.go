package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/at-ishikawa/deeplmock/internal/stub"
)

const authKeyHeaderPrefix = "DeepL-Auth-Key "

type glossaryDictionaryRequest struct {
	SourceLang    string `json:"source_lang" validate:"required"`
	TargetLang    string `json:"target_lang" validate:"required"`
	Entries       string `json:"entries"`
	EntriesFormat string `json:"entries_format"`
}

type glossaryRequest struct {
	Name         string                      `json:"name" validate:"required"`
	Dictionaries []glossaryDictionaryRequest `json:"dictionaries" validate:"dive"`
}

type glossaryDictionaryResponse struct {
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
	EntryCount int    `json:"entry_count"`
}

type glossaryResponse struct {
	GlossaryID   string                       `json:"glossary_id"`
	Name         string                       `json:"name"`
	Dictionaries []glossaryDictionaryResponse `json:"dictionaries"`
	CreationTime string                       `json:"creation_time"`
}

type glossaryListResponse struct {
	Glossaries []glossaryResponse `json:"glossaries"`
}

type languagePairResponse struct {
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

type languagePairsResponse struct {
	SupportedLanguages []languagePairResponse `json:"supported_languages"`
}

// withGlossaryAuth rejects requests without a DeepL-Auth-Key authorization
// header. Any non-empty key passes; the mock keeps no accounts.
func (h *Handler) withGlossaryAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, ok := strings.CutPrefix(r.Header.Get("Authorization"), authKeyHeaderPrefix)
		if !ok || strings.TrimSpace(key) == "" {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid auth key"})
			return
		}
		next(w, r)
	}
}

func (h *Handler) createGlossary(w http.ResponseWriter, r *http.Request) {
	request, ok := h.decodeGlossaryRequest(w, r)
	if !ok {
		return
	}

	glossary := h.glossaries.Create(request.Name, toDictionaryInputs(request.Dictionaries))
	writeJSON(w, http.StatusOK, toGlossaryResponse(glossary))
}

func (h *Handler) listGlossaries(w http.ResponseWriter, r *http.Request) {
	glossaries := h.glossaries.List()

	responses := make([]glossaryResponse, 0, len(glossaries))
	for _, glossary := range glossaries {
		responses = append(responses, toGlossaryResponse(glossary))
	}
	writeJSON(w, http.StatusOK, glossaryListResponse{Glossaries: responses})
}

func (h *Handler) deleteGlossary(w http.ResponseWriter, r *http.Request) {
	if err := h.glossaries.Delete(r.PathValue("id")); err != nil {
		h.writeGlossaryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: "deleted"})
}

func (h *Handler) patchGlossary(w http.ResponseWriter, r *http.Request) {
	request, ok := h.decodeGlossaryRequest(w, r)
	if !ok {
		return
	}

	if _, err := h.glossaries.Patch(r.PathValue("id"), request.Name, toDictionaryInputs(request.Dictionaries)); err != nil {
		h.writeGlossaryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: "updated"})
}

func (h *Handler) glossaryLanguagePairs(w http.ResponseWriter, r *http.Request) {
	pairs := h.glossaries.SupportedLanguagePairs()

	responses := make([]languagePairResponse, 0, len(pairs))
	for _, pair := range pairs {
		responses = append(responses, languagePairResponse{
			SourceLang: pair.SourceLang,
			TargetLang: pair.TargetLang,
		})
	}
	writeJSON(w, http.StatusOK, languagePairsResponse{SupportedLanguages: responses})
}

func (h *Handler) decodeGlossaryRequest(w http.ResponseWriter, r *http.Request) (glossaryRequest, bool) {
	var request glossaryRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return glossaryRequest{}, false
	}
	if details := h.validator.check(request); details != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "Invalid request",
			Details: details,
		})
		return glossaryRequest{}, false
	}
	return request, true
}

func (h *Handler) writeGlossaryError(w http.ResponseWriter, err error) {
	if errors.Is(err, stub.ErrGlossaryNotFound) {
		writeJSON(w, http.StatusNotFound, messageResponse{Message: "Glossary not found"})
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
}

func toDictionaryInputs(requests []glossaryDictionaryRequest) []stub.DictionaryInput {
	inputs := make([]stub.DictionaryInput, 0, len(requests))
	for _, request := range requests {
		inputs = append(inputs, stub.DictionaryInput{
			SourceLang:    request.SourceLang,
			TargetLang:    request.TargetLang,
			Entries:       request.Entries,
			EntriesFormat: request.EntriesFormat,
		})
	}
	return inputs
}

func toGlossaryResponse(glossary stub.Glossary) glossaryResponse {
	dictionaries := make([]glossaryDictionaryResponse, 0, len(glossary.Dictionaries))
	for _, dictionary := range glossary.Dictionaries {
		dictionaries = append(dictionaries, glossaryDictionaryResponse{
			SourceLang: dictionary.SourceLang,
			TargetLang: dictionary.TargetLang,
			EntryCount: dictionary.EntryCount,
		})
	}
	return glossaryResponse{
		GlossaryID:   glossary.ID,
		Name:         glossary.Name,
		Dictionaries: dictionaries,
		CreationTime: glossary.CreationTime.UTC().Format(time.RFC3339),
	}
}
