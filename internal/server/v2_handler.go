package server

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"

	"github.com/at-ishikawa/deeplmock/internal/stub"
)

type translateRequest struct {
	AuthKey    string   `json:"auth_key" validate:"required"`
	TargetLang string   `json:"target_lang" validate:"required"`
	SourceLang string   `json:"source_lang"`
	Text       []string `json:"text" validate:"required,min=1"`
}

type translationText struct {
	Text string `json:"text"`
}

type translationsResponse struct {
	Translations []translationText `json:"translations"`
}

func (h *Handler) translate(w http.ResponseWriter, r *http.Request, tier stub.Tier) {
	if h.rateLimited(w) {
		return
	}

	var request translateRequest
	if err := decodeV2Request(r, &request, func() translateRequest {
		return translateRequest{
			AuthKey:    r.PostForm.Get("auth_key"),
			TargetLang: r.PostForm.Get("target_lang"),
			SourceLang: r.PostForm.Get("source_lang"),
			Text:       r.PostForm["text"],
		}
	}); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}

	if details := h.validator.check(request); details != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "Invalid request",
			Details: details,
		})
		return
	}

	// The tier selects usage limits only; translation results are shared.
	translated := h.translator.Translate(request.SourceLang, request.TargetLang, request.Text)

	translations := make([]translationText, 0, len(translated))
	for _, text := range translated {
		translations = append(translations, translationText{Text: text})
	}
	writeJSON(w, http.StatusOK, translationsResponse{Translations: translations})
}

// rateLimited reports whether this translate request is the Nth one the
// 429 simulation should reject.
func (h *Handler) rateLimited(w http.ResponseWriter) bool {
	if h.rateLimitEvery <= 0 {
		return false
	}
	n := h.translateRequests.Add(1)
	if n%int64(h.rateLimitEvery) != 0 {
		return false
	}
	writeJSON(w, http.StatusTooManyRequests, messageResponse{Message: "Too many requests"})
	return true
}

type usageRequest struct {
	AuthKey string `json:"auth_key" validate:"required"`
}

type usageResponse struct {
	CharacterCount int64 `json:"character_count"`
	CharacterLimit int64 `json:"character_limit"`
}

func (h *Handler) usageReport(w http.ResponseWriter, r *http.Request, tier stub.Tier) {
	var request usageRequest
	if err := decodeV2Request(r, &request, func() usageRequest {
		return usageRequest{AuthKey: r.PostForm.Get("auth_key")}
	}); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}

	if details := h.validator.check(request); details != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "Invalid request",
			Details: details,
		})
		return
	}

	report, err := h.usage.Usage(tier)
	if err != nil {
		writeJSON(w, http.StatusOK, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, usageResponse{
		CharacterCount: report.CharacterCount,
		CharacterLimit: report.CharacterLimit,
	})
}

type languagesRequest struct {
	Type    string `json:"type" validate:"required"`
	AuthKey string `json:"auth_key" validate:"required"`
}

type languageElement struct {
	Language string `json:"language"`
	Name     string `json:"name"`
}

func (h *Handler) languages(w http.ResponseWriter, r *http.Request, tier stub.Tier) {
	var request languagesRequest
	if err := decodeV2Request(r, &request, func() languagesRequest {
		return languagesRequest{
			Type:    r.PostForm.Get("type"),
			AuthKey: r.PostForm.Get("auth_key"),
		}
	}); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}

	if details := h.validator.check(request); details != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "Invalid request",
			Details: details,
		})
		return
	}

	languages, err := h.catalog.Languages(request.Type)
	if err != nil {
		// An unknown direction is a payload-level error, not a transport one.
		writeJSON(w, http.StatusOK, errorResponse{Error: err.Error()})
		return
	}

	elements := make([]languageElement, 0, len(languages))
	for _, language := range languages {
		elements = append(elements, languageElement{
			Language: language.Code,
			Name:     language.Name,
		})
	}
	writeJSON(w, http.StatusOK, elements)
}

// decodeV2Request fills request from the JSON body or, for form-encoded
// requests, from the fromForm fallback after ParseForm.
func decodeV2Request[T any](r *http.Request, request *T, fromForm func() T) error {
	if isJSONRequest(r) {
		if err := json.NewDecoder(r.Body).Decode(request); err != nil {
			return fmt.Errorf("json.Decode > %w", err)
		}
		return nil
	}
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("r.ParseForm > %w", err)
	}
	*request = fromForm()
	return nil
}

func isJSONRequest(r *http.Request) bool {
	contentType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return contentType == "application/json"
}
