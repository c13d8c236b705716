// Package server binds the stub engines to the HTTP routes of the mocked
// translation API. The v2 endpoints are tier-prefixed and carry the auth
// key in the request body; the v3 glossary endpoints are unprefixed and
// authenticate via the DeepL-Auth-Key authorization header.
package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/at-ishikawa/deeplmock/internal/config"
	"github.com/at-ishikawa/deeplmock/internal/stub"
)

// Handler serves the mock API routes.
type Handler struct {
	translator *stub.Translator
	usage      *stub.UsageReporter
	catalog    *stub.Catalog
	glossaries *stub.GlossaryStore

	validator *requestValidator

	// Counts translate requests for the optional 429 simulation.
	rateLimitEvery    int
	translateRequests atomic.Int64
}

// NewHandler creates a Handler over the given engines.
func NewHandler(
	translator *stub.Translator,
	usage *stub.UsageReporter,
	catalog *stub.Catalog,
	glossaries *stub.GlossaryStore,
	serverConfig config.ServerConfig,
) (*Handler, error) {
	validator, err := newRequestValidator()
	if err != nil {
		return nil, fmt.Errorf("newRequestValidator() > %w", err)
	}
	return &Handler{
		translator:     translator,
		usage:          usage,
		catalog:        catalog,
		glossaries:     glossaries,
		validator:      validator,
		rateLimitEvery: serverConfig.RateLimitEvery,
	}, nil
}

// Router returns the route table with logging and recovery middleware
// applied.
func (h *Handler) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", h.health)

	mux.HandleFunc("POST /{tier}/v2/translate", h.withTier(h.translate))
	mux.HandleFunc("POST /{tier}/v2/usage", h.withTier(h.usageReport))
	mux.HandleFunc("POST /{tier}/v2/languages", h.withTier(h.languages))

	mux.HandleFunc("POST /v3/glossaries", h.withGlossaryAuth(h.createGlossary))
	mux.HandleFunc("GET /v3/glossaries", h.withGlossaryAuth(h.listGlossaries))
	mux.HandleFunc("DELETE /v3/glossaries/{id}", h.withGlossaryAuth(h.deleteGlossary))
	mux.HandleFunc("PATCH /v3/glossaries/{id}", h.withGlossaryAuth(h.patchGlossary))
	mux.HandleFunc("GET /v3/glossary-language-pairs", h.glossaryLanguagePairs)

	return recoverMiddleware(loggingMiddleware(mux))
}

// health is the reachability probe.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, messageResponse{Message: "Access Successful"})
}

// withTier resolves the {tier} path segment. Only free and pro exist.
func (h *Handler) withTier(next func(w http.ResponseWriter, r *http.Request, tier stub.Tier)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tier := stub.Tier(r.PathValue("tier"))
		if tier != stub.TierFree && tier != stub.TierPro {
			writeJSON(w, http.StatusNotFound, messageResponse{Message: "Not found"})
			return
		}
		next(w, r, tier)
	}
}

type messageResponse struct {
	Message string `json:"message"`
}

type statusResponse struct {
	Status string `json:"status"`
}

type errorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Default().Error("failed to encode a response body",
			slog.Any("error", err),
		)
	}
}
