// Package api provides HTTP API handlers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/truthscan/truthscan/internal/database"
	"github.com/truthscan/truthscan/internal/models"
	"github.com/truthscan/truthscan/internal/verify"
)

// Handler contains all HTTP handlers.
type Handler struct {
	verifier *verify.Verifier
	store    database.Store
	version  string
}

// NewHandler creates a new handler.
func NewHandler(verifier *verify.Verifier, store database.Store, version string) *Handler {
	return &Handler{
		verifier: verifier,
		store:    store,
		version:  version,
	}
}

// HealthCheck returns the service health status.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"version":   h.version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Verify handles a verification request. Detailed collaborator errors are
// logged server-side only; clients get a generic message.
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to process verification request")
		return
	}

	if strings.TrimSpace(req.QueryText) == "" {
		writeError(w, http.StatusBadRequest, "Query text is required")
		return
	}

	result, err := h.verifier.Verify(r.Context(), req.QueryText)
	if err != nil {
		switch {
		case errors.Is(err, verify.ErrEmptyQuery):
			writeError(w, http.StatusBadRequest, "Query text is required")
		case errors.Is(err, verify.ErrCacheUnavailable):
			writeError(w, http.StatusInternalServerError, "Failed to query database")
		default:
			log.Error().Err(err).Msg("Verification failed")
			writeError(w, http.StatusInternalServerError, "Failed to process verification request")
		}
		return
	}

	writeJSON(w, http.StatusOK, models.VerifyResponse{
		Verdict:     result.Verdict,
		Explanation: result.Explanation,
		Sources:     result.Sources,
		Cached:      result.Cached,
	})
}

// RecentVerifications returns the newest verification records.
func (h *Handler) RecentVerifications(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = 5
	}
	if limit > 20 {
		limit = 20
	}

	records, err := h.store.ListRecent(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list recent verifications")
		writeError(w, http.StatusInternalServerError, "Failed to query database")
		return
	}
	if records == nil {
		records = []*models.VerificationRecord{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"verifications": records,
		"limit":         limit,
	})
}

// Helper functions
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
