package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/club-studio/internal/domain/sports"
	"github.com/preston-bernstein/club-studio/internal/http/requestutil"
	"github.com/preston-bernstein/club-studio/internal/logging"
	"github.com/preston-bernstein/club-studio/internal/metrics"
	"github.com/preston-bernstein/club-studio/internal/preview"
)

// AdminHandler exposes operator-only endpoints.
type AdminHandler struct {
	recorder *metrics.Recorder
	token    string
	logger   *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(recorder *metrics.Recorder, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		recorder: recorder,
		token:    token,
		logger:   logger,
	}
}

// ProviderStats summarizes federation calls for one api type.
type ProviderStats struct {
	Calls         int   `json:"calls"`
	Errors        int   `json:"errors"`
	LastLatencyMS int64 `json:"lastLatencyMs"`
}

// StatsResponse is the payload of the stats endpoint.
type StatsResponse struct {
	Providers    map[string]ProviderStats `json:"providers"`
	StaleResults map[string]int           `json:"staleResults"`
	Renders      map[string]int           `json:"renders"`
}

// Stats reports in-process counters. Guarded by the admin token; returns 401 if missing/invalid.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.recorder == nil {
		writeError(w, r, http.StatusServiceUnavailable, "metrics not configured", h.logger)
		return
	}

	resp := StatsResponse{
		Providers:    map[string]ProviderStats{},
		StaleResults: map[string]int{},
		Renders:      map[string]int{},
	}
	for _, s := range sports.All() {
		snap := h.recorder.Snapshot(s.APIType())
		resp.Providers[s.APIType()] = ProviderStats{
			Calls:         snap.Calls,
			Errors:        snap.Errors,
			LastLatencyMS: snap.LastCallLatency.Milliseconds(),
		}
	}
	for _, step := range []string{"club", "team", "games", "preview"} {
		resp.StaleResults[step] = h.recorder.StaleResults(step)
	}
	for _, k := range []preview.Kind{preview.KindPreview, preview.KindResult} {
		resp.Renders[string(k)] = h.recorder.Renders(string(k))
	}
	writeJSON(w, http.StatusOK, resp, loggerFromContext(r, h.logger))
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	token, ok := bearerToken(r)
	return ok && subtle.ConstantTimeCompare([]byte(token), []byte(h.token)) == 1
}
