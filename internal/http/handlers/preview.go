package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/preston-bernstein/club-studio/internal/logging"
	"github.com/preston-bernstein/club-studio/internal/preview"
)

// PreviewHandler renders branded templates for up to three games.
type PreviewHandler struct {
	renderer preview.Renderer
	logger   *slog.Logger
}

// NewPreviewHandler constructs a PreviewHandler. A nil renderer answers 503.
func NewPreviewHandler(renderer preview.Renderer, logger *slog.Logger) *PreviewHandler {
	return &PreviewHandler{renderer: renderer, logger: logger}
}

// Render decodes a preview.Request and streams the rendered artifact.
func (h *PreviewHandler) Render(w http.ResponseWriter, r *http.Request) {
	if h.renderer == nil {
		writeError(w, r, http.StatusServiceUnavailable, "renderer not configured", h.logger)
		return
	}
	logger := loggerFromContext(r, h.logger)

	var req preview.Request
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), logger)
		return
	}
	req = req.Normalize()
	if err := req.Validate(); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), logger)
		return
	}

	art, err := h.renderer.Render(r.Context(), req)
	if err != nil {
		if r.Context().Err() != nil {
			writeError(w, r, http.StatusServiceUnavailable, "request canceled", logger)
			return
		}
		logging.Error(logger, "preview render failed", err,
			slog.String("api_type", req.APIType),
			slog.String("kind", string(req.Kind)),
		)
		writeError(w, r, http.StatusBadGateway, "render failed", logger)
		return
	}

	w.Header().Set("Content-Type", art.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(art.Data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(art.Data); err != nil {
		logging.Warn(logger, "preview write failed", slog.Any("err", err))
	}
}
