package handlers

import (
	"net/http"

	"go.uber.org/zap"
)

// PageRenderer renders the resume page and its config script
type PageRenderer interface {
	Index() (string, error)
	ConfigJS() (string, error)
}

// PageHandler serves the resume page
type PageHandler struct {
	renderer PageRenderer
	logger   *zap.Logger
}

// NewPageHandler creates a new page handler
func NewPageHandler(renderer PageRenderer, logger *zap.Logger) *PageHandler {
	return &PageHandler{renderer: renderer, logger: logger}
}

// Index handles GET /
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, "text/html; charset=utf-8", h.renderer.Index)
}

// ConfigJS handles GET /config.js
func (h *PageHandler) ConfigJS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-cache")
	h.render(w, "application/javascript; charset=utf-8", h.renderer.ConfigJS)
}

func (h *PageHandler) render(w http.ResponseWriter, contentType string, fn func() (string, error)) {
	body, err := fn()
	if err != nil {
		h.logger.Error("Failed to render page", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(body)); err != nil {
		h.logger.Debug("Failed to write page", zap.Error(err))
	}
}
