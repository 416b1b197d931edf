package handlers

import (
	"context"
	"net/http"

	"resume-backend/pkg/common"
	apperrors "resume-backend/pkg/errors"

	"go.uber.org/zap"
)

// ServiceName is reported by the health endpoint
const ServiceName = "resume-backend"

// CountReader reads the visitor count without changing it
type CountReader interface {
	CurrentVisitorCount(ctx context.Context) (int, error)
}

// HealthHandler serves liveness and readiness probes
type HealthHandler struct {
	reader CountReader
	logger *zap.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(reader CountReader, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{reader: reader, logger: logger}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, h.logger, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": ServiceName,
	})
}

// Ready handles GET /ready; the counter store must answer a read.
// Store failures are logged only, the body never carries their text.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if _, err := h.reader.CurrentVisitorCount(r.Context()); err != nil {
		unavailable := apperrors.NewUnavailableError("counter store").WithCause(err)
		h.logger.Warn("Readiness check failed",
			zap.Error(unavailable),
			zap.String("error_type", string(unavailable.Type)),
		)
		common.RespondJSON(w, h.logger, apperrors.StatusCode(unavailable), map[string]string{
			"status": "unavailable",
		})
		return
	}

	common.RespondJSON(w, h.logger, http.StatusOK, map[string]string{"status": "ready"})
}
