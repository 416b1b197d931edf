package handlers

import (
	"net/http"

	"resume-backend/application/ports"
	"resume-backend/pkg/common"
	apperrors "resume-backend/pkg/errors"

	"go.uber.org/zap"
)

// VisitorHandler serves the visitor counter endpoint
type VisitorHandler struct {
	service      ports.VisitorCounter
	errorHandler *apperrors.ErrorHandler
	logger       *zap.Logger
}

// NewVisitorHandler creates a new visitor handler
func NewVisitorHandler(service ports.VisitorCounter, logger *zap.Logger) *VisitorHandler {
	return &VisitorHandler{
		service:      service,
		errorHandler: apperrors.NewErrorHandler(logger),
		logger:       logger,
	}
}

// GetVisitorCount handles GET /visitor: it counts the request and returns the new total
func (h *VisitorHandler) GetVisitorCount(w http.ResponseWriter, r *http.Request) {
	common.ApplyHeaders(w, common.VisitorCORSHeaders())

	count, err := h.service.GetAndIncrementVisitorCount(r.Context())
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, h.logger, http.StatusOK, common.VisitorCountResponse{Count: count})
}

// Options answers CORS preflight requests
func (h *VisitorHandler) Options(w http.ResponseWriter, r *http.Request) {
	common.ApplyHeaders(w, common.VisitorCORSHeaders())
	w.Header().Set(common.HeaderAllowMethods, "GET,OPTIONS")
	w.WriteHeader(http.StatusOK)
}
