package handlers

import (
	"net/http"

	"resume-backend/application/ports"
	"resume-backend/pkg/common"
	apperrors "resume-backend/pkg/errors"

	"go.uber.org/zap"
)

// ContactHandler serves the contact form endpoint
type ContactHandler struct {
	service      ports.ContactDispatcher
	errorHandler *apperrors.ErrorHandler
	logger       *zap.Logger
}

// NewContactHandler creates a new contact handler
func NewContactHandler(service ports.ContactDispatcher, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{
		service:      service,
		errorHandler: apperrors.NewErrorHandler(logger),
		logger:       logger,
	}
}

// SubmitContact handles POST /contact.
// Field values are forwarded as received; an undecodable or oversized body is a server error.
func (h *ContactHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	common.ApplyHeaders(w, common.ContactCORSHeaders())

	var req common.ContactRequest
	if err := common.ParseJSONBody(w, r, &req, common.MaxContactBodyBytes); err != nil {
		h.errorHandler.Handle(w, r, apperrors.NewInternalError("Invalid request body: "+err.Error()).WithCause(err))
		return
	}

	receipt, err := h.service.DispatchContactMessage(r.Context(), req.Name, req.Email, req.Message)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, h.logger, http.StatusOK, common.ContactResponse{
		Message:   common.ContactSuccessMessage,
		Recipient: receipt.Recipient,
	})
}

// Options answers CORS preflight requests
func (h *ContactHandler) Options(w http.ResponseWriter, r *http.Request) {
	common.ApplyHeaders(w, common.ContactCORSHeaders())
	w.WriteHeader(http.StatusOK)
}
