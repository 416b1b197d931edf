// Package gateway adapts the visitor and contact operations to API Gateway proxy events.
package gateway

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"

	"resume-backend/application/ports"
	"resume-backend/pkg/common"
	apperrors "resume-backend/pkg/errors"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"
)

// ErrBodyTooLarge rejects contact submissions above common.MaxContactBodyBytes
var ErrBodyTooLarge = errors.New("http: request body too large")

// Handlers serves the single-purpose visitor and contact functions.
// Failures become 500 responses; the returned error is always nil so API Gateway never answers 502.
type Handlers struct {
	visitor ports.VisitorCounter
	contact ports.ContactDispatcher
	logger  *zap.Logger
}

// NewHandlers creates API Gateway handlers
func NewHandlers(visitor ports.VisitorCounter, contact ports.ContactDispatcher, logger *zap.Logger) *Handlers {
	return &Handlers{
		visitor: visitor,
		contact: contact,
		logger:  logger,
	}
}

// Visitor handles GET /visitor
func (h *Handlers) Visitor(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	headers := common.VisitorCORSHeaders()
	if req.HTTPMethod == http.MethodOptions {
		headers[common.HeaderAllowMethods] = "GET,OPTIONS"
		return respond(http.StatusOK, headers, nil), nil
	}

	count, err := h.visitor.GetAndIncrementVisitorCount(ctx)
	if err != nil {
		return h.fail(req, headers, err), nil
	}

	return respond(http.StatusOK, headers, common.VisitorCountResponse{Count: count}), nil
}

// Contact handles POST /contact
func (h *Handlers) Contact(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	headers := common.ContactCORSHeaders()
	if req.HTTPMethod == http.MethodOptions {
		return respond(http.StatusOK, headers, nil), nil
	}

	body, err := requestBody(req)
	if err != nil {
		return h.fail(req, headers, apperrors.NewInternalError("Invalid request body: "+err.Error()).WithCause(err)), nil
	}
	if len(body) > common.MaxContactBodyBytes {
		return h.fail(req, headers, apperrors.NewInternalError("Invalid request body: "+ErrBodyTooLarge.Error()).WithCause(ErrBodyTooLarge)), nil
	}

	var contactReq common.ContactRequest
	if err := json.Unmarshal(body, &contactReq); err != nil {
		return h.fail(req, headers, apperrors.NewInternalError("Invalid request body: "+err.Error()).WithCause(err)), nil
	}

	receipt, err := h.contact.DispatchContactMessage(ctx, contactReq.Name, contactReq.Email, contactReq.Message)
	if err != nil {
		return h.fail(req, headers, err), nil
	}

	return respond(http.StatusOK, headers, common.ContactResponse{
		Message:   common.ContactSuccessMessage,
		Recipient: receipt.Recipient,
	}), nil
}

func requestBody(req events.APIGatewayProxyRequest) ([]byte, error) {
	if req.IsBase64Encoded {
		return base64.StdEncoding.DecodeString(req.Body)
	}
	return []byte(req.Body), nil
}

func (h *Handlers) fail(req events.APIGatewayProxyRequest, headers map[string]string, err error) events.APIGatewayProxyResponse {
	status := apperrors.StatusCode(err)
	h.logger.Error("Request failed",
		zap.String("method", req.HTTPMethod),
		zap.String("path", req.Path),
		zap.String("requestID", req.RequestContext.RequestID),
		zap.Int("status", status),
		zap.Error(err),
	)
	return respond(status, headers, apperrors.ErrorResponse{Error: apperrors.PublicMessage(err)})
}

func respond(status int, headers map[string]string, data interface{}) events.APIGatewayProxyResponse {
	resp := events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    headers,
	}
	if data == nil {
		return resp
	}

	body, err := json.Marshal(data)
	if err != nil {
		resp.StatusCode = http.StatusInternalServerError
		body = []byte(`{"error":"Internal server error"}`)
	}
	resp.Headers["Content-Type"] = "application/json"
	resp.Body = string(body)
	return resp
}
