package common

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// Header names and values shared by the server routes and the Lambda handlers
const (
	HeaderAllowOrigin  = "Access-Control-Allow-Origin"
	HeaderAllowMethods = "Access-Control-Allow-Methods"
	HeaderAllowHeaders = "Access-Control-Allow-Headers"

	AllowAllOrigins = "*"
)

// VisitorCORSHeaders returns the CORS headers of the visitor endpoint
func VisitorCORSHeaders() map[string]string {
	return map[string]string{
		HeaderAllowOrigin: AllowAllOrigins,
	}
}

// ContactCORSHeaders returns the CORS headers of the contact endpoint
func ContactCORSHeaders() map[string]string {
	return map[string]string{
		HeaderAllowOrigin:  AllowAllOrigins,
		HeaderAllowHeaders: "Content-Type",
		HeaderAllowMethods: "OPTIONS,POST",
	}
}

// ApplyHeaders copies headers onto an HTTP response
func ApplyHeaders(w http.ResponseWriter, headers map[string]string) {
	for key, value := range headers {
		w.Header().Set(key, value)
	}
}

// VisitorCountResponse is the body of a successful visitor request
type VisitorCountResponse struct {
	Count int `json:"count"`
}

// ContactRequest is the body of a contact form submission
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactResponse is the body of a successful contact submission
type ContactResponse struct {
	Message   string `json:"message"`
	Recipient string `json:"recipient"`
}

// ContactSuccessMessage is returned once the email was accepted by the mail service
const ContactSuccessMessage = "Email sent successfully"

// MaxContactBodyBytes caps the size of a contact form submission
const MaxContactBodyBytes = 64 << 10

// RespondJSON sends a JSON response
func RespondJSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode response",
			zap.Error(err),
			zap.Int("status", status),
		)
	}
}

// ParseJSONBody parses a JSON request body with a size limit
func ParseJSONBody(w http.ResponseWriter, r *http.Request, v interface{}, maxBytes int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	return json.NewDecoder(r.Body).Decode(v)
}
