// Package logmail writes outgoing email to the log instead of sending it.
package logmail

import (
	"context"

	"resume-backend/application/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Mailer logs each email and returns a generated message ID
type Mailer struct {
	logger *zap.Logger
}

var _ ports.Mailer = (*Mailer)(nil)

// NewMailer creates a log mailer
func NewMailer(logger *zap.Logger) *Mailer {
	return &Mailer{logger: logger}
}

// Send logs the email
func (m *Mailer) Send(ctx context.Context, email ports.Email) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	id := "local-" + uuid.New().String()
	m.logger.Info("Email not sent (log mail backend)",
		zap.String("messageID", id),
		zap.String("from", email.From),
		zap.Strings("to", email.To),
		zap.String("subject", email.Subject),
		zap.String("body", email.Body),
	)
	return id, nil
}
