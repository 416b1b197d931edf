package services

import (
	"context"
	"errors"

	"resume-backend/application/ports"
	"resume-backend/domain/core/valueobjects"
	"resume-backend/domain/events"
	apperrors "resume-backend/pkg/errors"
	"resume-backend/pkg/observability"
	"resume-backend/pkg/utils"

	"go.uber.org/zap"
)

// ErrRecipientNotConfigured is returned when no recipient address was configured
var ErrRecipientNotConfigured = errors.New("email recipient is not configured")

// ContactService forwards contact form submissions to a fixed recipient
type ContactService struct {
	mailer    ports.Mailer
	recipient string
	publisher ports.EventPublisher
	metrics   ports.Metrics
	tracer    *observability.Tracer
	logger    *zap.Logger
}

// NewContactService creates a new contact service
func NewContactService(
	mailer ports.Mailer,
	recipient string,
	publisher ports.EventPublisher,
	metrics ports.Metrics,
	tracer *observability.Tracer,
	logger *zap.Logger,
) *ContactService {
	return &ContactService{
		mailer:    mailer,
		recipient: recipient,
		publisher: publisher,
		metrics:   metrics,
		tracer:    tracer,
		logger:    logger,
	}
}

// DispatchContactMessage emails the submission to the configured recipient.
// The configured recipient is also the sender, as SES only sends from verified identities.
func (s *ContactService) DispatchContactMessage(ctx context.Context, name, email, message string) (valueobjects.Receipt, error) {
	if s.recipient == "" {
		return valueobjects.Receipt{}, apperrors.NewDispatchError(ErrRecipientNotConfigured)
	}

	msg := valueobjects.NewContactMessage(name, email, message)
	mail := ports.Email{
		From:    s.recipient,
		To:      []string{s.recipient},
		Subject: valueobjects.ContactSubject,
		Body:    msg.Body(),
	}

	var messageID string
	err := s.tracer.TraceFunction(ctx, "DispatchContactMessage", func(ctx context.Context) error {
		var err error
		messageID, err = s.mailer.Send(ctx, mail)
		return err
	})
	if err != nil {
		s.logger.Error("Failed to send contact email",
			zap.String("recipient", s.recipient),
			zap.Error(err),
		)
		s.metrics.IncrementCounter(ctx, observability.MetricDispatchErrors, nil)
		dispatchErr := apperrors.NewDispatchError(err)
		var coded ports.CodedError
		if errors.As(err, &coded) && coded.ErrorCode() != "" {
			dispatchErr.WithCode(coded.ErrorCode())
		}
		return valueobjects.Receipt{}, dispatchErr
	}

	s.logger.Info("Contact email sent",
		zap.String("recipient", s.recipient),
		zap.String("messageID", messageID),
	)
	s.metrics.IncrementCounter(ctx, observability.MetricContactDispatched, nil)

	if err := s.publisher.Publish(ctx, events.NewContactMessageDispatched(s.recipient, messageID, utils.Now())); err != nil {
		s.logger.Warn("Failed to publish contact event", zap.Error(err))
	}

	return valueobjects.Receipt{Recipient: s.recipient, MessageID: messageID}, nil
}
