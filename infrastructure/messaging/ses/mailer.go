// Package ses delivers contact email through Amazon SES.
package ses

import (
	"context"
	"errors"
	"fmt"
	"time"

	"resume-backend/application/ports"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/aws/smithy-go"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// SES error codes with dedicated messages
const (
	CodeMessageRejected = "MessageRejected"
	CodeSendingPaused   = "SendingPausedException"
)

const charset = "UTF-8"

// Client defines the SES operations used by the mailer
type Client interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

var _ Client = (*sesv2.Client)(nil)

// SendError is a classified SES failure. Error returns the caller-facing message.
type SendError struct {
	Code    string
	Message string
	Err     error
}

func (e *SendError) Error() string { return e.Message }
func (e *SendError) Unwrap() error { return e.Err }

// ErrorCode returns the SES error code, empty for transport failures
func (e *SendError) ErrorCode() string { return e.Code }

var _ ports.CodedError = (*SendError)(nil)

// Classify maps an SES fault to a SendError
func Classify(err error) *SendError {
	var sendErr *SendError
	if errors.As(err, &sendErr) {
		return sendErr
	}

	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return &SendError{Message: err.Error(), Err: err}
	}

	code := apiErr.ErrorCode()
	switch code {
	case CodeMessageRejected:
		return &SendError{Code: code, Message: "Email address not verified or message rejected", Err: err}
	case CodeSendingPaused:
		return &SendError{Code: code, Message: "Email sending is paused for this account", Err: err}
	default:
		return &SendError{Code: code, Message: fmt.Sprintf("Email service error: %s", code), Err: err}
	}
}

// BreakerConfig holds the circuit breaker settings of the mailer
type BreakerConfig struct {
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold float64
	MinRequests      uint32
}

// DefaultBreakerConfig returns the breaker settings used in production
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxRequests:      1,
		Interval:         30 * time.Second,
		Timeout:          60 * time.Second,
		FailureThreshold: 0.8,
		MinRequests:      5,
	}
}

// Mailer sends plaintext email with SESv2 behind a circuit breaker
type Mailer struct {
	client  Client
	breaker *gobreaker.CircuitBreaker
	logger  *zap.Logger
}

var _ ports.Mailer = (*Mailer)(nil)

// NewMailer creates an SES mailer
func NewMailer(client Client, cfg BreakerConfig, logger *zap.Logger) *Mailer {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "ses",
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
		// A rejected message is the caller's fault, not an SES outage.
		IsSuccessful: func(err error) bool {
			return err == nil || Classify(err).Code == CodeMessageRejected
		},
	})

	return &Mailer{
		client:  client,
		breaker: breaker,
		logger:  logger,
	}
}

// Send delivers the email and returns the SES message ID
func (m *Mailer) Send(ctx context.Context, email ports.Email) (string, error) {
	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(email.From),
		Destination: &types.Destination{
			ToAddresses: email.To,
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(email.Subject), Charset: aws.String(charset)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(email.Body), Charset: aws.String(charset)},
				},
			},
		},
	}

	result, err := m.breaker.Execute(func() (interface{}, error) {
		return m.client.SendEmail(ctx, input)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			m.logger.Warn("SES circuit breaker rejected send", zap.Error(err))
			return "", &SendError{Code: "CircuitOpen", Message: "Email service temporarily unavailable", Err: err}
		}
		sendErr := Classify(err)
		m.logger.Error("SES send failed",
			zap.String("code", sendErr.Code),
			zap.Error(err),
		)
		return "", sendErr
	}

	out := result.(*sesv2.SendEmailOutput)
	return aws.ToString(out.MessageId), nil
}
