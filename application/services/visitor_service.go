package services

import (
	"context"

	"resume-backend/application/ports"
	"resume-backend/domain/events"
	apperrors "resume-backend/pkg/errors"
	"resume-backend/pkg/observability"
	"resume-backend/pkg/utils"

	"go.uber.org/zap"
)

// VisitorService counts page views against the shared counter record
type VisitorService struct {
	store     ports.CounterStore
	counterID string
	publisher ports.EventPublisher
	metrics   ports.Metrics
	tracer    *observability.Tracer
	logger    *zap.Logger
}

// NewVisitorService creates a new visitor service
func NewVisitorService(
	store ports.CounterStore,
	counterID string,
	publisher ports.EventPublisher,
	metrics ports.Metrics,
	tracer *observability.Tracer,
	logger *zap.Logger,
) *VisitorService {
	return &VisitorService{
		store:     store,
		counterID: counterID,
		publisher: publisher,
		metrics:   metrics,
		tracer:    tracer,
		logger:    logger,
	}
}

// GetAndIncrementVisitorCount records one page view and returns the new total.
// Storage failures are returned as storage errors and never retried.
func (s *VisitorService) GetAndIncrementVisitorCount(ctx context.Context) (int, error) {
	var count int
	err := s.tracer.TraceFunction(ctx, "IncrementVisitorCount", func(ctx context.Context) error {
		var err error
		count, err = s.store.Increment(ctx, s.counterID)
		return err
	})
	if err != nil {
		s.logger.Error("Failed to increment visitor count",
			zap.String("counterID", s.counterID),
			zap.Error(err),
		)
		s.metrics.IncrementCounter(ctx, observability.MetricStorageErrors, nil)
		return 0, apperrors.NewStorageError("increment", err)
	}

	s.logger.Debug("Visitor counted",
		zap.String("counterID", s.counterID),
		zap.Int("count", count),
	)
	s.metrics.IncrementCounter(ctx, observability.MetricVisitorIncrements, nil)

	if err := s.publisher.Publish(ctx, events.NewVisitorCounted(s.counterID, count, utils.Now())); err != nil {
		s.logger.Warn("Failed to publish visitor event", zap.Error(err))
	}

	return count, nil
}

// CurrentVisitorCount reads the counter without recording a view
func (s *VisitorService) CurrentVisitorCount(ctx context.Context) (int, error) {
	count, err := s.store.Get(ctx, s.counterID)
	if err != nil {
		return 0, apperrors.NewStorageError("get", err)
	}
	return count, nil
}
