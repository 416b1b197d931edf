package observability

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"go.uber.org/zap"
)

// Metric names published by the services
const (
	MetricVisitorIncrements = "VisitorIncrements"
	MetricStorageErrors     = "StorageErrors"
	MetricContactDispatched = "ContactMessagesDispatched"
	MetricDispatchErrors    = "DispatchErrors"
)

// CloudWatchAPI is the subset of the CloudWatch client used for metrics
type CloudWatchAPI interface {
	PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

var _ CloudWatchAPI = (*cloudwatch.Client)(nil)

// Metrics publishes business counters to CloudWatch
type Metrics struct {
	namespace string
	client    CloudWatchAPI
	logger    *zap.Logger
}

// NewMetrics creates a CloudWatch metrics publisher.
// A nil client yields a publisher that records nothing.
func NewMetrics(namespace string, client CloudWatchAPI, logger *zap.Logger) *Metrics {
	return &Metrics{
		namespace: namespace,
		client:    client,
		logger:    logger,
	}
}

// IncrementCounter publishes a count of one for name.
// Failures are logged and never returned; metrics must not fail a request.
func (m *Metrics) IncrementCounter(ctx context.Context, name string, dimensions map[string]string) {
	if m == nil || m.client == nil {
		return
	}

	dims := make([]types.Dimension, 0, len(dimensions))
	for key, value := range dimensions {
		dims = append(dims, types.Dimension{Name: aws.String(key), Value: aws.String(value)})
	}

	_, err := m.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace: aws.String(m.namespace),
		MetricData: []types.MetricDatum{
			{
				MetricName: aws.String(name),
				Dimensions: dims,
				Timestamp:  aws.Time(time.Now()),
				Unit:       types.StandardUnitCount,
				Value:      aws.Float64(1),
			},
		},
	})
	if err != nil && m.logger != nil {
		m.logger.Warn("Failed to publish metric",
			zap.String("namespace", m.namespace),
			zap.String("metric", name),
			zap.Error(err),
		)
	}
}
