package di

import (
	"context"
	"fmt"

	"resume-backend/application/ports"
	"resume-backend/application/services"
	"resume-backend/infrastructure/config"
	"resume-backend/infrastructure/messaging/eventbridge"
	"resume-backend/infrastructure/messaging/logmail"
	"resume-backend/infrastructure/messaging/ses"
	"resume-backend/infrastructure/persistence"
	"resume-backend/infrastructure/persistence/bolt"
	"resume-backend/infrastructure/persistence/dynamodb"
	"resume-backend/infrastructure/persistence/memory"
	"resume-backend/infrastructure/persistence/sqlite"
	"resume-backend/pkg/observability"
	"resume-backend/web"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-xray-sdk-go/instrumentation/awsv2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ServiceName names the service in traces and health responses
const ServiceName = "resume-backend"

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	var zapCfg zap.Config
	if cfg.IsDevelopment() {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}

	logger = logger.With(
		zap.String("service", ServiceName),
		zap.String("environment", cfg.Environment),
	)
	if cfg.LambdaFunctionName != "" {
		logger = logger.With(zap.String("function", cfg.LambdaFunctionName))
	}
	return logger, nil
}

// ProvideAWSConfig creates AWS configuration.
// With tracing enabled every SDK call is recorded as an X-Ray subsegment.
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}

	if cfg.EnableTracing {
		awsv2.AWSV2Instrumentor(&awsCfg.APIOptions)
	}

	return awsCfg, nil
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideSESClient creates an SESv2 client
func ProvideSESClient(awsCfg aws.Config) *sesv2.Client {
	return sesv2.NewFromConfig(awsCfg)
}

// ProvideEventBridgeClient creates an EventBridge client
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideCloudWatchClient creates a CloudWatch client
func ProvideCloudWatchClient(awsCfg aws.Config) *awscloudwatch.Client {
	return awscloudwatch.NewFromConfig(awsCfg)
}

// ProvideCounterStore opens the configured counter backend and applies the counter mode.
// The cleanup closes file-backed stores.
func ProvideCounterStore(cfg *config.Config, client *awsdynamodb.Client, logger *zap.Logger) (ports.CounterStore, func(), error) {
	var (
		backend ports.CounterBackend
		cleanup = func() {}
	)

	switch cfg.CounterBackend {
	case config.BackendDynamoDB:
		backend = dynamodb.NewCounterStore(client, cfg.DynamoDBTable, logger)
	case config.BackendSQLite:
		store, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		backend = store
		cleanup = closer(store.Close, logger)
	case config.BackendBolt:
		store, err := bolt.Open(cfg.BoltPath)
		if err != nil {
			return nil, nil, err
		}
		backend = store
		cleanup = closer(store.Close, logger)
	case config.BackendMemory:
		backend = memory.NewCounterStore()
	default:
		return nil, nil, fmt.Errorf("unknown counter backend %q", cfg.CounterBackend)
	}

	store, err := persistence.WithMode(backend, cfg.CounterMode)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	logger.Info("Counter store ready",
		zap.String("backend", cfg.CounterBackend),
		zap.String("mode", cfg.CounterMode),
	)
	return store, cleanup, nil
}

func closer(closeFn func() error, logger *zap.Logger) func() {
	return func() {
		if err := closeFn(); err != nil {
			logger.Error("Failed to close counter store", zap.Error(err))
		}
	}
}

// ProvideMailer creates the configured mail backend
func ProvideMailer(cfg *config.Config, client *sesv2.Client, logger *zap.Logger) (ports.Mailer, error) {
	switch cfg.MailBackend {
	case config.MailBackendSES:
		return ses.NewMailer(client, ses.DefaultBreakerConfig(), logger), nil
	case config.MailBackendLog:
		return logmail.NewMailer(logger), nil
	default:
		return nil, fmt.Errorf("unknown mail backend %q", cfg.MailBackend)
	}
}

// ProvideEventPublisher creates an EventBridge publisher, or a discarding one without a bus
func ProvideEventPublisher(cfg *config.Config, client *awseventbridge.Client, logger *zap.Logger) ports.EventPublisher {
	if cfg.EventBusName == "" {
		return eventbridge.DiscardPublisher{}
	}
	return eventbridge.NewPublisher(client, cfg.EventBusName, logger)
}

// ProvideMetrics creates the CloudWatch business metrics publisher
func ProvideMetrics(cfg *config.Config, client *awscloudwatch.Client, logger *zap.Logger) ports.Metrics {
	// A nil interface, not a typed nil pointer, turns the publisher into a no-op.
	var cw observability.CloudWatchAPI
	if cfg.EnableMetrics {
		cw = client
	}
	return observability.NewMetrics(cfg.MetricsNamespace, cw, logger)
}

// ProvideTracer creates the X-Ray tracer
func ProvideTracer(cfg *config.Config) *observability.Tracer {
	return observability.NewTracer(ServiceName, cfg.EnableTracing)
}

// ProvideVisitorService creates the visitor service
func ProvideVisitorService(
	store ports.CounterStore,
	cfg *config.Config,
	publisher ports.EventPublisher,
	metrics ports.Metrics,
	tracer *observability.Tracer,
	logger *zap.Logger,
) *services.VisitorService {
	return services.NewVisitorService(store, cfg.CounterID, publisher, metrics, tracer, logger)
}

// ProvideContactService creates the contact service
func ProvideContactService(
	mailer ports.Mailer,
	cfg *config.Config,
	publisher ports.EventPublisher,
	metrics ports.Metrics,
	tracer *observability.Tracer,
	logger *zap.Logger,
) *services.ContactService {
	return services.NewContactService(mailer, cfg.EmailRecipient, publisher, metrics, tracer, logger)
}

// ProvideCollector creates the Prometheus collector
func ProvideCollector() *observability.Collector {
	return observability.NewCollector("resume")
}

// ProvideRenderer compiles the resume page templates
func ProvideRenderer(cfg *config.Config) (*web.Renderer, error) {
	return web.NewRenderer(cfg.SiteTitle, cfg.APIBaseURL)
}
