package di

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"resume-backend/infrastructure/config"
	"resume-backend/interfaces/gateway"
	"resume-backend/interfaces/http/rest"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// localConfig keeps the AWS SDK away from the developer's profiles
func localConfig(backend string, t *testing.T) *config.Config {
	dir := t.TempDir()
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_CONFIG_FILE", filepath.Join(dir, "aws-config"))
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(dir, "aws-credentials"))
	return &config.Config{
		ServerAddress:  ":0",
		Environment:    "development",
		SiteTitle:      "Resume",
		AWSRegion:      "eu-west-1",
		DynamoDBTable:  "ResumeVisitorCount",
		CounterID:      "resume",
		CounterBackend: backend,
		CounterMode:    "atomic",
		SQLitePath:     filepath.Join(dir, "visitors.db"),
		BoltPath:       filepath.Join(dir, "visitors.bolt"),
		ContactEnabled: true,
		EmailRecipient: "owner@example.com",
		MailBackend:    config.MailBackendLog,
		LogLevel:       "error",
	}
}

func newContainer(t *testing.T, cfg *config.Config) *Container {
	t.Helper()
	require.NoError(t, cfg.Validate())

	container, cleanup, err := InitializeContainer(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(cleanup)
	return container
}

func TestInitializeContainer_ServerEndToEnd(t *testing.T) {
	for _, backend := range []string{config.BackendMemory, config.BackendSQLite, config.BackendBolt} {
		t.Run(backend, func(t *testing.T) {
			c := newContainer(t, localConfig(backend, t))
			handler := rest.NewRouter(c.VisitorService, c.ContactService, c.Renderer, c.Collector, c.Tracer, c.Logger).Setup()

			for _, expected := range []string{`{"count":1}`, `{"count":2}`} {
				rec := httptest.NewRecorder()
				handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/visitor", nil))
				require.Equal(t, http.StatusOK, rec.Code)
				assert.JSONEq(t, expected, rec.Body.String())
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/contact",
				strings.NewReader(`{"name":"A","email":"a@b.com","message":"Hello"}`)))
			require.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"message":"Email sent successfully","recipient":"owner@example.com"}`, rec.Body.String())
		})
	}
}

func TestInitializeContainer_LambdaEndToEnd(t *testing.T) {
	cfg := localConfig(config.BackendMemory, t)
	cfg.CounterMode = "read-write"
	c := newContainer(t, cfg)
	h := gateway.NewHandlers(c.VisitorService, c.ContactService, c.Logger)
	ctx := context.Background()

	first, err := h.Visitor(ctx, events.APIGatewayProxyRequest{HTTPMethod: http.MethodGet})
	require.NoError(t, err)
	assert.JSONEq(t, `{"count":1}`, first.Body)

	second, err := h.Visitor(ctx, events.APIGatewayProxyRequest{HTTPMethod: http.MethodGet})
	require.NoError(t, err)
	assert.JSONEq(t, `{"count":2}`, second.Body)
}

func TestInitializeContainer_Errors(t *testing.T) {
	t.Run("unknown counter mode", func(t *testing.T) {
		cfg := localConfig(config.BackendMemory, t)
		cfg.CounterMode = "optimistic"

		_, _, err := InitializeContainer(context.Background(), cfg)
		assert.Error(t, err)
	})

	t.Run("unknown mail backend", func(t *testing.T) {
		cfg := localConfig(config.BackendMemory, t)
		cfg.MailBackend = "smtp"

		_, _, err := InitializeContainer(context.Background(), cfg)
		assert.Error(t, err)
	})
}

func TestProvideMetrics_DisabledIsNoop(t *testing.T) {
	cfg := localConfig(config.BackendMemory, t)
	c := newContainer(t, cfg)

	metrics := ProvideMetrics(cfg, nil, c.Logger)
	assert.NotPanics(t, func() {
		metrics.IncrementCounter(context.Background(), "VisitorIncrements", nil)
	})
}
