package gateway

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"testing"

	"resume-backend/application/ports"
	"resume-backend/application/services"
	"resume-backend/infrastructure/messaging/eventbridge"
	"resume-backend/infrastructure/persistence"
	"resume-backend/infrastructure/persistence/memory"
	"resume-backend/pkg/observability"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubMailer struct {
	err error
}

func (m stubMailer) Send(context.Context, ports.Email) (string, error) {
	return "msg-1", m.err
}

type brokenBackend struct {
	*memory.CounterStore
	puts int
}

func (b *brokenBackend) Get(context.Context, string) (int, error) {
	return 0, errors.New("AccessDeniedException")
}

func (b *brokenBackend) Put(context.Context, string, int) error {
	b.puts++
	return nil
}

func newHandlers(t *testing.T, store ports.CounterStore, mailErr error) *Handlers {
	t.Helper()

	logger := zap.NewNop()
	tracer := observability.NewTracer("resume-backend", false)
	metrics := observability.NewMetrics("Resume/test", nil, logger)
	publisher := eventbridge.DiscardPublisher{}

	return NewHandlers(
		services.NewVisitorService(store, "resume", publisher, metrics, tracer, logger),
		services.NewContactService(stubMailer{err: mailErr}, "owner@example.com", publisher, metrics, tracer, logger),
		logger,
	)
}

func TestVisitor_CountsFromEmptyStore(t *testing.T) {
	h := newHandlers(t, memory.NewCounterStore(), nil)
	ctx := context.Background()
	req := events.APIGatewayProxyRequest{HTTPMethod: http.MethodGet, Path: "/visitor"}

	first, err := h.Visitor(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, first.StatusCode)
	assert.JSONEq(t, `{"count":1}`, first.Body)
	assert.Equal(t, "*", first.Headers["Access-Control-Allow-Origin"])

	second, err := h.Visitor(ctx, req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"count":2}`, second.Body)
}

func TestVisitor_ReadFailureNeverWrites(t *testing.T) {
	backend := &brokenBackend{CounterStore: memory.NewCounterStore()}
	store, err := persistence.WithMode(backend, persistence.ModeReadWrite)
	require.NoError(t, err)

	h := newHandlers(t, store, nil)

	resp, err := h.Visitor(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: http.MethodGet})

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, resp.Body, "AccessDeniedException")
	assert.Zero(t, backend.puts)
}

func TestContact(t *testing.T) {
	ctx := context.Background()
	body := `{"name":"A","email":"a@b.com","message":"Hello"}`

	t.Run("Should return the recipient on success", func(t *testing.T) {
		resp, err := newHandlers(t, memory.NewCounterStore(), nil).Contact(ctx, events.APIGatewayProxyRequest{
			HTTPMethod: http.MethodPost,
			Body:       body,
		})

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"message":"Email sent successfully","recipient":"owner@example.com"}`, resp.Body)
		assert.Equal(t, "OPTIONS,POST", resp.Headers["Access-Control-Allow-Methods"])
		assert.Equal(t, "Content-Type", resp.Headers["Access-Control-Allow-Headers"])
	})

	t.Run("Should decode base64 bodies", func(t *testing.T) {
		resp, err := newHandlers(t, memory.NewCounterStore(), nil).Contact(ctx, events.APIGatewayProxyRequest{
			HTTPMethod:      http.MethodPost,
			Body:            base64.StdEncoding.EncodeToString([]byte(body)),
			IsBase64Encoded: true,
		})

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Should return 500 when sending fails", func(t *testing.T) {
		resp, err := newHandlers(t, memory.NewCounterStore(), errors.New("Email sending is paused for this account")).Contact(ctx, events.APIGatewayProxyRequest{
			HTTPMethod: http.MethodPost,
			Body:       body,
		})

		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.JSONEq(t, `{"error":"Email sending is paused for this account"}`, resp.Body)
	})

	t.Run("Should return 500 for a missing body", func(t *testing.T) {
		resp, err := newHandlers(t, memory.NewCounterStore(), nil).Contact(ctx, events.APIGatewayProxyRequest{
			HTTPMethod: http.MethodPost,
		})

		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Contains(t, resp.Body, "Invalid request body")
	})

	t.Run("Should reject an oversized body", func(t *testing.T) {
		resp, err := newHandlers(t, memory.NewCounterStore(), nil).Contact(ctx, events.APIGatewayProxyRequest{
			HTTPMethod: http.MethodPost,
			Body:       `{"message":"` + strings.Repeat("x", 70<<10) + `"}`,
		})

		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.JSONEq(t, `{"error":"Invalid request body: http: request body too large"}`, resp.Body)
	})

	t.Run("Should answer preflight", func(t *testing.T) {
		resp, err := newHandlers(t, memory.NewCounterStore(), nil).Contact(ctx, events.APIGatewayProxyRequest{
			HTTPMethod: http.MethodOptions,
		})

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Empty(t, resp.Body)
		assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])
	})
}
