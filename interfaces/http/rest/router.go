package rest

import (
	"net/http"

	"resume-backend/application/ports"
	"resume-backend/interfaces/http/rest/handlers"
	"resume-backend/interfaces/http/rest/middleware"
	apperrors "resume-backend/pkg/errors"
	"resume-backend/pkg/observability"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// VisitorService is what the router needs from the visitor counter
type VisitorService interface {
	ports.VisitorCounter
	handlers.CountReader
}

// Router creates and configures the HTTP router
type Router struct {
	visitorService VisitorService
	contactService ports.ContactDispatcher
	renderer       handlers.PageRenderer
	collector      *observability.Collector
	tracer         *observability.Tracer
	logger         *zap.Logger
}

// NewRouter creates a new router instance.
// A nil collector disables /metrics and request metrics.
func NewRouter(
	visitorService VisitorService,
	contactService ports.ContactDispatcher,
	renderer handlers.PageRenderer,
	collector *observability.Collector,
	tracer *observability.Tracer,
	logger *zap.Logger,
) *Router {
	return &Router{
		visitorService: visitorService,
		contactService: contactService,
		renderer:       renderer,
		collector:      collector,
		tracer:         tracer,
		logger:         logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(apperrors.NewErrorHandler(rt.logger).Middleware)
	router.Use(middleware.Logger(rt.logger))
	router.Use(rt.tracer.Middleware)
	if rt.collector != nil {
		router.Use(rt.collector.Middleware)
	}

	// CORS configuration; the endpoints are public and carry no credentials
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:     []string{"*"},
		AllowedMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:     []string{"Content-Type"},
		OptionsPassthrough: true,
		MaxAge:             300,
	}))

	visitorHandler := handlers.NewVisitorHandler(rt.visitorService, rt.logger)
	contactHandler := handlers.NewContactHandler(rt.contactService, rt.logger)
	healthHandler := handlers.NewHealthHandler(rt.visitorService, rt.logger)

	// Health check
	router.Get("/health", healthHandler.Health)
	router.Get("/ready", healthHandler.Ready)

	if rt.collector != nil {
		router.Method(http.MethodGet, "/metrics", rt.collector.Handler())
	}

	// API Gateway paths and the same-origin paths used by the server page
	for _, prefix := range []string{"", "/api"} {
		router.Get(prefix+"/visitor", visitorHandler.GetVisitorCount)
		router.Options(prefix+"/visitor", visitorHandler.Options)
		router.Post(prefix+"/contact", contactHandler.SubmitContact)
		router.Options(prefix+"/contact", contactHandler.Options)
	}

	if rt.renderer != nil {
		pageHandler := handlers.NewPageHandler(rt.renderer, rt.logger)
		router.Get("/", pageHandler.Index)
		router.Get("/config.js", pageHandler.ConfigJS)
	}

	return router
}
