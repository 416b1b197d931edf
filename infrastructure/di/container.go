package di

import (
	"resume-backend/application/services"
	"resume-backend/infrastructure/config"
	"resume-backend/pkg/observability"
	"resume-backend/web"

	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config         *config.Config
	Logger         *zap.Logger
	VisitorService *services.VisitorService
	ContactService *services.ContactService
	Collector      *observability.Collector
	Tracer         *observability.Tracer
	Renderer       *web.Renderer
}
