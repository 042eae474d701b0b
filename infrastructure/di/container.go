package di

import (
	"pipeline-backend/application/ports"
	querybus "pipeline-backend/application/queries/bus"
	"pipeline-backend/infrastructure/config"
	"pipeline-backend/pkg/observability"

	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config   *config.Config
	Logger   *zap.Logger
	EventBus ports.EventBus
	Metrics  *observability.Metrics
	Tracer   *observability.Tracer
	QueryBus *querybus.QueryBus
}
