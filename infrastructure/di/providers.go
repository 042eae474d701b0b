package di

import (
	"context"
	"fmt"

	"pipeline-backend/application/ports"
	"pipeline-backend/application/queries"
	querybus "pipeline-backend/application/queries/bus"
	queries_handlers "pipeline-backend/application/queries/handlers"
	"pipeline-backend/infrastructure/config"
	"pipeline-backend/infrastructure/messaging"
	"pipeline-backend/infrastructure/messaging/eventbridge"
	"pipeline-backend/pkg/observability"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"go.uber.org/zap"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var logger *zap.Logger
	var err error

	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, err
	}

	return logger, nil
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideEventBridgeClient creates an EventBridge client
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideCloudWatchClient creates a CloudWatch client
func ProvideCloudWatchClient(awsCfg aws.Config) *awscloudwatch.Client {
	return awscloudwatch.NewFromConfig(awsCfg)
}

// ProvideEventBus creates the event bus. Publishing is opt-in; the
// noop bus keeps the handlers unconditional.
func ProvideEventBus(client *awseventbridge.Client, cfg *config.Config, logger *zap.Logger) ports.EventBus {
	if !cfg.EnableEvents {
		return messaging.NewNoopEventBus()
	}
	return eventbridge.NewPublisher(client, cfg.EventBusName, logger)
}

// ProvideMetrics creates the metrics publisher
func ProvideMetrics(client *awscloudwatch.Client, cfg *config.Config, logger *zap.Logger) *observability.Metrics {
	namespace := fmt.Sprintf("PipelineBackend/%s", cfg.Environment)
	if !cfg.EnableMetrics {
		client = nil
	}
	return observability.NewMetrics(namespace, client, logger)
}

// ProvideTracer creates the tracer
func ProvideTracer(cfg *config.Config) *observability.Tracer {
	return observability.NewTracer("pipeline-backend", cfg.EnableTracing)
}

// ProvideQueryBus creates a query bus with registered handlers
func ProvideQueryBus(
	eventBus ports.EventBus,
	metrics *observability.Metrics,
	tracer *observability.Tracer,
	logger *zap.Logger,
) (*querybus.QueryBus, error) {
	queryBus := querybus.NewQueryBus()

	middleware := []querybus.Middleware{
		querybus.LoggingMiddleware(logger),
		querybus.TracingMiddleware(tracer),
	}

	parseHandler := queries_handlers.NewParsePipelineHandler(eventBus, metrics, logger)
	if err := queryBus.Register(
		queries.ParsePipelineQuery{},
		querybus.Chain(parseHandler, middleware...),
	); err != nil {
		return nil, err
	}

	validateHandler := queries_handlers.NewValidatePipelineHandler(eventBus, metrics, logger)
	if err := queryBus.Register(
		queries.ValidatePipelineQuery{},
		querybus.Chain(validateHandler, middleware...),
	); err != nil {
		return nil, err
	}

	return queryBus, nil
}
