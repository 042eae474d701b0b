package handlers

import (
	"context"
	"fmt"

	"pipeline-backend/application/ports"
	"pipeline-backend/application/queries"
	"pipeline-backend/application/queries/bus"
	"pipeline-backend/domain/events"
	"pipeline-backend/domain/pipeline"
	"pipeline-backend/pkg/observability"

	"go.uber.org/zap"
)

// ParsePipelineHandler answers ParsePipelineQuery: decode the payload,
// build the adjacency structure, detect cycles, count. Failures are
// converted into the success-shaped error body here rather than
// propagated, because the response contract embeds errors instead of
// raising them.
type ParsePipelineHandler struct {
	eventBus ports.EventBus
	metrics  *observability.Metrics
	logger   *zap.Logger
}

// NewParsePipelineHandler creates a new parse handler
func NewParsePipelineHandler(
	eventBus ports.EventBus,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *ParsePipelineHandler {
	return &ParsePipelineHandler{
		eventBus: eventBus,
		metrics:  metrics,
		logger:   logger,
	}
}

// Handle executes the parse query
func (h *ParsePipelineHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	q, ok := query.(queries.ParsePipelineQuery)
	if !ok {
		return nil, fmt.Errorf("invalid query type %T", query)
	}

	p, err := pipeline.Decode(q.Payload)
	if err != nil {
		h.logger.Warn("Pipeline parse failed", zap.Error(err))
		h.metrics.Count(ctx, observability.MetricAnalysisFailures, 1,
			map[string]string{"Endpoint": "parse"})

		return queries.ParsePipelineResult{
			Error:   failureClass(err, "Error parsing pipeline"),
			Message: failureDetail(err),
		}, nil
	}

	result := queries.ParsePipelineResult{
		NumNodes: p.NumNodes(),
		NumEdges: p.NumEdges(),
		IsDAG:    p.IsDAG(),
	}

	recordAnalysis(ctx, h.eventBus, h.metrics, h.logger, "parse",
		result.NumNodes, result.NumEdges, result.IsDAG)

	return result, nil
}

// recordAnalysis publishes the analysis event and counters. Both are
// best effort; a bus or metrics failure never changes the response.
func recordAnalysis(
	ctx context.Context,
	eventBus ports.EventBus,
	metrics *observability.Metrics,
	logger *zap.Logger,
	endpoint string,
	numNodes, numEdges int,
	isDAG bool,
) {
	event := events.NewPipelineAnalyzed(endpoint, numNodes, numEdges, isDAG)
	if err := eventBus.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish analysis event",
			zap.String("analysisID", event.AnalysisID),
			zap.Error(err),
		)
	}

	metrics.Count(ctx, observability.MetricPipelinesAnalyzed, 1,
		map[string]string{"Endpoint": endpoint})
	if !isDAG {
		metrics.Count(ctx, observability.MetricCyclesDetected, 1,
			map[string]string{"Endpoint": endpoint})
	}
}
