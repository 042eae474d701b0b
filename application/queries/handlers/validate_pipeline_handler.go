package handlers

import (
	"context"
	"fmt"

	"pipeline-backend/application/ports"
	"pipeline-backend/application/queries"
	"pipeline-backend/application/queries/bus"
	"pipeline-backend/domain/pipeline"
	"pipeline-backend/pkg/observability"

	"go.uber.org/zap"
)

// ValidatePipelineHandler answers ValidatePipelineQuery: the parse
// metrics plus the node-type histogram and the source/sink id sets.
// Every failure, decode or schema, collapses into the single
// validation error body.
type ValidatePipelineHandler struct {
	eventBus ports.EventBus
	metrics  *observability.Metrics
	logger   *zap.Logger
}

// NewValidatePipelineHandler creates a new validate handler
func NewValidatePipelineHandler(
	eventBus ports.EventBus,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *ValidatePipelineHandler {
	return &ValidatePipelineHandler{
		eventBus: eventBus,
		metrics:  metrics,
		logger:   logger,
	}
}

// Handle executes the validate query
func (h *ValidatePipelineHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	q, ok := query.(queries.ValidatePipelineQuery)
	if !ok {
		return nil, fmt.Errorf("invalid query type %T", query)
	}

	p, err := pipeline.Decode(q.Payload)
	if err != nil {
		h.logger.Warn("Pipeline validation failed", zap.Error(err))
		h.metrics.Count(ctx, observability.MetricAnalysisFailures, 1,
			map[string]string{"Endpoint": "validate"})

		return queries.PipelineError{
			Error:   "Error validating pipeline",
			Message: failureDetail(err),
		}, nil
	}

	result := queries.ValidatePipelineResult{
		NumNodes:    p.NumNodes(),
		NumEdges:    p.NumEdges(),
		IsDAG:       p.IsDAG(),
		NodeTypes:   p.NodeTypeCounts(),
		SourceNodes: p.SourceNodes(),
		SinkNodes:   p.SinkNodes(),
	}

	recordAnalysis(ctx, h.eventBus, h.metrics, h.logger, "validate",
		result.NumNodes, result.NumEdges, result.IsDAG)

	return result, nil
}
