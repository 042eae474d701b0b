package handlers

import (
	"context"
	"testing"

	"pipeline-backend/application/queries"
	"pipeline-backend/domain/events"
	"pipeline-backend/pkg/observability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// recordingEventBus captures published events for assertions
type recordingEventBus struct {
	published []events.DomainEvent
}

func (b *recordingEventBus) Publish(ctx context.Context, event events.DomainEvent) error {
	b.published = append(b.published, event)
	return nil
}

func (b *recordingEventBus) PublishBatch(ctx context.Context, evs []events.DomainEvent) error {
	b.published = append(b.published, evs...)
	return nil
}

func newTestMetrics() *observability.Metrics {
	// nil client makes every Count a no-op
	return observability.NewMetrics("PipelineBackend/test", nil, zap.NewNop())
}

func TestParsePipelineHandler(t *testing.T) {
	eventBus := &recordingEventBus{}
	handler := NewParsePipelineHandler(eventBus, newTestMetrics(), zap.NewNop())
	ctx := context.Background()

	t.Run("acyclic pipeline", func(t *testing.T) {
		result, err := handler.Handle(ctx, queries.ParsePipelineQuery{
			Payload: `{"nodes":[{"id":"a"},{"id":"b"}],"edges":[{"source":"a","target":"b"}]}`,
		})
		require.NoError(t, err)

		parsed, ok := result.(queries.ParsePipelineResult)
		require.True(t, ok)
		assert.Empty(t, parsed.Error)
		assert.Equal(t, 2, parsed.NumNodes)
		assert.Equal(t, 1, parsed.NumEdges)
		assert.True(t, parsed.IsDAG)
	})

	t.Run("cyclic pipeline", func(t *testing.T) {
		result, err := handler.Handle(ctx, queries.ParsePipelineQuery{
			Payload: `{"nodes":[{"id":"a"},{"id":"b"}],"edges":[{"source":"a","target":"b"},{"source":"b","target":"a"}]}`,
		})
		require.NoError(t, err)

		parsed := result.(queries.ParsePipelineResult)
		assert.False(t, parsed.IsDAG)
		assert.Equal(t, 2, parsed.NumEdges)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		result, err := handler.Handle(ctx, queries.ParsePipelineQuery{Payload: `{not json`})
		require.NoError(t, err, "failures must come back as bodies, not errors")

		parsed := result.(queries.ParsePipelineResult)
		assert.Equal(t, "Invalid JSON format", parsed.Error)
		assert.NotEmpty(t, parsed.Message)
		assert.Zero(t, parsed.NumNodes)
		assert.Zero(t, parsed.NumEdges)
		assert.False(t, parsed.IsDAG)
	})

	t.Run("schema failure", func(t *testing.T) {
		result, err := handler.Handle(ctx, queries.ParsePipelineQuery{
			Payload: `{"nodes":[{"type":"llm"}],"edges":[]}`,
		})
		require.NoError(t, err)

		parsed := result.(queries.ParsePipelineResult)
		assert.Equal(t, "Error parsing pipeline", parsed.Error)
		assert.Contains(t, parsed.Message, "id is required")
		assert.Zero(t, parsed.NumNodes)
	})

	t.Run("empty pipeline", func(t *testing.T) {
		result, err := handler.Handle(ctx, queries.ParsePipelineQuery{
			Payload: `{"nodes":[],"edges":[]}`,
		})
		require.NoError(t, err)

		parsed := result.(queries.ParsePipelineResult)
		assert.Empty(t, parsed.Error)
		assert.Zero(t, parsed.NumNodes)
		assert.Zero(t, parsed.NumEdges)
		assert.True(t, parsed.IsDAG)
	})

	t.Run("publishes analysis event", func(t *testing.T) {
		before := len(eventBus.published)
		_, err := handler.Handle(ctx, queries.ParsePipelineQuery{
			Payload: `{"nodes":[{"id":"a"}],"edges":[]}`,
		})
		require.NoError(t, err)
		require.Len(t, eventBus.published, before+1)

		event, ok := eventBus.published[before].(events.PipelineAnalyzed)
		require.True(t, ok)
		assert.Equal(t, "pipeline.analyzed", event.GetEventType())
		assert.Equal(t, "parse", event.Endpoint)
		assert.Equal(t, 1, event.NumNodes)
		assert.True(t, event.IsDAG)
		assert.NotEmpty(t, event.AnalysisID)
	})

	t.Run("idempotent for identical payloads", func(t *testing.T) {
		payload := `{"nodes":[{"id":"a"},{"id":"b"}],"edges":[{"source":"a","target":"b"}]}`
		first, err := handler.Handle(ctx, queries.ParsePipelineQuery{Payload: payload})
		require.NoError(t, err)
		second, err := handler.Handle(ctx, queries.ParsePipelineQuery{Payload: payload})
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
