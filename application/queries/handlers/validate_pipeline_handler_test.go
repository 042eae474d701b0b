package handlers

import (
	"context"
	"testing"

	"pipeline-backend/application/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestValidatePipelineHandler(t *testing.T) {
	handler := NewValidatePipelineHandler(&recordingEventBus{}, newTestMetrics(), zap.NewNop())
	ctx := context.Background()

	t.Run("full analysis", func(t *testing.T) {
		result, err := handler.Handle(ctx, queries.ValidatePipelineQuery{
			Payload: `{
				"nodes":[{"id":"a","type":"customInput"},{"id":"b","type":"llm"},{"id":"c","type":"llm"}],
				"edges":[{"source":"a","target":"b"},{"source":"b","target":"c"}]
			}`,
		})
		require.NoError(t, err)

		validated, ok := result.(queries.ValidatePipelineResult)
		require.True(t, ok)
		assert.Equal(t, 3, validated.NumNodes)
		assert.Equal(t, 2, validated.NumEdges)
		assert.True(t, validated.IsDAG)
		assert.Equal(t, map[string]int{"customInput": 1, "llm": 2}, validated.NodeTypes)
		assert.Equal(t, []string{"a"}, validated.SourceNodes)
		assert.Empty(t, validated.SinkNodes)
	})

	t.Run("dangling target shows up as sink", func(t *testing.T) {
		result, err := handler.Handle(ctx, queries.ValidatePipelineQuery{
			Payload: `{"nodes":[{"id":"a"}],"edges":[{"source":"a","target":"ghost"}]}`,
		})
		require.NoError(t, err)

		validated := result.(queries.ValidatePipelineResult)
		assert.Equal(t, []string{"ghost"}, validated.SinkNodes)
		assert.Equal(t, []string{"a"}, validated.SourceNodes)
	})

	t.Run("empty pipeline", func(t *testing.T) {
		result, err := handler.Handle(ctx, queries.ValidatePipelineQuery{
			Payload: `{"nodes":[],"edges":[]}`,
		})
		require.NoError(t, err)

		validated := result.(queries.ValidatePipelineResult)
		assert.Zero(t, validated.NumNodes)
		assert.Zero(t, validated.NumEdges)
		assert.True(t, validated.IsDAG)
		assert.Empty(t, validated.NodeTypes)
		assert.Empty(t, validated.SourceNodes)
		assert.Empty(t, validated.SinkNodes)
	})

	t.Run("any failure collapses to one error label", func(t *testing.T) {
		for name, payload := range map[string]string{
			"malformed JSON": `{not json`,
			"missing id":     `{"nodes":[{"type":"llm"}]}`,
		} {
			t.Run(name, func(t *testing.T) {
				result, err := handler.Handle(ctx, queries.ValidatePipelineQuery{Payload: payload})
				require.NoError(t, err)

				failure, ok := result.(queries.PipelineError)
				require.True(t, ok)
				assert.Equal(t, "Error validating pipeline", failure.Error)
				assert.NotEmpty(t, failure.Message)
			})
		}
	})
}
