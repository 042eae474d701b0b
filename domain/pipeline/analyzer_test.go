package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeTypeCounts(t *testing.T) {
	p := &Pipeline{Nodes: []Node{
		{ID: "a", Type: "customInput"},
		{ID: "b", Type: "llm"},
		{ID: "c", Type: "customInput"},
		{ID: "d"},
	}}

	assert.Equal(t, map[string]int{
		"customInput": 2,
		"llm":         1,
		"":            1,
	}, p.NodeTypeCounts())
}

func TestSourceNodes(t *testing.T) {
	t.Run("untargeted nodes in input order", func(t *testing.T) {
		p := &Pipeline{
			Nodes: nodesWithIDs("a", "b", "c"),
			Edges: []Edge{{Source: "a", Target: "b"}},
		}
		assert.Equal(t, []string{"a", "c"}, p.SourceNodes())
	})

	t.Run("no edges makes every node a source", func(t *testing.T) {
		p := &Pipeline{Nodes: nodesWithIDs("a", "b")}
		assert.Equal(t, []string{"a", "b"}, p.SourceNodes())
	})

	t.Run("empty pipeline", func(t *testing.T) {
		p := &Pipeline{}
		assert.Empty(t, p.SourceNodes())
	})
}

func TestSinkNodes(t *testing.T) {
	t.Run("declared targets are not sinks", func(t *testing.T) {
		// b is a real node, so the target set minus the node set is
		// empty even though b has no outgoing edge.
		p := &Pipeline{
			Nodes: nodesWithIDs("a", "b"),
			Edges: []Edge{{Source: "a", Target: "b"}},
		}
		assert.Empty(t, p.SinkNodes())
	})

	t.Run("dangling targets surface as sinks", func(t *testing.T) {
		p := &Pipeline{
			Nodes: nodesWithIDs("a"),
			Edges: []Edge{
				{Source: "a", Target: "ghost"},
				{Source: "a", Target: "ghost"},
				{Source: "a", Target: "phantom"},
			},
		}
		assert.Equal(t, []string{"ghost", "phantom"}, p.SinkNodes())
	})

	t.Run("empty pipeline", func(t *testing.T) {
		p := &Pipeline{}
		assert.Empty(t, p.SinkNodes())
	})
}
