package pipeline

// NodeTypeCounts returns how many submitted nodes carry each type
// label. Duplicate node ids still count individually; the histogram is
// over the raw submission, not a deduplicated graph.
func (p *Pipeline) NodeTypeCounts() map[string]int {
	counts := make(map[string]int, len(p.Nodes))
	for _, n := range p.Nodes {
		counts[n.Type]++
	}
	return counts
}

// SourceNodes returns the declared node ids that no edge targets, in
// first-appearance order. These are the entry points of the pipeline.
func (p *Pipeline) SourceNodes() []string {
	targeted := make(map[string]struct{}, len(p.Edges))
	for _, e := range p.Edges {
		targeted[e.Target] = struct{}{}
	}

	sources := make([]string, 0, len(p.Nodes))
	seen := make(map[string]struct{}, len(p.Nodes))
	for _, n := range p.Nodes {
		if _, ok := targeted[n.ID]; ok {
			continue
		}
		if _, dup := seen[n.ID]; dup {
			continue
		}
		seen[n.ID] = struct{}{}
		sources = append(sources, n.ID)
	}
	return sources
}

// SinkNodes returns the edge-target ids that are not declared node
// ids, in first-appearance order. Note this is pure set arithmetic
// over the submitted lists, not "nodes without outgoing edges": an
// edge pointing at an id that was never declared as a node surfaces
// here even though it names no real node. Downstream consumers depend
// on that behavior for dangling-reference diagnostics.
func (p *Pipeline) SinkNodes() []string {
	declared := make(map[string]struct{}, len(p.Nodes))
	for _, n := range p.Nodes {
		declared[n.ID] = struct{}{}
	}

	sinks := make([]string, 0, len(p.Edges))
	seen := make(map[string]struct{}, len(p.Edges))
	for _, e := range p.Edges {
		if _, ok := declared[e.Target]; ok {
			continue
		}
		if _, dup := seen[e.Target]; dup {
			continue
		}
		seen[e.Target] = struct{}{}
		sinks = append(sinks, e.Target)
	}
	return sinks
}
