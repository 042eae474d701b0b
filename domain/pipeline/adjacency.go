package pipeline

// BuildAdjacency maps every node id to the ordered list of its direct
// successors. Every declared node gets an entry, so isolated and sink
// nodes are represented. Duplicate node ids are last-wins: each
// occurrence re-initializes the entry before edges are applied.
//
// Edges whose source is not a declared node contribute nothing. Edges
// whose target is unknown are kept in the successor list; the detector
// treats unknown successors as dead ends, so filtering them here would
// only hide them from diagnostics.
func BuildAdjacency(nodes []Node, edges []Edge) map[string][]string {
	adj := make(map[string][]string, len(nodes))
	for _, n := range nodes {
		adj[n.ID] = []string{}
	}

	for _, e := range edges {
		if _, known := adj[e.Source]; known {
			adj[e.Source] = append(adj[e.Source], e.Target)
		}
	}

	return adj
}
