package pipeline

// Node is a single element of a submitted pipeline. Nodes are inert
// records: the service only ever looks at the id (graph identity) and
// the type label (histograms). Position, dimensions and the data bag
// are carried through untouched so round-tripping editor state stays
// lossless.
type Node struct {
	ID       string                 `json:"id" validate:"required"`
	Type     string                 `json:"type"`
	Position map[string]float64     `json:"position"`
	Data     map[string]interface{} `json:"data"`
	Width    int                    `json:"width"`
	Height   int                    `json:"height"`
}

// Edge is a directed connection from Source to Target. The handle
// fields name sub-connection points on the editor canvas and are not
// validated against node geometry. Source and Target may reference ids
// that were never declared as nodes; such edges are tolerated, not
// rejected.
type Edge struct {
	ID           string `json:"id"`
	Source       string `json:"source"`
	SourceHandle string `json:"sourceHandle"`
	Target       string `json:"target"`
	TargetHandle string `json:"targetHandle"`
	Type         string `json:"type"`
}

// Pipeline is the top-level payload submitted by the editor. Missing
// keys decode to nil slices, which the analysis treats as empty.
type Pipeline struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// NumNodes returns the raw submitted node count, duplicates included.
func (p *Pipeline) NumNodes() int {
	return len(p.Nodes)
}

// NumEdges returns the raw submitted edge count, dangling references
// included.
func (p *Pipeline) NumEdges() int {
	return len(p.Edges)
}

// NodeOrder returns the node ids in submission order, duplicates
// included. Traversals scan starting points in this order so results
// are reproducible for a given payload.
func (p *Pipeline) NodeOrder() []string {
	order := make([]string, len(p.Nodes))
	for i, n := range p.Nodes {
		order[i] = n.ID
	}
	return order
}
