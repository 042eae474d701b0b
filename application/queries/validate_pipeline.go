package queries

// ValidatePipelineQuery asks for the extended analysis of a submitted
// pipeline: counts and DAG-ness plus the node-type histogram and the
// source/sink id sets.
type ValidatePipelineQuery struct {
	Payload string `json:"payload"`
}

// Validate validates the query
func (q ValidatePipelineQuery) Validate() error {
	return nil
}

// ValidatePipelineResult is the success body for the validate
// endpoint.
type ValidatePipelineResult struct {
	NumNodes    int            `json:"num_nodes"`
	NumEdges    int            `json:"num_edges"`
	IsDAG       bool           `json:"is_dag"`
	NodeTypes   map[string]int `json:"node_types"`
	SourceNodes []string       `json:"source_nodes"`
	SinkNodes   []string       `json:"sink_nodes"`
}

// PipelineError is the failure body for the validate endpoint: just
// the failure class and detail, no zeroed metric fields.
type PipelineError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
