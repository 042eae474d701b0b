package queries

// ParsePipelineQuery asks for the basic structural metrics of a
// submitted pipeline. Payload is the raw JSON string from the
// `pipeline` form field, passed through unparsed: decoding is part of
// the analysis, because decode failures are themselves a documented
// response shape.
type ParsePipelineQuery struct {
	Payload string `json:"payload"`
}

// Validate validates the query
func (q ParsePipelineQuery) Validate() error {
	// An empty or garbage payload is an answerable question (it yields
	// the Invalid JSON response), not an invalid query.
	return nil
}

// ParsePipelineResult is the response body for the parse endpoint. On
// success the error fields are absent. On failure they carry the
// failure class and detail while the metrics stay zeroed; the caller
// still receives a well-formed body either way.
type ParsePipelineResult struct {
	Error    string `json:"error,omitempty"`
	Message  string `json:"message,omitempty"`
	NumNodes int    `json:"num_nodes"`
	NumEdges int    `json:"num_edges"`
	IsDAG    bool   `json:"is_dag"`
}
