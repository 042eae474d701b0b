package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	pkgerrors "pipeline-backend/pkg/errors"
	"pipeline-backend/pkg/utils"
)

// Decode parses the raw pipeline JSON submitted by the editor and
// checks that every node carries an id. Failures come back as typed
// errors so the transport layer can tell a malformed payload from a
// structurally invalid one:
//
//   - pkg/errors ErrorTypeDecode wraps the json error when the payload
//     is not valid JSON at all;
//   - pkg/errors ErrorTypeValidation covers JSON that parses but fails
//     to populate required fields (e.g. a node without an id) or binds
//     the wrong shape to a known key.
//
// A missing "nodes" or "edges" key is not an error; the slices stay
// nil and the pipeline is simply empty on that axis.
func Decode(raw string) (*Pipeline, error) {
	// A top-level null decodes into a zero struct without error, but
	// it is not a pipeline object.
	if strings.TrimSpace(raw) == "null" {
		return nil, pkgerrors.NewValidationError("pipeline must be a JSON object")
	}

	var p Pipeline
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		var syn *json.SyntaxError
		if errors.As(err, &syn) {
			return nil, pkgerrors.NewDecodeError(err)
		}
		// Type mismatches mean the JSON itself was fine but the shape
		// was not, which is a schema problem.
		return nil, pkgerrors.NewValidationError(err.Error()).WithCause(err)
	}

	for i, n := range p.Nodes {
		if err := utils.ValidateStruct(n); err != nil {
			return nil, pkgerrors.NewValidationError(
				fmt.Sprintf("node %d: %v", i, err)).WithCause(err)
		}
	}

	return &p, nil
}
