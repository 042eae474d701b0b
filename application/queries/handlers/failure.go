package handlers

import (
	pkgerrors "pipeline-backend/pkg/errors"
)

// failureClass maps an analysis error to the error label the response
// body carries. Malformed JSON gets its own label; everything else
// (schema violations, unexpected failures) falls back to the
// endpoint-specific label.
func failureClass(err error, fallback string) string {
	if pkgerrors.IsDecode(err) {
		return "Invalid JSON format"
	}
	return fallback
}

// failureDetail extracts the human-readable detail for the response
// body: the raw parser message for decode failures, the validation
// message (which names the offending record) for schema failures.
func failureDetail(err error) string {
	appErr := pkgerrors.GetAppError(err)
	if appErr == nil {
		return err.Error()
	}
	if appErr.Type == pkgerrors.ErrorTypeDecode {
		return appErr.Detail()
	}
	return appErr.Message
}
