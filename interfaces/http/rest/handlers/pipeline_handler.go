package handlers

import (
	"encoding/json"
	"net/http"

	"pipeline-backend/application/queries"
	querybus "pipeline-backend/application/queries/bus"

	"go.uber.org/zap"
)

// PipelineHandler handles pipeline analysis HTTP requests. Every
// response is HTTP 200: failures ride inside the body, matching what
// the editor frontend expects.
type PipelineHandler struct {
	queryBus *querybus.QueryBus
	logger   *zap.Logger
	maxBytes int64
}

// NewPipelineHandler creates a new pipeline handler
func NewPipelineHandler(queryBus *querybus.QueryBus, logger *zap.Logger, maxBytes int64) *PipelineHandler {
	return &PipelineHandler{
		queryBus: queryBus,
		logger:   logger,
		maxBytes: maxBytes,
	}
}

// ParsePipeline handles POST /pipelines/parse
func (h *PipelineHandler) ParsePipeline(w http.ResponseWriter, r *http.Request) {
	payload := h.pipelineField(w, r)

	result, err := h.queryBus.Ask(r.Context(), queries.ParsePipelineQuery{Payload: payload})
	if err != nil {
		// Dispatch failures should not happen once handlers are
		// registered; keep the body contract anyway.
		h.logger.Error("Parse query dispatch failed", zap.Error(err))
		h.respondJSON(w, queries.ParsePipelineResult{
			Error:   "Error parsing pipeline",
			Message: err.Error(),
		})
		return
	}

	h.respondJSON(w, result)
}

// ValidatePipeline handles POST /pipelines/validate
func (h *PipelineHandler) ValidatePipeline(w http.ResponseWriter, r *http.Request) {
	payload := h.pipelineField(w, r)

	result, err := h.queryBus.Ask(r.Context(), queries.ValidatePipelineQuery{Payload: payload})
	if err != nil {
		h.logger.Error("Validate query dispatch failed", zap.Error(err))
		h.respondJSON(w, queries.PipelineError{
			Error:   "Error validating pipeline",
			Message: err.Error(),
		})
		return
	}

	h.respondJSON(w, result)
}

// pipelineField extracts the `pipeline` form field, accepting both
// urlencoded and multipart bodies. The body is capped first; an
// oversized or unreadable body yields an empty field, which the
// analysis reports as malformed JSON through the normal body contract.
func (h *PipelineHandler) pipelineField(w http.ResponseWriter, r *http.Request) string {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	return r.FormValue("pipeline")
}

func (h *PipelineHandler) respondJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}
