package events

import (
	"time"

	"github.com/google/uuid"
)

// Source identifies this service on the event bus
const Source = "pipeline-backend"

// DomainEvent is the base interface for all domain events
// Events represent something that has happened in the past
type DomainEvent interface {
	GetAggregateID() string
	GetEventType() string
	GetTimestamp() time.Time
	GetVersion() int
}

// BaseEvent provides common event fields
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
	Version     int       `json:"version"`
}

func (e BaseEvent) GetAggregateID() string  { return e.AggregateID }
func (e BaseEvent) GetEventType() string    { return e.EventType }
func (e BaseEvent) GetTimestamp() time.Time { return e.Timestamp }
func (e BaseEvent) GetVersion() int         { return e.Version }

// PipelineAnalyzed is raised after a pipeline submission has been
// analyzed, whichever endpoint received it. The analysis id is minted
// per request; nothing persists between submissions.
type PipelineAnalyzed struct {
	BaseEvent
	AnalysisID string `json:"analysis_id"`
	Endpoint   string `json:"endpoint"`
	NumNodes   int    `json:"num_nodes"`
	NumEdges   int    `json:"num_edges"`
	IsDAG      bool   `json:"is_dag"`
}

// NewPipelineAnalyzed creates a PipelineAnalyzed event
func NewPipelineAnalyzed(endpoint string, numNodes, numEdges int, isDAG bool) PipelineAnalyzed {
	analysisID := uuid.New().String()
	return PipelineAnalyzed{
		BaseEvent: BaseEvent{
			AggregateID: analysisID,
			EventType:   "pipeline.analyzed",
			Timestamp:   time.Now(),
			Version:     1,
		},
		AnalysisID: analysisID,
		Endpoint:   endpoint,
		NumNodes:   numNodes,
		NumEdges:   numEdges,
		IsDAG:      isDAG,
	}
}
