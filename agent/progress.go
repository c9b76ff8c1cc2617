package agent

import "time"

type Stage string

const (
	StageToolSelection          Stage = "tool_selection"
	StageToolExecutionStarting  Stage = "tool_execution_starting"
	StageToolExecutionCompleted Stage = "tool_execution_completed"
	StageRanking                Stage = "ranking"
)

// ProgressEvent reports a stage transition of the reasoning loop.
type ProgressEvent struct {
	Stage     Stage  `json:"stage"`
	Message   string `json:"message"`
	ToolName  string `json:"tool_name,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// ProgressReporter is an interface for reporting agent execution progress
type ProgressReporter interface {
	// Send sends a progress update
	Send(event *ProgressEvent) error
}

// NoOpProgressReporter implements ProgressReporter with no-op operations
type NoOpProgressReporter struct{}

func (r *NoOpProgressReporter) Send(event *ProgressEvent) error {
	return nil
}

func newProgressEvent(stage Stage, message string) *ProgressEvent {
	return &ProgressEvent{
		Stage:     stage,
		Message:   message,
		Timestamp: time.Now().UnixMilli(),
	}
}
