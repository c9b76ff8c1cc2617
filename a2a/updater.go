package a2a

import (
	"time"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EventSink receives task events in emission order. Implementations stream
// them (SSE) or collect them for a blocking response.
type EventSink interface {
	Send(event any) error
}

// TaskUpdater mutates a task and publishes the corresponding events.
// It enforces the one-terminal-transition discipline: once the task reaches a
// terminal state, further updates are dropped.
type TaskUpdater struct {
	task *Task
	sink EventSink
}

func NewTaskUpdater(task *Task, sink EventSink) *TaskUpdater {
	return &TaskUpdater{task: task, sink: sink}
}

func (u *TaskUpdater) Task() *Task {
	return u.task
}

// Working reports an intermediate progress message.
func (u *TaskUpdater) Working(msg *Message) {
	u.transition(TaskStateWorking, msg, false)
}

// AddArtifact attaches a named data artifact to the task and publishes it.
func (u *TaskUpdater) AddArtifact(name string, data map[string]any) {
	if u.task.Status.State.Terminal() {
		logger.Error("Dropping artifact for terminal task", zap.String("task", u.task.ID))
		return
	}

	artifact := Artifact{
		ArtifactID: uuid.NewString(),
		Name:       name,
		Parts:      []Part{{Kind: "data", Data: data}},
	}
	u.task.Artifacts = append(u.task.Artifacts, artifact)

	u.send(&ArtifactUpdateEvent{
		Kind:      "artifact-update",
		TaskID:    u.task.ID,
		ContextID: u.task.ContextID,
		Artifact:  artifact,
	})
}

// Complete marks the task completed.
func (u *TaskUpdater) Complete() {
	u.transition(TaskStateCompleted, nil, true)
}

// Failed marks the task failed with a human-readable reason.
func (u *TaskUpdater) Failed(msg *Message) {
	u.transition(TaskStateFailed, msg, true)
}

// Rejected marks the task rejected; used for request-shape violations.
func (u *TaskUpdater) Rejected(msg *Message) {
	u.transition(TaskStateRejected, msg, true)
}

func (u *TaskUpdater) transition(state TaskState, msg *Message, final bool) {
	if u.task.Status.State.Terminal() {
		logger.Error("Dropping state transition for terminal task",
			zap.String("task", u.task.ID), zap.String("state", string(state)))
		return
	}

	u.task.Status = TaskStatus{
		State:     state,
		Message:   msg,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	u.send(&StatusUpdateEvent{
		Kind:      "status-update",
		TaskID:    u.task.ID,
		ContextID: u.task.ContextID,
		Status:    u.task.Status,
		Final:     final,
	})
}

func (u *TaskUpdater) send(event any) {
	if u.sink == nil {
		return
	}
	if err := u.sink.Send(event); err != nil {
		logger.Error("Failed to publish task event", zap.String("task", u.task.ID), zap.Error(err))
	}
}
