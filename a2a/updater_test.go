package a2a

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type collectingSink struct {
	events []any
}

func (s *collectingSink) Send(event any) error {
	s.events = append(s.events, event)
	return nil
}

func TestUpdaterWorkingThenComplete(t *testing.T) {
	sink := &collectingSink{}
	task := NewTask()
	updater := NewTaskUpdater(task, sink)

	updater.Working(NewAgentTextMessage("Parsing query request..."))
	updater.AddArtifact("retrieval_results", map[string]any{"doc_ids": []string{"MED-10"}})
	updater.Complete()

	assert.Equal(t, TaskStateCompleted, task.Status.State)
	require.Len(t, task.Artifacts, 1)
	assert.Equal(t, "retrieval_results", task.Artifacts[0].Name)

	require.Len(t, sink.events, 3)

	status, ok := sink.events[0].(*StatusUpdateEvent)
	require.True(t, ok)
	assert.Equal(t, TaskStateWorking, status.Status.State)
	assert.False(t, status.Final)
	assert.Equal(t, "Parsing query request...", MessageText(status.Status.Message))

	artifact, ok := sink.events[1].(*ArtifactUpdateEvent)
	require.True(t, ok)
	assert.Equal(t, task.ID, artifact.TaskID)
	assert.Equal(t, "retrieval_results", artifact.Artifact.Name)

	final, ok := sink.events[2].(*StatusUpdateEvent)
	require.True(t, ok)
	assert.Equal(t, TaskStateCompleted, final.Status.State)
	assert.True(t, final.Final)
}

func TestUpdaterTerminalStateIsSticky(t *testing.T) {
	sink := &collectingSink{}
	task := NewTask()
	updater := NewTaskUpdater(task, sink)

	updater.Failed(NewAgentTextMessage("Retrieval failed: backend unavailable"))

	updater.Working(NewAgentTextMessage("should be dropped"))
	updater.AddArtifact("late", map[string]any{})
	updater.Complete()

	assert.Equal(t, TaskStateFailed, task.Status.State)
	assert.Empty(t, task.Artifacts)
	assert.Len(t, sink.events, 1)
}

func TestUpdaterRejected(t *testing.T) {
	task := NewTask()
	updater := NewTaskUpdater(task, &collectingSink{})

	updater.Rejected(NewAgentTextMessage("Invalid request format: unexpected token"))

	assert.Equal(t, TaskStateRejected, task.Status.State)
	assert.True(t, task.Status.State.Terminal())
	assert.Contains(t, MessageText(task.Status.Message), "Invalid request format")
}

func TestUpdaterNilSink(t *testing.T) {
	task := NewTask()
	updater := NewTaskUpdater(task, nil)

	updater.Working(NewAgentTextMessage("working"))
	updater.Complete()

	assert.Equal(t, TaskStateCompleted, task.Status.State)
}

func TestTaskStateTerminal(t *testing.T) {
	assert.False(t, TaskStateSubmitted.Terminal())
	assert.False(t, TaskStateWorking.Terminal())
	assert.True(t, TaskStateCompleted.Terminal())
	assert.True(t, TaskStateFailed.Terminal())
	assert.True(t, TaskStateRejected.Terminal())
}
