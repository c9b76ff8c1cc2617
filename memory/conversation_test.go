package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversationMessageOrder(t *testing.T) {
	conv := &Conversation{}

	conv.AddUserMessage("calcium and bone health")
	conv.AddToolResult("### search_nfcorpus results")
	conv.AddAssistantMessage(`{"doc_ids": ["MED-1"]}`)

	assert.Len(t, conv.Messages, 3)
	assert.Equal(t, "user", conv.Messages[0].Role)
	assert.False(t, conv.Messages[0].IsToolResult)

	assert.Equal(t, "user", conv.Messages[1].Role)
	assert.True(t, conv.Messages[1].IsToolResult)

	assert.Equal(t, "assistant", conv.Messages[2].Role)
}

func TestConversationStartsEmpty(t *testing.T) {
	conv := &Conversation{}
	assert.Empty(t, conv.Messages)
}
