package memory

import (
	"github.com/medrank/nfcorpus-agent/llm"
)

// Conversation holds the working context of a single retrieval request.
// It is never persisted; the agent keeps no memory across requests.
type Conversation struct {
	Messages []llm.Message
}

func (m *Conversation) AddUserMessage(content string) {
	m.Messages = append(m.Messages, llm.Message{Role: "user", Content: content})
}

func (m *Conversation) AddAssistantMessage(content string) {
	m.Messages = append(m.Messages, llm.Message{Role: "assistant", Content: content})
}

func (m *Conversation) AddToolResult(content string) {
	m.Messages = append(m.Messages, llm.Message{Role: "user", Content: content, IsToolResult: true})
}
