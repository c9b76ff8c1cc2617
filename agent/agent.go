package agent

import (
	"github.com/medrank/nfcorpus-agent/llm"
)

// AgentConfig holds configuration for the agent
type AgentConfig struct {
	Model        llm.LLMClient
	ToolSelector llm.LLMClient
	Tools        []MCPTool
	MaxTokens    int
	MaxTurns     int
}

// Agent drives an LLM reasoning loop constrained to the configured tools and
// produces a ranked document-ID list as its structured output.
type Agent struct {
	config AgentConfig
}
