package agent

import "github.com/medrank/nfcorpus-agent/llm"

type AgentBuilder struct {
	config AgentConfig
}

func NewAgentBuilder() *AgentBuilder {
	return &AgentBuilder{
		config: AgentConfig{
			MaxTurns:  3,
			MaxTokens: 2000,
		},
	}
}

func (b *AgentBuilder) WithModel(client llm.LLMClient) *AgentBuilder {
	b.config.Model = client
	return b
}

func (b *AgentBuilder) WithToolSelector(client llm.LLMClient) *AgentBuilder {
	b.config.ToolSelector = client
	return b
}

func (b *AgentBuilder) AddTool(tool MCPTool) *AgentBuilder {
	b.config.Tools = append(b.config.Tools, tool)
	return b
}

func (b *AgentBuilder) WithMaxTokens(max int) *AgentBuilder {
	b.config.MaxTokens = max
	return b
}

func (b *AgentBuilder) WithMaxTurns(maxTurns int) *AgentBuilder {
	b.config.MaxTurns = maxTurns
	return b
}

func (b *AgentBuilder) Build() *Agent {
	if b.config.ToolSelector == nil {
		if b.config.Model != nil && b.config.Model.Capabilities()&llm.NativeToolCalling != 0 {
			b.config.ToolSelector = b.config.Model
		} else {
			b.config.ToolSelector = llm.NewOllamaClient("gpt-oss:20b") // Default tool selector
		}
	}

	return &Agent{config: b.config}
}
