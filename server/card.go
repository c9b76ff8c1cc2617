package server

import "github.com/medrank/nfcorpus-agent/a2a"

// NewAgentCard describes this agent for discovery at /.well-known/agent.json.
func NewAgentCard(url string) a2a.AgentCard {
	skill := a2a.AgentSkill{
		ID:          "nfcorpus-retrieval",
		Name:        "NFCorpus Document Retrieval",
		Description: "Retrieves relevant biomedical documents from NFCorpus dataset using LLM-powered search",
		Tags:        []string{"retrieval", "biomedical", "nfcorpus", "llm"},
		Examples: []string{
			`{"query": "What are the effects of calcium on bone health?", "top_k": 5}`,
			`{"query": "diabetes treatment options", "top_k": 10}`,
		},
	}

	return a2a.AgentCard{
		Name:               "NFCorpus Retrieval Agent",
		Description:        "LLM-powered agent that retrieves and ranks biomedical documents from the NFCorpus database",
		URL:                url,
		Version:            "1.0.0",
		DefaultInputModes:  []string{"text", "data"},
		DefaultOutputModes: []string{"data"},
		Capabilities:       a2a.AgentCapabilities{Streaming: true},
		Skills:             []a2a.AgentSkill{skill},
	}
}
