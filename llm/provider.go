package llm

import (
	"fmt"
	"strings"
)

// FromModelString resolves a "provider:model" identifier into an LLMClient.
// Examples: "groq:llama-3.3-70b-versatile", "anthropic:claude-3-5-sonnet-20241022",
// "ollama:gpt-oss:20b". Ollama model names may themselves contain colons.
func FromModelString(identifier string) (LLMClient, error) {
	provider, model, found := strings.Cut(identifier, ":")
	if !found || model == "" {
		return nil, fmt.Errorf("invalid model identifier %q, expected provider:model", identifier)
	}

	switch provider {
	case "anthropic":
		return NewAnthropicClient(model), nil
	case "groq":
		return NewGroqClient(model), nil
	case "ollama":
		return NewOllamaClient(model), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", provider)
	}
}
