package llm

import (
	"context"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/ollama/ollama/api"
	"go.uber.org/zap"
)

type OllamaClient struct {
	client *api.Client
	model  string
}

func NewOllamaClient(model string) LLMClient {
	client, err := api.ClientFromEnvironment()
	if err != nil {
		logger.Fatal("Failed to create Ollama client", zap.Error(err))
		return nil
	}

	return &OllamaClient{client: client, model: model}
}

func (c *OllamaClient) Capabilities() Capability {
	return NativeToolCalling
}

func (c *OllamaClient) GetModel() string {
	return c.model
}

func (c *OllamaClient) GenerateInference(ctx context.Context, messages []Message, callback func(chunk string) error, opts ...LLMOption) error {
	return c.GenerateInferenceWithTools(ctx, messages, callback, func([]api.ToolCall) error { return nil }, opts...)
}

func (c *OllamaClient) GenerateInferenceWithTools(
	ctx context.Context,
	messages []Message,
	contentCallback func(chunk string) error,
	toolCallback func(toolCalls []api.ToolCall) error,
	opts ...LLMOption,
) error {
	settings := LLMSettings{
		model:       c.model,
		temperature: 0.7,
		maxTokens:   4096,
	}

	for _, opt := range opts {
		opt(&settings)
	}

	chatMessages := make([]api.Message, 0, len(messages)+1)
	if settings.system != "" {
		chatMessages = append(chatMessages, api.Message{Role: "system", Content: settings.system})
	}
	for _, msg := range messages {
		chatMessages = append(chatMessages, api.Message{Role: msg.Role, Content: msg.Content})
	}

	stream := false
	req := &api.ChatRequest{
		Model:    settings.model,
		Messages: chatMessages,
		Stream:   &stream,
		Tools:    settings.tools,
		Options: map[string]any{
			"temperature": settings.temperature,
			"num_predict": settings.maxTokens,
		},
	}

	return c.client.Chat(ctx, req, func(resp api.ChatResponse) error {
		if len(resp.Message.ToolCalls) > 0 {
			return toolCallback(resp.Message.ToolCalls)
		}
		return contentCallback(resp.Message.Content)
	})
}
