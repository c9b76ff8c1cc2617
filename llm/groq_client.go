package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/ollama/ollama/api"
	"go.uber.org/zap"
)

type GroqClient struct {
	apiKey     string
	httpClient *http.Client
	url        string
	model      string
}

func NewGroqClient(model string) LLMClient {
	apiKey := os.Getenv("GROQ_API_KEY")
	if apiKey == "" {
		logger.Fatal("GROQ_API_KEY environment variable is not set")
		return nil
	}

	return &GroqClient{
		apiKey:     apiKey,
		httpClient: &http.Client{},
		url:        "https://api.groq.com/openai/v1/chat/completions",
		model:      model,
	}
}

func (c *GroqClient) Capabilities() Capability {
	// Models that support tool calling based on Groq documentation
	toolSupportedModels := []string{
		"llama-3.3-70b-versatile",
		"llama-3.1-8b-instant",
		"openai/gpt-oss-20b",
		"openai/gpt-oss-120b",
		"meta-llama/llama-4-scout-17b-16e-instruct",
		"meta-llama/llama-4-maverick-17b-128e-instruct",
		"moonshotai/kimi-k2-instruct",
	}

	for _, supportedModel := range toolSupportedModels {
		if strings.Contains(c.model, supportedModel) {
			return NativeToolCalling
		}
	}

	return 0
}

func (c *GroqClient) GetModel() string {
	return c.model
}

type groqTool struct {
	Type     string           `json:"type"`
	Function api.ToolFunction `json:"function"`
}

type groqRequest struct {
	Model       string     `json:"model"`
	Messages    []Message  `json:"messages"`
	Temperature float64    `json:"temperature,omitempty"`
	MaxTokens   int        `json:"max_tokens,omitempty"`
	Tools       []groqTool `json:"tools,omitempty"`
}

type groqToolCall struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Function struct {
		Name      string `json:"name"`
		Arguments string `json:"arguments"`
	} `json:"function"`
}

type groqResponse struct {
	Choices []struct {
		Message struct {
			Content   string         `json:"content"`
			ToolCalls []groqToolCall `json:"tool_calls"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

func (c *GroqClient) GenerateInference(ctx context.Context, messages []Message, callback func(chunk string) error, opts ...LLMOption) error {
	settings := LLMSettings{
		model:       c.model,
		temperature: 0.7,
		maxTokens:   4096,
	}

	for _, opt := range opts {
		opt(&settings)
	}

	request := groqRequest{
		Model:       settings.model,
		Messages:    messages,
		Temperature: settings.temperature,
		MaxTokens:   settings.maxTokens,
	}

	// Groq uses a system message in the messages array
	if settings.system != "" {
		request.Messages = append([]Message{{Role: "system", Content: settings.system}}, request.Messages...)
	}

	response, err := c.makeRequest(ctx, request)
	if err != nil {
		return err
	}

	if len(response.Choices) == 0 {
		return fmt.Errorf("no choices in response")
	}

	return callback(response.Choices[0].Message.Content)
}

func (c *GroqClient) GenerateInferenceWithTools(
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

	if len(settings.tools) == 0 {
		return c.GenerateInference(ctx, messages, contentCallback, opts...)
	}

	request := groqRequest{
		Model:       settings.model,
		Messages:    messages,
		Temperature: settings.temperature,
		MaxTokens:   settings.maxTokens,
	}

	for _, tool := range settings.tools {
		request.Tools = append(request.Tools, groqTool{Type: "function", Function: tool.Function})
	}

	if settings.system != "" {
		request.Messages = append([]Message{{Role: "system", Content: settings.system}}, request.Messages...)
	}

	response, err := c.makeRequest(ctx, request)
	if err != nil {
		return err
	}

	if len(response.Choices) == 0 {
		return fmt.Errorf("no choices in response")
	}

	choice := response.Choices[0]
	if len(choice.Message.ToolCalls) > 0 {
		toolCalls, err := convertGroqToolCalls(choice.Message.ToolCalls)
		if err != nil {
			return err
		}
		return toolCallback(toolCalls)
	}

	return contentCallback(choice.Message.Content)
}

func (c *GroqClient) makeRequest(ctx context.Context, request groqRequest) (*groqResponse, error) {
	jsonData, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("error marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	response := &groqResponse{}
	if err := json.Unmarshal(body, response); err != nil {
		return nil, fmt.Errorf("error unmarshaling response: %w", err)
	}

	return response, nil
}

func convertGroqToolCalls(calls []groqToolCall) ([]api.ToolCall, error) {
	out := make([]api.ToolCall, 0, len(calls))
	for _, call := range calls {
		args := api.ToolCallFunctionArguments{}
		if call.Function.Arguments != "" {
			if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
				logger.Error("Failed to parse tool call arguments",
					zap.String("tool", call.Function.Name), zap.Error(err))
				return nil, fmt.Errorf("error parsing tool call arguments: %w", err)
			}
		}

		out = append(out, api.ToolCall{
			Function: api.ToolCallFunction{
				Name:      call.Function.Name,
				Arguments: args,
			},
		})
	}
	return out, nil
}
