package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/medrank/nfcorpus-agent/llm"
	"github.com/medrank/nfcorpus-agent/memory"
	"github.com/medrank/nfcorpus-agent/prompts"
	"github.com/ollama/ollama/api"
	"go.uber.org/zap"
)

// Rank executes the retrieval loop for a single query: up to MaxTurns
// tool-selection turns against the search capability, then one structured-output
// turn committing to the final ranked document-ID list.
func (a *Agent) Rank(ctx context.Context, reporter ProgressReporter, query string, topK int) (*DocumentRanking, error) {
	systemPrompt, userPrompt, err := prompts.RenderRankingPrompt(query, topK)
	if err != nil {
		return nil, fmt.Errorf("error rendering ranking prompt: %w", err)
	}

	conversation := &memory.Conversation{}
	conversation.AddUserMessage(userPrompt)

	for turn := 0; turn < a.config.MaxTurns; turn++ {
		toolCalls := a.selectTools(ctx, reporter, conversation.Messages, turn)
		if len(toolCalls) == 0 {
			break
		}

		for _, toolCall := range toolCalls {
			toolResultContext, err := a.runTool(ctx, reporter, &toolCall)
			if err != nil {
				continue
			}

			conversation.AddToolResult(toolResultContext)
		}
	}

	reporter.Send(newProgressEvent(StageRanking, "Ranking retrieved documents"))

	var inference strings.Builder
	err = a.config.Model.GenerateInference(
		ctx, conversation.Messages,
		func(chunk string) error {
			inference.WriteString(chunk)
			return nil
		},
		llm.WithMaxTokens(a.config.MaxTokens),
		llm.WithTemperature(0.2),
		llm.WithSystemPrompt(systemPrompt),
	)

	if err != nil {
		logger.Error("Failed to run inference", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrNoStructuredOutput, err)
	}

	ranking, err := parseDocumentRanking(inference.String())
	if err != nil {
		logger.Error("Failed to parse document ranking", zap.Error(err))
		return nil, err
	}

	return ranking, nil
}

func (a *Agent) selectTools(ctx context.Context, reporter ProgressReporter, msgs []llm.Message, turn int) []api.ToolCall {
	var toolCalls []api.ToolCall

	reporter.Send(newProgressEvent(StageToolSelection, fmt.Sprintf("Selecting tools for turn %d", turn)))

	systemPrompt, err := prompts.RenderToolSelectionPrompt(turn)
	if err != nil {
		logger.Error("Failed to render tool selection prompt", zap.Error(err))
		return toolCalls
	}

	err = a.config.ToolSelector.GenerateInferenceWithTools(
		ctx, msgs,
		func(chunk string) error { return nil }, // ignore answer content
		func(calls []api.ToolCall) error {
			toolCalls = append(toolCalls, calls...)
			return nil
		},
		llm.WithTools(toAPITools(a.config.Tools)),
		llm.WithMaxTokens(a.config.MaxTokens),
		llm.WithSystemPrompt(systemPrompt),
	)

	if err != nil {
		logger.Error("Failed to select tools", zap.Error(err))
	}

	return toolCalls
}
