package agent

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-collection-boot/linq"
	"github.com/ollama/ollama/api"
	"go.uber.org/zap"
)

func (a *Agent) runTool(ctx context.Context, reporter ProgressReporter, selection *api.ToolCall) (string, error) {
	reporter.Send(newProgressEvent(
		StageToolExecutionStarting,
		fmt.Sprintf("Running tool %s with arguments: %v", selection.Function.Name, selection.Function.Arguments)))

	tool := findMCPToolByName(a.config.Tools, selection.Function.Name)
	if tool == nil {
		logger.Error("Tool selector requested unknown tool", zap.String("tool", selection.Function.Name))
		return "", fmt.Errorf("unknown tool %q", selection.Function.Name)
	}

	toolResultChan := tool.Handler(ctx, selection.Function.Arguments)

	linqCtx, cancel := context.WithCancel(ctx)
	chunks, err := linq.Pipe3(
		linq.NewStream(linqCtx, toolResultChan, cancel, 10),

		linq.Where(func(chunk *ToolResult) bool {
			return chunk != nil
		}),

		linq.Select(func(chunk *ToolResult) string {
			chunk.ToolName = selection.Function.Name
			return formatToolResultToMD(chunk)
		}),

		linq.ToSlice[string](),
	)

	if err != nil {
		logger.Error("Error collecting tool result", zap.String("tool", selection.Function.Name), zap.Error(err))
		return "", err
	}

	reporter.Send(newProgressEvent(
		StageToolExecutionCompleted,
		fmt.Sprintf("Tool %s completed", selection.Function.Name)))
	return strings.Join(chunks, "\n\n"), nil
}

func formatToolResultToMD(result *ToolResult) string {
	if result == nil {
		return ""
	}

	var b strings.Builder

	title := strings.TrimSpace(result.Title)
	tool := strings.TrimSpace(result.ToolName)
	if title == "" && tool != "" {
		title = tool
	}
	if title != "" {
		b.WriteString("### ")
		b.WriteString(title)
		b.WriteString("\n\n")
	}
	// Show "via <tool>" only if it's different from the title we used.
	if tool != "" && tool != title {
		b.WriteString("_via `")
		b.WriteString(tool)
		b.WriteString("`_\n\n")
	}

	if errText := strings.TrimSpace(result.Error); errText != "" {
		b.WriteString("> **Error:** ")
		b.WriteString(errText)
		b.WriteString("\n\n")
	}

	if n := len(result.Sentences); n > 0 {
		if n == 1 {
			b.WriteString(strings.TrimSpace(result.Sentences[0]))
			b.WriteString("\n\n")
		} else {
			for _, s := range result.Sentences {
				s = strings.TrimSpace(s)
				if s == "" {
					continue
				}
				b.WriteString("- ")
				b.WriteString(s)
				b.WriteByte('\n')
			}
			b.WriteByte('\n')
		}
	}

	// Metadata (sorted for deterministic output)
	if len(result.Metadata) > 0 {
		keys := make([]string, 0, len(result.Metadata))
		for k := range result.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		b.WriteString("| Key | Value |\n|---|---|\n")
		for _, k := range keys {
			b.WriteString("| ")
			b.WriteString(k)
			b.WriteString(" | ")
			b.WriteString(result.Metadata[k])
			b.WriteString(" |\n")
		}
		b.WriteByte('\n')
	}

	if att := strings.TrimSpace(result.Attribution); att != "" {
		b.WriteString("**Attribution**: ")
		b.WriteString(att)
	}

	return strings.TrimRight(b.String(), "\n")
}
