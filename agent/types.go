package agent

import (
	"context"

	"github.com/ollama/ollama/api"
)

// ToolResult is one chunk of output produced by a tool handler.
// A handler emits zero or more chunks on its channel and closes it when done.
// A chunk with Error set reports a failed capability call to the reasoning loop.
type ToolResult struct {
	ToolName    string            `json:"tool_name,omitempty"`
	Title       string            `json:"title,omitempty"`
	Sentences   []string          `json:"sentences,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	Attribution string            `json:"attribution,omitempty"`
	Error       string            `json:"error,omitempty"`
}

// MCPTool wraps an api.Tool and provides a handler for execution
type MCPTool struct {
	api.Tool
	Handler func(ctx context.Context, params api.ToolCallFunctionArguments) <-chan *ToolResult
}
