package agent

import (
	"context"
	"slices"

	"github.com/ollama/ollama/api"
)

// MCPTool builder to define MCP tool schema.
type MCPToolBuilder struct {
	tool MCPTool
}

func NewMCPToolBuilder(name, description string) *MCPToolBuilder {
	b := &MCPToolBuilder{
		tool: MCPTool{
			Tool: api.Tool{
				Type: "function",
				Function: api.ToolFunction{
					Name:        name,
					Description: description,
				},
			},
		},
	}

	// Initialize parameters object
	b.tool.Function.Parameters.Type = "object"
	b.tool.Function.Parameters.Properties = make(map[string]api.ToolProperty, 8)
	// Required slice stays nil until first add
	return b
}

func (b *MCPToolBuilder) StringParam(name, desc string, required bool) *MCPToolBuilder {
	prop := api.ToolProperty{
		Type:        api.PropertyType{"string"},
		Description: desc,
	}

	b.setProp(name, prop, required)
	return b
}

func (b *MCPToolBuilder) IntParam(name, desc string, required bool) *MCPToolBuilder {
	prop := api.ToolProperty{
		Type:        api.PropertyType{"integer"},
		Description: desc,
	}

	b.setProp(name, prop, required)
	return b
}

func (b *MCPToolBuilder) WithHandler(fn func(ctx context.Context, params api.ToolCallFunctionArguments) <-chan *ToolResult) *MCPToolBuilder {
	b.tool.Handler = fn
	return b
}

func (b *MCPToolBuilder) Build() MCPTool {
	return b.tool
}

func (b *MCPToolBuilder) setProp(name string, p api.ToolProperty, required bool) {
	props := b.tool.Function.Parameters.Properties
	props[name] = p
	if required {
		req := b.tool.Function.Parameters.Required
		if !slices.Contains(req, name) {
			b.tool.Function.Parameters.Required = append(req, name)
		}
	}
}

// ToolResultBuilder builds tool result chunks.
type ToolResultBuilder struct {
	chk *ToolResult
}

func NewToolResult() *ToolResultBuilder {
	return &ToolResultBuilder{
		chk: &ToolResult{
			Metadata: make(map[string]string),
		},
	}
}

func (b *ToolResultBuilder) Sentences(sentences ...string) *ToolResultBuilder {
	b.chk.Sentences = append(b.chk.Sentences, sentences...)
	return b
}

func (b *ToolResultBuilder) Title(t string) *ToolResultBuilder {
	b.chk.Title = t
	return b
}

func (b *ToolResultBuilder) Attribution(attr string) *ToolResultBuilder {
	b.chk.Attribution = attr
	return b
}

func (b *ToolResultBuilder) MetadataKV(key, value string) *ToolResultBuilder {
	b.chk.Metadata[key] = value
	return b
}

func (b *ToolResultBuilder) Error(errMsg string) *ToolResultBuilder {
	b.chk.Error = errMsg
	return b
}

func (b *ToolResultBuilder) Build() *ToolResult {
	return b.chk
}
