package agent

import (
	"github.com/ollama/ollama/api"
)

// findMCPToolByName finds an MCPTool by its function name
func findMCPToolByName(tools []MCPTool, name string) *MCPTool {
	for _, tool := range tools {
		if tool.Function.Name == name {
			return &tool
		}
	}
	return nil
}

// toAPITools converts MCPTools to api.Tools for native tool calling
func toAPITools(tools []MCPTool) []api.Tool {
	apiTools := make([]api.Tool, len(tools))
	for i, tool := range tools {
		apiTools[i] = tool.Tool
	}
	return apiTools
}
