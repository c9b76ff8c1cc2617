// Package mcpserver fronts the retrieval pipeline as an MCP tool so MCP hosts
// can query NFCorpus without speaking the A2A protocol.
package mcpserver

import (
	"context"
	"encoding/json"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
)

type RetrieveHandler struct {
	retrieve func(ctx context.Context, query string, topK int) ([]string, error)
}

func ProvideRetrieveHandler(retrieve func(ctx context.Context, query string, topK int) ([]string, error)) *RetrieveHandler {
	return &RetrieveHandler{retrieve: retrieve}
}

func (h *RetrieveHandler) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := req.GetString("query", "")
	if query == "" {
		return mcp.NewToolResultError("query must be a non-empty string"), nil
	}

	topK := req.GetInt("top_k", 5)
	if topK < 1 {
		return mcp.NewToolResultError("top_k must be at least 1"), nil
	}

	docIDs, err := h.retrieve(ctx, query, topK)
	if err != nil {
		log.Printf("Retrieval failed: %v", err)
		return mcp.NewToolResultError("Retrieval failed: " + err.Error()), nil
	}

	jsonResponse, err := json.Marshal(map[string][]string{"doc_ids": docIDs})
	if err != nil {
		return mcp.NewToolResultError("Failed to marshal retrieval response: " + err.Error()), nil
	}

	return mcp.NewToolResultText(string(jsonResponse)), nil
}
