package mcpserver

import (
	"context"
	"fmt"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = "retrieve_nfcorpus"
	req.Params.Arguments = args
	return req
}

func textContent(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok)
	return text.Text
}

func TestHandleReturnsRankedIDs(t *testing.T) {
	var gotQuery string
	var gotTopK int

	handler := ProvideRetrieveHandler(func(ctx context.Context, query string, topK int) ([]string, error) {
		gotQuery, gotTopK = query, topK
		return []string{"MED-10", "MED-14"}, nil
	})

	result, err := handler.Handle(context.Background(), callRequest(map[string]any{
		"query": "calcium and bone health",
		"top_k": float64(2),
	}))

	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, "calcium and bone health", gotQuery)
	assert.Equal(t, 2, gotTopK)
	assert.JSONEq(t, `{"doc_ids": ["MED-10", "MED-14"]}`, textContent(t, result))
}

func TestHandleDefaultTopK(t *testing.T) {
	var gotTopK int
	handler := ProvideRetrieveHandler(func(ctx context.Context, query string, topK int) ([]string, error) {
		gotTopK = topK
		return nil, nil
	})

	_, err := handler.Handle(context.Background(), callRequest(map[string]any{"query": "calcium"}))
	require.NoError(t, err)
	assert.Equal(t, 5, gotTopK)
}

func TestHandleMissingQuery(t *testing.T) {
	called := false
	handler := ProvideRetrieveHandler(func(ctx context.Context, query string, topK int) ([]string, error) {
		called = true
		return nil, nil
	})

	result, err := handler.Handle(context.Background(), callRequest(map[string]any{}))

	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.False(t, called)
}

func TestHandleInvalidTopK(t *testing.T) {
	handler := ProvideRetrieveHandler(func(ctx context.Context, query string, topK int) ([]string, error) {
		return nil, nil
	})

	result, err := handler.Handle(context.Background(), callRequest(map[string]any{
		"query": "calcium",
		"top_k": float64(0),
	}))

	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandleRetrievalError(t *testing.T) {
	handler := ProvideRetrieveHandler(func(ctx context.Context, query string, topK int) ([]string, error) {
		return nil, fmt.Errorf("backend unavailable")
	})

	result, err := handler.Handle(context.Background(), callRequest(map[string]any{"query": "calcium"}))

	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, textContent(t, result), "backend unavailable")
}
