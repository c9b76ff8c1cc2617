package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/medrank/nfcorpus-agent/agent"
	"github.com/ollama/ollama/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectResults(ch <-chan *agent.ToolResult) []*agent.ToolResult {
	var out []*agent.ToolResult
	for chunk := range ch {
		out = append(out, chunk)
	}
	return out
}

func TestToolSchema(t *testing.T) {
	tool := NewTool(NewClient("http://localhost:8000"))

	assert.Equal(t, "function", tool.Type)
	assert.Equal(t, ToolName, tool.Function.Name)
	assert.Contains(t, tool.Function.Parameters.Required, "query")
	assert.NotContains(t, tool.Function.Parameters.Required, "top_k")
	assert.Contains(t, tool.Function.Parameters.Properties, "query")
	assert.Contains(t, tool.Function.Parameters.Properties, "top_k")
}

func TestToolEmitsCandidates(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(searchResponse{Results: []Candidate{
			{DocID: "MED-10", Score: 0.92, Title: "Calcium intake", Text: "Calcium supports bone density."},
			{DocID: "MED-14", Score: 0.87},
		}})
	}))
	defer backend.Close()

	tool := NewTool(NewClient(backend.URL))
	results := collectResults(tool.Handler(context.Background(), api.ToolCallFunctionArguments{
		"query": "calcium and bone health",
		"top_k": float64(5),
	}))

	require.Len(t, results, 2)
	assert.Equal(t, "MED-10", results[0].Metadata["doc_id"])
	assert.Equal(t, "0.9200", results[0].Metadata["score"])
	assert.Equal(t, "Calcium intake", results[0].Title)
	assert.Contains(t, results[0].Sentences, "Calcium supports bone density.")
	assert.Empty(t, results[0].Error)

	assert.Equal(t, "MED-14", results[1].Metadata["doc_id"])
}

func TestToolReportsBackendFailureAsErrorResult(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer backend.Close()

	tool := NewTool(NewClient(backend.URL))
	results := collectResults(tool.Handler(context.Background(), api.ToolCallFunctionArguments{
		"query": "diabetes",
	}))

	require.Len(t, results, 1)
	assert.NotEmpty(t, results[0].Error)
	assert.Contains(t, results[0].Error, "diabetes")
}

func TestToolRejectsMissingQuery(t *testing.T) {
	tool := NewTool(NewClient("http://localhost:8000"))
	results := collectResults(tool.Handler(context.Background(), api.ToolCallFunctionArguments{}))

	require.Len(t, results, 1)
	assert.Contains(t, results[0].Error, "non-empty query")
}

func TestToolEmptyResultSet(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(searchResponse{})
	}))
	defer backend.Close()

	tool := NewTool(NewClient(backend.URL))
	results := collectResults(tool.Handler(context.Background(), api.ToolCallFunctionArguments{
		"query": "nothing matches this",
	}))

	require.Len(t, results, 1)
	assert.Empty(t, results[0].Error)
	assert.Equal(t, "No matches", results[0].Title)
}

func TestIntParamCoercion(t *testing.T) {
	assert.Equal(t, 7, intParam(api.ToolCallFunctionArguments{"top_k": float64(7)}, "top_k", 5))
	assert.Equal(t, 7, intParam(api.ToolCallFunctionArguments{"top_k": "7"}, "top_k", 5))
	assert.Equal(t, 5, intParam(api.ToolCallFunctionArguments{"top_k": float64(0)}, "top_k", 5))
	assert.Equal(t, 5, intParam(api.ToolCallFunctionArguments{}, "top_k", 5))
}
