package agent

import (
	"context"
	"testing"

	"github.com/ollama/ollama/api"
	"github.com/stretchr/testify/assert"
)

func TestMCPToolBuilderSchema(t *testing.T) {
	tool := NewMCPToolBuilder("search_nfcorpus", "Search the corpus").
		StringParam("query", "Search query text", true).
		IntParam("top_k", "Number of documents", false).
		Build()

	assert.Equal(t, "function", tool.Type)
	assert.Equal(t, "search_nfcorpus", tool.Function.Name)
	assert.Equal(t, "Search the corpus", tool.Function.Description)
	assert.Equal(t, "object", tool.Function.Parameters.Type)

	queryProp := tool.Function.Parameters.Properties["query"]
	assert.Equal(t, api.PropertyType{"string"}, queryProp.Type)

	topKProp := tool.Function.Parameters.Properties["top_k"]
	assert.Equal(t, api.PropertyType{"integer"}, topKProp.Type)

	assert.Equal(t, []string{"query"}, tool.Function.Parameters.Required)
}

func TestMCPToolBuilderRequiredNoDuplicates(t *testing.T) {
	tool := NewMCPToolBuilder("t", "d").
		StringParam("query", "first", true).
		StringParam("query", "again", true).
		Build()

	assert.Equal(t, []string{"query"}, tool.Function.Parameters.Required)
}

func TestMCPToolBuilderHandler(t *testing.T) {
	called := false
	tool := NewMCPToolBuilder("t", "d").
		WithHandler(func(ctx context.Context, params api.ToolCallFunctionArguments) <-chan *ToolResult {
			called = true
			out := make(chan *ToolResult)
			close(out)
			return out
		}).
		Build()

	ch := tool.Handler(context.Background(), api.ToolCallFunctionArguments{})
	for range ch {
	}
	assert.True(t, called)
}

func TestToolResultBuilder(t *testing.T) {
	result := NewToolResult().
		Title("Calcium intake").
		Sentences("first", "second").
		MetadataKV("doc_id", "MED-10").
		Attribution("NFCorpus").
		Build()

	assert.Equal(t, "Calcium intake", result.Title)
	assert.Equal(t, []string{"first", "second"}, result.Sentences)
	assert.Equal(t, "MED-10", result.Metadata["doc_id"])
	assert.Equal(t, "NFCorpus", result.Attribution)
	assert.Empty(t, result.Error)
}

func TestToolResultBuilderError(t *testing.T) {
	result := NewToolResult().Error("backend unreachable").Build()
	assert.Equal(t, "backend unreachable", result.Error)
}
