package search

import (
	"context"
	"fmt"
	"strconv"

	"github.com/SaiNageswarS/go-collection-boot/async"
	"github.com/medrank/nfcorpus-agent/agent"
	"github.com/ollama/ollama/api"
)

const (
	ToolName    = "search_nfcorpus"
	defaultTopK = 5
)

// NewTool exposes the backend search client as the agent's single capability.
// Backend failures are reported to the reasoning loop as an error-bearing tool
// result rather than aborting the loop, so the model can reformulate or give up.
func NewTool(client *Client) agent.MCPTool {
	return agent.NewMCPToolBuilder(
		ToolName,
		"Search the NFCorpus biomedical database for relevant documents. Returns documents with doc_id, relevance score, title and text.").
		StringParam("query", "Search query text", true).
		IntParam("top_k", "Number of documents to retrieve", false).
		WithHandler(func(ctx context.Context, params api.ToolCallFunctionArguments) <-chan *agent.ToolResult {
			out := make(chan *agent.ToolResult)

			go func() {
				defer close(out)

				query := stringParam(params, "query")
				if query == "" {
					out <- agent.NewToolResult().
						Error("search_nfcorpus requires a non-empty query parameter").
						Build()
					return
				}

				topK := intParam(params, "top_k", defaultTopK)

				candidates, err := async.Await(client.Search(ctx, query, topK))
				if err != nil {
					out <- agent.NewToolResult().
						Title("Search failed").
						Error(fmt.Sprintf("search for %q failed: %v", query, err)).
						Build()
					return
				}

				if len(candidates) == 0 {
					out <- agent.NewToolResult().
						Title("No matches").
						Sentences(fmt.Sprintf("No documents matched the query %q.", query)).
						Build()
					return
				}

				for _, candidate := range candidates {
					out <- candidateToResult(candidate)
				}
			}()

			return out
		}).
		Build()
}

func candidateToResult(c Candidate) *agent.ToolResult {
	b := agent.NewToolResult().
		Title(c.Title).
		MetadataKV("doc_id", c.DocID).
		MetadataKV("score", strconv.FormatFloat(c.Score, 'f', 4, 64))

	if c.Text != "" {
		b.Sentences(c.Text)
	}

	return b.Build()
}

func stringParam(params api.ToolCallFunctionArguments, name string) string {
	if v, ok := params[name].(string); ok {
		return v
	}
	return ""
}

func intParam(params api.ToolCallFunctionArguments, name string, fallback int) int {
	switch v := params[name].(type) {
	case float64:
		if v >= 1 {
			return int(v)
		}
	case int:
		if v >= 1 {
			return v
		}
	case string:
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			return n
		}
	}
	return fallback
}
