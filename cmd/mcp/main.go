package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/medrank/nfcorpus-agent/agent"
	"github.com/medrank/nfcorpus-agent/executor"
	"github.com/medrank/nfcorpus-agent/llm"
	"github.com/medrank/nfcorpus-agent/mcpserver"
)

func main() {
	godotenv.Load()

	backendURL := os.Getenv("MCP_SERVER_URL")
	if backendURL == "" {
		backendURL = "http://localhost:8000"
	}

	modelIdentifier := os.Getenv("LLM_MODEL")
	if modelIdentifier == "" {
		modelIdentifier = "groq:llama-3.3-70b-versatile"
	}

	model, err := llm.FromModelString(modelIdentifier)
	if err != nil {
		log.Fatalf("Failed to create LLM client: %v", err)
	}

	exec := executor.New(model, backendURL)

	s := server.NewMCPServer(
		"nfcorpus-retrieval-agent",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	retrieveTool := mcp.NewTool(
		"retrieve_nfcorpus",
		mcp.WithDescription("Retrieves and ranks relevant biomedical documents from the NFCorpus database. Returns JSON with document IDs in ranked order, most relevant first."),
		mcp.WithString("query",
			mcp.Description("Search query text"),
			mcp.Required(),
		),
		mcp.WithNumber("top_k",
			mcp.Description("Number of documents to retrieve"),
		),
	)

	handler := mcpserver.ProvideRetrieveHandler(func(ctx context.Context, query string, topK int) ([]string, error) {
		return exec.Retrieve(ctx, query, topK, &agent.NoOpProgressReporter{})
	})

	s.AddTool(retrieveTool, handler.Handle)

	if err := server.ServeStdio(s); err != nil {
		log.Fatalf("Failed to serve MCP: %v", err)
	}
}
