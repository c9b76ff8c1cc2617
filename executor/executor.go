// Package executor adapts inbound protocol messages to the retrieval agent.
package executor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/medrank/nfcorpus-agent/a2a"
	"github.com/medrank/nfcorpus-agent/agent"
	"github.com/medrank/nfcorpus-agent/llm"
	"github.com/medrank/nfcorpus-agent/search"
	"go.uber.org/zap"
)

const (
	defaultTopK  = 5
	artifactName = "retrieval_results"
)

// QueryRequest is the typed query decoded from the inbound message text.
type QueryRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k"`
}

// RetrievalResponse is the outbound artifact payload.
type RetrievalResponse struct {
	DocIDs []string `json:"doc_ids"`
}

// Executor decodes inbound messages, drives the retrieval agent and reports the
// outcome through the task updater. Configuration is fixed at process start;
// each request gets its own scoped search client.
type Executor struct {
	model      llm.LLMClient
	backendURL string
	maxTurns   int
}

func New(model llm.LLMClient, backendURL string) *Executor {
	return &Executor{
		model:      model,
		backendURL: backendURL,
		maxTurns:   3,
	}
}

// Execute handles exactly one request: it emits ordered progress updates and
// exactly one artifact or one failure report. No error escapes this boundary.
func (e *Executor) Execute(ctx context.Context, msg *a2a.Message, updater *a2a.TaskUpdater) {
	inputText := a2a.MessageText(msg)

	updater.Working(a2a.NewAgentTextMessage("Parsing query request..."))

	request, err := decodeQueryRequest(inputText)
	if err != nil {
		logger.Error("Rejecting malformed request", zap.Error(err))
		updater.Rejected(a2a.NewAgentTextMessage(fmt.Sprintf("Invalid request format: %v", err)))
		return
	}

	updater.Working(a2a.NewAgentTextMessage(fmt.Sprintf("Searching for: %s", request.Query)))

	docIDs, err := e.Retrieve(ctx, request.Query, request.TopK, &statusReporter{updater: updater})
	if err != nil {
		logger.Error("Retrieval failed", zap.String("query", request.Query), zap.Error(err))
		updater.Failed(a2a.NewAgentTextMessage(fmt.Sprintf("Retrieval failed: %v", err)))
		return
	}

	response := RetrievalResponse{DocIDs: docIDs}
	updater.AddArtifact(artifactName, map[string]any{"doc_ids": response.DocIDs})
	updater.Complete()
}

// Retrieve runs the reasoning loop for one query and truncates the ranked IDs
// to topK. Shared by the protocol adapter and the MCP facade.
func (e *Executor) Retrieve(ctx context.Context, query string, topK int, reporter agent.ProgressReporter) ([]string, error) {
	if reporter == nil {
		reporter = &agent.NoOpProgressReporter{}
	}

	client := search.NewClient(e.backendURL)

	retrievalAgent := agent.NewAgentBuilder().
		WithModel(e.model).
		AddTool(search.NewTool(client)).
		WithMaxTurns(e.maxTurns).
		Build()

	ranking, err := retrievalAgent.Rank(ctx, reporter, query, topK)
	if err != nil {
		return nil, err
	}

	docIDs := ranking.DocIDs
	if len(docIDs) > topK {
		docIDs = docIDs[:topK]
	}
	if docIDs == nil {
		docIDs = []string{}
	}

	return docIDs, nil
}

func decodeQueryRequest(inputText string) (*QueryRequest, error) {
	request := &QueryRequest{TopK: defaultTopK}
	if err := json.Unmarshal([]byte(inputText), request); err != nil {
		return nil, err
	}

	if request.Query == "" {
		return nil, fmt.Errorf("query must be a non-empty string")
	}
	if request.TopK < 1 {
		return nil, fmt.Errorf("top_k must be at least 1")
	}

	return request, nil
}

// statusReporter forwards agent progress events as working-state updates.
type statusReporter struct {
	updater *a2a.TaskUpdater
}

func (r *statusReporter) Send(event *agent.ProgressEvent) error {
	r.updater.Working(a2a.NewAgentTextMessage(event.Message))
	return nil
}
