// Package server exposes the retrieval agent over an A2A-style HTTP surface:
// an agent card plus JSON-RPC message/send and message/stream endpoints.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/medrank/nfcorpus-agent/a2a"
	"go.uber.org/zap"
)

// AgentExecutor handles one inbound message against a task updater.
type AgentExecutor interface {
	Execute(ctx context.Context, msg *a2a.Message, updater *a2a.TaskUpdater)
}

type Server struct {
	card     a2a.AgentCard
	executor AgentExecutor
}

func New(card a2a.AgentCard, executor AgentExecutor) *Server {
	return &Server{card: card, executor: executor}
}

func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/.well-known/agent.json", s.handleAgentCard)
	r.Post("/", s.handleJSONRPC)

	return r
}

func (s *Server) handleAgentCard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.card)
}

func (s *Server) handleJSONRPC(w http.ResponseWriter, r *http.Request) {
	var req a2a.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusOK, a2a.Response{
			JSONRPC: "2.0",
			Error:   &a2a.Error{Code: a2a.ErrCodeParse, Message: fmt.Sprintf("parse error: %v", err)},
		})
		return
	}

	switch req.Method {
	case "message/send":
		s.handleMessageSend(w, r, &req)
	case "message/stream":
		s.handleMessageStream(w, r, &req)
	default:
		writeJSON(w, http.StatusOK, a2a.Response{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error:   &a2a.Error{Code: a2a.ErrCodeMethodNotFound, Message: fmt.Sprintf("unknown method %q", req.Method)},
		})
	}
}

// handleMessageSend runs the task to completion and returns the final task.
func (s *Server) handleMessageSend(w http.ResponseWriter, r *http.Request, req *a2a.Request) {
	params, rpcErr := decodeSendParams(req)
	if rpcErr != nil {
		writeJSON(w, http.StatusOK, a2a.Response{JSONRPC: "2.0", ID: req.ID, Error: rpcErr})
		return
	}

	task := a2a.NewTask()
	updater := a2a.NewTaskUpdater(task, discardSink{})

	s.executor.Execute(r.Context(), &params.Message, updater)

	writeJSON(w, http.StatusOK, a2a.Response{JSONRPC: "2.0", ID: req.ID, Result: task})
}

// handleMessageStream emits task events as server-sent events.
func (s *Server) handleMessageStream(w http.ResponseWriter, r *http.Request, req *a2a.Request) {
	params, rpcErr := decodeSendParams(req)
	if rpcErr != nil {
		writeJSON(w, http.StatusOK, a2a.Response{JSONRPC: "2.0", ID: req.ID, Error: rpcErr})
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeJSON(w, http.StatusOK, a2a.Response{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error:   &a2a.Error{Code: a2a.ErrCodeInternal, Message: "streaming unsupported by transport"},
		})
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	sink := &sseSink{w: w, flusher: flusher, id: req.ID}

	task := a2a.NewTask()
	updater := a2a.NewTaskUpdater(task, sink)

	s.executor.Execute(r.Context(), &params.Message, updater)
}

func decodeSendParams(req *a2a.Request) (*a2a.MessageSendParams, *a2a.Error) {
	params := &a2a.MessageSendParams{}
	if err := json.Unmarshal(req.Params, params); err != nil {
		return nil, &a2a.Error{Code: a2a.ErrCodeInvalidParams, Message: fmt.Sprintf("invalid params: %v", err)}
	}
	if len(params.Message.Parts) == 0 {
		return nil, &a2a.Error{Code: a2a.ErrCodeInvalidParams, Message: "message has no parts"}
	}
	return params, nil
}

// discardSink drops intermediate events; message/send clients only see the
// final task object.
type discardSink struct{}

func (discardSink) Send(event any) error { return nil }

// sseSink writes each task event as one JSON-RPC-framed SSE event.
type sseSink struct {
	w       http.ResponseWriter
	flusher http.Flusher
	id      json.RawMessage
}

func (s *sseSink) Send(event any) error {
	payload, err := json.Marshal(a2a.Response{JSONRPC: "2.0", ID: s.id, Result: event})
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(s.w, "data: %s\n\n", payload); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to write response", zap.Error(err))
	}
}
