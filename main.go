package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SaiNageswarS/go-api-boot/config"
	"github.com/SaiNageswarS/go-api-boot/dotenv"
	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/medrank/nfcorpus-agent/appconfig"
	"github.com/medrank/nfcorpus-agent/executor"
	"github.com/medrank/nfcorpus-agent/llm"
	"github.com/medrank/nfcorpus-agent/server"
	"go.uber.org/zap"
)

func main() {
	host := flag.String("host", "127.0.0.1", "Host to bind the server")
	port := flag.Int("port", 9010, "Port to bind the server")
	cardURL := flag.String("card-url", "", "URL to advertise in the agent card")
	flag.Parse()

	dotenv.LoadEnv()

	ccfgg := &appconfig.AppConfig{}
	if err := config.LoadConfig("config.ini", ccfgg); err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	if ccfgg.McpServerUrl == "" {
		ccfgg.McpServerUrl = "http://localhost:8000"
	}
	if ccfgg.LlmModel == "" {
		ccfgg.LlmModel = "groq:llama-3.3-70b-versatile"
	}

	model, err := llm.FromModelString(ccfgg.LlmModel)
	if err != nil {
		logger.Fatal("Failed to create LLM client", zap.Error(err))
	}

	advertisedURL := *cardURL
	if advertisedURL == "" {
		advertisedURL = fmt.Sprintf("http://%s:%d/", *host, *port)
	}

	exec := executor.New(model, ccfgg.McpServerUrl)
	srv := server.New(server.NewAgentCard(advertisedURL), exec)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", *host, *port),
		Handler: srv.Routes(),
	}

	ctx := getCancellableContext()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	logger.Info("Serving NFCorpus retrieval agent",
		zap.String("addr", httpServer.Addr),
		zap.String("backend", ccfgg.McpServerUrl),
		zap.String("model", ccfgg.LlmModel))

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("Server terminated", zap.Error(err))
	}
}

func getCancellableContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sig
		cancel()
	}()

	return ctx
}
