// Package main is the entry point for the API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/aeroops/aviation-assistant/internal/assembler"
	"github.com/aeroops/aviation-assistant/internal/config"
	"github.com/aeroops/aviation-assistant/internal/handler"
	"github.com/aeroops/aviation-assistant/internal/llm"
	"github.com/aeroops/aviation-assistant/internal/middleware"
	"github.com/aeroops/aviation-assistant/internal/service"
	"github.com/aeroops/aviation-assistant/internal/store"
	"github.com/aeroops/aviation-assistant/pkg/logger"
	"github.com/aeroops/aviation-assistant/pkg/tracing"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	logger.SetGlobal(log)

	log.Info("starting API server")

	ctx := context.Background()
	if cfg.TracingEnabled {
		tp, err := tracing.InitTracer(ctx, "aviation-assistant", cfg.TracingEndpoint)
		if err != nil {
			log.Warn("failed to initialize tracing", zap.Error(err))
		} else {
			defer tracing.Shutdown(ctx, tp)
		}
	}

	// Connect to MongoDB
	connectCtx, cancelConnect := context.WithTimeout(ctx, cfg.MongoTimeout)
	mongo, err := store.Connect(connectCtx, cfg.MongoURI, cfg.MongoDatabase, log)
	cancelConnect()
	if err != nil {
		log.Error("failed to connect to mongodb", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongo.Close(shutdownCtx); err != nil {
			log.Warn("failed to close mongodb connection", zap.Error(err))
		}
	}()

	if err := mongo.EnsureIndexes(ctx); err != nil {
		log.Warn("failed to ensure indexes", zap.Error(err))
	}

	// Initialize LLM client
	llmClient, err := llm.NewClient(ctx, llm.Provider(cfg.LLMProvider), llm.Config{
		GeminiAPIKey:    cfg.GeminiAPIKey,
		GeminiModel:     cfg.GeminiModel,
		OpenAIAPIKey:    cfg.OpenAIAPIKey,
		AnthropicAPIKey: cfg.AnthropicAPIKey,
	})
	if err != nil {
		log.Error("failed to create LLM client", zap.Error(err))
		os.Exit(1)
	}

	// Initialize retrieval pipeline and services
	gateway := store.NewGateway(ctx, mongo, log)
	contextAssembler := assembler.New(gateway, cfg.RetrievalTimeout, log)
	turnStore := store.NewTurnStore(mongo)
	rfqRepo := store.NewRFQRepo(mongo)

	chatSvc := service.NewChatService(contextAssembler, turnStore, llmClient, service.ChatOptions{
		HistoryMaxTurns: cfg.HistoryMaxTurns,
		MaxTokens:       cfg.LLMMaxTokens,
		Temperature:     cfg.LLMTemperature,
		LLMTimeout:      cfg.LLMTimeout,
	}, log)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(mongo)
	chatHandler := handler.NewChatHandler(chatSvc, log)
	conversationHandler := handler.NewConversationHandler(turnStore, log)
	rfqHandler := handler.NewRFQHandler(rfqRepo, log)

	// Create router
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(log))
	r.Use(middleware.SecurityHeaders)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposedHeaders:   []string{"X-Correlation-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health endpoints
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)

	// Metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", chatHandler.Chat)
		r.Get("/conversations/{id}/messages", conversationHandler.ListMessages)

		r.Route("/rfqs", func(r chi.Router) {
			r.Get("/", rfqHandler.List)
			r.Post("/", rfqHandler.Create)
		})
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      r,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("server listening", zap.String("port", cfg.ServerPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	log.Info("server stopped")
}
