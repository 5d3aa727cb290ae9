// Package service provides business logic for the aviation assistant.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aeroops/aviation-assistant/internal/assembler"
	"github.com/aeroops/aviation-assistant/internal/llm"
	"github.com/aeroops/aviation-assistant/internal/model"
	"github.com/aeroops/aviation-assistant/pkg/logger"
	"github.com/aeroops/aviation-assistant/pkg/metrics"
)

// ContextAssembler builds the retrieval context for a query.
type ContextAssembler interface {
	Assemble(ctx context.Context, query string) string
}

// TurnAppender persists conversation turns.
type TurnAppender interface {
	Append(ctx context.Context, turn *model.ConversationTurn) error
}

// ChatOptions bounds the chat pipeline.
type ChatOptions struct {
	HistoryMaxTurns int
	MaxTokens       int
	Temperature     float64
	LLMTimeout      time.Duration
}

// ChatService runs one chat turn end to end: trim history, assemble context,
// compose the prompt, complete, persist both turns.
type ChatService struct {
	assembler ContextAssembler
	turns     TurnAppender
	llmClient llm.Client
	opts      ChatOptions
	logger    *logger.Logger
}

// NewChatService creates a chat service.
func NewChatService(
	ctxAssembler ContextAssembler,
	turns TurnAppender,
	llmClient llm.Client,
	opts ChatOptions,
	log *logger.Logger,
) *ChatService {
	if opts.HistoryMaxTurns <= 0 {
		opts.HistoryMaxTurns = assembler.DefaultHistoryLimit
	}
	if opts.LLMTimeout <= 0 {
		opts.LLMTimeout = 60 * time.Second
	}
	return &ChatService{
		assembler: ctxAssembler,
		turns:     turns,
		llmClient: llmClient,
		opts:      opts,
		logger:    log,
	}
}

// Respond handles one user message and returns the assistant's reply. Only a
// completion failure is fatal; persistence and retrieval failures degrade
// the turn instead of aborting it.
func (s *ChatService) Respond(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error) {
	message := strings.TrimSpace(req.Message)

	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = uuid.New().String()
	}
	log := s.logger.With(zap.String("conversation_id", conversationID))

	// Persist the user turn. Not fatal: the reply is still worth producing
	// when the store is down.
	if err := s.turns.Append(ctx, &model.ConversationTurn{
		Content:        message,
		Role:           model.RoleUser,
		Timestamp:      time.Now().UTC(),
		ConversationID: conversationID,
		UserID:         req.UserID,
	}); err != nil {
		log.Warn("failed to save user turn", zap.Error(err))
	}

	// Retrieval failures inside the assembler are already folded to empty
	// sections; an empty context just selects the general-knowledge branch.
	retrievalContext := s.assembler.Assemble(ctx, message)
	if retrievalContext != "" {
		log.Debug("database results found for query")
	} else {
		log.Debug("no database results found for query")
	}

	history := assembler.TrimHistory(req.ConversationHistory, s.opts.HistoryMaxTurns)
	prompt := assembler.ComposePrompt(assembler.SystemPreamble, history, retrievalContext, message)
	log.Debug("composed prompt", zap.Int("estimated_tokens", assembler.EstimateTokens(prompt)))

	llmCtx, cancel := context.WithTimeout(ctx, s.opts.LLMTimeout)
	defer cancel()

	start := time.Now()
	completion, err := s.llmClient.Complete(llmCtx, &llm.CompletionRequest{
		Prompt:      prompt,
		MaxTokens:   s.opts.MaxTokens,
		Temperature: s.opts.Temperature,
	})
	if err != nil {
		metrics.RecordLLMRequest(s.llmClient.Name(), "error", time.Since(start).Seconds(), 0, 0)
		return nil, fmt.Errorf("completion failed: %w", err)
	}
	metrics.RecordLLMRequest(completion.Provider, "success", time.Since(start).Seconds(),
		completion.TokensIn, completion.TokensOut)

	reply := strings.TrimSpace(completion.Content)
	if reply == "" {
		return nil, fmt.Errorf("completion returned empty reply")
	}

	if err := s.turns.Append(ctx, &model.ConversationTurn{
		Content:        reply,
		Role:           model.RoleAssistant,
		Timestamp:      time.Now().UTC(),
		ConversationID: conversationID,
		UserID:         req.UserID,
	}); err != nil {
		log.Warn("failed to save assistant turn", zap.Error(err))
	}

	return &model.ChatResponse{
		Message:        reply,
		Success:        true,
		ConversationID: conversationID,
	}, nil
}
