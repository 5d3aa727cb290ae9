// Package handler provides HTTP handlers for the API server.
package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/aeroops/aviation-assistant/internal/llm"
	"github.com/aeroops/aviation-assistant/internal/middleware"
	"github.com/aeroops/aviation-assistant/internal/model"
	"github.com/aeroops/aviation-assistant/pkg/logger"
)

// ChatResponder produces an assistant reply for one chat request.
type ChatResponder interface {
	Respond(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error)
}

// ChatHandler handles the chat endpoint.
type ChatHandler struct {
	chat   ChatResponder
	logger *logger.Logger
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(chat ChatResponder, log *logger.Logger) *ChatHandler {
	return &ChatHandler{chat: chat, logger: log}
}

// Chat handles POST /api/chat
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Message is required and must be a string")
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		writeError(w, http.StatusBadRequest, "Message cannot be empty")
		return
	}
	if err := middleware.ValidateMessageContent(message); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.chat.Respond(r.Context(), &req)
	if err != nil {
		h.logger.Error("chat request failed", zap.Error(err))
		status, message := classifyChatError(err)
		writeError(w, status, message)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// classifyChatError maps pipeline failures onto the error taxonomy: provider
// auth 500, rate limit 429, safety rejection 400, everything else 500.
func classifyChatError(err error) (int, string) {
	switch llm.ClassifyError(err) {
	case llm.ErrorAuth:
		return http.StatusInternalServerError, "AI provider authentication error. Please check your API key."
	case llm.ErrorRateLimited:
		return http.StatusTooManyRequests, "AI provider rate limit exceeded. Please try again later."
	case llm.ErrorContentBlocked:
		return http.StatusBadRequest, "Message content violates safety policies. Please rephrase your message."
	default:
		return http.StatusInternalServerError, "An unexpected error occurred. Please try again later."
	}
}
