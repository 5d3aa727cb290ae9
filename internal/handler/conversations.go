package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/aeroops/aviation-assistant/internal/middleware"
	"github.com/aeroops/aviation-assistant/internal/model"
	"github.com/aeroops/aviation-assistant/pkg/logger"
)

// TurnLister reads back a conversation's persisted turns.
type TurnLister interface {
	ListByConversation(ctx context.Context, conversationID string, limit int64) ([]model.ConversationTurn, error)
}

// ConversationHandler serves conversation history.
type ConversationHandler struct {
	turns  TurnLister
	logger *logger.Logger
}

// NewConversationHandler creates a new conversation handler.
func NewConversationHandler(turns TurnLister, log *logger.Logger) *ConversationHandler {
	return &ConversationHandler{turns: turns, logger: log}
}

// ListMessages handles GET /api/conversations/{id}/messages
func (h *ConversationHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "id")
	if err := middleware.ValidateConversationID(conversationID); err != nil {
		writeFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	var limit int64 = 100
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil && parsed > 0 && parsed <= 500 {
			limit = parsed
		}
	}

	turns, err := h.turns.ListByConversation(r.Context(), conversationID, limit)
	if err != nil {
		h.logger.Error("failed to list conversation turns", zap.Error(err))
		writeFailure(w, http.StatusInternalServerError, "Failed to fetch conversation history")
		return
	}
	if turns == nil {
		turns = []model.ConversationTurn{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":        true,
		"conversationId": conversationID,
		"messages":       turns,
	})
}
