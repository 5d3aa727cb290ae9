package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeroops/aviation-assistant/internal/model"
	"github.com/aeroops/aviation-assistant/pkg/logger"
)

type fakeResponder struct {
	resp *model.ChatResponse
	err  error
}

func (f *fakeResponder) Respond(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func postChat(t *testing.T, h *ChatHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Chat(rec, req)
	return rec
}

func TestChatSuccess(t *testing.T) {
	h := NewChatHandler(&fakeResponder{resp: &model.ChatResponse{
		Message:        "Based on our records, the fleet has five aircraft.",
		Success:        true,
		ConversationID: "conv-1",
	}}, logger.NewNop())

	rec := postChat(t, h, `{"message":"how many aircraft do we have"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp model.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "conv-1", resp.ConversationID)
}

func TestChatRejectsInvalidBody(t *testing.T) {
	h := NewChatHandler(&fakeResponder{}, logger.NewNop())

	rec := postChat(t, h, `{"message": 42}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Message is required and must be a string"}`, rec.Body.String())
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	h := NewChatHandler(&fakeResponder{}, logger.NewNop())

	rec := postChat(t, h, `{"message":"   "}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Message cannot be empty"}`, rec.Body.String())
}

func TestChatErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantText   string
	}{
		{
			name:       "auth failure",
			err:        errors.New("completion failed: invalid api key"),
			wantStatus: http.StatusInternalServerError,
			wantText:   "authentication error",
		},
		{
			name:       "rate limited",
			err:        errors.New("completion failed: rate limit exceeded"),
			wantStatus: http.StatusTooManyRequests,
			wantText:   "rate limit",
		},
		{
			name:       "content blocked",
			err:        errors.New("completion failed: blocked by safety settings"),
			wantStatus: http.StatusBadRequest,
			wantText:   "safety policies",
		},
		{
			name:       "unknown",
			err:        errors.New("completion failed: connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantText:   "unexpected error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewChatHandler(&fakeResponder{err: tt.err}, logger.NewNop())

			rec := postChat(t, h, `{"message":"hello"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantText)
		})
	}
}
