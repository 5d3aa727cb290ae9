package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeroops/aviation-assistant/internal/assembler"
	"github.com/aeroops/aviation-assistant/internal/llm"
	"github.com/aeroops/aviation-assistant/internal/model"
	"github.com/aeroops/aviation-assistant/pkg/logger"
)

type fakeAssembler struct {
	context   string
	lastQuery string
}

func (f *fakeAssembler) Assemble(ctx context.Context, query string) string {
	f.lastQuery = query
	return f.context
}

type fakeTurnStore struct {
	turns []model.ConversationTurn
	err   error
}

func (f *fakeTurnStore) Append(ctx context.Context, turn *model.ConversationTurn) error {
	if f.err != nil {
		return f.err
	}
	f.turns = append(f.turns, *turn)
	return nil
}

type fakeLLM struct {
	reply      string
	err        error
	lastPrompt string
}

func (f *fakeLLM) Complete(ctx context.Context, req *llm.CompletionRequest) (*llm.CompletionResponse, error) {
	f.lastPrompt = req.Prompt
	if f.err != nil {
		return nil, f.err
	}
	return &llm.CompletionResponse{Content: f.reply, Provider: "fake"}, nil
}

func (f *fakeLLM) Name() string { return "fake" }

func newTestService(a *fakeAssembler, turns *fakeTurnStore, client *fakeLLM) *ChatService {
	return NewChatService(a, turns, client, ChatOptions{}, logger.NewNop())
}

func TestRespondPersistsBothTurns(t *testing.T) {
	turns := &fakeTurnStore{}
	client := &fakeLLM{reply: "We operate five aircraft."}
	svc := newTestService(&fakeAssembler{}, turns, client)

	resp, err := svc.Respond(context.Background(), &model.ChatRequest{
		Message:        "how many aircraft do we have",
		ConversationID: "conv-1",
		UserID:         "u-1",
	})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "We operate five aircraft.", resp.Message)
	assert.Equal(t, "conv-1", resp.ConversationID)

	require.Len(t, turns.turns, 2)
	assert.Equal(t, model.RoleUser, turns.turns[0].Role)
	assert.Equal(t, "how many aircraft do we have", turns.turns[0].Content)
	assert.Equal(t, model.RoleAssistant, turns.turns[1].Role)
	assert.Equal(t, "conv-1", turns.turns[1].ConversationID)
	assert.Equal(t, "u-1", turns.turns[1].UserID)
}

func TestRespondGeneratesConversationID(t *testing.T) {
	svc := newTestService(&fakeAssembler{}, &fakeTurnStore{}, &fakeLLM{reply: "ok"})

	resp, err := svc.Respond(context.Background(), &model.ChatRequest{Message: "hello"})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ConversationID)
}

func TestRespondPersistenceFailureIsNotFatal(t *testing.T) {
	turns := &fakeTurnStore{err: errors.New("store down")}
	svc := newTestService(&fakeAssembler{}, turns, &fakeLLM{reply: "still works"})

	resp, err := svc.Respond(context.Background(), &model.ChatRequest{Message: "hello"})

	require.NoError(t, err)
	assert.Equal(t, "still works", resp.Message)
}

func TestRespondCompletionFailureIsFatal(t *testing.T) {
	svc := newTestService(&fakeAssembler{}, &fakeTurnStore{}, &fakeLLM{err: errors.New("quota exceeded")})

	_, err := svc.Respond(context.Background(), &model.ChatRequest{Message: "hello"})

	require.Error(t, err)
	assert.Equal(t, llm.ErrorRateLimited, llm.ClassifyError(err))
}

func TestRespondPromptBranchesOnContext(t *testing.T) {
	// With retrieval context the prompt carries the results block.
	withContext := &fakeLLM{reply: "ok"}
	svc := newTestService(&fakeAssembler{context: "\n--- AIRCRAFT DATA (1 found) ---\nAircraft: Boeing 737"}, &fakeTurnStore{}, withContext)
	_, err := svc.Respond(context.Background(), &model.ChatRequest{Message: "boeing?"})
	require.NoError(t, err)
	assert.Contains(t, withContext.lastPrompt, assembler.ResultsLabel)
	assert.Contains(t, withContext.lastPrompt, "Aircraft: Boeing 737")

	// Without context it falls back to the general-knowledge branch.
	withoutContext := &fakeLLM{reply: "ok"}
	svc = newTestService(&fakeAssembler{}, &fakeTurnStore{}, withoutContext)
	_, err = svc.Respond(context.Background(), &model.ChatRequest{Message: "tell me about the weather today"})
	require.NoError(t, err)
	assert.Contains(t, withoutContext.lastPrompt, assembler.NoDataMarker)
	assert.NotContains(t, withoutContext.lastPrompt, assembler.ResultsLabel+"\n")
}

func TestRespondTrimsMessageAndHistory(t *testing.T) {
	fa := &fakeAssembler{}
	client := &fakeLLM{reply: "ok"}
	svc := newTestService(fa, &fakeTurnStore{}, client)

	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	history := make([]model.HistoryTurn, 25)
	for i := range history {
		history[i] = model.HistoryTurn{
			Text:      "turn",
			Sender:    "user",
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}
	}

	_, err := svc.Respond(context.Background(), &model.ChatRequest{
		Message:             "  what is an rfq?  ",
		ConversationHistory: history,
	})

	require.NoError(t, err)
	assert.Equal(t, "what is an rfq?", fa.lastQuery)
	assert.Equal(t, 20, strings.Count(client.lastPrompt, "User: turn"))
}
