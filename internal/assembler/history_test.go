package assembler

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeroops/aviation-assistant/internal/model"
)

func makeHistory(n int, start time.Time) []model.HistoryTurn {
	turns := make([]model.HistoryTurn, n)
	for i := range turns {
		sender := "user"
		if i%2 == 1 {
			sender = "assistant"
		}
		turns[i] = model.HistoryTurn{
			ID:        fmt.Sprintf("t%d", i),
			Text:      fmt.Sprintf("message %d", i),
			Sender:    sender,
			Timestamp: start.Add(time.Duration(i) * time.Minute),
		}
	}
	return turns
}

func TestTrimHistoryBoundsToLastTwenty(t *testing.T) {
	start := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	history := makeHistory(25, start)

	trimmed := TrimHistory(history, 20)

	require.Len(t, trimmed, 20)
	// Oldest-to-newest, identical to the last 20 of the sorted input.
	assert.Equal(t, "t5", trimmed[0].ID)
	assert.Equal(t, "t24", trimmed[19].ID)
	for i := 1; i < len(trimmed); i++ {
		assert.True(t, trimmed[i].Timestamp.After(trimmed[i-1].Timestamp))
	}
}

func TestTrimHistorySortsUnorderedInput(t *testing.T) {
	start := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	history := []model.HistoryTurn{
		{ID: "c", Text: "third", Sender: "user", Timestamp: start.Add(2 * time.Minute)},
		{ID: "a", Text: "first", Sender: "user", Timestamp: start},
		{ID: "b", Text: "second", Sender: "assistant", Timestamp: start.Add(time.Minute)},
	}

	trimmed := TrimHistory(history, 20)

	require.Len(t, trimmed, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{trimmed[0].ID, trimmed[1].ID, trimmed[2].ID})
}

func TestTrimHistoryDropsEmptyAndForeignRoles(t *testing.T) {
	start := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	history := []model.HistoryTurn{
		{ID: "a", Text: "hello", Sender: "user", Timestamp: start},
		{ID: "b", Text: "   ", Sender: "assistant", Timestamp: start.Add(time.Minute)},
		{ID: "c", Text: "system note", Sender: "system", Timestamp: start.Add(2 * time.Minute)},
		{ID: "d", Content: "from content field", Sender: "assistant", Timestamp: start.Add(3 * time.Minute)},
	}

	trimmed := TrimHistory(history, 20)

	require.Len(t, trimmed, 2)
	assert.Equal(t, "a", trimmed[0].ID)
	assert.Equal(t, "d", trimmed[1].ID)
	assert.Equal(t, "from content field", trimmed[1].Body())
}

func TestTrimHistoryEmptyInput(t *testing.T) {
	assert.Empty(t, TrimHistory(nil, 20))
	assert.Empty(t, TrimHistory([]model.HistoryTurn{}, 20))
}
