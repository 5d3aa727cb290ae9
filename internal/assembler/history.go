package assembler

import (
	"sort"
	"strings"

	"github.com/aeroops/aviation-assistant/internal/model"
)

// DefaultHistoryLimit bounds how many prior turns reach the prompt.
const DefaultHistoryLimit = 20

// TrimHistory bounds client-supplied history for the prompt: user/assistant
// turns with non-empty bodies, sorted ascending by timestamp, last max turns.
func TrimHistory(history []model.HistoryTurn, max int) []model.HistoryTurn {
	if max <= 0 {
		max = DefaultHistoryLimit
	}

	kept := make([]model.HistoryTurn, 0, len(history))
	for _, turn := range history {
		if turn.Sender != string(model.RoleUser) && turn.Sender != string(model.RoleAssistant) {
			continue
		}
		if strings.TrimSpace(turn.Body()) == "" {
			continue
		}
		kept = append(kept, turn)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Timestamp.Before(kept[j].Timestamp)
	})

	if len(kept) > max {
		kept = kept[len(kept)-max:]
	}
	return kept
}
