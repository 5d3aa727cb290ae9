package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aeroops/aviation-assistant/internal/model"
	"github.com/aeroops/aviation-assistant/pkg/metrics"
)

// TurnStore persists conversation turns.
type TurnStore struct {
	mongo *Mongo
}

// NewTurnStore creates a turn store.
func NewTurnStore(m *Mongo) *TurnStore {
	return &TurnStore{mongo: m}
}

// Append inserts one turn. Turns are immutable once written.
func (s *TurnStore) Append(ctx context.Context, turn *model.ConversationTurn) error {
	if turn.Timestamp.IsZero() {
		turn.Timestamp = time.Now().UTC()
	}

	if _, err := s.mongo.Collection(CollMessages).InsertOne(ctx, turn); err != nil {
		return fmt.Errorf("failed to append turn: %w", err)
	}

	metrics.MessagesTotal.WithLabelValues(string(turn.Role)).Inc()
	return nil
}

// ListByConversation returns a conversation's turns in chronological order.
func (s *TurnStore) ListByConversation(ctx context.Context, conversationID string, limit int64) ([]model.ConversationTurn, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := s.mongo.Collection(CollMessages).Find(ctx, bson.M{"conversationId": conversationID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list turns: %w", err)
	}
	var turns []model.ConversationTurn
	if err := cursor.All(ctx, &turns); err != nil {
		return nil, fmt.Errorf("failed to decode turns: %w", err)
	}
	return turns, nil
}
