// Package model defines data structures for the aviation assistant.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role represents the role of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ConversationTurn is one persisted user or assistant message.
type ConversationTurn struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Content        string             `bson:"content" json:"content"`
	Role           Role               `bson:"role" json:"role"`
	Timestamp      time.Time          `bson:"timestamp" json:"timestamp"`
	ConversationID string             `bson:"conversationId,omitempty" json:"conversationId,omitempty"`
	UserID         string             `bson:"userId,omitempty" json:"userId,omitempty"`
}

// HistoryTurn is a client-supplied prior turn. The browser client has sent
// the message body under both "text" and "content" over time, so both are
// accepted.
type HistoryTurn struct {
	ID        string    `json:"id"`
	Text      string    `json:"text,omitempty"`
	Content   string    `json:"content,omitempty"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// Body returns whichever of text/content the client populated.
func (t HistoryTurn) Body() string {
	if t.Text != "" {
		return t.Text
	}
	return t.Content
}

// ChatRequest is the request body for POST /api/chat.
type ChatRequest struct {
	Message             string        `json:"message"`
	ConversationHistory []HistoryTurn `json:"conversationHistory,omitempty"`
	UserID              string        `json:"userId,omitempty"`
	ConversationID      string        `json:"conversationId,omitempty"`
}

// ChatResponse is the success response for POST /api/chat.
type ChatResponse struct {
	Message        string `json:"message"`
	Success        bool   `json:"success"`
	ConversationID string `json:"conversationId"`
}
