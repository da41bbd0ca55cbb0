package models

import "time"

type Conversation struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	State     string    `db:"state"`
	Version   int64     `db:"version"`
	UpdatedAt time.Time `db:"updated_at"`
}

type ChatMessage struct {
	ID             string    `db:"id" json:"id"`
	ConversationID string    `db:"conversation_id" json:"conversationId"`
	UserID         string    `db:"user_id" json:"userId"`
	Role           string    `db:"role" json:"role"`
	Content        string    `db:"content" json:"content"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
}
