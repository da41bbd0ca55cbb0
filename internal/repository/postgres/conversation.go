package postgres

import (
	"database/sql"
	"time"

	"swaphub/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

var ErrVersionConflict = errors.New("conversation version conflict")

type ConversationRepository struct {
	conn *sqlx.DB
}

func NewConversationRepository(conn *sqlx.DB) ConversationRepo {
	return &ConversationRepository{
		conn: conn,
	}
}

// AppendMessage appends a chat message under the user's conversation row.
// The conversation is taken FOR UPDATE and its version compared before the
// bump, so rapid consecutive messages never lose prior state updates.
func (r *ConversationRepository) AppendMessage(userID, role, content string) (*models.ChatMessage, error) {
	tx, err := r.conn.Beginx()
	if err != nil {
		return nil, err
	}

	var conv models.Conversation

	err = tx.QueryRowx("SELECT * FROM conversations WHERE user_id = $1 FOR UPDATE", userID).StructScan(&conv)
	switch err {
	case nil:
	case sql.ErrNoRows:
		conv = models.Conversation{
			ID:      uuid.NewString(),
			UserID:  userID,
			State:   "{}",
			Version: 0,
		}

		if _, err := tx.Exec("INSERT INTO conversations (id,user_id,state,version,updated_at) VALUES ($1,$2,$3,$4,$5)", conv.ID, conv.UserID, conv.State, conv.Version, time.Now().UTC()); err != nil {
			_ = tx.Rollback()
			return nil, err
		}
	default:
		_ = tx.Rollback()
		return nil, err
	}

	msg := models.ChatMessage{
		ID:             uuid.NewString(),
		ConversationID: conv.ID,
		UserID:         userID,
		Role:           role,
		Content:        content,
		CreatedAt:      time.Now().UTC(),
	}

	if _, err := tx.NamedExec("INSERT INTO chat_messages (id,conversation_id,user_id,role,content,created_at) VALUES (:id,:conversation_id,:user_id,:role,:content,:created_at)", &msg); err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	res, err := tx.Exec("UPDATE conversations SET version = version + 1, updated_at = now() WHERE id = $1 AND version = $2", conv.ID, conv.Version)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	if affected == 0 {
		_ = tx.Rollback()
		return nil, ErrVersionConflict
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &msg, nil
}

func (r *ConversationRepository) GetMessages(userID string, limit int) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage

	if err := r.conn.Select(&messages, "SELECT * FROM chat_messages WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2", userID, limit); err != nil {
		return nil, err
	}

	return messages, nil
}
