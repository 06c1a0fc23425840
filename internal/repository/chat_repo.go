package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"echocare/internal/model"
)

type ChatRepository struct {
	pool *pgxpool.Pool
}

func NewChatRepository(pool *pgxpool.Pool) *ChatRepository {
	return &ChatRepository{pool: pool}
}

func (r *ChatRepository) Append(ctx context.Context, m model.ChatMessage) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO chat_history (user_id, role, content) VALUES ($1, $2, $3)`,
		m.UserID, m.Role, m.Content)
	if err != nil {
		return fmt.Errorf("append chat message: %w", err)
	}
	return nil
}

// Recent returns the newest messages for a user in chronological order.
func (r *ChatRepository) Recent(ctx context.Context, userID int64, limit int) ([]model.ChatMessage, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, role, content, timestamp
		 FROM chat_history WHERE user_id = $1
		 ORDER BY timestamp DESC LIMIT $2`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("recent chat history: %w", err)
	}
	defer rows.Close()

	messages := make([]model.ChatMessage, 0)
	for rows.Next() {
		var m model.ChatMessage
		if err := rows.Scan(&m.ID, &m.UserID, &m.Role, &m.Content, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("scan chat message: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Query is newest-first for the LIMIT; callers want oldest-first.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}
