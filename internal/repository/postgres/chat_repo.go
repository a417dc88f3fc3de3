package postgres

import (
	"context"

	"github.com/study-cat/study-service/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ChatRepository struct {
	db *pgxpool.Pool
}

func NewChatRepository(db *pgxpool.Pool) *ChatRepository {
	return &ChatRepository{db: db}
}

func (r *ChatRepository) Append(ctx context.Context, username, message string) (*domain.ChatMessage, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO chat_messages (username, message)
		VALUES ($1, $2)
		RETURNING id, username, message, timestamp
	`, username, message)

	var m domain.ChatMessage
	if err := row.Scan(&m.ID, &m.Username, &m.Message, &m.Timestamp); err != nil {
		return nil, err
	}
	return &m, nil
}

// Recent отбирает последние limit по id DESC и разворачивает к порядку "старые -> новые".
func (r *ChatRepository) Recent(ctx context.Context, limit int) ([]domain.ChatMessage, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, username, message, timestamp
		FROM chat_messages
		ORDER BY id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ChatMessage
	for rows.Next() {
		var m domain.ChatMessage
		if err := rows.Scan(&m.ID, &m.Username, &m.Message, &m.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}
