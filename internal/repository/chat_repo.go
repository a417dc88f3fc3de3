package repository

import (
	"context"

	"github.com/study-cat/study-service/internal/domain"
)

// ChatMessageRepository — append-only лог сообщений. ID выдаёт хранилище,
// строго по возрастанию, повторно не используется.
type ChatMessageRepository interface {
	Append(ctx context.Context, username, message string) (*domain.ChatMessage, error)
	// Recent возвращает не более limit последних сообщений, от старых к новым.
	Recent(ctx context.Context, limit int) ([]domain.ChatMessage, error)
}
