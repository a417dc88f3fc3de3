package service

import (
	"context"
	"strings"

	"github.com/study-cat/study-service/internal/domain"
	"github.com/study-cat/study-service/internal/repository"
)

const defaultHistoryLimit = 50

type ChatService struct {
	chatRepo repository.ChatMessageRepository
}

func NewChatService(chatRepo repository.ChatMessageRepository) *ChatService {
	return &ChatService{chatRepo: chatRepo}
}

// Append валидирует и сохраняет сообщение; id и timestamp выдаёт хранилище.
func (s *ChatService) Append(ctx context.Context, username, message string) (*domain.ChatMessage, error) {
	username = strings.TrimSpace(username)
	message = strings.TrimSpace(message)
	if username == "" {
		return nil, domain.ErrEmptyUsername
	}
	if message == "" {
		return nil, domain.ErrEmptyMessage
	}
	// текст не нормализуется и не ограничивается по длине —
	// лимит кадра держит транспорт
	return s.chatRepo.Append(ctx, username, message)
}

// History возвращает последние limit сообщений, от старых к новым.
func (s *ChatService) History(ctx context.Context, limit int) ([]domain.ChatMessage, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return s.chatRepo.Recent(ctx, limit)
}
