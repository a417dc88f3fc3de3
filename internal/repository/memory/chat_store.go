package memory

import (
	"context"
	"sync"
	"time"

	"github.com/study-cat/study-service/internal/domain"
)

const defaultRecentLimit = 50

// ChatStore — in-memory append-only лог сообщений.
// Единственный владелец канонической коллекции; рост не ограничен.
type ChatStore struct {
	mu     sync.RWMutex
	msgs   []domain.ChatMessage
	nextID int64
}

func NewChatStore() *ChatStore {
	return &ChatStore{nextID: 1}
}

func (s *ChatStore) Append(_ context.Context, username, message string) (*domain.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := domain.ChatMessage{
		ID:        s.nextID,
		Username:  username,
		Message:   message,
		Timestamp: time.Now(),
	}
	s.nextID++
	s.msgs = append(s.msgs, m)

	out := m
	return &out, nil
}

// Recent возвращает снапшот: последующие Append не меняют уже выданный срез.
func (s *ChatStore) Recent(_ context.Context, limit int) ([]domain.ChatMessage, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	start := len(s.msgs) - limit
	if start < 0 {
		start = 0
	}
	out := make([]domain.ChatMessage, len(s.msgs)-start)
	copy(out, s.msgs[start:])
	return out, nil
}
