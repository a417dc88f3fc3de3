package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/study-cat/study-service/internal/domain"
	"github.com/study-cat/study-service/internal/repository/memory"
)

func TestChatService_AppendValidation(t *testing.T) {
	svc := NewChatService(memory.NewChatStore())
	ctx := context.Background()

	if _, err := svc.Append(ctx, "", "hi"); !errors.Is(err, domain.ErrEmptyUsername) {
		t.Fatalf("expected ErrEmptyUsername, got %v", err)
	}
	if _, err := svc.Append(ctx, "alice", "   "); !errors.Is(err, domain.ErrEmptyMessage) {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}
	m, err := svc.Append(ctx, "  alice ", " hi ")
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if m.Username != "alice" || m.Message != "hi" {
		t.Fatalf("expected trimmed fields, got %q %q", m.Username, m.Message)
	}
	if m.ID != 1 {
		t.Fatalf("expected id 1, got %d", m.ID)
	}
}

func TestChatService_LongMessageAccepted(t *testing.T) {
	svc := NewChatService(memory.NewChatStore())

	// текст сообщения не ограничивается по длине
	long := strings.Repeat("а", 100_000)
	m, err := svc.Append(context.Background(), "alice", long)
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if m.Message != long {
		t.Fatalf("message must be stored verbatim")
	}
}

func TestChatService_HistoryDefaultLimit(t *testing.T) {
	svc := NewChatService(memory.NewChatStore())
	ctx := context.Background()

	for i := 0; i < 55; i++ {
		if _, err := svc.Append(ctx, "bob", "yo"); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	msgs, err := svc.History(ctx, 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(msgs) != 50 {
		t.Fatalf("expected 50, got %d", len(msgs))
	}
	if msgs[0].ID != 6 || msgs[49].ID != 55 {
		t.Fatalf("expected ids 6..55, got %d..%d", msgs[0].ID, msgs[49].ID)
	}
}
