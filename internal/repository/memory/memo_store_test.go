package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/study-cat/study-service/internal/domain"
)

func int64p(v int64) *int64 { return &v }
func strp(v string) *string { return &v }

func TestMemoStore_CRUD(t *testing.T) {
	s := NewMemoStore()
	ctx := context.Background()

	m := &domain.Memo{Title: "math", Content: "fractions", UserID: int64p(7)}
	if err := s.Create(ctx, m); err != nil {
		t.Fatalf("create: %v", err)
	}
	if m.ID != 1 || m.CreatedAt.IsZero() {
		t.Fatalf("id/createdAt not assigned: %+v", m)
	}

	upd, err := s.Update(ctx, m.ID, domain.MemoUpdate{Title: strp("english")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if upd.Title != "english" || upd.Content != "fractions" {
		t.Fatalf("partial update broken: %+v", upd)
	}

	if err := s.Delete(ctx, m.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.Delete(ctx, m.ID); !errors.Is(err, domain.ErrMemoNotFound) {
		t.Fatalf("expected ErrMemoNotFound, got %v", err)
	}
}

func TestMemoStore_ListByUser(t *testing.T) {
	s := NewMemoStore()
	ctx := context.Background()

	for _, uid := range []int64{7, 7, 9} {
		if err := s.Create(ctx, &domain.Memo{Title: "t", Content: "c", UserID: int64p(uid)}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	// memo без владельца не должен попадать в выборку
	if err := s.Create(ctx, &domain.Memo{Title: "t", Content: "c"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	memos, err := s.ListByUser(ctx, 7)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(memos) != 2 {
		t.Fatalf("expected 2 memos for user 7, got %d", len(memos))
	}
	if memos[0].ID > memos[1].ID {
		t.Fatalf("expected ascending id order")
	}
}

func TestMemoStore_UpdateMissing(t *testing.T) {
	s := NewMemoStore()

	_, err := s.Update(context.Background(), 42, domain.MemoUpdate{Title: strp("x")})
	if !errors.Is(err, domain.ErrMemoNotFound) {
		t.Fatalf("expected ErrMemoNotFound, got %v", err)
	}
}
