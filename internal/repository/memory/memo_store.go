package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/study-cat/study-service/internal/domain"
)

type MemoStore struct {
	mu     sync.RWMutex
	memos  map[int64]domain.Memo
	nextID int64
}

func NewMemoStore() *MemoStore {
	return &MemoStore{
		memos:  make(map[int64]domain.Memo),
		nextID: 1,
	}
}

func (s *MemoStore) ListByUser(_ context.Context, userID int64) ([]domain.Memo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Memo, 0)
	for _, m := range s.memos {
		if m.UserID != nil && *m.UserID == userID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoStore) Create(_ context.Context, m *domain.Memo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m.ID = s.nextID
	s.nextID++
	m.CreatedAt = time.Now()
	s.memos[m.ID] = *m
	return nil
}

func (s *MemoStore) Update(_ context.Context, id int64, upd domain.MemoUpdate) (*domain.Memo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.memos[id]
	if !ok {
		return nil, domain.ErrMemoNotFound
	}
	if upd.Title != nil {
		m.Title = *upd.Title
	}
	if upd.Content != nil {
		m.Content = *upd.Content
	}
	s.memos[id] = m

	out := m
	return &out, nil
}

func (s *MemoStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.memos[id]; !ok {
		return domain.ErrMemoNotFound
	}
	delete(s.memos, id)
	return nil
}
