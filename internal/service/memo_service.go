package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/study-cat/study-service/internal/domain"
	"github.com/study-cat/study-service/internal/repository"
)

type MemoService struct {
	memoRepo repository.MemoRepository
}

func NewMemoService(memoRepo repository.MemoRepository) *MemoService {
	return &MemoService{memoRepo: memoRepo}
}

func (s *MemoService) Create(ctx context.Context, title, content string, userID *int64) (*domain.Memo, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return nil, domain.ErrInvalidMemo
	}

	m := &domain.Memo{
		Title:   title,
		Content: content,
		UserID:  userID,
	}
	if err := s.memoRepo.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("memoRepo.Create: %w", err)
	}
	return m, nil
}

func (s *MemoService) ListByUser(ctx context.Context, userID int64) ([]domain.Memo, error) {
	return s.memoRepo.ListByUser(ctx, userID)
}

func (s *MemoService) Update(ctx context.Context, id int64, upd domain.MemoUpdate) (*domain.Memo, error) {
	return s.memoRepo.Update(ctx, id, upd)
}

func (s *MemoService) Delete(ctx context.Context, id int64) error {
	return s.memoRepo.Delete(ctx, id)
}
