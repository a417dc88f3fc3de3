package repository

import (
	"context"

	"github.com/study-cat/study-service/internal/domain"
)

type MemoRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.Memo, error)
	Create(ctx context.Context, m *domain.Memo) error
	Update(ctx context.Context, id int64, upd domain.MemoUpdate) (*domain.Memo, error)
	Delete(ctx context.Context, id int64) error
}
