package postgres

import (
	"context"
	"errors"

	"github.com/study-cat/study-service/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MemoRepository struct {
	db *pgxpool.Pool
}

func NewMemoRepository(db *pgxpool.Pool) *MemoRepository {
	return &MemoRepository{db: db}
}

func (r *MemoRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Memo, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, content, user_id, created_at
		FROM memos WHERE user_id = $1
		ORDER BY id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Memo, 0)
	for rows.Next() {
		var m domain.Memo
		if err := rows.Scan(&m.ID, &m.Title, &m.Content, &m.UserID, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *MemoRepository) Create(ctx context.Context, m *domain.Memo) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO memos (title, content, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, m.Title, m.Content, m.UserID).Scan(&m.ID, &m.CreatedAt)
}

func (r *MemoRepository) Update(ctx context.Context, id int64, upd domain.MemoUpdate) (*domain.Memo, error) {
	var m domain.Memo
	err := r.db.QueryRow(ctx, `
		UPDATE memos
		SET title   = COALESCE($2, title),
		    content = COALESCE($3, content)
		WHERE id = $1
		RETURNING id, title, content, user_id, created_at
	`, id, upd.Title, upd.Content).Scan(&m.ID, &m.Title, &m.Content, &m.UserID, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMemoNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *MemoRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM memos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMemoNotFound
	}
	return nil
}
