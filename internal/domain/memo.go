package domain

import "time"

type Memo struct {
	ID        int64     `db:"id"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	UserID    *int64    `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
}

// MemoUpdate — частичное обновление: nil-поля не трогаем.
type MemoUpdate struct {
	Title   *string
	Content *string
}
