package domain

import "time"

type ChatMessage struct {
	ID        int64     `db:"id"`
	Username  string    `db:"username"`
	Message   string    `db:"message"`
	Timestamp time.Time `db:"timestamp"`
}
