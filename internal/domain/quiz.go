package domain

import "time"

type QuizScore struct {
	ID             int64     `db:"id"`
	Username       string    `db:"username"`
	QuizType       string    `db:"quiz_type"`
	Level          string    `db:"level"`
	Score          int       `db:"score"`
	TotalQuestions int       `db:"total_questions"`
	CompletedAt    time.Time `db:"completed_at"`
}
