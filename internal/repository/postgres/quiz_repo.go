package postgres

import (
	"context"

	"github.com/study-cat/study-service/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type QuizScoreRepository struct {
	db *pgxpool.Pool
}

func NewQuizScoreRepository(db *pgxpool.Pool) *QuizScoreRepository {
	return &QuizScoreRepository{db: db}
}

func (r *QuizScoreRepository) Create(ctx context.Context, s *domain.QuizScore) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO quiz_scores (username, quiz_type, level, score, total_questions)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, completed_at
	`, s.Username, s.QuizType, s.Level, s.Score, s.TotalQuestions).Scan(&s.ID, &s.CompletedAt)
}

func (r *QuizScoreRepository) ListByUser(ctx context.Context, username, quizType string) ([]domain.QuizScore, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, username, quiz_type, level, score, total_questions, completed_at
		FROM quiz_scores
		WHERE username = $1 AND ($2 = '' OR quiz_type = $2)
		ORDER BY id
	`, username, quizType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanScores(rows)
}

func (r *QuizScoreRepository) Leaderboard(ctx context.Context, quizType, level string, limit int) ([]domain.QuizScore, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.Query(ctx, `
		SELECT id, username, quiz_type, level, score, total_questions, completed_at
		FROM quiz_scores
		WHERE quiz_type = $1 AND level = $2
		ORDER BY score DESC, id
		LIMIT $3
	`, quizType, level, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanScores(rows)
}

func scanScores(rows pgx.Rows) ([]domain.QuizScore, error) {
	out := make([]domain.QuizScore, 0)
	for rows.Next() {
		var s domain.QuizScore
		if err := rows.Scan(&s.ID, &s.Username, &s.QuizType, &s.Level, &s.Score, &s.TotalQuestions, &s.CompletedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
