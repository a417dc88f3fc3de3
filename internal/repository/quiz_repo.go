package repository

import (
	"context"

	"github.com/study-cat/study-service/internal/domain"
)

type QuizScoreRepository interface {
	Create(ctx context.Context, s *domain.QuizScore) error
	// ListByUser: quizType == "" — все типы викторин.
	ListByUser(ctx context.Context, username, quizType string) ([]domain.QuizScore, error)
	Leaderboard(ctx context.Context, quizType, level string, limit int) ([]domain.QuizScore, error)
}
