package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/study-cat/study-service/internal/domain"
	"github.com/study-cat/study-service/internal/repository"
)

type QuizService struct {
	scoreRepo repository.QuizScoreRepository
}

func NewQuizService(scoreRepo repository.QuizScoreRepository) *QuizService {
	return &QuizService{scoreRepo: scoreRepo}
}

func (s *QuizService) SubmitScore(ctx context.Context, sc *domain.QuizScore) (*domain.QuizScore, error) {
	if strings.TrimSpace(sc.Username) == "" ||
		strings.TrimSpace(sc.QuizType) == "" ||
		strings.TrimSpace(sc.Level) == "" {
		return nil, domain.ErrInvalidScore
	}
	if sc.Score < 0 || sc.TotalQuestions <= 0 || sc.Score > sc.TotalQuestions {
		return nil, domain.ErrInvalidScore
	}

	if err := s.scoreRepo.Create(ctx, sc); err != nil {
		return nil, fmt.Errorf("scoreRepo.Create: %w", err)
	}
	return sc, nil
}

func (s *QuizService) Scores(ctx context.Context, username, quizType string) ([]domain.QuizScore, error) {
	return s.scoreRepo.ListByUser(ctx, username, quizType)
}

func (s *QuizService) Leaderboard(ctx context.Context, quizType, level string, limit int) ([]domain.QuizScore, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.scoreRepo.Leaderboard(ctx, quizType, level, limit)
}
