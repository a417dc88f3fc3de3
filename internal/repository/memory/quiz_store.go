package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/study-cat/study-service/internal/domain"
)

const defaultLeaderboardLimit = 10

type QuizScoreStore struct {
	mu     sync.RWMutex
	scores []domain.QuizScore
	nextID int64
}

func NewQuizScoreStore() *QuizScoreStore {
	return &QuizScoreStore{nextID: 1}
}

func (s *QuizScoreStore) Create(_ context.Context, sc *domain.QuizScore) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sc.ID = s.nextID
	s.nextID++
	sc.CompletedAt = time.Now()
	s.scores = append(s.scores, *sc)
	return nil
}

func (s *QuizScoreStore) ListByUser(_ context.Context, username, quizType string) ([]domain.QuizScore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.QuizScore, 0)
	for _, sc := range s.scores {
		if sc.Username != username {
			continue
		}
		if quizType != "" && sc.QuizType != quizType {
			continue
		}
		out = append(out, sc)
	}
	return out, nil
}

func (s *QuizScoreStore) Leaderboard(_ context.Context, quizType, level string, limit int) ([]domain.QuizScore, error) {
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.QuizScore, 0)
	for _, sc := range s.scores {
		if sc.QuizType == quizType && sc.Level == level {
			out = append(out, sc)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
