package memory

import (
	"context"
	"testing"

	"github.com/study-cat/study-service/internal/domain"
)

func submit(t *testing.T, s *QuizScoreStore, user, quizType, level string, score int) {
	t.Helper()
	err := s.Create(context.Background(), &domain.QuizScore{
		Username:       user,
		QuizType:       quizType,
		Level:          level,
		Score:          score,
		TotalQuestions: 10,
	})
	if err != nil {
		t.Fatalf("create score: %v", err)
	}
}

func TestQuizScoreStore_Leaderboard(t *testing.T) {
	s := NewQuizScoreStore()

	submit(t, s, "alice", "english", "easy", 5)
	submit(t, s, "bob", "english", "easy", 9)
	submit(t, s, "carol", "english", "easy", 7)
	submit(t, s, "dave", "english", "hard", 10) // другой уровень
	submit(t, s, "erin", "geography", "easy", 10)

	top, err := s.Leaderboard(context.Background(), "english", "easy", 2)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(top))
	}
	if top[0].Username != "bob" || top[1].Username != "carol" {
		t.Fatalf("expected bob,carol; got %s,%s", top[0].Username, top[1].Username)
	}
}

func TestQuizScoreStore_ListByUser(t *testing.T) {
	s := NewQuizScoreStore()

	submit(t, s, "alice", "english", "easy", 5)
	submit(t, s, "alice", "geography", "easy", 6)
	submit(t, s, "bob", "english", "easy", 7)

	all, err := s.ListByUser(context.Background(), "alice", "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 scores, got %d", len(all))
	}

	eng, err := s.ListByUser(context.Background(), "alice", "english")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(eng) != 1 || eng[0].QuizType != "english" {
		t.Fatalf("type filter broken: %+v", eng)
	}
}
