package http

import "time"

type ErrorResponse struct {
	Error string `json:"error"`
}

type ChatMessageItem struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type CreateMemoRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	UserID  *int64 `json:"userId"`
}

type UpdateMemoRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type MemoItem struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UserID    *int64    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

type DeleteMemoResponse struct {
	Success bool `json:"success"`
}

type CreateQuizScoreRequest struct {
	Username       string `json:"username"`
	QuizType       string `json:"quizType"`
	Level          string `json:"level"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"totalQuestions"`
}

type QuizScoreItem struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	QuizType       string    `json:"quizType"`
	Level          string    `json:"level"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"totalQuestions"`
	CompletedAt    time.Time `json:"completedAt"`
}
