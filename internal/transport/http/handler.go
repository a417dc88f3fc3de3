package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/study-cat/study-service/internal/domain"
	"github.com/study-cat/study-service/internal/service"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	chatSvc *service.ChatService
	memoSvc *service.MemoService
	quizSvc *service.QuizService
}

func NewHandler(chat *service.ChatService, memo *service.MemoService, quiz *service.QuizService) *Handler {
	return &Handler{
		chatSvc: chat,
		memoSvc: memo,
		quizSvc: quiz,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// GET /api/chat/messages?limit=
func (h *Handler) GetChatMessages(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			limit = n
		}
	}

	msgs, err := h.chatSvc.History(r.Context(), limit)
	if err != nil {
		slog.Error("handler.GetChatMessages:", slog.Any("err", err))
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch chat messages"})
		return
	}

	items := make([]ChatMessageItem, 0, len(msgs))
	for _, m := range msgs {
		items = append(items, ChatMessageItem{
			ID:        m.ID,
			Username:  m.Username,
			Message:   m.Message,
			Timestamp: m.Timestamp.Truncate(time.Millisecond),
		})
	}

	writeJSON(w, http.StatusOK, items)
}

// GET /api/memos/{id} — id здесь идентификатор пользователя
func (h *Handler) ListMemos(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
		return
	}

	memos, err := h.memoSvc.ListByUser(r.Context(), userID)
	if err != nil {
		slog.Error("handler.ListMemos:", slog.Any("err", err))
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch memos"})
		return
	}

	items := make([]MemoItem, 0, len(memos))
	for _, m := range memos {
		items = append(items, memoItem(m))
	}

	writeJSON(w, http.StatusOK, items)
}

// POST /api/memos
func (h *Handler) CreateMemo(w http.ResponseWriter, r *http.Request) {
	var req CreateMemoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid memo data"})
		return
	}

	memo, err := h.memoSvc.Create(r.Context(), req.Title, req.Content, req.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidMemo) {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid memo data"})
			return
		}
		slog.Error("handler.CreateMemo:", slog.Any("err", err))
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to create memo"})
		return
	}

	writeJSON(w, http.StatusOK, memoItem(*memo))
}

// PUT /api/memos/{id}
func (h *Handler) UpdateMemo(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid memo id"})
		return
	}

	var req UpdateMemoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid memo data"})
		return
	}

	memo, err := h.memoSvc.Update(r.Context(), id, domain.MemoUpdate{Title: req.Title, Content: req.Content})
	if err != nil {
		if errors.Is(err, domain.ErrMemoNotFound) {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "memo not found"})
			return
		}
		slog.Error("handler.UpdateMemo:", slog.Any("err", err))
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to update memo"})
		return
	}

	writeJSON(w, http.StatusOK, memoItem(*memo))
}

// DELETE /api/memos/{id}
func (h *Handler) DeleteMemo(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid memo id"})
		return
	}

	if err := h.memoSvc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrMemoNotFound) {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "memo not found"})
			return
		}
		slog.Error("handler.DeleteMemo:", slog.Any("err", err))
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to delete memo"})
		return
	}

	writeJSON(w, http.StatusOK, DeleteMemoResponse{Success: true})
}

// POST /api/quiz/score
func (h *Handler) CreateQuizScore(w http.ResponseWriter, r *http.Request) {
	var req CreateQuizScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid score data"})
		return
	}

	score, err := h.quizSvc.SubmitScore(r.Context(), &domain.QuizScore{
		Username:       req.Username,
		QuizType:       req.QuizType,
		Level:          req.Level,
		Score:          req.Score,
		TotalQuestions: req.TotalQuestions,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidScore) {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid score data"})
			return
		}
		slog.Error("handler.CreateQuizScore:", slog.Any("err", err))
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to save score"})
		return
	}

	writeJSON(w, http.StatusOK, scoreItem(*score))
}

// GET /api/quiz/scores/{username}?type=
func (h *Handler) GetQuizScores(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	quizType := r.URL.Query().Get("type")

	scores, err := h.quizSvc.Scores(r.Context(), username, quizType)
	if err != nil {
		slog.Error("handler.GetQuizScores:", slog.Any("err", err))
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch scores"})
		return
	}

	items := make([]QuizScoreItem, 0, len(scores))
	for _, sc := range scores {
		items = append(items, scoreItem(sc))
	}

	writeJSON(w, http.StatusOK, items)
}

// GET /api/quiz/leaderboard/{quizType}/{level}?limit=
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	quizType := chi.URLParam(r, "quizType")
	level := chi.URLParam(r, "level")
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			limit = n
		}
	}

	scores, err := h.quizSvc.Leaderboard(r.Context(), quizType, level, limit)
	if err != nil {
		slog.Error("handler.GetLeaderboard:", slog.Any("err", err))
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch leaderboard"})
		return
	}

	items := make([]QuizScoreItem, 0, len(scores))
	for _, sc := range scores {
		items = append(items, scoreItem(sc))
	}

	writeJSON(w, http.StatusOK, items)
}

func memoItem(m domain.Memo) MemoItem {
	return MemoItem{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt.Truncate(time.Millisecond),
	}
}

func scoreItem(s domain.QuizScore) QuizScoreItem {
	return QuizScoreItem{
		ID:             s.ID,
		Username:       s.Username,
		QuizType:       s.QuizType,
		Level:          s.Level,
		Score:          s.Score,
		TotalQuestions: s.TotalQuestions,
		CompletedAt:    s.CompletedAt.Truncate(time.Millisecond),
	}
}
