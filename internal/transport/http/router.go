package http

import (
	"net/http"
	"time"

	"github.com/study-cat/study-service/internal/transport/ws"

	"github.com/go-chi/chi/v5"
	middlewareChi "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(h *Handler, wsServer *ws.Server) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewareChi.RequestID)
	r.Use(middlewareChi.RealIP)
	r.Use(middlewareChi.Recoverer)

	// WS endpoint — фиксированный путь, отделяет чат-трафик от остального HTTP
	r.Get("/ws", wsServer.HandleWS)

	r.Group(func(pr chi.Router) {
		pr.Use(middlewareChi.Timeout(30 * time.Second))

		pr.Route("/api", func(api chi.Router) {
			api.Get("/chat/messages", h.GetChatMessages)

			api.Route("/memos", func(rm chi.Router) {
				rm.Post("/", h.CreateMemo)
				rm.Get("/{id}", h.ListMemos) // {id} — user id
				rm.Put("/{id}", h.UpdateMemo)
				rm.Delete("/{id}", h.DeleteMemo)
			})

			api.Route("/quiz", func(rq chi.Router) {
				rq.Post("/score", h.CreateQuizScore)
				rq.Get("/scores/{username}", h.GetQuizScores)
				rq.Get("/leaderboard/{quizType}/{level}", h.GetLeaderboard)
			})
		})
	})

	// health
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return r
}
