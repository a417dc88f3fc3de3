package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/study-cat/study-service/config"
	"github.com/study-cat/study-service/internal/repository"
	"github.com/study-cat/study-service/internal/repository/memory"
	"github.com/study-cat/study-service/internal/repository/postgres"
	"github.com/study-cat/study-service/internal/service"
	httpx "github.com/study-cat/study-service/internal/transport/http"
	"github.com/study-cat/study-service/internal/transport/ws"
	"github.com/study-cat/study-service/pkg/logger"
)

func main() {
	// --- config ---
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger.Init(logger.Config{
		Env:       logger.Env(cfg.Logging.Env),
		Service:   cfg.Logging.Service,
		Version:   cfg.Logging.Version,
		Backend:   logger.Backend(cfg.Logging.Backend),
		AddSource: cfg.Logging.AddSource,
		Debug:     cfg.Logging.Debug,
	})
	slog.Info("starting study-service",
		"env", cfg.Logging.Env, "version", cfg.Logging.Version, "storage", cfg.Storage.Backend)

	// --- repos ---
	ctx := context.Background()

	var (
		chatRepo repository.ChatMessageRepository
		memoRepo repository.MemoRepository
		quizRepo repository.QuizScoreRepository
	)
	if cfg.Storage.Backend == "postgres" {
		db, err := postgres.New(ctx, cfg.Storage.Postgres.DSN)
		if err != nil {
			log.Fatalf("postgres: %v", err)
		}
		defer db.Close()

		chatRepo = postgres.NewChatRepository(db.Pool)
		memoRepo = postgres.NewMemoRepository(db.Pool)
		quizRepo = postgres.NewQuizScoreRepository(db.Pool)
	} else {
		chatRepo = memory.NewChatStore()
		memoRepo = memory.NewMemoStore()
		quizRepo = memory.NewQuizScoreStore()
	}

	// --- services ---
	chatSvc := service.NewChatService(chatRepo)
	memoSvc := service.NewMemoService(memoRepo)
	quizSvc := service.NewQuizService(quizRepo)

	// --- WS Hub & Server ---
	hub := ws.NewHub()
	wsServer := ws.NewServer(hub, chatSvc, cfg.WS.PingInterval())

	// --- HTTP ---
	handler := httpx.NewHandler(chatSvc, memoSvc, quizSvc)
	router := httpx.NewRouter(handler, wsServer)
	httpSrv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http listen", "addr", cfg.HTTP.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// --- graceful shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("shutdown signal", "sig", sig)
	case err := <-errCh:
		slog.Error("server error", "err", err)
	}

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = httpSrv.Shutdown(ctxShutdown)
	slog.Info("stopped")
}
