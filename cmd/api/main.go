package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crm-platform/internal/activity"
	"crm-platform/internal/ai"
	"crm-platform/internal/auth"
	"crm-platform/internal/config"
	"crm-platform/internal/httpapi"
	"crm-platform/internal/lead"
	"crm-platform/internal/store"
	"crm-platform/pkg/logger"
	"crm-platform/pkg/metrics"
	"crm-platform/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Root context that cancels on shutdown
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Local development convenience; absent .env is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}

	log := logger.New(cfg.App.Env)
	slog.SetDefault(log)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	authManager, err := auth.NewManager(cfg.Session)
	if err != nil {
		log.Error("auth init failed", "err", err)
		os.Exit(1)
	}

	rdb, err := utils.OpenRedis(rootCtx, utils.RedisConfig{Addr: cfg.RedisAddr()})
	if err != nil {
		log.Error("redis init failed", "err", err)
		os.Exit(1)
	}
	defer rdb.Close()

	st, err := store.Open(rootCtx, store.NewRedisPersister(rdb), log)
	if err != nil {
		log.Error("store init failed", "err", err)
		os.Exit(1)
	}

	gemini := ai.NewGeminiClient(cfg.AI)
	if !gemini.Enabled() {
		log.Warn("AI collaborator disabled, serving fallback annotations")
	}
	enricher := ai.NewEnricher(gemini, st, log, cfg.AI.Timeout)

	h := httpapi.Handlers{
		Auth:     authManager,
		Store:    st,
		Engine:   lead.NewEngine(),
		AI:       gemini,
		Enricher: enricher,
		Trail:    activity.NewService(activity.NewMemoryRepo()),
		Log:      log,
	}

	// Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.Middleware(log))
	r.Use(metrics.Middleware())

	registerRoutes(r, h, auth.RequireSession(authManager))

	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("api listening", "addr", srv.Addr, "env", cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server failed", "err", err)
			stop()
		}
	}()

	<-rootCtx.Done()
	log.Info("shutdown initiated")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown failed", "err", err)
	}
}
