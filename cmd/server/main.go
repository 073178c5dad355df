package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/onehealth/portal/internal/config"
	"github.com/onehealth/portal/internal/db"
	"github.com/onehealth/portal/internal/logger"
	"github.com/onehealth/portal/internal/registration"
	"github.com/onehealth/portal/internal/services"
	"github.com/onehealth/portal/internal/web"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := logger.Init(cfg.LogLevel); err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.L().Sync() }()

	// Everything lives in memory and is gone when the process exits.
	if err := db.Init(db.MemoryDSN); err != nil {
		logger.L().Fatal("db init", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	swept := services.StartSessionSweeper(ctx, cfg.SessionIdleTTL, cfg.SessionSweepEvery)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           web.Router(cfg, registration.UnwiredSubmitter{}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.L().Info("One Health Portal listening", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal("listen", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.L().Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.L().Error("shutdown", zap.Error(err))
	}
	<-swept
}
