package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/emilythestrangee/board-game-reviews/backend/internal/config"
	"github.com/emilythestrangee/board-game-reviews/backend/internal/database"
	"github.com/emilythestrangee/board-game-reviews/backend/internal/logger"
	"github.com/emilythestrangee/board-game-reviews/backend/internal/server"
)

func main() {
	configPath := flag.String("config", config.DefaultConfigPath, "Path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.New(cfg.Database, zlog)
	if err != nil {
		zlog.Fatal("failed to initialize database", zap.Error(err))
	}

	srv := server.NewServer(cfg, zlog, db)

	go func() {
		zlog.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("forced shutdown", zap.Error(err))
	}
	if err := db.Close(); err != nil {
		zlog.Error("failed to close database", zap.Error(err))
	}
	zlog.Info("server exited")
}
