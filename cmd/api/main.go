package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	app "github.com/mohammadpnp/user-ingest/internal/application/user"
	"github.com/mohammadpnp/user-ingest/internal/bootstrap"
	"github.com/mohammadpnp/user-ingest/internal/infrastructure/db"
	"github.com/mohammadpnp/user-ingest/internal/infrastructure/repository"
)

func main() {
	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	port := getEnv("PORT", "8080")

	logger, err := newLogger()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	gormDB, err := db.Connect(databaseURL)
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}

	pool, err := pgxpool.New(context.Background(), databaseURL)
	if err != nil {
		logger.Fatal("failed to create pgx pool", zap.Error(err))
	}
	defer pool.Close()

	queue := app.NewWorkQueue()

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	gateway := repository.NewUserBatchRepository(pool)
	worker := app.NewIngestWorker(gateway, queue, app.IngestWorkerConfig{
		Workers:     parseIntEnv("INGEST_WORKERS", 5),
		MaxAttempts: parseIntEnv("INGEST_MAX_ATTEMPTS", 0),
	}, logger)
	worker.Start(workerCtx)

	server := bootstrap.NewHTTPServer(gormDB, queue, bootstrap.ServerConfig{
		ChunkSize: parseIntEnv("INGEST_CHUNK_SIZE", 1000),
	}, logger)

	go func() {
		if err := server.Start(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}

	stopWorkers()
}

func newLogger() (*zap.Logger, error) {
	if getEnv("LOG_LEVEL", "") == "debug" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func parseIntEnv(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
