package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/voxlog/speechtotext/adapters/gcs"
	"github.com/voxlog/speechtotext/adapters/mongo"
	"github.com/voxlog/speechtotext/adapters/stt"
	"github.com/voxlog/speechtotext/adapters/transcoder"
	"github.com/voxlog/speechtotext/internal/api"
	"github.com/voxlog/speechtotext/internal/audio"
	"github.com/voxlog/speechtotext/internal/config"
	"github.com/voxlog/speechtotext/usecase"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg := config.Load()

	ctx := context.Background()

	// Initialize adapters
	mongoClient, err := mongo.NewClient(cfg.MongoURI, cfg.MongoDatabase, logger)
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}

	speechToText, err := stt.NewGoogleSpeechToText(ctx)
	if err != nil {
		logger.Fatal("failed to create speech client", zap.Error(err))
	}
	defer speechToText.Close()

	objectStorage, err := gcs.NewObjectStorage(ctx, cfg.StorageBucket)
	if err != nil {
		logger.Fatal("failed to create storage client", zap.Error(err))
	}
	defer objectStorage.Close()

	normalizer := audio.NewNormalizer(transcoder.NewFFmpeg(cfg.FFmpegBinary, logger))
	transcripts := mongo.NewTranscriptRepository(mongoClient.Database)

	// Initialize usecase services
	transcriptionService := usecase.NewTranscriptionService(
		normalizer,
		speechToText,
		objectStorage,
		transcripts,
		cfg.Language,
		logger,
	)

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Initialize API routes
	api.InitRoutes(e, transcriptionService, logger)

	// Graceful shutdown
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("shutting down the server", zap.Error(err))
		}
	}()

	logger.Info("Server started", zap.String("port", cfg.Port))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	if err := mongoClient.Close(shutdownCtx); err != nil {
		logger.Error("Failed to close MongoDB connection", zap.Error(err))
	}

	logger.Info("Server exited")
}
