package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "github.com/johnquangdev/video-summarizer/docs"
	"github.com/johnquangdev/video-summarizer/internal/adapter/handler"
	"github.com/johnquangdev/video-summarizer/internal/infrastructure/external/transcript"
	httpmw "github.com/johnquangdev/video-summarizer/internal/infrastructure/http/middleware"
	aiuse "github.com/johnquangdev/video-summarizer/internal/usecase/ai"
	pkgai "github.com/johnquangdev/video-summarizer/pkg/ai"
	"github.com/johnquangdev/video-summarizer/pkg/config"
	pkglogger "github.com/johnquangdev/video-summarizer/pkg/logger"
	pkgvalidator "github.com/johnquangdev/video-summarizer/pkg/validator"
)

// @title           Video Summarizer API
// @version         1.0
// @description     Fetches YouTube transcripts and summarizes them with Gemini

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := pkglogger.New(cfg.IsProduction(), cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = true

	e.Use(httpmw.RequestID())
	e.Use(httpmw.RequestLogger(logger))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
	}))

	// Initialize provider clients
	logger.Info("🤖 Initializing AI components...", zap.String("model", cfg.Gemini.Model))
	gemini, err := pkgai.NewGeminiClient(context.Background(), cfg.Gemini)
	if err != nil {
		logger.Fatal("Failed to initialize Gemini client", zap.Error(err))
	}
	transcriptClient := transcript.NewClient(cfg.Transcript)

	aiService := aiuse.NewAIService(transcriptClient, gemini, logger)
	aiController := handler.NewAIController(aiService, logger)

	// Setup router with handlers
	router := handler.NewRouter(cfg, aiController)
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.GetServerAddr()
		logger.Info("🚀 Starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
		)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal("❌ Server forced to shutdown", zap.Error(err))
	}

	logger.Info("✅ Server stopped gracefully")
}
