package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/TahoorBR/LegalAdvisor/analyzer"
	"github.com/TahoorBR/LegalAdvisor/config"
	"github.com/TahoorBR/LegalAdvisor/handler"
	"github.com/TahoorBR/LegalAdvisor/middleware"
	"github.com/TahoorBR/LegalAdvisor/pkg/logger"
	"github.com/TahoorBR/LegalAdvisor/service"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Local env file with API keys, optional
	_ = godotenv.Load(".env.local")

	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger.Init(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	slog.Info("configuration loaded successfully")

	// Select generation backend
	var gen analyzer.Generator
	var apiKeyConfigured bool
	switch cfg.LLM.Provider {
	case "openai":
		svc := service.NewOpenAIService(&cfg.LLM.OpenAI)
		gen = svc
		apiKeyConfigured = svc.HasAPIKey()
	default:
		svc := service.NewGeminiService(&cfg.LLM.Gemini)
		gen = svc
		apiKeyConfigured = svc.HasAPIKey()
	}
	slog.Info("generation backend selected", "provider", cfg.LLM.Provider, "api_key_configured", apiKeyConfigured)

	contractAnalyzer := analyzer.New(gen, analyzer.Config{
		DefaultModel:         cfg.Analyzer.DefaultModel,
		LongContextModel:     cfg.Analyzer.LongContextModel,
		LongContextThreshold: cfg.Analyzer.LongContextThreshold,
		MaxWords:             cfg.Analyzer.MaxWords,
		ModelOverride:        cfg.Analyzer.ModelOverride,
	})

	// Initialize analysis store
	store := service.NewAnalysisStore(&cfg.Store)

	// Optional MINIO archive for analysis results
	var archive *service.ArchiveService
	if cfg.Archive.Enabled {
		archive, err = service.NewArchiveService(&cfg.Archive)
		if err != nil {
			slog.Error("failed to initialize archive service", "error", err)
			os.Exit(1)
		}
		if err := archive.EnsureBucket(context.Background()); err != nil {
			slog.Error("failed to ensure archive bucket", "error", err)
			os.Exit(1)
		}
	}

	// Initialize handlers
	authHandler := handler.NewAuthHandler(cfg)
	analyzeHandler := handler.NewAnalyzeHandler(contractAnalyzer, store, archive)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New() // Use New() instead of Default() to avoid default middleware

	// Add custom middleware
	router.Use(middleware.RequestID())                 // Request ID for tracing
	router.Use(middleware.Recovery())                  // Panic recovery
	router.Use(middleware.RequestLogger())             // Access logging
	router.Use(corsMiddleware())                       // CORS
	router.Use(middleware.RateLimit(100, time.Minute)) // Rate limiting: 100 requests per minute

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":             "ok",
			"api_key_configured": apiKeyConfigured,
			"timestamp":          time.Now().Format(time.RFC3339),
		})
	})

	// Public routes
	api := router.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)
	}

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(&cfg.Auth))
	{
		protected.GET("/auth/me", authHandler.GetCurrentUser)
		protected.POST("/analyze", analyzeHandler.Analyze)
		protected.POST("/contracts/info", analyzeHandler.Info)
		protected.GET("/analyses", analyzeHandler.List)
		protected.GET("/analyses/:id", analyzeHandler.Get)
		protected.DELETE("/analyses/:id", analyzeHandler.Delete)
	}

	// Create server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited gracefully")
}

// corsMiddleware handles CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
