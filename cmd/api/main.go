package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dineshjasuja/SmartExpenseTracker/db"
	"github.com/dineshjasuja/SmartExpenseTracker/internal/amqp"
	"github.com/dineshjasuja/SmartExpenseTracker/internal/config"
	"github.com/dineshjasuja/SmartExpenseTracker/internal/domain"
	"github.com/dineshjasuja/SmartExpenseTracker/internal/extractor"
	"github.com/dineshjasuja/SmartExpenseTracker/internal/handler"
	"github.com/dineshjasuja/SmartExpenseTracker/internal/middleware"
	"github.com/dineshjasuja/SmartExpenseTracker/internal/repository/postgres"
	"github.com/dineshjasuja/SmartExpenseTracker/internal/repository/storage"
	"github.com/dineshjasuja/SmartExpenseTracker/internal/service"
	"github.com/dineshjasuja/SmartExpenseTracker/internal/util"
	"github.com/dineshjasuja/SmartExpenseTracker/internal/websocket"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title Smart Expense Tracker API
// @version 1.0
// @description Personal expense tracking with monthly category budgets.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	loc := cfg.Location()

	if cfg.RunMigrations {
		if err := db.RunMigrations(cfg.DatabaseURL); err != nil {
			log.Fatal().Err(err).Msg("Failed to run migrations")
		}
		log.Info().Msg("Database migrations applied")
	}

	// Connect to database
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pool.Close()

	// Verify database connection
	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to ping database")
	}
	log.Info().Msg("Connected to database")

	// Initialize repositories
	expenseRepo := postgres.NewExpenseRepository(pool)
	budgetRepo := postgres.NewBudgetOverrideRepository(pool)

	// Realtime events go to websocket sessions and, when configured, the broker
	hub := websocket.NewHub()
	publisher := websocket.NewMultiPublisher(hub)
	if cfg.AMQP.Enabled() {
		brokerPublisher, err := amqp.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to event broker")
		}
		defer brokerPublisher.Close()
		publisher = websocket.NewMultiPublisher(hub, brokerPublisher)
		log.Info().Str("exchange", cfg.AMQP.Exchange).Msg("Publishing events to broker")
	}

	// Optional export archive storage
	var exportStore storage.ExportStore
	if cfg.S3.Enabled() {
		s3Store, err := storage.NewS3ExportStore(context.Background(), cfg.S3)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize export storage")
		}
		exportStore = s3Store
		log.Info().Str("bucket", cfg.S3.Bucket).Msg("Export archiving enabled")
	}

	// Optional text extraction
	var expenseExtractor domain.ExpenseExtractor
	if cfg.Gemini.Enabled() {
		gemini, err := extractor.NewGeminiExtractor(context.Background(), cfg.Gemini, loc)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize expense extractor")
		}
		expenseExtractor = gemini
		log.Info().Str("model", cfg.Gemini.Model).Msg("Text extraction enabled")
	}

	// Initialize services
	reconciliationService := service.NewReconciliationService(expenseRepo, budgetRepo, loc)
	reconciliationService.SetEventPublisher(publisher)
	summaryService := service.NewSummaryService(reconciliationService, loc)
	exportService := service.NewExportService(reconciliationService, exportStore, loc)
	extractionService := service.NewExtractionService(expenseExtractor, reconciliationService, loc)

	// Initialize auth middleware
	authMiddleware, err := middleware.NewAuthMiddleware(cfg.Auth0Domain, cfg.Auth0Audience)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create auth middleware")
	}

	wsValidator, err := websocket.NewAuth0JWTValidator(cfg.Auth0Domain, cfg.Auth0Audience)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create websocket token validator")
	}

	extractLimiter := middleware.NewRateLimiterWithConfig(cfg.Gemini.RatePerMinute, cfg.Gemini.BurstSize)
	defer extractLimiter.Stop()

	// Initialize handlers
	catalogHandler := handler.NewCatalogHandler()
	summaryHandler := handler.NewSummaryHandler(reconciliationService, summaryService, util.NewCurrencyFormatter(cfg.DisplayLocale))
	expenseHandler := handler.NewExpenseHandler(reconciliationService)
	extractHandler := handler.NewExtractHandler(extractionService)
	budgetHandler := handler.NewBudgetHandler(reconciliationService)
	accountHandler := handler.NewAccountHandler(reconciliationService)
	exportHandler := handler.NewExportHandler(exportService)
	wsHandler := handler.NewWebSocketHandler(hub, wsValidator, cfg.CORSOrigins)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Request ID middleware
	e.Use(echomiddleware.RequestID())

	// CORS middleware
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		ExposeHeaders:    []string{echo.HeaderContentDisposition, "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Security headers middleware (helmet-like)
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		HSTSMaxAge:         31536000,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))

	// Request logging middleware with zerolog
	e.Use(zerologMiddleware())

	// Recovery middleware
	e.Use(echomiddleware.Recover())

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":             "ok",
			"websocket_clients":  hub.TotalClientCount(),
			"extraction_enabled": extractionService.Enabled(),
			"archive_enabled":    exportService.ArchiveEnabled(),
		})
	})

	// Register API routes
	handler.RegisterRoutes(e, authMiddleware, extractLimiter, catalogHandler, summaryHandler, expenseHandler, extractHandler, budgetHandler, accountHandler, exportHandler, wsHandler)

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Str("timezone", loc.String()).Msg("Starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// zerologMiddleware returns a middleware that logs requests using zerolog
func zerologMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			event := log.Info()
			if res.Status >= http.StatusInternalServerError {
				event = log.Error()
			}

			event.
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Dur("latency", time.Since(start)).
				Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
				Str("user_id", middleware.GetUserID(c)).
				Msg("request")

			return nil
		}
	}
}
