package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"spotQuest/app/echo-server/metrics"
	"spotQuest/app/echo-server/router"
	"spotQuest/business/badge"
	"spotQuest/business/compatibility"
	"spotQuest/business/exploration"
	"spotQuest/business/geozone"
	userService "spotQuest/business/user"
	"spotQuest/internal/middleware"
	"spotQuest/internal/repository/notification"
	psqlRepo "spotQuest/internal/repository/postgres"
	redisRepo "spotQuest/internal/repository/redis"
	"spotQuest/internal/rest"
	"spotQuest/pkg/config"
	"spotQuest/pkg/database"
	redisClient "spotQuest/pkg/database/redis"
	"spotQuest/pkg/logger"
	engineMetrics "spotQuest/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

const sessionIdleTTL = 24 * time.Hour

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	defer logger.Sync()
	logger.Info("Starting spotQuest engine", "version", cfg.App.Version)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	metrics.Init()
	engineMetrics.Init()

	// Zone catalog, shared read-only by every request
	zones := geozone.Default()

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	placeRepo := psqlRepo.NewPlaceRepository(db)
	visitRepo := psqlRepo.NewVisitRepository(db)
	saveRepo := psqlRepo.NewSaveRepository(db)
	friendshipRepo := psqlRepo.NewFriendshipRepository(db)
	recommendationRepo := psqlRepo.NewRecommendationRepository(db)
	badgeRepo := psqlRepo.NewBadgeRepository(db)

	// Init notification from mailjet
	var notifier badge.Notifier
	if cfg.Engine.BadgeNotifyEnabled {
		notifier = notification.NewMailjetRepository(
			notification.MailjetConfig{
				MailjetBaseURL:           cfg.Mailjet.MailjetBaseUrl,
				MailjetBasicAuthUsername: cfg.Mailjet.MailjetBasicAuthUsername,
				MailjetBasicAuthPassword: cfg.Mailjet.MailjetBasicAuthPassword,
				MailjetSenderEmail:       cfg.Mailjet.MailjetSenderEmail,
				MailjetSenderName:        cfg.Mailjet.MailjetSenderName,
			},
			userRepo,
		)
	}

	// Auth middleware, redis-backed sessions when enabled
	var tokenValidator middleware.TokenValidator
	if cfg.Redis.Enabled {
		rdb, err := redisClient.ConnectSessionStore(context.Background(), cfg.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to redis", "error", err)
		}
		defer redisClient.CloseSessionStore(rdb)

		tokenValidator = redisRepo.NewSessionRepository(rdb, sessionIdleTTL)
		logger.Info("Redis session validation enabled")
	}
	authRequired := middleware.AuthMiddleware(cfg.JWT.SecretKey, tokenValidator)

	// Init service
	userService := userService.NewUserService(userRepo, friendshipRepo)
	explorationService := exploration.NewExplorationService(visitRepo, placeRepo, userService, zones)
	compatibilityService := compatibility.NewCompatibilityService(saveRepo, userService)
	badgeEngine := badge.NewBadgeEngine(visitRepo, saveRepo, friendshipRepo, recommendationRepo, badgeRepo, zones, notifier)

	// Init handler
	explorationHandler := rest.NewExplorationHandler(explorationService, cfg.Engine.RequestTimeout)
	friendsHandler := rest.NewFriendsHandler(compatibilityService, explorationService, cfg.Engine.RequestTimeout)
	badgeHandler := rest.NewBadgeHandler(badgeEngine, cfg.Engine.RequestTimeout)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(metrics.Middleware())
	e.Use(middleware.RequestLogger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Setup routes
	router.SetupMetricsRoute(e)
	api := e.Group("/api/v1")
	router.SetupExplorationRoutes(api, explorationHandler, authRequired)
	router.SetupFriendRoutes(api, friendsHandler, authRequired)
	router.SetupBadgeRoutes(api, badgeHandler, authRequired)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Info("Server stopped")
}
