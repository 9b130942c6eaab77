package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hanootc/yasir-platform-sub002/internal/cache"
	"github.com/hanootc/yasir-platform-sub002/internal/config"
	"github.com/hanootc/yasir-platform-sub002/internal/database"
	adminHandlers "github.com/hanootc/yasir-platform-sub002/internal/handlers/admin"
	"github.com/hanootc/yasir-platform-sub002/internal/logging"
	"github.com/hanootc/yasir-platform-sub002/internal/middleware"
	adminRepo "github.com/hanootc/yasir-platform-sub002/internal/repository/admin"
	adminServices "github.com/hanootc/yasir-platform-sub002/internal/services/admin"
	"github.com/hanootc/yasir-platform-sub002/internal/session"
	"github.com/hanootc/yasir-platform-sub002/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.App.Env)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	gin.SetMode(cfg.App.GinMode)

	ctx := context.Background()

	dbManager := database.GetManager(cfg)
	if err := dbManager.InitMasterPool(ctx); err != nil {
		logger.Fatal("Failed to connect to master DB", zap.Error(err))
	}
	defer dbManager.Close()

	redisClient, err := cache.NewClient(&cfg.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	storageDriver, err := storage.New(&storage.Config{
		Driver:             cfg.Storage.Driver,
		UploadsPath:        cfg.Storage.UploadsPath,
		AWSAccessKeyID:     cfg.Storage.AWSAccessKeyID,
		AWSSecretAccessKey: cfg.Storage.AWSSecretAccessKey,
		AWSRegion:          cfg.Storage.AWSRegion,
		AWSBucket:          cfg.Storage.AWSBucket,
		R2AccessKeyID:      cfg.Storage.R2AccessKeyID,
		R2SecretAccessKey:  cfg.Storage.R2SecretAccessKey,
		R2AccountID:        cfg.Storage.R2AccountID,
		R2Bucket:           cfg.Storage.R2Bucket,
		R2PublicURL:        cfg.Storage.R2PublicURL,
	})
	if err != nil {
		logger.Fatal("Failed to create storage driver", zap.Error(err))
	}

	masterPool := dbManager.GetMasterPool()

	adminUsers := adminRepo.NewAdminUserRepository(masterPool)
	platforms := adminRepo.NewPlatformRepository(masterPool)
	features := adminRepo.NewFeatureRepository(masterPool)
	actions := adminRepo.NewActionRepository(masterPool)
	payments := adminRepo.NewPaymentRepository(masterPool)
	settings := adminRepo.NewSettingsRepository(masterPool)

	sessions := session.NewStore(redisClient, time.Duration(cfg.Session.IdleTimeoutMinutes)*time.Minute)

	authService := adminServices.NewAuthService(adminUsers, sessions, cfg.AdminAPI.JWTSecret, logger)
	subscriptionService := adminServices.NewSubscriptionService(platforms, settings, actions, redisClient, logger)
	featureService := adminServices.NewFeatureService(features, actions, logger)
	settingsService := adminServices.NewSettingsService(settings, actions, logger)
	profileService := adminServices.NewProfileService(adminUsers, storageDriver, redisClient, cfg.Images.Channel, logger)

	authHandler := adminHandlers.NewAuthHandler(authService)
	dashboardHandler := adminHandlers.NewDashboardHandler(platforms, actions, payments, settings)
	featureHandler := adminHandlers.NewFeatureHandler(featureService)
	settingsHandler := adminHandlers.NewSettingsHandler(settingsService)
	platformHandler := adminHandlers.NewPlatformHandler(subscriptionService)
	profileHandler := adminHandlers.NewProfileHandler(profileService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logging.RequestLogger(logger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "admin-api"})
	})

	api := router.Group("/api/admin")
	api.POST("/login", authHandler.Login)

	authed := api.Group("")
	authed.Use(middleware.AdminAuth(cfg.AdminAPI.JWTSecret, sessions))
	{
		authed.POST("/logout", authHandler.Logout)
		authed.GET("/session", authHandler.Session)

		authed.GET("/stats", dashboardHandler.Stats)
		authed.GET("/platforms", dashboardHandler.Platforms)
		authed.GET("/subscriptions", dashboardHandler.Subscriptions)
		authed.GET("/actions", dashboardHandler.Actions)
		authed.GET("/payments", dashboardHandler.Payments)

		authed.GET("/features", featureHandler.List)
		authed.POST("/features", featureHandler.Create)
		authed.PUT("/features/:id", featureHandler.Update)
		authed.DELETE("/features/:id", featureHandler.Delete)

		authed.GET("/system-settings", settingsHandler.Get)
		authed.PUT("/system-settings", settingsHandler.Update)

		authed.POST("/extend-subscription", platformHandler.ExtendSubscription)
		authed.POST("/suspend-platform", platformHandler.SuspendPlatform)
		authed.POST("/activate-platform", platformHandler.ActivatePlatform)

		authed.GET("/profile", profileHandler.Get)
		authed.POST("/profile", profileHandler.Update)
		authed.PUT("/avatar", profileHandler.UploadAvatar)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.AdminAPI.Port,
		Handler: router,
	}

	go func() {
		logger.Info("admin-api listening", zap.String("port", cfg.AdminAPI.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down admin-api")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Forced shutdown", zap.Error(err))
	}
}
