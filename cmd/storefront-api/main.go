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
	storeHandlers "github.com/hanootc/yasir-platform-sub002/internal/handlers/store"
	"github.com/hanootc/yasir-platform-sub002/internal/logging"
	"github.com/hanootc/yasir-platform-sub002/internal/middleware"
	adminRepo "github.com/hanootc/yasir-platform-sub002/internal/repository/admin"
	storeRepo "github.com/hanootc/yasir-platform-sub002/internal/repository/store"
	storeServices "github.com/hanootc/yasir-platform-sub002/internal/services/store"
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
	if err := dbManager.InitStorePool(ctx); err != nil {
		logger.Fatal("Failed to connect to store DB", zap.Error(err))
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
	storePool := dbManager.GetStorePool()

	platforms := adminRepo.NewPlatformRepository(masterPool)
	adminUsers := adminRepo.NewAdminUserRepository(masterPool)
	products := storeRepo.NewProductRepository(storePool)
	categories := storeRepo.NewCategoryRepository(storePool)
	variants := storeRepo.NewVariantRepository(storePool)
	landings := storeRepo.NewLandingRepository(storePool)
	orders := storeRepo.NewOrderRepository(storePool)
	pixels := storeRepo.NewPixelRepository(storePool)

	productService := storeServices.NewProductService(products, redisClient, storageDriver, cfg.Images.Channel, logger)
	descriptionService := storeServices.NewDescriptionService(cfg.Describe, logger)
	landingService := storeServices.NewLandingService(landings, products, variants, cfg.App.BaseURL, logger)
	pixelService := storeServices.NewPixelService(pixels, redisClient, cfg.Pixel.Channel, logger)
	orderService := storeServices.NewOrderService(products, landings, orders, variants, platforms, pixelService, logger)

	categoryHandler := storeHandlers.NewCategoryHandler(categories)
	productHandler := storeHandlers.NewProductHandler(productService, descriptionService, variants)
	landingHandler := storeHandlers.NewLandingHandler(landingService, redisClient)
	orderHandler := storeHandlers.NewOrderHandler(orderService, orders)
	pixelHandler := storeHandlers.NewPixelHandler(pixelService)
	userHandler := storeHandlers.NewUserHandler(adminUsers)

	resolvePlatform := middleware.PlatformResolver(redisClient, platforms)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logging.RequestLogger(logger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "storefront-api"})
	})

	api := router.Group("/api")
	{
		api.GET("/categories", categoryHandler.ListGlobal)
		api.GET("/platforms/:id/categories", categoryHandler.ListByPlatform)

		api.POST("/products", productHandler.CreateGlobal)
		api.POST("/platforms/:id/products", productHandler.CreateForPlatform)
		api.POST("/products/generate-description", productHandler.GenerateDescription)
		api.POST("/products/images", productHandler.UploadImage)
		api.GET("/products/:id/colors", productHandler.ListColors)
		api.GET("/products/:id/shapes", productHandler.ListShapes)
		api.GET("/products/:id/sizes", productHandler.ListSizes)

		api.GET("/landing/:slug", resolvePlatform, landingHandler.GetDocument)
		api.POST("/landing-page-orders", resolvePlatform, orderHandler.Create)
		api.GET("/landing-page-orders/:id", orderHandler.Get)
		api.POST("/pixel/events", resolvePlatform, pixelHandler.Track)

		public := api.Group("/public")
		{
			public.GET("/products/:id", productHandler.GetPublic)
			public.GET("/categories/:id", categoryHandler.GetPublic)
			public.GET("/users/:id", userHandler.GetPublic)
			public.GET("/platform/:subdomain", resolvePlatform, landingHandler.GetPublicPlatform)
			public.GET("/platform/:subdomain/products/by-slug/:slug", resolvePlatform, landingHandler.GetProductBySlug)
		}
	}

	// Server-rendered landing pages live at the root: /<subdomain>/<slug>.
	router.GET("/:subdomain/:slug", resolvePlatform, landingHandler.RenderPage)

	srv := &http.Server{
		Addr:    ":" + cfg.StorefrontAPI.Port,
		Handler: router,
	}

	go func() {
		logger.Info("storefront-api listening", zap.String("port", cfg.StorefrontAPI.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down storefront-api")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Forced shutdown", zap.Error(err))
	}
}
