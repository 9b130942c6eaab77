package main

import (
	"context"
	"encoding/json"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/hanootc/yasir-platform-sub002/internal/cache"
	"github.com/hanootc/yasir-platform-sub002/internal/config"
	"github.com/hanootc/yasir-platform-sub002/internal/images"
	"github.com/hanootc/yasir-platform-sub002/internal/logging"
	"github.com/hanootc/yasir-platform-sub002/internal/storage"
)

// The image worker consumes upload notifications and derives the bounded
// web/thumbnail variants. Pages serve the raw upload until a derived file
// exists, so a crashed job degrades quality, not availability.
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

	processor := images.NewProcessor(storageDriver, cfg.Images.MaxWidth, cfg.Images.ThumbnailWidth, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sub := redisClient.Subscribe(ctx, cfg.Images.Channel)
	defer sub.Close()

	logger.Info("image-worker consuming", zap.String("channel", cfg.Images.Channel))

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			logger.Info("image-worker shutting down")
			return
		case msg, ok := <-ch:
			if !ok {
				logger.Info("subscription closed")
				return
			}

			var job images.Job
			if err := json.Unmarshal([]byte(msg.Payload), &job); err != nil {
				logger.Warn("dropping malformed image job", zap.Error(err))
				continue
			}

			if err := processor.Process(ctx, &job); err != nil {
				logger.Error("image job failed", zap.String("path", job.Path), zap.Error(err))
			}
		}
	}
}
