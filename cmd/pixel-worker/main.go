package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/hanootc/yasir-platform-sub002/internal/cache"
	"github.com/hanootc/yasir-platform-sub002/internal/config"
	"github.com/hanootc/yasir-platform-sub002/internal/logging"
	storeModels "github.com/hanootc/yasir-platform-sub002/internal/models/store"
)

// The pixel worker drains the conversion-event channel and forwards each
// event to the ad platform's server-events endpoint. Forwarding is
// best-effort: events are already persisted by the API, a failed forward is
// logged and dropped.
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	forwarder := &forwarder{
		endpoint:    cfg.Pixel.Endpoint,
		accessToken: cfg.Pixel.AccessToken,
		client:      &http.Client{Timeout: 10 * time.Second},
		logger:      logger,
	}

	sub := redisClient.Subscribe(ctx, cfg.Pixel.Channel)
	defer sub.Close()

	logger.Info("pixel-worker consuming", zap.String("channel", cfg.Pixel.Channel))

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			logger.Info("pixel-worker shutting down")
			return
		case msg, ok := <-ch:
			if !ok {
				logger.Info("subscription closed")
				return
			}

			var event storeModels.PixelEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				logger.Warn("dropping malformed pixel payload", zap.Error(err))
				continue
			}

			forwarder.forward(ctx, &event)
		}
	}
}

type forwarder struct {
	endpoint    string
	accessToken string
	client      *http.Client
	logger      *zap.Logger
}

func (f *forwarder) forward(ctx context.Context, event *storeModels.PixelEvent) {
	if f.endpoint == "" {
		f.logger.Debug("no pixel endpoint configured, dropping event",
			zap.String("event_id", event.ID.String()))
		return
	}

	payload, err := json.Marshal(map[string]interface{}{
		"event_name":  string(event.EventType),
		"event_time":  event.CreatedAt.Unix(),
		"external_id": event.ExternalID,
		"custom_data": map[string]interface{}{
			"product_id":  event.ProductID,
			"platform_id": event.PlatformID,
			"visitor_id":  event.VisitorID,
			"source_url":  event.SourceURL,
		},
	})
	if err != nil {
		f.logger.Error("failed to encode event", zap.Error(err))
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, bytes.NewReader(payload))
	if err != nil {
		f.logger.Error("failed to build forward request", zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")
	if f.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+f.accessToken)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Warn("failed to forward pixel event",
			zap.String("event_id", event.ID.String()), zap.Error(err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		f.logger.Warn("ad platform rejected event",
			zap.String("event_id", event.ID.String()),
			zap.Int("status", resp.StatusCode))
		return
	}

	f.logger.Info("forwarded pixel event",
		zap.String("event_id", event.ID.String()),
		zap.String("event_type", string(event.EventType)))
}
