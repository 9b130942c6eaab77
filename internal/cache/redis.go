package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hanootc/yasir-platform-sub002/internal/config"
)

type Client struct {
	Client *redis.Client
}

// NewClient creates a new Redis client and verifies the connection.
func NewClient(cfg *config.RedisConfig) (*Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{Client: client}, nil
}

// Get retrieves a value from Redis.
func (c *Client) Get(ctx context.Context, key string) (string, error) {
	return c.Client.Get(ctx, key).Result()
}

// Set sets a value in Redis with expiration.
func (c *Client) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return c.Client.Set(ctx, key, value, expiration).Err()
}

// SetNX sets a key only if it does not exist. Returns true when the key was
// set, false when it already existed.
func (c *Client) SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error) {
	return c.Client.SetNX(ctx, key, value, expiration).Result()
}

// Delete removes keys from Redis.
func (c *Client) Delete(ctx context.Context, keys ...string) error {
	return c.Client.Del(ctx, keys...).Err()
}

// Expire resets a key's TTL.
func (c *Client) Expire(ctx context.Context, key string, expiration time.Duration) error {
	return c.Client.Expire(ctx, key, expiration).Err()
}

// GetPlatform retrieves the cached platform summary for a subdomain.
func (c *Client) GetPlatform(ctx context.Context, subdomain string) (string, error) {
	return c.Get(ctx, fmt.Sprintf("platform:subdomain:%s", subdomain))
}

// SetPlatform caches the platform summary for a subdomain.
func (c *Client) SetPlatform(ctx context.Context, subdomain string, summary []byte, expiration time.Duration) error {
	return c.Set(ctx, fmt.Sprintf("platform:subdomain:%s", subdomain), summary, expiration)
}

// GetLandingDoc retrieves a cached landing document.
func (c *Client) GetLandingDoc(ctx context.Context, platformID, slug string) (string, error) {
	return c.Get(ctx, fmt.Sprintf("landing:%s:%s", platformID, slug))
}

// SetLandingDoc caches a rendered landing document.
func (c *Client) SetLandingDoc(ctx context.Context, platformID, slug string, doc []byte, expiration time.Duration) error {
	return c.Set(ctx, fmt.Sprintf("landing:%s:%s", platformID, slug), doc, expiration)
}

// InvalidateLanding drops every cached landing document for a platform.
func (c *Client) InvalidateLanding(ctx context.Context, platformID string) error {
	var keys []string
	iter := c.Client.Scan(ctx, 0, fmt.Sprintf("landing:%s:*", platformID), 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan landing keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	return c.Delete(ctx, keys...)
}

// InvalidatePlatform drops every cached view of a platform: the subdomain
// mapping and its landing documents. Called after every admin mutation that
// changes platform state.
func (c *Client) InvalidatePlatform(ctx context.Context, subdomain, platformID string) error {
	if err := c.Delete(ctx, fmt.Sprintf("platform:subdomain:%s", subdomain)); err != nil {
		return err
	}
	return c.InvalidateLanding(ctx, platformID)
}

// MarkViewContent records that a visitor already fired view_content for a
// landing+product pair. Returns false when the event was seen before.
func (c *Client) MarkViewContent(ctx context.Context, visitorID, landingKey string, ttl time.Duration) (bool, error) {
	key := fmt.Sprintf("pixel:viewed:%s:%s", landingKey, visitorID)
	return c.SetNX(ctx, key, 1, ttl)
}

// Publish publishes a message to a Redis channel.
func (c *Client) Publish(ctx context.Context, channel string, message interface{}) error {
	return c.Client.Publish(ctx, channel, message).Err()
}

// Subscribe subscribes to a Redis channel.
func (c *Client) Subscribe(ctx context.Context, channel string) *redis.PubSub {
	return c.Client.Subscribe(ctx, channel)
}

// Close closes the Redis client.
func (c *Client) Close() error {
	return c.Client.Close()
}
