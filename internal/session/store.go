package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/hanootc/yasir-platform-sub002/internal/cache"
)

// ErrNotFound is returned for revoked, expired or unknown sessions.
var ErrNotFound = fmt.Errorf("session not found")

// Store keeps sessions in Redis under admin:session:<id>. The key TTL
// matches the idle timeout, so abandoned sessions evict themselves even if
// Touch is never called again.
type Store struct {
	redis       *cache.Client
	idleTimeout time.Duration
}

func NewStore(redisClient *cache.Client, idleTimeout time.Duration) *Store {
	if idleTimeout <= 0 {
		idleTimeout = DefaultIdleTimeout
	}
	return &Store{redis: redisClient, idleTimeout: idleTimeout}
}

// IdleTimeout returns the configured inactivity window.
func (s *Store) IdleTimeout() time.Duration {
	return s.idleTimeout
}

// Create starts a new session for an admin.
func (s *Store) Create(ctx context.Context, adminID uuid.UUID, email string) (*Session, error) {
	now := time.Now().UTC()
	sess := &Session{
		ID:           uuid.New(),
		AdminID:      adminID,
		Email:        email,
		LoginTime:    now,
		LastActivity: now,
	}

	if err := s.save(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return sess, nil
}

// Get loads a session and enforces the idle timeout.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	raw, err := s.redis.Get(ctx, key(id))
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}

	if sess.IsExpired(time.Now().UTC(), s.idleTimeout) {
		_ = s.Revoke(ctx, id)
		return nil, ErrNotFound
	}

	return &sess, nil
}

// Touch slides the activity window forward and resets the key TTL.
func (s *Store) Touch(ctx context.Context, sess *Session) error {
	sess.Touch(time.Now().UTC())
	return s.save(ctx, sess)
}

// Revoke deletes a session (logout).
func (s *Store) Revoke(ctx context.Context, id uuid.UUID) error {
	return s.redis.Delete(ctx, key(id))
}

func (s *Store) save(ctx context.Context, sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	return s.redis.Set(ctx, key(sess.ID), data, s.idleTimeout)
}

func key(id uuid.UUID) string {
	return fmt.Sprintf("admin:session:%s", id)
}
