package database

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hanootc/yasir-platform-sub002/internal/config"
)

// Manager owns the two connection pools: the master DB (control plane:
// platforms, subscriptions, admins) and the store DB (catalog, landing
// pages, orders, pixel events). All platforms share the store DB, rows are
// scoped by platform_id.
type Manager struct {
	masterPool *pgxpool.Pool
	storePool  *pgxpool.Pool
	cfg        *config.Config
	mu         sync.RWMutex
}

var (
	instance *Manager
	once     sync.Once
)

// GetManager returns the singleton database manager instance.
func GetManager(cfg *config.Config) *Manager {
	once.Do(func() {
		instance = &Manager{cfg: cfg}
	})
	return instance
}

// InitMasterPool initializes the connection pool to the master DB.
func (m *Manager) InitMasterPool(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.masterPool != nil {
		return nil
	}

	pool, err := newPool(ctx, m.cfg.MasterDB.ConnectionString(), 25, 5)
	if err != nil {
		return fmt.Errorf("master db: %w", err)
	}

	m.masterPool = pool
	log.Println("Master DB pool initialized")
	return nil
}

// InitStorePool initializes the connection pool to the store DB.
func (m *Manager) InitStorePool(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.storePool != nil {
		return nil
	}

	pool, err := newPool(ctx, m.cfg.StoreDB.ConnectionString(), 25, 5)
	if err != nil {
		return fmt.Errorf("store db: %w", err)
	}

	m.storePool = pool
	log.Println("Store DB pool initialized")
	return nil
}

// GetMasterPool returns the master database pool.
func (m *Manager) GetMasterPool() *pgxpool.Pool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.masterPool
}

// GetStorePool returns the store database pool.
func (m *Manager) GetStorePool() *pgxpool.Pool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.storePool
}

// Close closes all database connections.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.masterPool != nil {
		m.masterPool.Close()
		log.Println("Master DB pool closed")
	}
	if m.storePool != nil {
		m.storePool.Close()
		log.Println("Store DB pool closed")
	}
}

func newPool(ctx context.Context, connStr string, maxConns, minConns int32) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	poolConfig.MaxConns = maxConns
	poolConfig.MinConns = minConns

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping: %w", err)
	}

	return pool, nil
}
