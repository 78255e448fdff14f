package persistence

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

// Bolt wraps an embedded bbolt database file used as the local key-value cache.
type Bolt struct {
	DB *bolt.DB
}

// OpenBolt opens (creating if needed) the database at path.
func OpenBolt(path string, logger *zap.Logger) (*Bolt, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create bolt dir: %w", err)
		}
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt %s: %w", path, err)
	}
	logger.Info("opened local kv store", zap.String("path", path))
	return &Bolt{DB: db}, nil
}

// Close releases the file lock.
func (b *Bolt) Close() {
	if b != nil && b.DB != nil {
		_ = b.DB.Close()
	}
}

// Ping checks the database is still open.
func (b *Bolt) Ping() error {
	if b == nil || b.DB == nil {
		return errors.New("bolt store not configured")
	}
	return b.DB.View(func(*bolt.Tx) error { return nil })
}
