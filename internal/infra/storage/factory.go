package storage

import (
	"fmt"

	config "github.com/inference-gateway/touchbridge/config"
)

// NewDeviceStore creates a device store for the configured backend
func NewDeviceStore(cfg config.StorageConfig) (DeviceStore, error) {
	switch cfg.Type {
	case "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		return NewSQLiteStore(cfg.SQLite)
	case "postgres":
		return NewPostgresStore(cfg.Postgres)
	case "redis":
		return NewRedisStore(cfg.Redis)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
