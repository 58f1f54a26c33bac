package storage

import (
	"context"

	domain "github.com/inference-gateway/touchbridge/internal/domain"
)

//go:generate go tool counterfeiter -generate

// DeviceStore persists device profiles
//
//counterfeiter:generate -o ../../../tests/mocks/storage/fake_device_store.go . DeviceStore
type DeviceStore interface {
	// SaveDevice creates or replaces a device profile
	SaveDevice(ctx context.Context, device domain.DeviceProfile) error

	// GetDevice loads a device profile, returning domain.ErrDeviceNotFound if unknown
	GetDevice(ctx context.Context, deviceID string) (domain.DeviceProfile, error)

	// ListDevices returns all profiles ordered by ID
	ListDevices(ctx context.Context) ([]domain.DeviceProfile, error)

	// DeleteDevice removes a profile, returning domain.ErrDeviceNotFound if unknown
	DeleteDevice(ctx context.Context, deviceID string) error

	// Health checks if the storage is reachable
	Health(ctx context.Context) error

	// Close releases the storage connection
	Close() error
}
