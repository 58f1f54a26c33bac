package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	domain "github.com/inference-gateway/touchbridge/internal/domain"
)

// MemoryStore implements DeviceStore in process memory
type MemoryStore struct {
	devices map[string]domain.DeviceProfile
	mutex   sync.RWMutex
}

// NewMemoryStore creates a new in-memory device store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		devices: make(map[string]domain.DeviceProfile),
	}
}

// SaveDevice creates or replaces a device profile
func (m *MemoryStore) SaveDevice(ctx context.Context, device domain.DeviceProfile) error {
	if err := device.Validate(); err != nil {
		return err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	now := time.Now().UTC()
	if existing, ok := m.devices[device.ID]; ok {
		device.CreatedAt = existing.CreatedAt
	} else if device.CreatedAt.IsZero() {
		device.CreatedAt = now
	}
	device.UpdatedAt = now

	m.devices[device.ID] = cloneProfile(device)
	return nil
}

// GetDevice loads a device profile
func (m *MemoryStore) GetDevice(ctx context.Context, deviceID string) (domain.DeviceProfile, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	device, ok := m.devices[deviceID]
	if !ok {
		return domain.DeviceProfile{}, fmt.Errorf("%w: %s", domain.ErrDeviceNotFound, deviceID)
	}
	return cloneProfile(device), nil
}

// ListDevices returns all profiles ordered by ID
func (m *MemoryStore) ListDevices(ctx context.Context) ([]domain.DeviceProfile, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	devices := make([]domain.DeviceProfile, 0, len(m.devices))
	for _, d := range m.devices {
		devices = append(devices, cloneProfile(d))
	}
	sort.Slice(devices, func(i, j int) bool { return devices[i].ID < devices[j].ID })

	return devices, nil
}

// DeleteDevice removes a profile
func (m *MemoryStore) DeleteDevice(ctx context.Context, deviceID string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, ok := m.devices[deviceID]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrDeviceNotFound, deviceID)
	}
	delete(m.devices, deviceID)
	return nil
}

// Health always succeeds for memory storage
func (m *MemoryStore) Health(ctx context.Context) error {
	return nil
}

// Close is a no-op for memory storage
func (m *MemoryStore) Close() error {
	return nil
}

func cloneProfile(p domain.DeviceProfile) domain.DeviceProfile {
	if p.IOSConvention != nil {
		p.IOSConvention = domain.ConventionPtr(*p.IOSConvention)
	}
	return p
}
