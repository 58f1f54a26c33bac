package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	redis "github.com/go-redis/redis/v8"
	config "github.com/inference-gateway/touchbridge/config"
	domain "github.com/inference-gateway/touchbridge/internal/domain"
)

// RedisStore implements DeviceStore using Redis. Each profile is a JSON
// string under {prefix}device:{id}; {prefix}devices is a set of known IDs.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore connects to Redis
func NewRedisStore(cfg config.RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		DB:       cfg.Database,
		Username: cfg.Username,
		Password: cfg.Password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisStoreWithClient(client, cfg.KeyPrefix), nil
}

// NewRedisStoreWithClient wraps an existing client
func NewRedisStoreWithClient(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) deviceKey(deviceID string) string {
	return s.prefix + "device:" + deviceID
}

func (s *RedisStore) indexKey() string {
	return s.prefix + "devices"
}

// SaveDevice creates or replaces a device profile
func (s *RedisStore) SaveDevice(ctx context.Context, device domain.DeviceProfile) error {
	if err := device.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	existing, err := s.GetDevice(ctx, device.ID)
	switch {
	case err == nil:
		device.CreatedAt = existing.CreatedAt
	case errors.Is(err, domain.ErrDeviceNotFound):
		if device.CreatedAt.IsZero() {
			device.CreatedAt = now
		}
	default:
		return err
	}
	device.UpdatedAt = now

	data, err := json.Marshal(device)
	if err != nil {
		return fmt.Errorf("failed to marshal device %s: %w", device.ID, err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.deviceKey(device.ID), data, 0)
	pipe.SAdd(ctx, s.indexKey(), device.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save device %s: %w", device.ID, err)
	}

	return nil
}

// GetDevice loads a device profile
func (s *RedisStore) GetDevice(ctx context.Context, deviceID string) (domain.DeviceProfile, error) {
	data, err := s.client.Get(ctx, s.deviceKey(deviceID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.DeviceProfile{}, fmt.Errorf("%w: %s", domain.ErrDeviceNotFound, deviceID)
	}
	if err != nil {
		return domain.DeviceProfile{}, fmt.Errorf("failed to load device %s: %w", deviceID, err)
	}

	var device domain.DeviceProfile
	if err := json.Unmarshal(data, &device); err != nil {
		return domain.DeviceProfile{}, fmt.Errorf("failed to decode device %s: %w", deviceID, err)
	}

	return device, nil
}

// ListDevices returns all profiles ordered by ID
func (s *RedisStore) ListDevices(ctx context.Context) ([]domain.DeviceProfile, error) {
	ids, err := s.client.SMembers(ctx, s.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}
	sort.Strings(ids)

	devices := make([]domain.DeviceProfile, 0, len(ids))
	for _, id := range ids {
		device, err := s.GetDevice(ctx, id)
		if errors.Is(err, domain.ErrDeviceNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		devices = append(devices, device)
	}

	return devices, nil
}

// DeleteDevice removes a profile
func (s *RedisStore) DeleteDevice(ctx context.Context, deviceID string) error {
	pipe := s.client.TxPipeline()
	del := pipe.Del(ctx, s.deviceKey(deviceID))
	pipe.SRem(ctx, s.indexKey(), deviceID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete device %s: %w", deviceID, err)
	}

	if del.Val() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrDeviceNotFound, deviceID)
	}
	return nil
}

// Health pings Redis
func (s *RedisStore) Health(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the client
func (s *RedisStore) Close() error {
	return s.client.Close()
}
