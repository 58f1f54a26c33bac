package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	config "github.com/inference-gateway/touchbridge/config"
	domain "github.com/inference-gateway/touchbridge/internal/domain"
	migrations "github.com/inference-gateway/touchbridge/internal/infra/storage/migrations"
	_ "github.com/lib/pq"
)

// PostgresStore implements DeviceStore using PostgreSQL
type PostgresStore struct {
	db *sql.DB
}

func postgresDSN(cfg config.PostgresConfig) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.Username, cfg.Password, cfg.Database, cfg.SSLMode)
}

// NewPostgresStore connects to PostgreSQL and applies pending migrations
func NewPostgresStore(cfg config.PostgresConfig) (*PostgresStore, error) {
	db, err := sql.Open("postgres", postgresDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open PostgreSQL connection: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("PostgreSQL connection test failed: %w\n\n"+
			"Failed to connect to PostgreSQL. Verify:\n"+
			"  - PostgreSQL server is running at %s:%d\n"+
			"  - Database '%s' exists\n"+
			"  - User '%s' has proper permissions", err, cfg.Host, cfg.Port, cfg.Database, cfg.Username)
	}

	if _, err := migrations.NewRunner(db, "postgres").Up(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate PostgreSQL database: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

// SaveDevice creates or replaces a device profile
func (s *PostgresStore) SaveDevice(ctx context.Context, device domain.DeviceProfile) error {
	if err := device.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	if device.CreatedAt.IsZero() {
		device.CreatedAt = now
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO devices (id, name, os, native_width, native_height, ios_convention, session_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			os = EXCLUDED.os,
			native_width = EXCLUDED.native_width,
			native_height = EXCLUDED.native_height,
			ios_convention = EXCLUDED.ios_convention,
			session_id = EXCLUDED.session_id,
			updated_at = EXCLUDED.updated_at`,
		device.ID, device.Name, string(device.OS), device.NativeWidth, device.NativeHeight,
		conventionValue(device.IOSConvention), device.SessionID, device.CreatedAt, now)
	if err != nil {
		return fmt.Errorf("failed to save device %s: %w", device.ID, err)
	}

	return nil
}

// GetDevice loads a device profile
func (s *PostgresStore) GetDevice(ctx context.Context, deviceID string) (domain.DeviceProfile, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, os, native_width, native_height, ios_convention, session_id, created_at, updated_at
		FROM devices WHERE id = $1`, deviceID)

	device, err := scanDevice(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DeviceProfile{}, fmt.Errorf("%w: %s", domain.ErrDeviceNotFound, deviceID)
	}
	if err != nil {
		return domain.DeviceProfile{}, fmt.Errorf("failed to load device %s: %w", deviceID, err)
	}

	return device, nil
}

// ListDevices returns all profiles ordered by ID
func (s *PostgresStore) ListDevices(ctx context.Context) ([]domain.DeviceProfile, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, os, native_width, native_height, ios_convention, session_id, created_at, updated_at
		FROM devices ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanDevices(rows)
}

// DeleteDevice removes a profile
func (s *PostgresStore) DeleteDevice(ctx context.Context, deviceID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM devices WHERE id = $1", deviceID)
	if err != nil {
		return fmt.Errorf("failed to delete device %s: %w", deviceID, err)
	}
	return checkDeleted(res, deviceID)
}

// Health checks that the database answers
func (s *PostgresStore) Health(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the connection pool
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
