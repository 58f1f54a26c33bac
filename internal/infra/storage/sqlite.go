package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	config "github.com/inference-gateway/touchbridge/config"
	domain "github.com/inference-gateway/touchbridge/internal/domain"
	migrations "github.com/inference-gateway/touchbridge/internal/infra/storage/migrations"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements DeviceStore using SQLite
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens (and migrates) the SQLite database at cfg.Path
func NewSQLiteStore(cfg config.SQLiteConfig) (*SQLiteStore, error) {
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", cfg.Path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(30000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := migrations.NewRunner(db, "sqlite").Up(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate SQLite database: %w", err)
	}

	return &SQLiteStore{db: db, path: cfg.Path}, nil
}

// SaveDevice creates or replaces a device profile
func (s *SQLiteStore) SaveDevice(ctx context.Context, device domain.DeviceProfile) error {
	if err := device.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	if device.CreatedAt.IsZero() {
		device.CreatedAt = now
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO devices (id, name, os, native_width, native_height, ios_convention, session_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			os = excluded.os,
			native_width = excluded.native_width,
			native_height = excluded.native_height,
			ios_convention = excluded.ios_convention,
			session_id = excluded.session_id,
			updated_at = excluded.updated_at`,
		device.ID, device.Name, string(device.OS), device.NativeWidth, device.NativeHeight,
		conventionValue(device.IOSConvention), device.SessionID, device.CreatedAt, now)
	if err != nil {
		return fmt.Errorf("failed to save device %s: %w", device.ID, err)
	}

	return nil
}

// GetDevice loads a device profile
func (s *SQLiteStore) GetDevice(ctx context.Context, deviceID string) (domain.DeviceProfile, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, os, native_width, native_height, ios_convention, session_id, created_at, updated_at
		FROM devices WHERE id = ?`, deviceID)

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
func (s *SQLiteStore) ListDevices(ctx context.Context) ([]domain.DeviceProfile, error) {
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
func (s *SQLiteStore) DeleteDevice(ctx context.Context, deviceID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM devices WHERE id = ?", deviceID)
	if err != nil {
		return fmt.Errorf("failed to delete device %s: %w", deviceID, err)
	}
	return checkDeleted(res, deviceID)
}

// Health checks that the database answers
func (s *SQLiteStore) Health(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDevice(row rowScanner) (domain.DeviceProfile, error) {
	var (
		device     domain.DeviceProfile
		platform   string
		convention sql.NullString
	)

	err := row.Scan(&device.ID, &device.Name, &platform, &device.NativeWidth, &device.NativeHeight,
		&convention, &device.SessionID, &device.CreatedAt, &device.UpdatedAt)
	if err != nil {
		return domain.DeviceProfile{}, err
	}

	device.OS = domain.Platform(platform)
	if convention.Valid && convention.String != "" {
		device.IOSConvention = domain.ConventionPtr(domain.IOSConvention(convention.String))
	}

	return device, nil
}

func scanDevices(rows *sql.Rows) ([]domain.DeviceProfile, error) {
	devices := make([]domain.DeviceProfile, 0)
	for rows.Next() {
		device, err := scanDevice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan device: %w", err)
		}
		devices = append(devices, device)
	}
	return devices, rows.Err()
}

func checkDeleted(res sql.Result, deviceID string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete device %s: %w", deviceID, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", domain.ErrDeviceNotFound, deviceID)
	}
	return nil
}

func conventionValue(c *domain.IOSConvention) sql.NullString {
	if c == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(*c), Valid: true}
}
