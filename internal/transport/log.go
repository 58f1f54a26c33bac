package transport

import (
	"context"

	zap "go.uber.org/zap"

	config "github.com/inference-gateway/touchbridge/config"
	domain "github.com/inference-gateway/touchbridge/internal/domain"
	logger "github.com/inference-gateway/touchbridge/internal/logger"
)

func init() {
	Register("log", func(cfg config.TransportConfig, _ SessionLookup) (domain.CommandTransport, error) {
		return NewLogTransport(), nil
	})
}

// LogTransport only logs commands. Useful for dry runs without a device.
type LogTransport struct{}

// NewLogTransport creates a logging transport
func NewLogTransport() *LogTransport {
	return &LogTransport{}
}

// Tap implements domain.CommandTransport
func (l *LogTransport) Tap(ctx context.Context, deviceID string, at domain.Point) error {
	logger.FromContext(ctx).Info("tap",
		zap.String("device_id", deviceID), zap.Float64("x", at.X), zap.Float64("y", at.Y))
	return nil
}

// TouchAndHold implements domain.CommandTransport
func (l *LogTransport) TouchAndHold(ctx context.Context, deviceID string, at domain.Point) error {
	logger.FromContext(ctx).Info("touch and hold",
		zap.String("device_id", deviceID), zap.Float64("x", at.X), zap.Float64("y", at.Y))
	return nil
}

// Swipe implements domain.CommandTransport
func (l *LogTransport) Swipe(ctx context.Context, deviceID string, from, to domain.Point) error {
	logger.FromContext(ctx).Info("swipe",
		zap.String("device_id", deviceID),
		zap.Stringer("from", from),
		zap.Stringer("to", to))
	return nil
}
