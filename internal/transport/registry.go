package transport

import (
	"context"
	"fmt"
	"sort"
	"sync"

	config "github.com/inference-gateway/touchbridge/config"
	domain "github.com/inference-gateway/touchbridge/internal/domain"
)

// SessionLookup resolves the automation session that serves a device
type SessionLookup interface {
	GetDevice(ctx context.Context, deviceID string) (domain.DeviceProfile, error)
}

// Factory builds a transport from configuration
type Factory func(cfg config.TransportConfig, sessions SessionLookup) (domain.CommandTransport, error)

// Registry holds named transport factories
type Registry struct {
	factories map[string]Factory
	mu        sync.RWMutex
}

var globalRegistry = &Registry{
	factories: make(map[string]Factory),
}

// Register adds a transport factory to the global registry.
// This is typically called from init() functions.
func Register(name string, factory Factory) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.factories[name] = factory
}

// Names returns all registered transport names, sorted
func Names() []string {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	names := make([]string, 0, len(globalRegistry.factories))
	for name := range globalRegistry.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the configured transport, wrapped in a rate limiter when enabled
func New(cfg config.TransportConfig, sessions SessionLookup) (domain.CommandTransport, error) {
	globalRegistry.mu.RLock()
	factory, ok := globalRegistry.factories[cfg.Type]
	globalRegistry.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unsupported transport type %q (available: %v)", cfg.Type, Names())
	}

	t, err := factory(cfg, sessions)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s transport: %w", cfg.Type, err)
	}

	if cfg.RateLimit.Enabled {
		t = NewRateLimited(t, NewRateLimiter(cfg.RateLimit))
	}

	return t, nil
}
