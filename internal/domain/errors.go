package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDisplayContext is the only error kind raised by the gesture
	// engine itself. Match it with errors.Is.
	ErrInvalidDisplayContext = errors.New("invalid display context")

	// ErrNoGestureInFlight is returned when a pointer-up arrives without a
	// preceding pointer-down
	ErrNoGestureInFlight = errors.New("no gesture in flight")

	// ErrOrchestratorClosed is returned once an orchestrator has been torn down
	ErrOrchestratorClosed = errors.New("orchestrator closed")

	// ErrNoDisplayContext is returned when a gesture completes before any
	// display context was supplied
	ErrNoDisplayContext = errors.New("no display context set")

	// ErrDeviceNotFound is returned by device stores for unknown device IDs
	ErrDeviceNotFound = errors.New("device not found")

	// ErrRateLimited is returned by rate limited transports
	ErrRateLimited = errors.New("rate limit exceeded")
)

// InvalidDisplayContextError describes which part of a display context is unusable
type InvalidDisplayContextError struct {
	Field  string
	Reason string
}

// Error implements the error interface
func (e *InvalidDisplayContextError) Error() string {
	return fmt.Sprintf("invalid display context: %s %s", e.Field, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidDisplayContext) match
func (e *InvalidDisplayContextError) Is(target error) bool {
	return target == ErrInvalidDisplayContext
}

// TransportError is returned when the remote automation endpoint rejects a
// command or cannot be reached
type TransportError struct {
	DeviceID   string
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("transport error for device %s: %s", e.DeviceID, e.Message)
	}
	return fmt.Sprintf("transport error for device %s: status %d: %s", e.DeviceID, e.StatusCode, e.Message)
}
