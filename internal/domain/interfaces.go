package domain

import "context"

//go:generate go tool counterfeiter -generate

// CommandTransport executes finished device commands on a physical device.
// Coordinates are device-native pixels.
//
//counterfeiter:generate -o ../../tests/mocks/domain/fake_command_transport.go . CommandTransport
type CommandTransport interface {
	Tap(ctx context.Context, deviceID string, at Point) error
	TouchAndHold(ctx context.Context, deviceID string, at Point) error
	Swipe(ctx context.Context, deviceID string, from, to Point) error
}

// DispatchReporter receives the outcome of asynchronous command dispatches
//
//counterfeiter:generate -o ../../tests/mocks/domain/fake_dispatch_reporter.go . DispatchReporter
type DispatchReporter interface {
	DispatchSucceeded(cmd DeviceCommand)
	DispatchFailed(cmd DeviceCommand, err error)
}

// Execute sends cmd to the matching transport operation
func Execute(ctx context.Context, t CommandTransport, cmd DeviceCommand) error {
	switch cmd.Kind {
	case GestureTap:
		return t.Tap(ctx, cmd.DeviceID, cmd.From)
	case GestureTouchAndHold:
		return t.TouchAndHold(ctx, cmd.DeviceID, cmd.From)
	case GestureSwipe:
		return t.Swipe(ctx, cmd.DeviceID, cmd.From, cmd.To)
	default:
		return &TransportError{DeviceID: cmd.DeviceID, Message: "unsupported gesture " + cmd.Kind.String()}
	}
}
