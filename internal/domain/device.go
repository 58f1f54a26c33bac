package domain

import (
	"fmt"
	"strings"
	"time"
)

// DeviceProfile is what the engine needs to know about a controlled device
// to map gestures onto it
type DeviceProfile struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	OS            Platform       `json:"os"`
	NativeWidth   float64        `json:"native_width"`
	NativeHeight  float64        `json:"native_height"`
	IOSConvention *IOSConvention `json:"ios_convention,omitempty"`
	// SessionID is the automation session commands are sent to
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks the profile can produce a valid display context
func (p DeviceProfile) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("device id is required")
	}
	if err := p.DisplayContext(1, 1, OrientationPortrait).Validate(); err != nil {
		return fmt.Errorf("device %s: %w", p.ID, err)
	}
	return nil
}

// DisplayContext builds the mapping context for this device drawn on a
// surface of the given size and orientation
func (p DeviceProfile) DisplayContext(surfaceWidth, surfaceHeight float64, orientation Orientation) DisplayContext {
	ctx := DisplayContext{
		SurfaceWidth:  surfaceWidth,
		SurfaceHeight: surfaceHeight,
		DeviceWidth:   p.NativeWidth,
		DeviceHeight:  p.NativeHeight,
		OS:            p.OS,
		Orientation:   orientation,
	}
	if p.OS == PlatformIOS && p.IOSConvention != nil {
		ctx.IOSConvention = ConventionPtr(*p.IOSConvention)
	}
	return ctx
}
