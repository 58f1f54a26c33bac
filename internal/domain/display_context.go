package domain

import (
	"fmt"
	"strings"
)

// Platform is the operating system of the controlled device
type Platform string

const (
	PlatformAndroid Platform = "android"
	PlatformIOS     Platform = "ios"
)

// ParsePlatform parses a platform name, case-insensitively
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "android":
		return PlatformAndroid, nil
	case "ios":
		return PlatformIOS, nil
	default:
		return "", fmt.Errorf("unknown platform %q (expected android or ios)", s)
	}
}

// Orientation is how the operator UI currently presents the stream. It is
// toggled by the operator and is not reported by the device.
type Orientation string

const (
	OrientationPortrait  Orientation = "portrait"
	OrientationLandscape Orientation = "landscape"
)

// ParseOrientation parses an orientation name, case-insensitively
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "portrait":
		return OrientationPortrait, nil
	case "landscape":
		return OrientationLandscape, nil
	default:
		return "", fmt.Errorf("unknown orientation %q (expected portrait or landscape)", s)
	}
}

// IOSConvention selects which iOS automation agent axis convention applies
// in landscape.
type IOSConvention string

const (
	// IOSConventionStandard is the mainstream agent: landscape X maps to the
	// native height and landscape Y to the native width.
	IOSConventionStandard IOSConvention = "standard"
	// IOSConventionCustomAgent is the alternate agent whose landscape axes are
	// cross-wired and whose X origin sits at the far edge of the native width.
	IOSConventionCustomAgent IOSConvention = "custom_agent"
)

// ParseIOSConvention parses an iOS convention name, case-insensitively
func ParseIOSConvention(s string) (IOSConvention, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard":
		return IOSConventionStandard, nil
	case "custom_agent", "custom-agent", "customagent", "custom":
		return IOSConventionCustomAgent, nil
	default:
		return "", fmt.Errorf("unknown iOS convention %q (expected standard or custom_agent)", s)
	}
}

// DisplayContext describes the surface a gesture was drawn on and the device
// it targets. It is supplied per gesture and never mutated by the engine.
type DisplayContext struct {
	SurfaceWidth  float64        `json:"surface_width"`
	SurfaceHeight float64        `json:"surface_height"`
	DeviceWidth   float64        `json:"device_width"`
	DeviceHeight  float64        `json:"device_height"`
	OS            Platform       `json:"os"`
	Orientation   Orientation    `json:"orientation"`
	IOSConvention *IOSConvention `json:"ios_convention,omitempty"`
}

// WithSurface returns a copy of the context with new surface dimensions
func (c DisplayContext) WithSurface(width, height float64) DisplayContext {
	c.SurfaceWidth = width
	c.SurfaceHeight = height
	return c
}

// WithOrientation returns a copy of the context with a new orientation
func (c DisplayContext) WithOrientation(o Orientation) DisplayContext {
	c.Orientation = o
	return c
}

// Validate reports whether the context can be used for mapping.
// All dimensions must be positive and an iOS convention is required when the
// device runs iOS. A convention set on an Android context is ignored.
func (c DisplayContext) Validate() error {
	dims := []struct {
		field string
		value float64
	}{
		{"surface_width", c.SurfaceWidth},
		{"surface_height", c.SurfaceHeight},
		{"device_width", c.DeviceWidth},
		{"device_height", c.DeviceHeight},
	}
	for _, d := range dims {
		if !(d.value > 0) {
			return &InvalidDisplayContextError{
				Field:  d.field,
				Reason: fmt.Sprintf("must be greater than zero, got %g", d.value),
			}
		}
	}

	switch c.OS {
	case PlatformAndroid:
	case PlatformIOS:
		if c.IOSConvention == nil {
			return &InvalidDisplayContextError{Field: "ios_convention", Reason: "required when os is ios"}
		}
		if *c.IOSConvention != IOSConventionStandard && *c.IOSConvention != IOSConventionCustomAgent {
			return &InvalidDisplayContextError{Field: "ios_convention", Reason: fmt.Sprintf("unknown convention %q", *c.IOSConvention)}
		}
	default:
		return &InvalidDisplayContextError{Field: "os", Reason: fmt.Sprintf("unknown platform %q", c.OS)}
	}

	if c.Orientation != OrientationPortrait && c.Orientation != OrientationLandscape {
		return &InvalidDisplayContextError{Field: "orientation", Reason: fmt.Sprintf("unknown orientation %q", c.Orientation)}
	}

	return nil
}

// ConventionPtr returns a pointer to the given convention, for building contexts
func ConventionPtr(c IOSConvention) *IOSConvention {
	return &c
}
