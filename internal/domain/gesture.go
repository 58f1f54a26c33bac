package domain

import "fmt"

// Point is a position in either surface-pixel or device-native-pixel space.
// Which space a Point belongs to is implied by where it came from; the two
// are only bridged by the display mapper.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// String returns a compact representation of the point
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// PointerSample is a pointer position captured at pointer-down or pointer-up
type PointerSample struct {
	Position    Point `json:"position"`
	TimestampMs int64 `json:"timestamp_ms"`
}

// GestureKind identifies one of the single-pointer gestures
type GestureKind int

const (
	GestureTap GestureKind = iota
	GestureTouchAndHold
	GestureSwipe
)

// String returns the wire name of a gesture kind
func (k GestureKind) String() string {
	switch k {
	case GestureTap:
		return "tap"
	case GestureTouchAndHold:
		return "touch_and_hold"
	case GestureSwipe:
		return "swipe"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler
func (k GestureKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (k *GestureKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "tap":
		*k = GestureTap
	case "touch_and_hold":
		*k = GestureTouchAndHold
	case "swipe":
		*k = GestureSwipe
	default:
		return fmt.Errorf("unknown gesture kind %q", text)
	}
	return nil
}

// GestureIntent is a classified gesture in surface-pixel space.
// To is only meaningful for GestureSwipe.
type GestureIntent struct {
	Kind GestureKind `json:"kind"`
	From Point       `json:"from"`
	To   Point       `json:"to"`
}

// NewTap creates a tap intent
func NewTap(at Point) GestureIntent {
	return GestureIntent{Kind: GestureTap, From: at}
}

// NewTouchAndHold creates a touch-and-hold intent
func NewTouchAndHold(at Point) GestureIntent {
	return GestureIntent{Kind: GestureTouchAndHold, From: at}
}

// NewSwipe creates a swipe intent
func NewSwipe(from, to Point) GestureIntent {
	return GestureIntent{Kind: GestureSwipe, From: from, To: to}
}

// DeviceCommand is a gesture in device-native-pixel space, ready for a
// CommandTransport. To is only meaningful for GestureSwipe.
type DeviceCommand struct {
	DeviceID string      `json:"device_id"`
	Kind     GestureKind `json:"kind"`
	From     Point       `json:"from"`
	To       Point       `json:"to"`
}

// String returns a short human readable description of the command
func (c DeviceCommand) String() string {
	if c.Kind == GestureSwipe {
		return fmt.Sprintf("%s %s -> %s", c.Kind, c.From, c.To)
	}
	return fmt.Sprintf("%s at %s", c.Kind, c.From)
}
