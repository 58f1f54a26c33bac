package gesture

import (
	domain "github.com/inference-gateway/touchbridge/internal/domain"
)

const (
	// DefaultHoldThresholdMs is the press duration separating taps from
	// longer presses
	DefaultHoldThresholdMs int64 = 500

	// DefaultMovementTolerance is the relative change in a coordinate that
	// counts as pointer movement
	DefaultMovementTolerance = 0.1
)

// Classifier turns a pointer-down/pointer-up pair into a gesture intent.
// The zero value is not useful; use NewClassifier or Default.
type Classifier struct {
	HoldThresholdMs   int64
	MovementTolerance float64
}

// NewClassifier creates a classifier. Non-positive arguments fall back to the defaults.
func NewClassifier(holdThresholdMs int64, movementTolerance float64) Classifier {
	if holdThresholdMs <= 0 {
		holdThresholdMs = DefaultHoldThresholdMs
	}
	if movementTolerance <= 0 {
		movementTolerance = DefaultMovementTolerance
	}
	return Classifier{
		HoldThresholdMs:   holdThresholdMs,
		MovementTolerance: movementTolerance,
	}
}

// Default returns a classifier with the default thresholds
func Default() Classifier {
	return NewClassifier(DefaultHoldThresholdMs, DefaultMovementTolerance)
}

// Classify classifies a gesture with the default thresholds
func Classify(start, end domain.PointerSample) domain.GestureIntent {
	return Default().Classify(start, end)
}

// Classify decides whether the pair is a tap, a touch-and-hold or a swipe.
//
// Movement is measured relative to the start coordinate rather than as a
// distance, so the travel that counts as movement grows with the distance
// from the surface origin. A touch-and-hold is only produced when the press
// lasts exactly the hold threshold without movement.
func (c Classifier) Classify(start, end domain.PointerSample) domain.GestureIntent {
	dt := end.TimestampMs - start.TimestampMs

	if dt > c.HoldThresholdMs || c.moved(start.Position, end.Position) {
		return domain.NewSwipe(start.Position, end.Position)
	}

	if dt < c.HoldThresholdMs {
		return domain.NewTap(start.Position)
	}

	return domain.NewTouchAndHold(start.Position)
}

func (c Classifier) moved(from, to domain.Point) bool {
	upper := 1 + c.MovementTolerance
	lower := 1 - c.MovementTolerance

	return to.X > from.X*upper ||
		to.X < from.X*lower ||
		to.Y < from.Y*lower ||
		to.Y > from.Y*upper
}
