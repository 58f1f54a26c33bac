package gesture

import (
	"testing"

	domain "github.com/inference-gateway/touchbridge/internal/domain"
	assert "github.com/stretchr/testify/assert"
)

func sample(x, y float64, ts int64) domain.PointerSample {
	return domain.PointerSample{Position: domain.Point{X: x, Y: y}, TimestampMs: ts}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		start    domain.PointerSample
		end      domain.PointerSample
		expected domain.GestureIntent
	}{
		{
			name:     "short press without movement is a tap",
			start:    sample(100, 200, 1000),
			end:      sample(100, 200, 1499),
			expected: domain.NewTap(domain.Point{X: 100, Y: 200}),
		},
		{
			name:     "press of exactly the threshold is touch and hold",
			start:    sample(100, 200, 1000),
			end:      sample(100, 200, 1500),
			expected: domain.NewTouchAndHold(domain.Point{X: 100, Y: 200}),
		},
		{
			name:     "press longer than the threshold is a swipe",
			start:    sample(100, 200, 1000),
			end:      sample(100, 200, 1501),
			expected: domain.NewSwipe(domain.Point{X: 100, Y: 200}, domain.Point{X: 100, Y: 200}),
		},
		{
			name:     "movement overrides a short duration",
			start:    sample(100, 200, 0),
			end:      sample(120, 200, 100),
			expected: domain.NewSwipe(domain.Point{X: 100, Y: 200}, domain.Point{X: 120, Y: 200}),
		},
		{
			name:     "movement below tolerance keeps a tap",
			start:    sample(100, 200, 0),
			end:      sample(109, 181, 100),
			expected: domain.NewTap(domain.Point{X: 100, Y: 200}),
		},
		{
			name:     "upward movement is detected",
			start:    sample(100, 200, 0),
			end:      sample(100, 170, 100),
			expected: domain.NewSwipe(domain.Point{X: 100, Y: 200}, domain.Point{X: 100, Y: 170}),
		},
		{
			name:     "leftward movement is detected",
			start:    sample(100, 200, 0),
			end:      sample(80, 200, 100),
			expected: domain.NewSwipe(domain.Point{X: 100, Y: 200}, domain.Point{X: 80, Y: 200}),
		},
		{
			name:     "tap reports the start position",
			start:    sample(300, 400, 0),
			end:      sample(301, 401, 10),
			expected: domain.NewTap(domain.Point{X: 300, Y: 400}),
		},
		{
			name:     "any travel away from the origin is movement",
			start:    sample(0, 0, 0),
			end:      sample(1, 0, 10),
			expected: domain.NewSwipe(domain.Point{X: 0, Y: 0}, domain.Point{X: 1, Y: 0}),
		},
		{
			name:     "zero duration at the origin is a tap",
			start:    sample(0, 0, 0),
			end:      sample(0, 0, 0),
			expected: domain.NewTap(domain.Point{X: 0, Y: 0}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.start, tt.end))
		})
	}
}

func TestClassifier_CustomThresholds(t *testing.T) {
	c := NewClassifier(1000, 0.5)

	assert.Equal(t, domain.GestureTap, c.Classify(sample(100, 100, 0), sample(140, 60, 999)).Kind)
	assert.Equal(t, domain.GestureTouchAndHold, c.Classify(sample(100, 100, 0), sample(100, 100, 1000)).Kind)
	assert.Equal(t, domain.GestureSwipe, c.Classify(sample(100, 100, 0), sample(151, 100, 10)).Kind)
}

func TestNewClassifier_Defaults(t *testing.T) {
	c := NewClassifier(0, -1)

	assert.Equal(t, DefaultHoldThresholdMs, c.HoldThresholdMs)
	assert.Equal(t, DefaultMovementTolerance, c.MovementTolerance)
	assert.Equal(t, Default(), c)
}
