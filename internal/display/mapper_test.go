package display

import (
	"errors"
	"math"
	"testing"

	domain "github.com/inference-gateway/touchbridge/internal/domain"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

func landscapeContext(os domain.Platform, convention *domain.IOSConvention) domain.DisplayContext {
	return domain.DisplayContext{
		SurfaceWidth:  800,
		SurfaceHeight: 400,
		DeviceWidth:   1080,
		DeviceHeight:  2400,
		OS:            os,
		Orientation:   domain.OrientationLandscape,
		IOSConvention: convention,
	}
}

func TestMapPoint_PortraitCenterMapsToCenter(t *testing.T) {
	tests := []struct {
		name       string
		os         domain.Platform
		convention *domain.IOSConvention
	}{
		{name: "android", os: domain.PlatformAndroid},
		{name: "ios standard", os: domain.PlatformIOS, convention: domain.ConventionPtr(domain.IOSConventionStandard)},
		{name: "ios custom agent", os: domain.PlatformIOS, convention: domain.ConventionPtr(domain.IOSConventionCustomAgent)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := domain.DisplayContext{
				SurfaceWidth:  393,
				SurfaceHeight: 852,
				DeviceWidth:   1179,
				DeviceHeight:  2556,
				OS:            tt.os,
				Orientation:   domain.OrientationPortrait,
				IOSConvention: tt.convention,
			}

			got, err := MapPoint(domain.Point{X: ctx.SurfaceWidth / 2, Y: ctx.SurfaceHeight / 2}, ctx)
			require.NoError(t, err)
			assert.Equal(t, domain.Point{X: ctx.DeviceWidth / 2, Y: ctx.DeviceHeight / 2}, got)
		})
	}
}

func TestMapPoint(t *testing.T) {
	tests := []struct {
		name        string
		ctx         domain.DisplayContext
		input       domain.Point
		expected    domain.Point
		description string
	}{
		{
			name:        "Android landscape swaps surface axes",
			ctx:         landscapeContext(domain.PlatformAndroid, nil),
			input:       domain.Point{X: 400, Y: 200},
			expected:    domain.Point{X: 540, Y: 1200},
			description: "x = (200/400)*1080, y = (400/800)*2400",
		},
		{
			name:        "Android landscape far corner",
			ctx:         landscapeContext(domain.PlatformAndroid, nil),
			input:       domain.Point{X: 800, Y: 400},
			expected:    domain.Point{X: 1080, Y: 2400},
			description: "bottom-right of the surface stays inside the native frame",
		},
		{
			name:        "iOS standard landscape pairs X with native height",
			ctx:         landscapeContext(domain.PlatformIOS, domain.ConventionPtr(domain.IOSConventionStandard)),
			input:       domain.Point{X: 400, Y: 200},
			expected:    domain.Point{X: 1200, Y: 540},
			description: "x = (400/800)*2400, y = (200/400)*1080",
		},
		{
			name:        "iOS custom agent landscape cross-wires axes",
			ctx:         landscapeContext(domain.PlatformIOS, domain.ConventionPtr(domain.IOSConventionCustomAgent)),
			input:       domain.Point{X: 400, Y: 200},
			expected:    domain.Point{X: 540, Y: 1200},
			description: "x = 1080 - (200/400)*1080, y = (400/800)*2400",
		},
		{
			name:        "iOS custom agent measures X from the far edge",
			ctx:         landscapeContext(domain.PlatformIOS, domain.ConventionPtr(domain.IOSConventionCustomAgent)),
			input:       domain.Point{X: 200, Y: 100},
			expected:    domain.Point{X: 810, Y: 600},
			description: "x = 1080 - (100/400)*1080, y = (200/800)*2400",
		},
		{
			name:        "iOS standard landscape origin",
			ctx:         landscapeContext(domain.PlatformIOS, domain.ConventionPtr(domain.IOSConventionStandard)),
			input:       domain.Point{X: 0, Y: 0},
			expected:    domain.Point{X: 0, Y: 0},
			description: "origin maps to origin",
		},
		{
			name:        "iOS custom agent landscape origin",
			ctx:         landscapeContext(domain.PlatformIOS, domain.ConventionPtr(domain.IOSConventionCustomAgent)),
			input:       domain.Point{X: 0, Y: 0},
			expected:    domain.Point{X: 1080, Y: 0},
			description: "surface origin lands on the far native X edge",
		},
		{
			name: "portrait ignores platform and scales independently",
			ctx: domain.DisplayContext{
				SurfaceWidth:  400,
				SurfaceHeight: 800,
				DeviceWidth:   1080,
				DeviceHeight:  2400,
				OS:            domain.PlatformAndroid,
				Orientation:   domain.OrientationPortrait,
			},
			input:       domain.Point{X: 100, Y: 600},
			expected:    domain.Point{X: 270, Y: 1800},
			description: "x = (100/400)*1080, y = (600/800)*2400",
		},
		{
			name: "portrait with a larger surface than the device scales down",
			ctx: domain.DisplayContext{
				SurfaceWidth:  2000,
				SurfaceHeight: 4000,
				DeviceWidth:   1000,
				DeviceHeight:  2000,
				OS:            domain.PlatformIOS,
				Orientation:   domain.OrientationPortrait,
				IOSConvention: domain.ConventionPtr(domain.IOSConventionCustomAgent),
			},
			input:       domain.Point{X: 500, Y: 1000},
			expected:    domain.Point{X: 250, Y: 500},
			description: "custom agent convention does not apply in portrait",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MapPoint(tt.input, tt.ctx)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected.X, got.X, 1e-9, tt.description)
			assert.InDelta(t, tt.expected.Y, got.Y, 1e-9, tt.description)
		})
	}
}

func TestMapPoint_CustomAgentDiffersFromStandard(t *testing.T) {
	input := domain.Point{X: 400, Y: 200}

	standard, err := MapPoint(input, landscapeContext(domain.PlatformIOS, domain.ConventionPtr(domain.IOSConventionStandard)))
	require.NoError(t, err)

	custom, err := MapPoint(input, landscapeContext(domain.PlatformIOS, domain.ConventionPtr(domain.IOSConventionCustomAgent)))
	require.NoError(t, err)

	assert.NotEqual(t, standard, custom)
	assert.Equal(t, standard.X, custom.Y, "standard X and custom Y both come from the surface X against native height")
	assert.Equal(t, standard.Y, custom.X, "values coincide only because the input sits on the center line")
}

func TestMapPoint_InvalidDisplayContext(t *testing.T) {
	valid := landscapeContext(domain.PlatformAndroid, nil)

	tests := []struct {
		name  string
		ctx   domain.DisplayContext
		field string
	}{
		{name: "zero surface width", ctx: valid.WithSurface(0, 400), field: "surface_width"},
		{name: "zero surface height", ctx: valid.WithSurface(800, 0), field: "surface_height"},
		{name: "negative surface width", ctx: valid.WithSurface(-1, 400), field: "surface_width"},
		{name: "NaN surface height", ctx: valid.WithSurface(800, math.NaN()), field: "surface_height"},
		{
			name: "zero device width",
			ctx: func() domain.DisplayContext {
				c := valid
				c.DeviceWidth = 0
				return c
			}(),
			field: "device_width",
		},
		{
			name: "negative device height",
			ctx: func() domain.DisplayContext {
				c := valid
				c.DeviceHeight = -10
				return c
			}(),
			field: "device_height",
		},
		{
			name:  "ios without convention",
			ctx:   landscapeContext(domain.PlatformIOS, nil),
			field: "ios_convention",
		},
		{
			name:  "ios without convention in portrait",
			ctx:   landscapeContext(domain.PlatformIOS, nil).WithOrientation(domain.OrientationPortrait),
			field: "ios_convention",
		},
		{
			name:  "unknown platform",
			ctx:   landscapeContext(domain.Platform("windows"), nil),
			field: "os",
		},
		{
			name:  "unknown orientation",
			ctx:   valid.WithOrientation(domain.Orientation("upside_down")),
			field: "orientation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MapPoint(domain.Point{X: 10, Y: 10}, tt.ctx)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidDisplayContext))

			var invalid *domain.InvalidDisplayContextError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tt.field, invalid.Field)
		})
	}
}

func TestMapPoint_IsDeterministic(t *testing.T) {
	ctx := landscapeContext(domain.PlatformIOS, domain.ConventionPtr(domain.IOSConventionCustomAgent))
	input := domain.Point{X: 123.456, Y: 78.9}

	first, err := MapPoint(input, ctx)
	require.NoError(t, err)
	second, err := MapPoint(input, ctx)
	require.NoError(t, err)

	assert.Equal(t, math.Float64bits(first.X), math.Float64bits(second.X))
	assert.Equal(t, math.Float64bits(first.Y), math.Float64bits(second.Y))
}

func TestMapSwipe(t *testing.T) {
	ctx := landscapeContext(domain.PlatformAndroid, nil)

	from, to, err := MapSwipe(domain.Point{X: 400, Y: 200}, domain.Point{X: 800, Y: 0}, ctx)
	require.NoError(t, err)

	assert.Equal(t, domain.Point{X: 540, Y: 1200}, from)
	assert.Equal(t, domain.Point{X: 0, Y: 2400}, to)
}

func TestMapSwipe_InvalidContext(t *testing.T) {
	ctx := landscapeContext(domain.PlatformAndroid, nil).WithSurface(0, 0)

	from, to, err := MapSwipe(domain.Point{X: 1, Y: 1}, domain.Point{X: 2, Y: 2}, ctx)
	assert.ErrorIs(t, err, domain.ErrInvalidDisplayContext)
	assert.Equal(t, domain.Point{}, from)
	assert.Equal(t, domain.Point{}, to)
}

func TestMapIntent(t *testing.T) {
	ctx := landscapeContext(domain.PlatformIOS, domain.ConventionPtr(domain.IOSConventionStandard))

	t.Run("tap", func(t *testing.T) {
		cmd, err := MapIntent(domain.NewTap(domain.Point{X: 400, Y: 200}), ctx, "device-1")
		require.NoError(t, err)
		assert.Equal(t, domain.DeviceCommand{
			DeviceID: "device-1",
			Kind:     domain.GestureTap,
			From:     domain.Point{X: 1200, Y: 540},
		}, cmd)
	})

	t.Run("touch and hold", func(t *testing.T) {
		cmd, err := MapIntent(domain.NewTouchAndHold(domain.Point{X: 0, Y: 400}), ctx, "device-1")
		require.NoError(t, err)
		assert.Equal(t, domain.GestureTouchAndHold, cmd.Kind)
		assert.Equal(t, domain.Point{X: 0, Y: 1080}, cmd.From)
	})

	t.Run("swipe", func(t *testing.T) {
		cmd, err := MapIntent(domain.NewSwipe(domain.Point{X: 0, Y: 0}, domain.Point{X: 800, Y: 400}), ctx, "device-1")
		require.NoError(t, err)
		assert.Equal(t, domain.GestureSwipe, cmd.Kind)
		assert.Equal(t, domain.Point{X: 0, Y: 0}, cmd.From)
		assert.Equal(t, domain.Point{X: 2400, Y: 1080}, cmd.To)
	})

	t.Run("invalid context", func(t *testing.T) {
		_, err := MapIntent(domain.NewTap(domain.Point{X: 1, Y: 1}), ctx.WithSurface(0, 400), "device-1")
		assert.ErrorIs(t, err, domain.ErrInvalidDisplayContext)
	})
}
