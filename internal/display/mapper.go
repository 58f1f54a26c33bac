package display

import (
	"fmt"

	domain "github.com/inference-gateway/touchbridge/internal/domain"
)

// MapPoint converts a position on the rendered surface into the device's
// native coordinate frame.
//
// Portrait surfaces scale each axis independently against the matching
// native dimension, whatever the platform. Landscape surfaces are rotated
// relative to the native capture, and each automation driver expects the
// rotation to be undone differently:
//
//	android:            x = sy/sh * DW            y = sx/sw * DH
//	ios, standard:      x = sx/sw * DH            y = sy/sh * DW
//	ios, custom agent:  x = DW - sy/sh * DW       y = sx/sw * DH
//
// Android's driver takes coordinates in the un-rotated native frame, so the
// surface axes swap roles. The standard iOS agent never rotates its own frame
// and keeps the surface axes, paired with the swapped native dimensions. The
// custom agent swaps the axes and measures X from the far native edge.
func MapPoint(p domain.Point, ctx domain.DisplayContext) (domain.Point, error) {
	if err := ctx.Validate(); err != nil {
		return domain.Point{}, err
	}

	sw, sh := ctx.SurfaceWidth, ctx.SurfaceHeight
	dw, dh := ctx.DeviceWidth, ctx.DeviceHeight

	if ctx.Orientation == domain.OrientationPortrait {
		return domain.Point{
			X: (p.X / sw) * dw,
			Y: (p.Y / sh) * dh,
		}, nil
	}

	switch ctx.OS {
	case domain.PlatformAndroid:
		return domain.Point{
			X: (p.Y / sh) * dw,
			Y: (p.X / sw) * dh,
		}, nil
	case domain.PlatformIOS:
		if *ctx.IOSConvention == domain.IOSConventionCustomAgent {
			return domain.Point{
				X: dw - ((p.Y / sh) * dw),
				Y: (p.X / sw) * dh,
			}, nil
		}
		return domain.Point{
			X: (p.X / sw) * dh,
			Y: (p.Y / sh) * dw,
		}, nil
	}

	// Validate rejects unknown platforms before we get here.
	return domain.Point{}, &domain.InvalidDisplayContextError{Field: "os", Reason: fmt.Sprintf("unknown platform %q", ctx.OS)}
}

// MapSwipe maps both endpoints of a swipe independently
func MapSwipe(from, to domain.Point, ctx domain.DisplayContext) (domain.Point, domain.Point, error) {
	deviceFrom, err := MapPoint(from, ctx)
	if err != nil {
		return domain.Point{}, domain.Point{}, err
	}

	deviceTo, err := MapPoint(to, ctx)
	if err != nil {
		return domain.Point{}, domain.Point{}, err
	}

	return deviceFrom, deviceTo, nil
}

// MapIntent converts a surface-space gesture into a device command for deviceID
func MapIntent(intent domain.GestureIntent, ctx domain.DisplayContext, deviceID string) (domain.DeviceCommand, error) {
	cmd := domain.DeviceCommand{
		DeviceID: deviceID,
		Kind:     intent.Kind,
	}

	switch intent.Kind {
	case domain.GestureTap, domain.GestureTouchAndHold:
		at, err := MapPoint(intent.From, ctx)
		if err != nil {
			return domain.DeviceCommand{}, err
		}
		cmd.From = at
	case domain.GestureSwipe:
		from, to, err := MapSwipe(intent.From, intent.To, ctx)
		if err != nil {
			return domain.DeviceCommand{}, err
		}
		cmd.From, cmd.To = from, to
	default:
		return domain.DeviceCommand{}, fmt.Errorf("unsupported gesture kind %d", intent.Kind)
	}

	return cmd, nil
}
