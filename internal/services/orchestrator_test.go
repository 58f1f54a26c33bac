package services

import (
	"context"
	"errors"
	"testing"

	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"

	domain "github.com/inference-gateway/touchbridge/internal/domain"
	gesture "github.com/inference-gateway/touchbridge/internal/gesture"
	logger "github.com/inference-gateway/touchbridge/internal/logger"
	domainmocks "github.com/inference-gateway/touchbridge/tests/mocks/domain"
)

func androidPortrait() domain.DisplayContext {
	return domain.DisplayContext{
		SurfaceWidth:  800,
		SurfaceHeight: 400,
		DeviceWidth:   1080,
		DeviceHeight:  2400,
		OS:            domain.PlatformAndroid,
		Orientation:   domain.OrientationPortrait,
	}
}

func sample(x, y float64, ts int64) domain.PointerSample {
	return domain.PointerSample{Position: domain.Point{X: x, Y: y}, TimestampMs: ts}
}

func newTestOrchestrator(t *testing.T) (*Orchestrator, *domainmocks.FakeCommandTransport, *domainmocks.FakeDispatchReporter) {
	t.Helper()

	transport := &domainmocks.FakeCommandTransport{}
	reporter := &domainmocks.FakeDispatchReporter{}
	o := NewOrchestrator(gesture.Default(), transport, reporter)
	t.Cleanup(o.Close)

	require.NoError(t, o.StartSession("pixel-7", androidPortrait()))
	return o, transport, reporter
}

func TestOrchestrator_Tap(t *testing.T) {
	o, transport, reporter := newTestOrchestrator(t)
	ctx := logger.NopContext()

	require.NoError(t, o.PointerDown(sample(400, 200, 0)))
	assert.Equal(t, StatePointerDown, o.State())

	cmd, err := o.PointerUp(ctx, sample(400, 200, 120))
	require.NoError(t, err)
	o.Wait()

	assert.Equal(t, StateIdle, o.State())
	assert.Equal(t, domain.GestureTap, cmd.Kind)
	assert.Equal(t, "pixel-7", cmd.DeviceID)
	assert.Equal(t, domain.Point{X: 540, Y: 1200}, cmd.From)

	require.Equal(t, 1, transport.TapCallCount())
	_, id, at := transport.TapArgsForCall(0)
	assert.Equal(t, "pixel-7", id)
	assert.Equal(t, domain.Point{X: 540, Y: 1200}, at)

	require.Equal(t, 1, reporter.DispatchSucceededCallCount())
	assert.Equal(t, cmd, reporter.DispatchSucceededArgsForCall(0))
}

func TestOrchestrator_GestureKinds(t *testing.T) {
	tests := []struct {
		name  string
		start domain.PointerSample
		end   domain.PointerSample
		check func(t *testing.T, transport *domainmocks.FakeCommandTransport)
	}{
		{
			name:  "touch and hold at exactly the threshold",
			start: sample(100, 100, 0),
			end:   sample(100, 100, 500),
			check: func(t *testing.T, transport *domainmocks.FakeCommandTransport) {
				assert.Equal(t, 1, transport.TouchAndHoldCallCount())
			},
		},
		{
			name:  "swipe on movement",
			start: sample(100, 100, 0),
			end:   sample(300, 100, 100),
			check: func(t *testing.T, transport *domainmocks.FakeCommandTransport) {
				require.Equal(t, 1, transport.SwipeCallCount())
				_, _, from, to := transport.SwipeArgsForCall(0)
				assert.Equal(t, domain.Point{X: 135, Y: 600}, from)
				assert.Equal(t, domain.Point{X: 405, Y: 600}, to)
			},
		},
		{
			name:  "long press becomes swipe",
			start: sample(100, 100, 0),
			end:   sample(100, 100, 501),
			check: func(t *testing.T, transport *domainmocks.FakeCommandTransport) {
				assert.Equal(t, 1, transport.SwipeCallCount())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, transport, _ := newTestOrchestrator(t)

			require.NoError(t, o.PointerDown(tt.start))
			_, err := o.PointerUp(context.Background(), tt.end)
			require.NoError(t, err)
			o.Wait()

			tt.check(t, transport)
		})
	}
}

func TestOrchestrator_InvalidDisplayContext(t *testing.T) {
	o, transport, reporter := newTestOrchestrator(t)

	broken := androidPortrait()
	broken.SurfaceWidth = 0
	o.SetDisplayContext(broken)

	require.NoError(t, o.PointerDown(sample(10, 10, 0)))
	_, err := o.PointerUp(context.Background(), sample(10, 10, 50))
	o.Wait()

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidDisplayContext))
	assert.Equal(t, StateIdle, o.State())
	assert.Empty(t, transport.Invocations())
	assert.Empty(t, reporter.Invocations())
}

func TestOrchestrator_IOSWithoutConvention(t *testing.T) {
	o, transport, _ := newTestOrchestrator(t)

	dc := androidPortrait()
	dc.OS = domain.PlatformIOS
	require.NoError(t, o.StartSession("iphone", dc))

	require.NoError(t, o.PointerDown(sample(10, 10, 0)))
	_, err := o.PointerUp(context.Background(), sample(10, 10, 50))
	o.Wait()

	assert.ErrorIs(t, err, domain.ErrInvalidDisplayContext)
	assert.Empty(t, transport.Invocations())
}

func TestOrchestrator_LastPointerDownWins(t *testing.T) {
	o, transport, _ := newTestOrchestrator(t)

	require.NoError(t, o.PointerDown(sample(100, 100, 0)))
	require.NoError(t, o.PointerDown(sample(400, 200, 1000)))

	cmd, err := o.PointerUp(context.Background(), sample(400, 200, 1100))
	require.NoError(t, err)
	o.Wait()

	assert.Equal(t, domain.GestureTap, cmd.Kind)
	require.Equal(t, 1, transport.TapCallCount())
	_, _, at := transport.TapArgsForCall(0)
	assert.Equal(t, domain.Point{X: 540, Y: 1200}, at)
}

func TestOrchestrator_PointerUpWhileIdle(t *testing.T) {
	o, transport, _ := newTestOrchestrator(t)

	_, err := o.PointerUp(context.Background(), sample(1, 1, 1))
	assert.ErrorIs(t, err, domain.ErrNoGestureInFlight)
	assert.Empty(t, transport.Invocations())
}

func TestOrchestrator_NoDisplayContext(t *testing.T) {
	transport := &domainmocks.FakeCommandTransport{}
	o := NewOrchestrator(gesture.Default(), transport, nil)
	defer o.Close()

	require.NoError(t, o.PointerDown(sample(1, 1, 0)))
	_, err := o.PointerUp(context.Background(), sample(1, 1, 10))

	assert.ErrorIs(t, err, domain.ErrNoDisplayContext)
	assert.Equal(t, StateIdle, o.State())
	assert.Empty(t, transport.Invocations())
}

func TestOrchestrator_OrientationChangeKeepsGestureInFlight(t *testing.T) {
	o, transport, _ := newTestOrchestrator(t)

	require.NoError(t, o.PointerDown(sample(400, 200, 0)))

	dc, ok := o.DisplayContext()
	require.True(t, ok)
	o.SetDisplayContext(dc.WithOrientation(domain.OrientationLandscape))
	assert.Equal(t, StatePointerDown, o.State())

	_, err := o.PointerUp(context.Background(), sample(400, 200, 10))
	require.NoError(t, err)
	o.Wait()

	_, _, at := transport.TapArgsForCall(0)
	assert.Equal(t, domain.Point{X: 540, Y: 1200}, at)
}

func TestOrchestrator_StartSessionResets(t *testing.T) {
	o, transport, _ := newTestOrchestrator(t)

	require.NoError(t, o.PointerDown(sample(1, 1, 0)))
	require.NoError(t, o.StartSession("other", androidPortrait()))
	assert.Equal(t, StateIdle, o.State())
	assert.Equal(t, "other", o.DeviceID())

	_, err := o.PointerUp(context.Background(), sample(1, 1, 10))
	assert.ErrorIs(t, err, domain.ErrNoGestureInFlight)

	require.NoError(t, o.PointerDown(sample(1, 1, 0)))
	o.Reset()
	assert.Equal(t, StateIdle, o.State())
	assert.Empty(t, transport.Invocations())
}

func TestOrchestrator_TransportErrorIsReported(t *testing.T) {
	o, transport, reporter := newTestOrchestrator(t)

	failure := &domain.TransportError{DeviceID: "pixel-7", StatusCode: 500, Message: "boom"}
	transport.TapReturns(failure)

	cmd, err := o.PointerUp(context.Background(), sample(1, 1, 1))
	assert.ErrorIs(t, err, domain.ErrNoGestureInFlight)

	require.NoError(t, o.PointerDown(sample(1, 1, 0)))
	cmd, err = o.PointerUp(context.Background(), sample(1, 1, 10))
	require.NoError(t, err, "dispatch failures are not returned synchronously")
	o.Wait()

	require.Equal(t, 1, reporter.DispatchFailedCallCount())
	gotCmd, gotErr := reporter.DispatchFailedArgsForCall(0)
	assert.Equal(t, cmd, gotCmd)
	assert.Same(t, failure, gotErr)
	assert.Equal(t, 1, transport.TapCallCount(), "no retry")
	assert.Equal(t, 0, reporter.DispatchSucceededCallCount())
}

func TestOrchestrator_Close(t *testing.T) {
	o, transport, _ := newTestOrchestrator(t)

	release := make(chan struct{})
	var cancelled bool
	transport.TapCalls(func(ctx context.Context, _ string, _ domain.Point) error {
		<-ctx.Done()
		cancelled = true
		close(release)
		return ctx.Err()
	})

	require.NoError(t, o.PointerDown(sample(1, 1, 0)))
	_, err := o.PointerUp(context.Background(), sample(1, 1, 10))
	require.NoError(t, err)

	o.Close()
	<-release
	o.Wait()
	assert.True(t, cancelled)

	assert.ErrorIs(t, o.PointerDown(sample(1, 1, 20)), domain.ErrOrchestratorClosed)
	_, err = o.PointerUp(context.Background(), sample(1, 1, 30))
	assert.ErrorIs(t, err, domain.ErrOrchestratorClosed)
	assert.ErrorIs(t, o.StartSession("x", androidPortrait()), domain.ErrOrchestratorClosed)
	assert.Equal(t, 1, transport.TapCallCount())

	o.Close()
}

func TestPipelineState_String(t *testing.T) {
	assert.Equal(t, "Idle", StateIdle.String())
	assert.Equal(t, "PointerDown", StatePointerDown.String())
	assert.Equal(t, "Unknown", PipelineState(9).String())
}
