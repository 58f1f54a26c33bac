package services

import (
	"context"
	"fmt"
	"sync"

	zap "go.uber.org/zap"

	display "github.com/inference-gateway/touchbridge/internal/display"
	domain "github.com/inference-gateway/touchbridge/internal/domain"
	gesture "github.com/inference-gateway/touchbridge/internal/gesture"
	logger "github.com/inference-gateway/touchbridge/internal/logger"
)

// PipelineState is the state of an orchestrator's single pointer slot
type PipelineState int

const (
	StateIdle PipelineState = iota
	StatePointerDown
)

// String returns the string representation of the pipeline state
func (s PipelineState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StatePointerDown:
		return "PointerDown"
	default:
		return "Unknown"
	}
}

// Orchestrator turns pointer-down/pointer-up pairs into device commands for
// one session. Completed commands are dispatched in the background and their
// outcome reported to the DispatchReporter.
type Orchestrator struct {
	classifier gesture.Classifier
	transport  domain.CommandTransport
	reporter   domain.DispatchReporter

	mu       sync.Mutex
	deviceID string
	display  *domain.DisplayContext
	start    *domain.PointerSample
	closed   bool

	ctx      context.Context
	cancel   context.CancelFunc
	inflight sync.WaitGroup
}

// NewOrchestrator creates an idle orchestrator. The reporter may be nil.
func NewOrchestrator(classifier gesture.Classifier, transport domain.CommandTransport, reporter domain.DispatchReporter) *Orchestrator {
	ctx, cancel := context.WithCancel(context.Background())
	return &Orchestrator{
		classifier: classifier,
		transport:  transport,
		reporter:   reporter,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// StartSession attaches the orchestrator to a device and display context and
// drops any gesture in flight
func (o *Orchestrator) StartSession(deviceID string, dc domain.DisplayContext) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return domain.ErrOrchestratorClosed
	}

	o.deviceID = deviceID
	o.display = &dc
	o.start = nil
	return nil
}

// SetDisplayContext replaces the display context used for the next mapping.
// A gesture in flight is kept.
func (o *Orchestrator) SetDisplayContext(dc domain.DisplayContext) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.display = &dc
}

// DisplayContext returns the current display context, if any
func (o *Orchestrator) DisplayContext() (domain.DisplayContext, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.display == nil {
		return domain.DisplayContext{}, false
	}
	return *o.display, true
}

// DeviceID returns the device this orchestrator dispatches to
func (o *Orchestrator) DeviceID() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.deviceID
}

// State reports whether a gesture is in flight
func (o *Orchestrator) State() PipelineState {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.start == nil {
		return StateIdle
	}
	return StatePointerDown
}

// Reset drops any gesture in flight
func (o *Orchestrator) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.start = nil
}

// PointerDown records the start of a gesture. A second pointer-down before
// pointer-up replaces the first.
func (o *Orchestrator) PointerDown(sample domain.PointerSample) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return domain.ErrOrchestratorClosed
	}

	o.start = &sample
	return nil
}

// PointerUp completes the gesture in flight. The returned command has
// already been handed off for dispatch; transport failures are only seen by
// the DispatchReporter. On any error the orchestrator is left Idle and
// nothing is dispatched.
func (o *Orchestrator) PointerUp(ctx context.Context, end domain.PointerSample) (domain.DeviceCommand, error) {
	o.mu.Lock()

	if o.closed {
		o.mu.Unlock()
		return domain.DeviceCommand{}, domain.ErrOrchestratorClosed
	}
	if o.start == nil {
		o.mu.Unlock()
		return domain.DeviceCommand{}, domain.ErrNoGestureInFlight
	}

	start := *o.start
	o.start = nil

	if o.display == nil {
		o.mu.Unlock()
		return domain.DeviceCommand{}, domain.ErrNoDisplayContext
	}
	dc := *o.display
	deviceID := o.deviceID

	intent := o.classifier.Classify(start, end)
	cmd, err := display.MapIntent(intent, dc, deviceID)
	if err != nil {
		o.mu.Unlock()
		logger.FromContext(ctx).Warn("Dropped gesture with unusable display context",
			zap.String("device_id", deviceID), zap.Stringer("kind", intent.Kind), zap.Error(err))
		return domain.DeviceCommand{}, fmt.Errorf("failed to map %s: %w", intent.Kind, err)
	}

	o.inflight.Add(1)
	o.mu.Unlock()

	logger.FromContext(ctx).Debug("Dispatching command", zap.Stringer("command", cmd))

	dispatchCtx := logger.ContextWithLogger(o.ctx, logger.FromContext(ctx))
	go o.dispatch(dispatchCtx, cmd)

	return cmd, nil
}

func (o *Orchestrator) dispatch(ctx context.Context, cmd domain.DeviceCommand) {
	defer o.inflight.Done()

	err := domain.Execute(ctx, o.transport, cmd)
	if o.reporter == nil {
		if err != nil {
			logger.FromContext(ctx).Warn("Command dispatch failed", zap.Stringer("command", cmd), zap.Error(err))
		}
		return
	}

	if err != nil {
		o.reporter.DispatchFailed(cmd, err)
		return
	}
	o.reporter.DispatchSucceeded(cmd)
}

// Wait blocks until all dispatched commands have finished
func (o *Orchestrator) Wait() {
	o.inflight.Wait()
}

// Close stops the orchestrator. No command is dispatched afterwards and
// in-flight dispatches have their context cancelled.
func (o *Orchestrator) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return
	}
	o.closed = true
	o.start = nil
	o.cancel()
}
