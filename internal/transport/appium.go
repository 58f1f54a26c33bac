package transport

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	resty "github.com/go-resty/resty/v2"

	config "github.com/inference-gateway/touchbridge/config"
	domain "github.com/inference-gateway/touchbridge/internal/domain"
	logger "github.com/inference-gateway/touchbridge/internal/logger"
)

func init() {
	Register("appium", func(cfg config.TransportConfig, sessions SessionLookup) (domain.CommandTransport, error) {
		return NewAppiumTransport(cfg, sessions)
	})
}

// pointerAction is a single step of a W3C pointer input source
type pointerAction struct {
	Type     string `json:"type"`
	Duration *int   `json:"duration,omitempty"`
	X        *int   `json:"x,omitempty"`
	Y        *int   `json:"y,omitempty"`
	Button   *int   `json:"button,omitempty"`
}

type pointerSource struct {
	Type       string            `json:"type"`
	ID         string            `json:"id"`
	Parameters map[string]string `json:"parameters"`
	Actions    []pointerAction   `json:"actions"`
}

type actionsRequest struct {
	Actions []pointerSource `json:"actions"`
}

type webDriverError struct {
	Value struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	} `json:"value"`
}

// AppiumTransport performs gestures through the WebDriver actions endpoint
// of an Appium server
type AppiumTransport struct {
	client        *resty.Client
	sessions      SessionLookup
	holdDuration  int
	swipeDuration int
}

// NewAppiumTransport creates a transport talking to cfg.Appium.URL
func NewAppiumTransport(cfg config.TransportConfig, sessions SessionLookup) (*AppiumTransport, error) {
	if cfg.Appium.URL == "" {
		return nil, fmt.Errorf("appium url is required")
	}

	timeout := time.Duration(cfg.Appium.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.Appium.URL, "/")).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", "touchbridge/1.0")

	return &AppiumTransport{
		client:        client,
		sessions:      sessions,
		holdDuration:  cfg.HoldDurationMs,
		swipeDuration: cfg.SwipeDurationMs,
	}, nil
}

// Tap implements domain.CommandTransport
func (a *AppiumTransport) Tap(ctx context.Context, deviceID string, at domain.Point) error {
	return a.perform(ctx, deviceID, press(at, 0))
}

// TouchAndHold implements domain.CommandTransport
func (a *AppiumTransport) TouchAndHold(ctx context.Context, deviceID string, at domain.Point) error {
	return a.perform(ctx, deviceID, press(at, a.holdDuration))
}

// Swipe implements domain.CommandTransport
func (a *AppiumTransport) Swipe(ctx context.Context, deviceID string, from, to domain.Point) error {
	return a.perform(ctx, deviceID, []pointerAction{
		move(from, 0),
		{Type: "pointerDown", Button: intPtr(0)},
		move(to, a.swipeDuration),
		{Type: "pointerUp", Button: intPtr(0)},
	})
}

func (a *AppiumTransport) perform(ctx context.Context, deviceID string, actions []pointerAction) error {
	sessionID, err := a.sessionFor(ctx, deviceID)
	if err != nil {
		return err
	}

	body := actionsRequest{
		Actions: []pointerSource{{
			Type:       "pointer",
			ID:         "finger1",
			Parameters: map[string]string{"pointerType": "touch"},
			Actions:    actions,
		}},
	}

	var wdErr webDriverError
	resp, err := a.client.R().
		SetContext(ctx).
		SetPathParam("sessionId", sessionID).
		SetBody(body).
		SetError(&wdErr).
		Post("/session/{sessionId}/actions")
	if err != nil {
		return &domain.TransportError{DeviceID: deviceID, Message: err.Error()}
	}

	if resp.StatusCode() != http.StatusOK {
		msg := wdErr.Value.Message
		if msg == "" {
			msg = resp.String()
		}
		return &domain.TransportError{DeviceID: deviceID, StatusCode: resp.StatusCode(), Message: msg}
	}

	logger.Debug("Performed pointer actions", "device_id", deviceID, "session_id", sessionID, "steps", len(actions))
	return nil
}

// sessionFor resolves the Appium session for a device. Unknown devices use
// their ID as the session ID.
func (a *AppiumTransport) sessionFor(ctx context.Context, deviceID string) (string, error) {
	if a.sessions == nil {
		return deviceID, nil
	}

	profile, err := a.sessions.GetDevice(ctx, deviceID)
	if errors.Is(err, domain.ErrDeviceNotFound) {
		return deviceID, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve session for device %s: %w", deviceID, err)
	}
	if profile.SessionID == "" {
		return deviceID, nil
	}
	return profile.SessionID, nil
}

func press(at domain.Point, holdMs int) []pointerAction {
	return []pointerAction{
		move(at, 0),
		{Type: "pointerDown", Button: intPtr(0)},
		{Type: "pause", Duration: intPtr(holdMs)},
		{Type: "pointerUp", Button: intPtr(0)},
	}
}

func move(to domain.Point, durationMs int) pointerAction {
	return pointerAction{
		Type:     "pointerMove",
		Duration: intPtr(durationMs),
		X:        intPtr(int(math.Round(to.X))),
		Y:        intPtr(int(math.Round(to.Y))),
	}
}

func intPtr(v int) *int {
	return &v
}
