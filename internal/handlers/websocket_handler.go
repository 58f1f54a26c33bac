package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	uuid "github.com/google/uuid"
	websocket "github.com/gorilla/websocket"

	domain "github.com/inference-gateway/touchbridge/internal/domain"
	storage "github.com/inference-gateway/touchbridge/internal/infra/storage"
	logger "github.com/inference-gateway/touchbridge/internal/logger"
	services "github.com/inference-gateway/touchbridge/internal/services"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WebSocketHandler receives the operator's pointer feed and turns it into
// device commands
type WebSocketHandler struct {
	sessionManager *SessionManager
	devices        storage.DeviceStore
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(sessionManager *SessionManager, devices storage.DeviceStore) *WebSocketHandler {
	return &WebSocketHandler{
		sessionManager: sessionManager,
		devices:        devices,
	}
}

// wsConn serializes writes to a connection. Dispatch outcomes are reported
// from other goroutines.
type wsConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *wsConn) send(msg WSMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.WriteJSON(msg); err != nil {
		logger.Error("Failed to send WebSocket message", "error", err)
	}
}

func (c *wsConn) sendError(errMsg string) {
	c.send(WSMessage{
		Type:  "error",
		Error: errMsg,
		Time:  time.Now().UTC().Format(time.RFC3339),
	})
}

// DispatchSucceeded implements domain.DispatchReporter
func (c *wsConn) DispatchSucceeded(cmd domain.DeviceCommand) {
	logger.Debug("Command dispatched", "device_id", cmd.DeviceID, "command", cmd.String())
}

// DispatchFailed implements domain.DispatchReporter
func (c *wsConn) DispatchFailed(cmd domain.DeviceCommand, err error) {
	logger.Warn("Command dispatch failed", "device_id", cmd.DeviceID, "command", cmd.String(), "error", err)
	c.send(WSMessage{
		Type:    "dispatch_error",
		Command: &cmd,
		Error:   err.Error(),
		Time:    time.Now().UTC().Format(time.RFC3339),
	})
}

// HandleWebSocket handles WebSocket upgrade and communication
func (h *WebSocketHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("Failed to upgrade to WebSocket", "error", err)
		return
	}
	ws := &wsConn{conn: conn}
	defer h.closeConnection(conn)

	clientID := uuid.New().String()
	logger.Info("WebSocket client connected", "client_id", clientID, "remote", r.RemoteAddr)

	session, err := h.sessionManager.CreateSession(clientID, ws)
	if err != nil {
		ws.sendError(fmt.Sprintf("Failed to create session: %v", err))
		return
	}
	defer h.cleanupSession(clientID)

	h.messageLoop(r.Context(), ws, session, clientID)
}

func (h *WebSocketHandler) closeConnection(conn *websocket.Conn) {
	if err := conn.Close(); err != nil {
		logger.Warn("Failed to close WebSocket connection", "error", err)
	}
}

func (h *WebSocketHandler) cleanupSession(clientID string) {
	if err := h.sessionManager.CloseSession(clientID); err != nil {
		logger.Debug("Session already closed", "client_id", clientID, "error", err)
	}
	logger.Info("WebSocket client disconnected", "client_id", clientID)
}

func (h *WebSocketHandler) messageLoop(ctx context.Context, ws *wsConn, session *services.Orchestrator, clientID string) {
	for {
		var msg WSMessage
		if err := ws.conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warn("Failed to read WebSocket message", "client_id", clientID, "error", err)
			}
			return
		}

		if shouldReturn := h.handleMessage(ctx, ws, msg, session, clientID); shouldReturn {
			return
		}
	}
}

func (h *WebSocketHandler) handleMessage(ctx context.Context, ws *wsConn, msg WSMessage, session *services.Orchestrator, clientID string) bool {
	switch msg.Type {
	case "attach":
		return h.handleAttach(ctx, ws, msg, session, clientID)
	case "surface":
		return h.handleSurface(ws, msg, session)
	case "orientation":
		return h.handleOrientation(ws, msg, session)
	case "pointer_down":
		return h.handlePointerDown(ws, msg, session)
	case "pointer_up":
		return h.handlePointerUp(ctx, ws, msg, session, clientID)
	case "reset":
		session.Reset()
		return false
	case "detach":
		return true
	default:
		ws.sendError(fmt.Sprintf("Unknown message type: %s", msg.Type))
		return false
	}
}

func (h *WebSocketHandler) handleAttach(ctx context.Context, ws *wsConn, msg WSMessage, session *services.Orchestrator, clientID string) bool {
	if msg.DeviceID == "" {
		ws.sendError("Device ID required")
		return false
	}

	profile, err := h.resolveProfile(ctx, msg)
	if err != nil {
		ws.sendError(err.Error())
		return false
	}

	orientation := domain.OrientationPortrait
	if msg.Orientation != "" {
		if orientation, err = domain.ParseOrientation(msg.Orientation); err != nil {
			ws.sendError(err.Error())
			return false
		}
	}

	dc := profile.DisplayContext(msg.SurfaceWidth, msg.SurfaceHeight, orientation)
	if err := dc.Validate(); err != nil {
		ws.sendError(err.Error())
		return false
	}

	if err := session.StartSession(profile.ID, dc); err != nil {
		ws.sendError(fmt.Sprintf("Failed to attach: %v", err))
		return true
	}

	logger.Info("Attached to device", "client_id", clientID, "device_id", profile.ID, "os", profile.OS, "orientation", orientation)
	ws.send(WSMessage{
		Type:     "attached",
		ClientID: clientID,
		DeviceID: profile.ID,
	})
	return false
}

// resolveProfile uses the inline device description when the client sends
// one, otherwise the stored profile
func (h *WebSocketHandler) resolveProfile(ctx context.Context, msg WSMessage) (domain.DeviceProfile, error) {
	if msg.OS != "" {
		platform, err := domain.ParsePlatform(msg.OS)
		if err != nil {
			return domain.DeviceProfile{}, err
		}
		profile := domain.DeviceProfile{
			ID:           msg.DeviceID,
			OS:           platform,
			NativeWidth:  msg.DeviceWidth,
			NativeHeight: msg.DeviceHeight,
		}
		if msg.IOSConvention != "" {
			convention, err := domain.ParseIOSConvention(msg.IOSConvention)
			if err != nil {
				return domain.DeviceProfile{}, err
			}
			profile.IOSConvention = &convention
		}
		return profile, nil
	}

	if h.devices == nil {
		return domain.DeviceProfile{}, fmt.Errorf("device %s: %w", msg.DeviceID, domain.ErrDeviceNotFound)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	profile, err := h.devices.GetDevice(ctx, msg.DeviceID)
	if err != nil {
		if errors.Is(err, domain.ErrDeviceNotFound) {
			return domain.DeviceProfile{}, fmt.Errorf("device %s: %w", msg.DeviceID, domain.ErrDeviceNotFound)
		}
		return domain.DeviceProfile{}, fmt.Errorf("failed to load device %s: %w", msg.DeviceID, err)
	}
	return profile, nil
}

func (h *WebSocketHandler) handleSurface(ws *wsConn, msg WSMessage, session *services.Orchestrator) bool {
	dc, ok := session.DisplayContext()
	if !ok {
		ws.sendError("Not attached to a device")
		return false
	}

	session.SetDisplayContext(dc.WithSurface(msg.SurfaceWidth, msg.SurfaceHeight))
	return false
}

func (h *WebSocketHandler) handleOrientation(ws *wsConn, msg WSMessage, session *services.Orchestrator) bool {
	dc, ok := session.DisplayContext()
	if !ok {
		ws.sendError("Not attached to a device")
		return false
	}

	orientation, err := domain.ParseOrientation(msg.Orientation)
	if err != nil {
		ws.sendError(err.Error())
		return false
	}

	session.SetDisplayContext(dc.WithOrientation(orientation))
	return false
}

func (h *WebSocketHandler) handlePointerDown(ws *wsConn, msg WSMessage, session *services.Orchestrator) bool {
	if err := session.PointerDown(msg.sample()); err != nil {
		ws.sendError(err.Error())
	}
	return false
}

func (h *WebSocketHandler) handlePointerUp(ctx context.Context, ws *wsConn, msg WSMessage, session *services.Orchestrator, clientID string) bool {
	ctx = logger.WithDevice(ctx, session.DeviceID(), clientID)

	cmd, err := session.PointerUp(ctx, msg.sample())
	if err != nil {
		ws.sendError(err.Error())
		return false
	}

	ws.send(WSMessage{
		Type:    "command",
		Command: &cmd,
		Time:    time.Now().UTC().Format(time.RFC3339),
	})
	return false
}

// WSMessage represents a WebSocket message
type WSMessage struct {
	Type          string                `json:"type"`
	ClientID      string                `json:"client_id,omitempty"`
	DeviceID      string                `json:"device_id,omitempty"`
	OS            string                `json:"os,omitempty"`
	IOSConvention string                `json:"ios_convention,omitempty"`
	DeviceWidth   float64               `json:"device_width,omitempty"`
	DeviceHeight  float64               `json:"device_height,omitempty"`
	SurfaceWidth  float64               `json:"surface_width,omitempty"`
	SurfaceHeight float64               `json:"surface_height,omitempty"`
	Orientation   string                `json:"orientation,omitempty"`
	X             float64               `json:"x,omitempty"`
	Y             float64               `json:"y,omitempty"`
	TimestampMs   int64                 `json:"timestamp_ms,omitempty"`
	Command       *domain.DeviceCommand `json:"command,omitempty"`
	Error         string                `json:"error,omitempty"`
	Time          string                `json:"time,omitempty"`
}

func (m WSMessage) sample() domain.PointerSample {
	return domain.PointerSample{
		Position:    domain.Point{X: m.X, Y: m.Y},
		TimestampMs: m.TimestampMs,
	}
}
