package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	display "github.com/inference-gateway/touchbridge/internal/display"
	domain "github.com/inference-gateway/touchbridge/internal/domain"
	storage "github.com/inference-gateway/touchbridge/internal/infra/storage"
	logger "github.com/inference-gateway/touchbridge/internal/logger"
)

// APIHandler handles HTTP API requests for device profiles
type APIHandler struct {
	devices        storage.DeviceStore
	sessionManager *SessionManager
}

// NewAPIHandler creates a new API handler
func NewAPIHandler(devices storage.DeviceStore, sessionManager *SessionManager) *APIHandler {
	return &APIHandler{
		devices:        devices,
		sessionManager: sessionManager,
	}
}

// writeJSON writes a JSON response and logs errors
func (h *APIHandler) writeJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode JSON response", "error", err)
	}
}

func (h *APIHandler) writeError(w http.ResponseWriter, statusCode int, format string, args ...any) {
	h.writeJSON(w, statusCode, map[string]any{
		"error": fmt.Sprintf(format, args...),
	})
}

// HandleHealth handles health check requests
func (h *APIHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	sessions := 0
	if h.sessionManager != nil {
		sessions = h.sessionManager.ActiveSessionCount()
	}

	if err := h.devices.Health(ctx); err != nil {
		logger.Error("Storage health check failed", "error", err)
		h.writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"status": "unhealthy",
			"error":  err.Error(),
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"status":   "healthy",
		"sessions": sessions,
		"time":     time.Now().UTC().Format(time.RFC3339),
	})
}

// HandleDevices handles GET and POST /api/v1/devices
func (h *APIHandler) HandleDevices(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleListDevices(w, r)
	case http.MethodPost:
		h.handleSaveDevice(w, r, "")
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleDeviceByID handles /api/v1/devices/{id} and /api/v1/devices/{id}/map
func (h *APIHandler) HandleDeviceByID(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/v1/devices/")
	if path == "" {
		http.Error(w, "Device ID required", http.StatusBadRequest)
		return
	}

	if deviceID, ok := strings.CutSuffix(path, "/map"); ok {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handleMapGesture(w, r, deviceID)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.handleGetDevice(w, r, path)
	case http.MethodPut:
		h.handleSaveDevice(w, r, path)
	case http.MethodDelete:
		h.handleDeleteDevice(w, r, path)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *APIHandler) handleListDevices(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	devices, err := h.devices.ListDevices(ctx)
	if err != nil {
		logger.Error("Failed to list devices", "error", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to list devices: %v", err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"devices": devices,
		"count":   len(devices),
	})
}

func (h *APIHandler) handleGetDevice(w http.ResponseWriter, r *http.Request, deviceID string) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	device, err := h.devices.GetDevice(ctx, deviceID)
	if err != nil {
		h.writeStoreError(w, deviceID, err)
		return
	}

	h.writeJSON(w, http.StatusOK, device)
}

func (h *APIHandler) handleSaveDevice(w http.ResponseWriter, r *http.Request, deviceID string) {
	var device domain.DeviceProfile
	if err := json.NewDecoder(r.Body).Decode(&device); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body: %v", err)
		return
	}

	if deviceID != "" {
		if device.ID != "" && device.ID != deviceID {
			h.writeError(w, http.StatusBadRequest, "Device ID in body (%s) does not match path (%s)", device.ID, deviceID)
			return
		}
		device.ID = deviceID
	}

	if err := device.Validate(); err != nil {
		h.writeError(w, http.StatusBadRequest, "%v", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.devices.SaveDevice(ctx, device); err != nil {
		logger.Error("Failed to save device", "device_id", device.ID, "error", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to save device: %v", err)
		return
	}

	saved, err := h.devices.GetDevice(ctx, device.ID)
	if err != nil {
		h.writeStoreError(w, device.ID, err)
		return
	}

	status := http.StatusOK
	if r.Method == http.MethodPost {
		status = http.StatusCreated
	}
	h.writeJSON(w, status, saved)
}

func (h *APIHandler) handleDeleteDevice(w http.ResponseWriter, r *http.Request, deviceID string) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.devices.DeleteDevice(ctx, deviceID); err != nil {
		h.writeStoreError(w, deviceID, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"message":   "Device deleted successfully",
		"device_id": deviceID,
	})
}

// MapRequest is the body of POST /api/v1/devices/{id}/map
type MapRequest struct {
	SurfaceWidth  float64              `json:"surface_width"`
	SurfaceHeight float64              `json:"surface_height"`
	Orientation   string               `json:"orientation"`
	Intent        domain.GestureIntent `json:"intent"`
}

// handleMapGesture maps a gesture for a stored device without dispatching it
func (h *APIHandler) handleMapGesture(w http.ResponseWriter, r *http.Request, deviceID string) {
	var req MapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body: %v", err)
		return
	}

	orientation := domain.OrientationPortrait
	if req.Orientation != "" {
		var err error
		if orientation, err = domain.ParseOrientation(req.Orientation); err != nil {
			h.writeError(w, http.StatusBadRequest, "%v", err)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	device, err := h.devices.GetDevice(ctx, deviceID)
	if err != nil {
		h.writeStoreError(w, deviceID, err)
		return
	}

	dc := device.DisplayContext(req.SurfaceWidth, req.SurfaceHeight, orientation)
	cmd, err := display.MapIntent(req.Intent, dc, deviceID)
	if err != nil {
		h.writeError(w, http.StatusUnprocessableEntity, "%v", err)
		return
	}

	h.writeJSON(w, http.StatusOK, cmd)
}

func (h *APIHandler) writeStoreError(w http.ResponseWriter, deviceID string, err error) {
	if errors.Is(err, domain.ErrDeviceNotFound) {
		h.writeError(w, http.StatusNotFound, "Device %s not found", deviceID)
		return
	}
	logger.Error("Device storage error", "device_id", deviceID, "error", err)
	h.writeError(w, http.StatusInternalServerError, "Device storage error: %v", err)
}
