package handlers

import (
	"fmt"
	"sync"

	domain "github.com/inference-gateway/touchbridge/internal/domain"
	gesture "github.com/inference-gateway/touchbridge/internal/gesture"
	logger "github.com/inference-gateway/touchbridge/internal/logger"
	services "github.com/inference-gateway/touchbridge/internal/services"
)

// SessionManager owns one orchestrator per connected operator client
type SessionManager struct {
	classifier gesture.Classifier
	transport  domain.CommandTransport
	sessions   map[string]*services.Orchestrator
	closed     bool
	mu         sync.RWMutex
}

// NewSessionManager creates a new session manager
func NewSessionManager(classifier gesture.Classifier, transport domain.CommandTransport) *SessionManager {
	return &SessionManager{
		classifier: classifier,
		transport:  transport,
		sessions:   make(map[string]*services.Orchestrator),
	}
}

// CreateSession creates an idle orchestrator for a client
func (sm *SessionManager) CreateSession(clientID string, reporter domain.DispatchReporter) (*services.Orchestrator, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.closed {
		return nil, domain.ErrOrchestratorClosed
	}
	if _, exists := sm.sessions[clientID]; exists {
		return nil, fmt.Errorf("session %s already exists", clientID)
	}

	o := services.NewOrchestrator(sm.classifier, sm.transport, reporter)
	sm.sessions[clientID] = o
	return o, nil
}

// GetSession returns the orchestrator of a client
func (sm *SessionManager) GetSession(clientID string) (*services.Orchestrator, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	o, ok := sm.sessions[clientID]
	return o, ok
}

// CloseSession tears down a client's orchestrator and waits for its
// dispatches to finish
func (sm *SessionManager) CloseSession(clientID string) error {
	sm.mu.Lock()
	o, ok := sm.sessions[clientID]
	delete(sm.sessions, clientID)
	sm.mu.Unlock()

	if !ok {
		return fmt.Errorf("session %s not found", clientID)
	}

	o.Close()
	o.Wait()
	return nil
}

// ActiveSessionCount returns the number of connected clients
func (sm *SessionManager) ActiveSessionCount() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}

// Shutdown closes every session and rejects new ones
func (sm *SessionManager) Shutdown() {
	sm.mu.Lock()
	sm.closed = true
	sessions := sm.sessions
	sm.sessions = make(map[string]*services.Orchestrator)
	sm.mu.Unlock()

	for clientID, o := range sessions {
		o.Close()
		o.Wait()
		logger.Debug("Closed session", "client_id", clientID)
	}
}
