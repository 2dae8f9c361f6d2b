// Package websocket manages driver app connections used to push queue and
// ride updates as routes change.
package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/loopline/dispatch/internal/pkg/constants"
	"github.com/loopline/dispatch/internal/pkg/logger"
	"github.com/loopline/dispatch/internal/pkg/models"
)

// Manager manages WebSocket connections and client state
type Manager struct {
	sync.RWMutex
	clients  map[string]*models.WebSocketClient
	apiKeys  map[string]bool
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager. Connections authenticate with
// one of the given API keys; the gateway fronting the driver app injects it.
func NewManager(config *models.APIKeyConfig) *Manager {
	apiKeys := make(map[string]bool)
	for _, key := range []string{config.DispatchService, config.RidesService} {
		if key != "" {
			apiKeys[key] = true
		}
	}
	return &Manager{
		clients: make(map[string]*models.WebSocketClient),
		apiKeys: apiKeys,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates and handles a new WebSocket connection.
// The client identity comes from the route, keyed by the userID parameter.
func (m *Manager) HandleConnection(c echo.Context, userID, role string, handleClient func(*models.WebSocketClient, *websocket.Conn) error) error {
	if err := m.authenticate(c); err != nil {
		return err
	}
	if userID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user ID is required")
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	client := &models.WebSocketClient{
		UserID: userID,
		Role:   role,
		Conn:   ws,
	}

	return handleClient(client, ws)
}

func (m *Manager) authenticate(c echo.Context) error {
	apiKey := c.Request().Header.Get("X-API-Key")
	if apiKey == "" || !m.apiKeys[apiKey] {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid API key")
	}
	return nil
}

// AddClient safely adds a client to the manager
func (m *Manager) AddClient(client *models.WebSocketClient) {
	m.Lock()
	defer m.Unlock()
	m.clients[client.UserID] = client
}

// RemoveClient safely removes a client from the manager
func (m *Manager) RemoveClient(userID string) {
	m.Lock()
	defer m.Unlock()
	delete(m.clients, userID)
}

// GetClient returns a client by ID
func (m *Manager) GetClient(userID string) (*models.WebSocketClient, bool) {
	m.RLock()
	defer m.RUnlock()
	client, exists := m.clients[userID]
	return client, exists
}

// SendMessage sends a message to a WebSocket client
func (m *Manager) SendMessage(conn *websocket.Conn, event string, data interface{}) error {
	if conn == nil {
		return nil // Handle nil connection gracefully for tests
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %w", err)
	}

	response := models.WSMessage{
		Event: event,
		Data:  rawData,
	}

	return conn.WriteJSON(response)
}

// SendErrorMessage sends an error message to a WebSocket client
func (m *Manager) SendErrorMessage(conn *websocket.Conn, code string, message string) error {
	return m.SendMessage(conn, constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}

// NotifyClient sends a notification to a specific client. Clients that are
// not connected are skipped; they reconcile on reconnect via the queue poll.
func (m *Manager) NotifyClient(userID string, event string, data interface{}) {
	m.RLock()
	client, exists := m.clients[userID]
	m.RUnlock()

	if !exists {
		return
	}

	if err := m.SendMessage(client.Conn, event, data); err != nil {
		logger.Warn("Error sending message to client",
			logger.String("user_id", userID),
			logger.String("event", event),
			logger.Err(err))
	}
}
