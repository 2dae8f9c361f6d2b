package websocket

import (
	"context"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/loopline/dispatch/internal/pkg/constants"
	"github.com/loopline/dispatch/internal/pkg/logger"
	"github.com/loopline/dispatch/internal/pkg/models"
	wspkg "github.com/loopline/dispatch/internal/pkg/websocket"
	"github.com/loopline/dispatch/services/rides"
)

// RideWSHandler pushes queue and ride updates to connected driver apps
type RideWSHandler struct {
	rideUC  rides.RideUC
	manager *wspkg.Manager
}

// NewRideWSHandler creates a new ride WebSocket handler
func NewRideWSHandler(rideUC rides.RideUC, manager *wspkg.Manager) *RideWSHandler {
	return &RideWSHandler{
		rideUC:  rideUC,
		manager: manager,
	}
}

// HandleDriverWS upgrades a driver app connection
func (h *RideWSHandler) HandleDriverWS(c echo.Context) error {
	driverID := c.Param("driverID")
	if _, err := uuid.Parse(driverID); err != nil {
		return echo.NewHTTPError(400, "invalid driver ID")
	}
	return h.manager.HandleConnection(c, driverID, "driver", h.handleDriver)
}

func (h *RideWSHandler) handleDriver(client *models.WebSocketClient, ws *websocket.Conn) error {
	h.manager.AddClient(client)
	defer h.manager.RemoveClient(client.UserID)

	logger.Info("Driver connected",
		logger.String("driver_id", client.UserID))

	// A reconnecting driver starts from the full queue, not from whatever
	// events it missed while offline.
	h.pushQueue(client)

	for {
		var msg models.WSMessage
		if err := ws.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warn("Driver connection dropped",
					logger.String("driver_id", client.UserID),
					logger.Err(err))
			} else {
				logger.Info("Driver disconnected",
					logger.String("driver_id", client.UserID))
			}
			return nil
		}
		if err := h.handleMessage(client, &msg); err != nil {
			logger.Error("Error handling driver message",
				logger.String("driver_id", client.UserID),
				logger.String("event", msg.Event),
				logger.Err(err))
		}
	}
}

func (h *RideWSHandler) handleMessage(client *models.WebSocketClient, msg *models.WSMessage) error {
	switch msg.Event {
	case constants.EventPing:
		return h.manager.SendMessage(client.Conn, constants.EventPong, nil)
	case constants.EventQueueUpdate:
		h.pushQueue(client)
		return nil
	case constants.EventActionsUpdate:
		h.pushActions(client)
		return nil
	default:
		return h.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "unknown event: "+msg.Event)
	}
}

func (h *RideWSHandler) pushQueue(client *models.WebSocketClient) {
	driverID, err := uuid.Parse(client.UserID)
	if err != nil {
		return
	}
	queue, err := h.rideUC.DriverQueue(context.Background(), driverID)
	if err != nil {
		logger.Warn("Failed to load driver queue for push",
			logger.String("driver_id", client.UserID),
			logger.Err(err))
		if err := h.manager.SendErrorMessage(client.Conn, constants.ErrorInternalError, "could not load queue"); err != nil {
			logger.Warn("Failed to send queue error",
				logger.String("driver_id", client.UserID),
				logger.Err(err))
		}
		return
	}
	if err := h.manager.SendMessage(client.Conn, constants.EventQueueUpdate, queue); err != nil {
		logger.Warn("Failed to push queue update",
			logger.String("driver_id", client.UserID),
			logger.Err(err))
	}
}

func (h *RideWSHandler) pushActions(client *models.WebSocketClient) {
	driverID, err := uuid.Parse(client.UserID)
	if err != nil {
		return
	}
	actions, err := h.rideUC.DriverActions(context.Background(), driverID)
	if err != nil {
		logger.Warn("Failed to load driver actions for push",
			logger.String("driver_id", client.UserID),
			logger.Err(err))
		return
	}
	if err := h.manager.SendMessage(client.Conn, constants.EventActionsUpdate, actions); err != nil {
		logger.Warn("Failed to push actions update",
			logger.String("driver_id", client.UserID),
			logger.Err(err))
	}
}

// NotifyDriver pushes one event to the driver's live connection. Disconnected
// drivers are skipped; they reconcile through the initial queue push.
func (h *RideWSHandler) NotifyDriver(driverID string, event string, data interface{}) {
	h.manager.NotifyClient(driverID, event, data)
}

// RefreshDriver pushes a fresh queue snapshot after a route change
func (h *RideWSHandler) RefreshDriver(driverID string) {
	client, ok := h.manager.GetClient(driverID)
	if !ok {
		return
	}
	h.pushQueue(client)
}
