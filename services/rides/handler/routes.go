package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/loopline/dispatch/internal/pkg/middleware"
	natspkg "github.com/loopline/dispatch/internal/pkg/nats"
	wspkg "github.com/loopline/dispatch/internal/pkg/websocket"
	"github.com/loopline/dispatch/services/rides"
	httpHandler "github.com/loopline/dispatch/services/rides/handler/http"
	natsHandler "github.com/loopline/dispatch/services/rides/handler/nats"
	wsHandler "github.com/loopline/dispatch/services/rides/handler/websocket"
)

// Handler combines all handlers for the rides service
type Handler struct {
	rideHTTP *httpHandler.RideHandler
	rideNATS *natsHandler.RideHandler
	rideWS   *wsHandler.RideWSHandler
}

// NewHandler creates a new combined handler
func NewHandler(rideUC rides.RideUC, natsClient *natspkg.Client, wsManager *wspkg.Manager) *Handler {
	rideWS := wsHandler.NewRideWSHandler(rideUC, wsManager)
	return &Handler{
		rideHTTP: httpHandler.NewRideHandler(rideUC),
		rideNATS: natsHandler.NewRideHandler(rideUC, natsClient, rideWS),
		rideWS:   rideWS,
	}
}

// RegisterRoutes registers all HTTP and WebSocket routes
func (h *Handler) RegisterRoutes(e *echo.Echo, apiKeyMiddleware *middleware.APIKeyMiddleware) {
	// Driver app endpoints
	driverGroup := e.Group("/drivers")
	driverGroup.GET("/:driverID/queue", h.rideHTTP.DriverQueue)
	driverGroup.GET("/:driverID/actions", h.rideHTTP.DriverActions)

	// Ride lifecycle endpoints
	rideGroup := e.Group("/rides")
	rideGroup.POST("/:rideID/pickup", h.rideHTTP.PickUp)
	rideGroup.POST("/:rideID/dropoff", h.rideHTTP.DropOff)
	rideGroup.POST("/:rideID/arrive", h.rideHTTP.Arrive)
	rideGroup.POST("/:rideID/cancel", h.rideHTTP.Cancel)

	// Vehicle endpoints
	vehicleGroup := e.Group("/vehicles")
	vehicleGroup.POST("/:vehicleID/hail", h.rideHTTP.Hail)
	vehicleGroup.POST("/:vehicleID/location", h.rideHTTP.UpdateLocation)

	// Driver app live connection; authenticated by the manager
	e.GET("/ws/drivers/:driverID", h.rideWS.HandleDriverWS)

	// Internal routes for service-to-service and operator tooling
	internal := e.Group("/internal", apiKeyMiddleware.ValidateAPIKey("dispatch-service", "rides-service"))
	internal.POST("/rides/routes/:vehicleID/repair", h.rideHTTP.RepairRoute)
}

// InitNATSConsumers initializes all NATS consumers
func (h *Handler) InitNATSConsumers() error {
	return h.rideNATS.InitNATSConsumers()
}
