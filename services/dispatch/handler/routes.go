package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/loopline/dispatch/internal/pkg/middleware"
	natspkg "github.com/loopline/dispatch/internal/pkg/nats"
	"github.com/loopline/dispatch/services/dispatch"
	httpHandler "github.com/loopline/dispatch/services/dispatch/handler/http"
	natsHandler "github.com/loopline/dispatch/services/dispatch/handler/nats"
)

// Handler combines all handlers for the dispatch service
type Handler struct {
	dispatchHTTP *httpHandler.DispatchHandler
	dispatchNATS *natsHandler.DispatchHandler
}

// NewHandler creates a new combined handler
func NewHandler(dispatchUC dispatch.DispatchUC, natsClient *natspkg.Client) *Handler {
	return &Handler{
		dispatchHTTP: httpHandler.NewDispatchHandler(dispatchUC),
		dispatchNATS: natsHandler.NewDispatchHandler(dispatchUC, natsClient),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, apiKeyMiddleware *middleware.APIKeyMiddleware) {
	// Rider-facing request endpoints
	requestGroup := e.Group("/requests")
	requestGroup.POST("", h.dispatchHTTP.CreateRequest)
	requestGroup.GET("/:requestID", h.dispatchHTTP.GetRequest)
	requestGroup.POST("/:requestID/cancel", h.dispatchHTTP.CancelRequest)

	// Internal routes for service-to-service and operator tooling
	internal := e.Group("/internal", apiKeyMiddleware.ValidateAPIKey("dispatch-service", "rides-service"))
	internal.POST("/dispatch/search", h.dispatchHTTP.RunSweep)
}

// InitNATSConsumers initializes all NATS consumers
func (h *Handler) InitNATSConsumers() error {
	return h.dispatchNATS.InitNATSConsumers()
}
