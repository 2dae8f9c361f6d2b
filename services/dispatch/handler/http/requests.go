package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/loopline/dispatch/internal/pkg/models"
	"github.com/loopline/dispatch/internal/utils"
	"github.com/loopline/dispatch/services/dispatch"
)

// DispatchHandler handles HTTP requests for dispatch operations
type DispatchHandler struct {
	dispatchUC dispatch.DispatchUC
}

// NewDispatchHandler creates a new dispatch HTTP handler
func NewDispatchHandler(dispatchUC dispatch.DispatchUC) *DispatchHandler {
	return &DispatchHandler{
		dispatchUC: dispatchUC,
	}
}

// CreateRequestPayload is the request body for a new transport request
type CreateRequestPayload struct {
	RiderID          *uuid.UUID         `json:"rider_id,omitempty"`
	LocationID       uuid.UUID          `json:"location_id"`
	Passengers       int                `json:"passengers"`
	IsADA            bool               `json:"is_ada"`
	Pickup           models.Coordinates `json:"pickup"`
	Dropoff          models.Coordinates `json:"dropoff"`
	PickupFixedStop  *uuid.UUID         `json:"pickup_fixed_stop,omitempty"`
	DropoffFixedStop *uuid.UUID         `json:"dropoff_fixed_stop,omitempty"`
}

// CreateRequest handles a rider's transport request submission
func (h *DispatchHandler) CreateRequest(c echo.Context) error {
	var payload CreateRequestPayload
	if err := c.Bind(&payload); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if payload.LocationID == uuid.Nil {
		return utils.BadRequestResponse(c, "location_id is required")
	}
	if payload.Passengers < 1 {
		return utils.BadRequestResponse(c, "passengers must be at least 1")
	}

	req := &models.Request{
		RiderID:          payload.RiderID,
		LocationID:       payload.LocationID,
		Passengers:       payload.Passengers,
		IsADA:            payload.IsADA,
		Pickup:           payload.Pickup,
		Dropoff:          payload.Dropoff,
		PickupFixedStop:  payload.PickupFixedStop,
		DropoffFixedStop: payload.DropoffFixedStop,
	}

	created, err := h.dispatchUC.CreateRequest(c.Request().Context(), req)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Request created", created)
}

// GetRequest returns one request with its current search state
func (h *DispatchHandler) GetRequest(c echo.Context) error {
	requestID, err := uuid.Parse(c.Param("requestID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request ID")
	}

	req, err := h.dispatchUC.GetRequest(c.Request().Context(), requestID)
	if err != nil {
		if errors.Is(err, dispatch.ErrRequestNotFound) {
			return utils.NotFoundResponse(c, "Request not found")
		}
		return utils.InternalServerErrorResponse(c, err.Error())
	}
	return utils.SuccessResponse(c, http.StatusOK, "Request retrieved", req)
}

// CancelRequest cancels a still-searching request
func (h *DispatchHandler) CancelRequest(c echo.Context) error {
	requestID, err := uuid.Parse(c.Param("requestID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request ID")
	}

	if err := h.dispatchUC.CancelRequest(c.Request().Context(), requestID); err != nil {
		if errors.Is(err, dispatch.ErrRequestNotFound) {
			return utils.NotFoundResponse(c, "Request not found")
		}
		return utils.BadRequestResponse(c, err.Error())
	}
	return utils.SuccessResponse(c, http.StatusOK, "Request cancelled", nil)
}

// RunSweep triggers one matching sweep over all searching requests
func (h *DispatchHandler) RunSweep(c echo.Context) error {
	summary, err := h.dispatchUC.RunSweep(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, err.Error())
	}
	return utils.SuccessResponse(c, http.StatusOK, "Sweep completed", summary)
}
