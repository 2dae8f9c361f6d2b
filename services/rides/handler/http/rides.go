package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/loopline/dispatch/internal/pkg/models"
	"github.com/loopline/dispatch/internal/utils"
	"github.com/loopline/dispatch/services/rides"
)

// RideHandler handles HTTP requests for ride lifecycle operations
type RideHandler struct {
	rideUC rides.RideUC
}

// NewRideHandler creates a new ride HTTP handler
func NewRideHandler(rideUC rides.RideUC) *RideHandler {
	return &RideHandler{
		rideUC: rideUC,
	}
}

// PickUp records that the rider boarded
func (h *RideHandler) PickUp(c echo.Context) error {
	rideID, err := uuid.Parse(c.Param("rideID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	ride, err := h.rideUC.PickUp(c.Request().Context(), rideID)
	if err != nil {
		return h.lifecycleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride picked up", ride)
}

// DropOff completes the ride
func (h *RideHandler) DropOff(c echo.Context) error {
	rideID, err := uuid.Parse(c.Param("rideID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	ride, err := h.rideUC.DropOff(c.Request().Context(), rideID)
	if err != nil {
		return h.lifecycleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride completed", ride)
}

// Arrive records the driver's arrival at the pickup
func (h *RideHandler) Arrive(c echo.Context) error {
	rideID, err := uuid.Parse(c.Param("rideID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	ride, err := h.rideUC.Arrive(c.Request().Context(), rideID)
	if err != nil {
		return h.lifecycleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Arrival recorded", ride)
}

// CancelPayload is the request body for a ride cancellation
type CancelPayload struct {
	Source models.CancelSource `json:"source"`
}

// Cancel removes a not-yet-boarded ride from its route
func (h *RideHandler) Cancel(c echo.Context) error {
	rideID, err := uuid.Parse(c.Param("rideID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	var payload CancelPayload
	if err := c.Bind(&payload); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	switch payload.Source {
	case "":
		payload.Source = models.CancelSourceRider
	case models.CancelSourceRider, models.CancelSourceDriver, models.CancelSourceNoShow, models.CancelSourceAdmin:
	default:
		return utils.BadRequestResponse(c, "Unknown cancel source")
	}

	ride, err := h.rideUC.Cancel(c.Request().Context(), rideID, payload.Source)
	if err != nil {
		return h.lifecycleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride cancelled", ride)
}

// HailPayload is the request body for a walk-up boarding
type HailPayload struct {
	Passengers int                `json:"passengers"`
	IsADA      bool               `json:"is_ada"`
	Dropoff    models.Coordinates `json:"dropoff"`
}

// Hail creates a ride for a passenger the driver boarded on the spot
func (h *RideHandler) Hail(c echo.Context) error {
	vehicleID, err := uuid.Parse(c.Param("vehicleID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid vehicle ID")
	}

	var payload HailPayload
	if err := c.Bind(&payload); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if payload.Passengers < 1 {
		return utils.BadRequestResponse(c, "passengers must be at least 1")
	}

	ride, err := h.rideUC.Hail(c.Request().Context(), rides.HailRequest{
		VehicleID:  vehicleID,
		Passengers: payload.Passengers,
		IsADA:      payload.IsADA,
		Dropoff:    payload.Dropoff,
	})
	if err != nil {
		return h.lifecycleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Hail boarded", ride)
}

func (h *RideHandler) lifecycleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, rides.ErrRideNotFound), errors.Is(err, rides.ErrVehicleNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, rides.ErrInvalidTransition), errors.Is(err, rides.ErrNoShowTooEarly):
		return utils.BadRequestResponse(c, err.Error())
	default:
		return utils.InternalServerErrorResponse(c, err.Error())
	}
}
