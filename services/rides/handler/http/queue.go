package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/loopline/dispatch/internal/pkg/models"
	"github.com/loopline/dispatch/internal/utils"
)

// DriverQueue returns the ordered rides on the driver's active route
func (h *RideHandler) DriverQueue(c echo.Context) error {
	driverID, err := uuid.Parse(c.Param("driverID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	queue, err := h.rideUC.DriverQueue(c.Request().Context(), driverID)
	if err != nil {
		return h.lifecycleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Queue retrieved", queue)
}

// DriverActions returns the physical visits ahead of the driver
func (h *RideHandler) DriverActions(c echo.Context) error {
	driverID, err := uuid.Parse(c.Param("driverID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	actions, err := h.rideUC.DriverActions(c.Request().Context(), driverID)
	if err != nil {
		return h.lifecycleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Actions retrieved", actions)
}

// LocationPayload is the request body for a vehicle movement report
type LocationPayload struct {
	DriverID  uuid.UUID          `json:"driver_id"`
	Coords    models.Coordinates `json:"coordinates"`
	Timestamp time.Time          `json:"timestamp"`
}

// UpdateLocation records a vehicle movement report
func (h *RideHandler) UpdateLocation(c echo.Context) error {
	vehicleID, err := uuid.Parse(c.Param("vehicleID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid vehicle ID")
	}

	var payload LocationPayload
	if err := c.Bind(&payload); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if payload.Timestamp.IsZero() {
		payload.Timestamp = time.Now()
	}

	location := models.VehicleLocation{
		VehicleID: vehicleID,
		DriverID:  payload.DriverID,
		Coords:    payload.Coords,
		Timestamp: payload.Timestamp,
	}
	if err := h.rideUC.DriverMoved(c.Request().Context(), location); err != nil {
		return h.lifecycleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Location updated", nil)
}

// RepairRoute re-aligns a vehicle's stop order with its persisted ride states
func (h *RideHandler) RepairRoute(c echo.Context) error {
	vehicleID, err := uuid.Parse(c.Param("vehicleID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid vehicle ID")
	}

	if err := h.rideUC.RepairRoute(c.Request().Context(), vehicleID); err != nil {
		return h.lifecycleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Route repaired", nil)
}
