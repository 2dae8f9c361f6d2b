package rides

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/loopline/dispatch/internal/pkg/models"
)

var (
	// ErrInvalidTransition is returned when a lifecycle action is not legal
	// from the ride's current state.
	ErrInvalidTransition = errors.New("invalid ride transition")

	// ErrNoShowTooEarly is returned when a no-show cancel is attempted
	// before the arrival wait window has elapsed.
	ErrNoShowTooEarly = errors.New("arrival wait window has not elapsed")
)

// HailRequest describes a street hail created by the driver or an operator.
// The rider boards at the vehicle's current position.
type HailRequest struct {
	VehicleID  uuid.UUID          `json:"vehicle_id"`
	Passengers int                `json:"passengers"`
	IsADA      bool               `json:"is_ada"`
	Dropoff    models.Coordinates `json:"dropoff"`
}

// RideUC defines the interface for ride lifecycle business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/loopline/dispatch/services/rides RideUC
type RideUC interface {
	DriverQueue(ctx context.Context, driverID uuid.UUID) (*models.DriverQueue, error)
	DriverActions(ctx context.Context, driverID uuid.UUID) ([]models.DriverAction, error)

	PickUp(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	DropOff(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	Arrive(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	Cancel(ctx context.Context, rideID uuid.UUID, source models.CancelSource) (*models.Ride, error)
	Hail(ctx context.Context, hail HailRequest) (*models.Ride, error)

	DriverMoved(ctx context.Context, location models.VehicleLocation) error
	RepairRoute(ctx context.Context, vehicleID uuid.UUID) error
}
