package rides

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/loopline/dispatch/internal/pkg/models"
)

var (
	// ErrRouteConflict is returned when a stop-order write presents a stale
	// route version. Callers re-read the route and retry.
	ErrRouteConflict = errors.New("route version conflict")

	ErrRideNotFound    = errors.New("ride not found")
	ErrRouteNotFound   = errors.New("route not found")
	ErrVehicleNotFound = errors.New("vehicle not found")
)

// RideRepo defines the interface for ride data access operations
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/loopline/dispatch/services/rides RideRepo
type RideRepo interface {
	// Rides
	GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	GetRidesByIDs(ctx context.Context, rideIDs []uuid.UUID) ([]*models.Ride, error)
	CreateRide(ctx context.Context, ride *models.Ride) error
	UpdateRideStatuses(ctx context.Context, updates []models.RideStatusUpdate) error
	RecordPickup(ctx context.Context, rideID uuid.UUID, at time.Time) error
	RecordDropoff(ctx context.Context, rideID uuid.UUID, at time.Time, pooled bool, actions, visits int) error
	RecordArrival(ctx context.Context, rideIDs []uuid.UUID, at time.Time) error
	RecordCancel(ctx context.Context, rideID uuid.UUID, status models.RideStatus, source models.CancelSource, at time.Time) error

	// Vehicles
	GetVehicle(ctx context.Context, vehicleID uuid.UUID) (*models.Vehicle, error)
	GetVehicleByDriver(ctx context.Context, driverID uuid.UUID) (*models.Vehicle, error)
	VehiclePosition(ctx context.Context, vehicleID uuid.UUID) (models.Coordinates, error)
	UpdateVehiclePosition(ctx context.Context, location models.VehicleLocation) error

	// Routes
	GetActiveRoute(ctx context.Context, vehicleID uuid.UUID) (*models.Route, error)
	GetActiveRouteByDriver(ctx context.Context, driverID uuid.UUID) (*models.Route, error)
	CreateRoute(ctx context.Context, route *models.Route) error
	ReplaceStops(ctx context.Context, routeID uuid.UUID, stops []models.Stop, version int64) error
	RetireRoute(ctx context.Context, routeID uuid.UUID) error
	AcquireRouteLock(ctx context.Context, vehicleID uuid.UUID, ttl time.Duration) (bool, error)
	ReleaseRouteLock(ctx context.Context, vehicleID uuid.UUID) error
}
