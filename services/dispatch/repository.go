package dispatch

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

	ErrRequestNotFound = errors.New("request not found")
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrRouteNotFound   = errors.New("route not found")
)

// DispatchRepo defines the interface for dispatch data access operations
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/loopline/dispatch/services/dispatch DispatchRepo
type DispatchRepo interface {
	// Requests
	CreateRequest(ctx context.Context, req *models.Request) error
	GetRequest(ctx context.Context, requestID uuid.UUID) (*models.Request, error)
	ListSearchingRequests(ctx context.Context) ([]*models.Request, error)
	ClaimRequest(ctx context.Context, requestID uuid.UUID) (bool, error)
	ReleaseRequest(ctx context.Context, requestID uuid.UUID) error
	MarkRequestMatched(ctx context.Context, requestID, rideID uuid.UUID) error
	CancelRequest(ctx context.Context, requestID uuid.UUID, at time.Time) error
	IncrementSearchRetries(ctx context.Context, requestID uuid.UUID) error
	CreateMissedRequest(ctx context.Context, missed *models.MissedRequest) error

	// Vehicles
	GetVehicle(ctx context.Context, vehicleID uuid.UUID) (*models.Vehicle, error)
	NearbyVehicleIDs(ctx context.Context, locationID uuid.UUID, center models.Coordinates, radiusKm float64, limit int) ([]uuid.UUID, error)
	VehiclePosition(ctx context.Context, vehicleID uuid.UUID) (models.Coordinates, error)

	// Service area
	GetLocation(ctx context.Context, locationID uuid.UUID) (*models.Location, error)
	GetZones(ctx context.Context, locationID uuid.UUID) ([]models.Zone, error)
	GetFixedStop(ctx context.Context, fixedStopID uuid.UUID) (*models.FixedStop, error)

	// Routes
	GetActiveRoute(ctx context.Context, vehicleID uuid.UUID) (*models.Route, error)
	CreateRoute(ctx context.Context, route *models.Route) error
	ReplaceStops(ctx context.Context, routeID uuid.UUID, stops []models.Stop, version int64) error
	RetireRoute(ctx context.Context, routeID uuid.UUID) error
	AcquireRouteLock(ctx context.Context, vehicleID uuid.UUID, ttl time.Duration) (bool, error)
	ReleaseRouteLock(ctx context.Context, vehicleID uuid.UUID) error

	// Rides
	CreateRide(ctx context.Context, ride *models.Ride) error
	UpdateRideStatuses(ctx context.Context, updates []models.RideStatusUpdate) error
}
