package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/loopline/dispatch/internal/pkg/constants"
	"github.com/loopline/dispatch/internal/pkg/models"
	"github.com/loopline/dispatch/services/rides"
)

type routeDTO struct {
	ID             uuid.UUID       `db:"id"`
	VehicleID      uuid.UUID       `db:"vehicle_id"`
	DriverID       uuid.UUID       `db:"driver_id"`
	Active         bool            `db:"active"`
	Stops          json.RawMessage `db:"stops"`
	Version        int64           `db:"version"`
	FirstRequestAt time.Time       `db:"first_request_at"`
	LastUpdate     time.Time       `db:"last_update"`
}

func (d *routeDTO) toRoute() (*models.Route, error) {
	var stops []models.Stop
	if len(d.Stops) > 0 {
		if err := json.Unmarshal(d.Stops, &stops); err != nil {
			return nil, fmt.Errorf("invalid stops payload on route %s: %w", d.ID, err)
		}
	}
	return &models.Route{
		ID:             d.ID,
		VehicleID:      d.VehicleID,
		DriverID:       d.DriverID,
		Active:         d.Active,
		Stops:          stops,
		Version:        d.Version,
		FirstRequestAt: d.FirstRequestAt,
		LastUpdate:     d.LastUpdate,
	}, nil
}

const activeRouteQuery = `SELECT id, vehicle_id, driver_id, active, stops, version, first_request_at, last_update
	FROM routes WHERE %s AND active = TRUE`

// GetActiveRoute fetches the single active route of a vehicle.
// Returns ErrRouteNotFound when the vehicle has no live route.
func (r *RideRepo) GetActiveRoute(ctx context.Context, vehicleID uuid.UUID) (*models.Route, error) {
	var dto routeDTO
	query := fmt.Sprintf(activeRouteQuery, "vehicle_id = $1")
	err := r.db.GetContext(ctx, &dto, query, vehicleID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, rides.ErrRouteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active route: %w", err)
	}
	return dto.toRoute()
}

// GetActiveRouteByDriver fetches the active route of the vehicle a driver operates
func (r *RideRepo) GetActiveRouteByDriver(ctx context.Context, driverID uuid.UUID) (*models.Route, error) {
	var dto routeDTO
	query := fmt.Sprintf(activeRouteQuery, "driver_id = $1")
	err := r.db.GetContext(ctx, &dto, query, driverID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, rides.ErrRouteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active route by driver: %w", err)
	}
	return dto.toRoute()
}

// CreateRoute inserts a new active route with its initial stop order
func (r *RideRepo) CreateRoute(ctx context.Context, route *models.Route) error {
	stops, err := json.Marshal(route.Stops)
	if err != nil {
		return fmt.Errorf("failed to marshal stops: %w", err)
	}
	query := `
		INSERT INTO routes (id, vehicle_id, driver_id, active, stops, version, first_request_at, last_update)
		VALUES ($1, $2, $3, TRUE, $4, $5, $6, NOW())
	`
	_, err = r.db.ExecContext(ctx, query,
		route.ID, route.VehicleID, route.DriverID, stops, route.Version, route.FirstRequestAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert route: %w", err)
	}
	return nil
}

// ReplaceStops atomically replaces the stop order of a route. The write only
// applies when the presented version is still current; a stale version
// returns ErrRouteConflict and the caller must re-read and retry.
func (r *RideRepo) ReplaceStops(ctx context.Context, routeID uuid.UUID, stops []models.Stop, version int64) error {
	payload, err := json.Marshal(stops)
	if err != nil {
		return fmt.Errorf("failed to marshal stops: %w", err)
	}
	query := `UPDATE routes SET stops = $1, version = version + 1, last_update = NOW()
		WHERE id = $2 AND version = $3`
	res, err := r.db.ExecContext(ctx, query, payload, routeID, version)
	if err != nil {
		return fmt.Errorf("failed to replace stops: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return rides.ErrRouteConflict
	}
	return nil
}

// RetireRoute deactivates a fully traversed route
func (r *RideRepo) RetireRoute(ctx context.Context, routeID uuid.UUID) error {
	query := `UPDATE routes SET active = FALSE, last_update = NOW() WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, routeID); err != nil {
		return fmt.Errorf("failed to retire route: %w", err)
	}
	return nil
}

// AcquireRouteLock takes the short-TTL per-vehicle mutation lock
func (r *RideRepo) AcquireRouteLock(ctx context.Context, vehicleID uuid.UUID, ttl time.Duration) (bool, error) {
	key := fmt.Sprintf(constants.KeyRouteLock, vehicleID)
	return r.redisClient.SetNX(ctx, key, "1", ttl)
}

// ReleaseRouteLock releases the per-vehicle mutation lock
func (r *RideRepo) ReleaseRouteLock(ctx context.Context, vehicleID uuid.UUID) error {
	key := fmt.Sprintf(constants.KeyRouteLock, vehicleID)
	return r.redisClient.Delete(ctx, key)
}
