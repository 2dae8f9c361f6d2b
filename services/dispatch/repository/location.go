package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/loopline/dispatch/internal/pkg/models"
)

// GetLocation fetches a service area by ID
func (r *DispatchRepo) GetLocation(ctx context.Context, locationID uuid.UUID) (*models.Location, error) {
	var location models.Location
	query := `SELECT id, name, pooling_enabled, is_ada, active, created_at
		FROM locations WHERE id = $1`
	err := r.db.GetContext(ctx, &location, query, locationID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("location %s not found", locationID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get location: %w", err)
	}
	return &location, nil
}

// GetZones returns all zones of a location
func (r *DispatchRepo) GetZones(ctx context.Context, locationID uuid.UUID) ([]models.Zone, error) {
	var zones []models.Zone
	query := `SELECT id, location_id, name, polygon, created_at
		FROM zones WHERE location_id = $1`
	if err := r.db.SelectContext(ctx, &zones, query, locationID); err != nil {
		return nil, fmt.Errorf("failed to get zones: %w", err)
	}
	return zones, nil
}

// GetFixedStop fetches a fixed stop by ID
func (r *DispatchRepo) GetFixedStop(ctx context.Context, fixedStopID uuid.UUID) (*models.FixedStop, error) {
	var dto struct {
		ID         uuid.UUID  `db:"id"`
		LocationID uuid.UUID  `db:"location_id"`
		ZoneID     *uuid.UUID `db:"zone_id"`
		Name       string     `db:"name"`
		Latitude   float64    `db:"latitude"`
		Longitude  float64    `db:"longitude"`
		Active     bool       `db:"active"`
	}
	query := `SELECT id, location_id, zone_id, name, latitude, longitude, active
		FROM fixed_stops WHERE id = $1`
	err := r.db.GetContext(ctx, &dto, query, fixedStopID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("fixed stop %s not found", fixedStopID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get fixed stop: %w", err)
	}
	return &models.FixedStop{
		ID:         dto.ID,
		LocationID: dto.LocationID,
		ZoneID:     dto.ZoneID,
		Name:       dto.Name,
		Coords:     models.Coordinates{Latitude: dto.Latitude, Longitude: dto.Longitude},
		Active:     dto.Active,
	}, nil
}
