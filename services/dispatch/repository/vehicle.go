package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/loopline/dispatch/internal/pkg/constants"
	"github.com/loopline/dispatch/internal/pkg/models"
	"github.com/loopline/dispatch/services/dispatch"
)

type vehicleDTO struct {
	ID                uuid.UUID           `db:"id"`
	LocationID        uuid.UUID           `db:"location_id"`
	DriverID          *uuid.UUID          `db:"driver_id"`
	Name              string              `db:"name"`
	LicensePlate      string              `db:"license_plate"`
	PassengerCapacity int                 `db:"passenger_capacity"`
	ADACapacity       int                 `db:"ada_capacity"`
	MatchingRule      models.MatchingRule `db:"matching_rule"`
	ZoneIDs           pq.StringArray      `db:"zone_ids"`
	Online            bool                `db:"online"`
	Available         bool                `db:"available"`
	UpdatedAt         time.Time           `db:"updated_at"`
}

func (d *vehicleDTO) toVehicle() (*models.Vehicle, error) {
	zones := make([]uuid.UUID, 0, len(d.ZoneIDs))
	for _, z := range d.ZoneIDs {
		id, err := uuid.Parse(z)
		if err != nil {
			return nil, fmt.Errorf("invalid zone id %q on vehicle %s: %w", z, d.ID, err)
		}
		zones = append(zones, id)
	}
	return &models.Vehicle{
		ID:           d.ID,
		LocationID:   d.LocationID,
		DriverID:     d.DriverID,
		Name:         d.Name,
		LicensePlate: d.LicensePlate,
		Capacity: models.Capacity{
			Passengers: d.PassengerCapacity,
			ADA:        d.ADACapacity,
		},
		MatchingRule: d.MatchingRule,
		ZoneIDs:      zones,
		Online:       d.Online,
		Available:    d.Available,
		UpdatedAt:    d.UpdatedAt,
	}, nil
}

// GetVehicle fetches a vehicle profile with its zone assignments
func (r *DispatchRepo) GetVehicle(ctx context.Context, vehicleID uuid.UUID) (*models.Vehicle, error) {
	var dto vehicleDTO
	query := `
		SELECT v.id, v.location_id, v.driver_id, v.name, v.license_plate,
			v.passenger_capacity, v.ada_capacity, v.matching_rule,
			COALESCE(array_agg(vz.zone_id::text) FILTER (WHERE vz.zone_id IS NOT NULL), '{}') AS zone_ids,
			v.online, v.available, v.updated_at
		FROM vehicles v
		LEFT JOIN vehicle_zones vz ON vz.vehicle_id = v.id
		WHERE v.id = $1
		GROUP BY v.id
	`
	err := r.db.GetContext(ctx, &dto, query, vehicleID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, dispatch.ErrVehicleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	return dto.toVehicle()
}

// NearbyVehicleIDs queries the Redis GEO index for vehicles around a point,
// nearest first
func (r *DispatchRepo) NearbyVehicleIDs(ctx context.Context, locationID uuid.UUID, center models.Coordinates, radiusKm float64, limit int) ([]uuid.UUID, error) {
	key := fmt.Sprintf(constants.KeyVehicleGeo, locationID)
	locations, err := r.redisClient.GeoRadius(ctx, key, center.Longitude, center.Latitude, radiusKm, "km")
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicle geo index: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(locations))
	for _, loc := range locations {
		if limit > 0 && len(ids) >= limit {
			break
		}
		id, err := uuid.Parse(loc.Name)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// VehiclePosition returns the last reported position of a vehicle.
// The position hash is maintained by the rides service from movement events.
func (r *DispatchRepo) VehiclePosition(ctx context.Context, vehicleID uuid.UUID) (models.Coordinates, error) {
	key := fmt.Sprintf(constants.KeyVehiclePos, vehicleID)
	fields, err := r.redisClient.HGetAll(ctx, key)
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("failed to get vehicle position: %w", err)
	}
	if len(fields) == 0 {
		return models.Coordinates{}, dispatch.ErrVehicleNotFound
	}

	lat, err := strconv.ParseFloat(fields[constants.FieldLatitude], 64)
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("invalid latitude for vehicle %s: %w", vehicleID, err)
	}
	lng, err := strconv.ParseFloat(fields[constants.FieldLongitude], 64)
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("invalid longitude for vehicle %s: %w", vehicleID, err)
	}
	return models.Coordinates{Latitude: lat, Longitude: lng}, nil
}
