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
	"github.com/loopline/dispatch/services/rides"
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

const vehicleQuery = `
	SELECT v.id, v.location_id, v.driver_id, v.name, v.license_plate,
		v.passenger_capacity, v.ada_capacity, v.matching_rule,
		COALESCE(array_agg(vz.zone_id::text) FILTER (WHERE vz.zone_id IS NOT NULL), '{}') AS zone_ids,
		v.online, v.available, v.updated_at
	FROM vehicles v
	LEFT JOIN vehicle_zones vz ON vz.vehicle_id = v.id
	WHERE %s
	GROUP BY v.id`

// GetVehicle fetches a vehicle profile with its zone assignments
func (r *RideRepo) GetVehicle(ctx context.Context, vehicleID uuid.UUID) (*models.Vehicle, error) {
	var dto vehicleDTO
	query := fmt.Sprintf(vehicleQuery, "v.id = $1")
	err := r.db.GetContext(ctx, &dto, query, vehicleID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, rides.ErrVehicleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	return dto.toVehicle()
}

// GetVehicleByDriver fetches the vehicle currently assigned to a driver
func (r *RideRepo) GetVehicleByDriver(ctx context.Context, driverID uuid.UUID) (*models.Vehicle, error) {
	var dto vehicleDTO
	query := fmt.Sprintf(vehicleQuery, "v.driver_id = $1")
	err := r.db.GetContext(ctx, &dto, query, driverID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, rides.ErrVehicleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle by driver: %w", err)
	}
	return dto.toVehicle()
}

// VehiclePosition returns the last reported position of a vehicle
func (r *RideRepo) VehiclePosition(ctx context.Context, vehicleID uuid.UUID) (models.Coordinates, error) {
	key := fmt.Sprintf(constants.KeyVehiclePos, vehicleID)
	fields, err := r.redisClient.HGetAll(ctx, key)
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("failed to get vehicle position: %w", err)
	}
	if len(fields) == 0 {
		return models.Coordinates{}, rides.ErrVehicleNotFound
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

// UpdateVehiclePosition writes a movement report into the position hash and
// the per-location GEO index the dispatch sweep searches
func (r *RideRepo) UpdateVehiclePosition(ctx context.Context, location models.VehicleLocation) error {
	vehicle, err := r.GetVehicle(ctx, location.VehicleID)
	if err != nil {
		return err
	}

	posKey := fmt.Sprintf(constants.KeyVehiclePos, location.VehicleID)
	if err := r.redisClient.HSet(ctx, posKey,
		constants.FieldLatitude, strconv.FormatFloat(location.Coords.Latitude, 'f', -1, 64),
		constants.FieldLongitude, strconv.FormatFloat(location.Coords.Longitude, 'f', -1, 64),
		constants.FieldTimestamp, strconv.FormatInt(location.Timestamp.Unix(), 10),
		constants.FieldDriverID, location.DriverID.String(),
	); err != nil {
		return fmt.Errorf("failed to store vehicle position: %w", err)
	}

	geoKey := fmt.Sprintf(constants.KeyVehicleGeo, vehicle.LocationID)
	if err := r.redisClient.GeoAdd(ctx, geoKey,
		location.Coords.Longitude, location.Coords.Latitude, location.VehicleID.String()); err != nil {
		return fmt.Errorf("failed to update vehicle geo index: %w", err)
	}
	return nil
}
