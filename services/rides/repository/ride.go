package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/loopline/dispatch/internal/pkg/models"
	"github.com/loopline/dispatch/services/rides"
)

// rideDTO maps a rides row; coordinates are stored as discrete columns
type rideDTO struct {
	ID                   uuid.UUID            `db:"id"`
	RequestID            *uuid.UUID           `db:"request_id"`
	RiderID              *uuid.UUID           `db:"rider_id"`
	DriverID             uuid.UUID            `db:"driver_id"`
	VehicleID            uuid.UUID            `db:"vehicle_id"`
	LocationID           uuid.UUID            `db:"location_id"`
	Status               models.RideStatus    `db:"status"`
	Passengers           int                  `db:"passengers"`
	IsADA                bool                 `db:"is_ada"`
	PickupLatitude       float64              `db:"pickup_latitude"`
	PickupLongitude      float64              `db:"pickup_longitude"`
	DropoffLatitude      float64              `db:"dropoff_latitude"`
	DropoffLongitude     float64              `db:"dropoff_longitude"`
	PickupFixedStop      *uuid.UUID           `db:"pickup_fixed_stop_id"`
	DropoffFixedStop     *uuid.UUID           `db:"dropoff_fixed_stop_id"`
	PickupETA            *time.Time           `db:"pickup_eta"`
	DropoffETA           *time.Time           `db:"dropoff_eta"`
	Pooled               bool                 `db:"pooled"`
	ActionsBeforeDropoff int                  `db:"actions_before_dropoff"`
	StopsBeforeDropoff   int                  `db:"stops_before_dropoff"`
	CancelledBy          *models.CancelSource `db:"cancelled_by"`
	RequestedAt          time.Time            `db:"requested_at"`
	MatchedAt            time.Time            `db:"matched_at"`
	ArrivedAt            *time.Time           `db:"arrived_at"`
	PickedUpAt           *time.Time           `db:"picked_up_at"`
	DroppedAt            *time.Time           `db:"dropped_at"`
	CancelledAt          *time.Time           `db:"cancelled_at"`
}

func (d *rideDTO) toRide() *models.Ride {
	return &models.Ride{
		ID:                   d.ID,
		RequestID:            d.RequestID,
		RiderID:              d.RiderID,
		DriverID:             d.DriverID,
		VehicleID:            d.VehicleID,
		LocationID:           d.LocationID,
		Status:               d.Status,
		Passengers:           d.Passengers,
		IsADA:                d.IsADA,
		Pickup:               models.Coordinates{Latitude: d.PickupLatitude, Longitude: d.PickupLongitude},
		Dropoff:              models.Coordinates{Latitude: d.DropoffLatitude, Longitude: d.DropoffLongitude},
		PickupFixedStop:      d.PickupFixedStop,
		DropoffFixedStop:     d.DropoffFixedStop,
		PickupETA:            d.PickupETA,
		DropoffETA:           d.DropoffETA,
		Pooled:               d.Pooled,
		ActionsBeforeDropoff: d.ActionsBeforeDropoff,
		StopsBeforeDropoff:   d.StopsBeforeDropoff,
		CancelledBy:          d.CancelledBy,
		RequestedAt:          d.RequestedAt,
		MatchedAt:            d.MatchedAt,
		ArrivedAt:            d.ArrivedAt,
		PickedUpAt:           d.PickedUpAt,
		DroppedAt:            d.DroppedAt,
		CancelledAt:          d.CancelledAt,
	}
}

const rideColumns = `
	id, request_id, rider_id, driver_id, vehicle_id, location_id, status,
	passengers, is_ada,
	pickup_latitude, pickup_longitude, dropoff_latitude, dropoff_longitude,
	pickup_fixed_stop_id, dropoff_fixed_stop_id, pickup_eta, dropoff_eta,
	pooled, actions_before_dropoff, stops_before_dropoff, cancelled_by,
	requested_at, matched_at, arrived_at, picked_up_at, dropped_at, cancelled_at`

// GetRide fetches a ride by ID
func (r *RideRepo) GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	var dto rideDTO
	query := `SELECT ` + rideColumns + ` FROM rides WHERE id = $1`
	err := r.db.GetContext(ctx, &dto, query, rideID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, rides.ErrRideNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}
	return dto.toRide(), nil
}

// GetRidesByIDs fetches a batch of rides
func (r *RideRepo) GetRidesByIDs(ctx context.Context, rideIDs []uuid.UUID) ([]*models.Ride, error) {
	if len(rideIDs) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In(`SELECT `+rideColumns+` FROM rides WHERE id IN (?)`, rideIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build ride batch query: %w", err)
	}
	query = r.db.Rebind(query)

	var dtos []rideDTO
	if err := r.db.SelectContext(ctx, &dtos, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get rides: %w", err)
	}
	out := make([]*models.Ride, 0, len(dtos))
	for i := range dtos {
		out = append(out, dtos[i].toRide())
	}
	return out, nil
}

// CreateRide inserts a ride, used for street hails created on this service
func (r *RideRepo) CreateRide(ctx context.Context, ride *models.Ride) error {
	query := `
		INSERT INTO rides (
			id, request_id, rider_id, driver_id, vehicle_id, location_id, status,
			passengers, is_ada,
			pickup_latitude, pickup_longitude, dropoff_latitude, dropoff_longitude,
			pickup_fixed_stop_id, dropoff_fixed_stop_id,
			pickup_eta, dropoff_eta, requested_at, matched_at, picked_up_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20
		)
	`
	_, err := r.db.ExecContext(ctx, query,
		ride.ID, ride.RequestID, ride.RiderID, ride.DriverID, ride.VehicleID, ride.LocationID, ride.Status,
		ride.Passengers, ride.IsADA,
		ride.Pickup.Latitude, ride.Pickup.Longitude, ride.Dropoff.Latitude, ride.Dropoff.Longitude,
		ride.PickupFixedStop, ride.DropoffFixedStop,
		ride.PickupETA, ride.DropoffETA, ride.RequestedAt, ride.MatchedAt, ride.PickedUpAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert ride: %w", err)
	}
	return nil
}

// UpdateRideStatuses persists derived status and ETA changes
func (r *RideRepo) UpdateRideStatuses(ctx context.Context, updates []models.RideStatusUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	query := `UPDATE rides SET status = $1, pickup_eta = $2, dropoff_eta = $3 WHERE id = $4`
	for _, u := range updates {
		if _, err := r.db.ExecContext(ctx, query, u.Status, u.PickupETA, u.DropoffETA, u.RideID); err != nil {
			return fmt.Errorf("failed to update ride %s status: %w", u.RideID, err)
		}
	}
	return nil
}

// RecordPickup stamps the boarding time
func (r *RideRepo) RecordPickup(ctx context.Context, rideID uuid.UUID, at time.Time) error {
	query := `UPDATE rides SET status = $1, picked_up_at = $2 WHERE id = $3`
	if _, err := r.db.ExecContext(ctx, query, models.RideInProgress, at, rideID); err != nil {
		return fmt.Errorf("failed to record pickup: %w", err)
	}
	return nil
}

// RecordDropoff stamps completion together with the pooling tag and the
// traversed-stop counts observed between pickup and dropoff
func (r *RideRepo) RecordDropoff(ctx context.Context, rideID uuid.UUID, at time.Time, pooled bool, actions, visits int) error {
	query := `UPDATE rides SET status = $1, dropped_at = $2, pooled = $3,
		actions_before_dropoff = $4, stops_before_dropoff = $5 WHERE id = $6`
	if _, err := r.db.ExecContext(ctx, query, models.RideComplete, at, pooled, actions, visits, rideID); err != nil {
		return fmt.Errorf("failed to record dropoff: %w", err)
	}
	return nil
}

// RecordArrival stamps the driver-arrived time on every ride bundled at the
// visited stop, opening the no-show window
func (r *RideRepo) RecordArrival(ctx context.Context, rideIDs []uuid.UUID, at time.Time) error {
	if len(rideIDs) == 0 {
		return nil
	}
	query, args, err := sqlx.In(`UPDATE rides SET status = ?, arrived_at = ? WHERE id IN (?)`,
		models.DriverArrived, at, rideIDs)
	if err != nil {
		return fmt.Errorf("failed to build arrival update: %w", err)
	}
	query = r.db.Rebind(query)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to record arrival: %w", err)
	}
	return nil
}

// RecordCancel stamps the cancellation with its source and terminal status
func (r *RideRepo) RecordCancel(ctx context.Context, rideID uuid.UUID, status models.RideStatus, source models.CancelSource, at time.Time) error {
	query := `UPDATE rides SET status = $1, cancelled_by = $2, cancelled_at = $3 WHERE id = $4`
	if _, err := r.db.ExecContext(ctx, query, status, source, at, rideID); err != nil {
		return fmt.Errorf("failed to record cancel: %w", err)
	}
	return nil
}
