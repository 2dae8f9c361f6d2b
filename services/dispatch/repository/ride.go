package repository

import (
	"context"
	"fmt"

	"github.com/loopline/dispatch/internal/pkg/models"
)

// CreateRide inserts the ride produced by a committed match
func (r *DispatchRepo) CreateRide(ctx context.Context, ride *models.Ride) error {
	query := `
		INSERT INTO rides (
			id, request_id, rider_id, driver_id, vehicle_id, location_id, status,
			passengers, is_ada,
			pickup_latitude, pickup_longitude, dropoff_latitude, dropoff_longitude,
			pickup_fixed_stop_id, dropoff_fixed_stop_id,
			pickup_eta, dropoff_eta, requested_at, matched_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19
		)
	`
	_, err := r.db.ExecContext(ctx, query,
		ride.ID, ride.RequestID, ride.RiderID, ride.DriverID, ride.VehicleID, ride.LocationID, ride.Status,
		ride.Passengers, ride.IsADA,
		ride.Pickup.Latitude, ride.Pickup.Longitude, ride.Dropoff.Latitude, ride.Dropoff.Longitude,
		ride.PickupFixedStop, ride.DropoffFixedStop,
		ride.PickupETA, ride.DropoffETA, ride.RequestedAt, ride.MatchedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert ride: %w", err)
	}
	return nil
}

// UpdateRideStatuses persists derived status and ETA changes for the rides
// shifted by a route mutation
func (r *DispatchRepo) UpdateRideStatuses(ctx context.Context, updates []models.RideStatusUpdate) error {
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
