package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/loopline/dispatch/internal/pkg/models"
	"github.com/loopline/dispatch/services/dispatch"
)

// requestDTO maps a requests row; coordinates are stored as discrete columns
type requestDTO struct {
	ID               uuid.UUID            `db:"id"`
	RiderID          *uuid.UUID           `db:"rider_id"`
	LocationID       uuid.UUID            `db:"location_id"`
	Status           models.RequestStatus `db:"status"`
	Passengers       int                  `db:"passengers"`
	IsADA            bool                 `db:"is_ada"`
	PickupLatitude   float64              `db:"pickup_latitude"`
	PickupLongitude  float64              `db:"pickup_longitude"`
	DropoffLatitude  float64              `db:"dropoff_latitude"`
	DropoffLongitude float64              `db:"dropoff_longitude"`
	PickupZone       *uuid.UUID           `db:"pickup_zone_id"`
	DropoffZone      *uuid.UUID           `db:"dropoff_zone_id"`
	PickupFixedStop  *uuid.UUID           `db:"pickup_fixed_stop_id"`
	DropoffFixedStop *uuid.UUID           `db:"dropoff_fixed_stop_id"`
	Processing       bool                 `db:"processing"`
	SearchRetries    int                  `db:"search_retries"`
	LastRetryAt      *time.Time           `db:"last_retry_at"`
	RequestedAt      time.Time            `db:"requested_at"`
	CancelledAt      *time.Time           `db:"cancelled_at"`
	MatchedRideID    *uuid.UUID           `db:"matched_ride_id"`
}

func (d *requestDTO) toRequest() *models.Request {
	return &models.Request{
		ID:               d.ID,
		RiderID:          d.RiderID,
		LocationID:       d.LocationID,
		Status:           d.Status,
		Passengers:       d.Passengers,
		IsADA:            d.IsADA,
		Pickup:           models.Coordinates{Latitude: d.PickupLatitude, Longitude: d.PickupLongitude},
		Dropoff:          models.Coordinates{Latitude: d.DropoffLatitude, Longitude: d.DropoffLongitude},
		PickupZone:       d.PickupZone,
		DropoffZone:      d.DropoffZone,
		PickupFixedStop:  d.PickupFixedStop,
		DropoffFixedStop: d.DropoffFixedStop,
		Processing:       d.Processing,
		SearchRetries:    d.SearchRetries,
		LastRetryAt:      d.LastRetryAt,
		RequestedAt:      d.RequestedAt,
		CancelledAt:      d.CancelledAt,
		MatchedRideID:    d.MatchedRideID,
	}
}

const requestColumns = `
	id, rider_id, location_id, status, passengers, is_ada,
	pickup_latitude, pickup_longitude, dropoff_latitude, dropoff_longitude,
	pickup_zone_id, dropoff_zone_id, pickup_fixed_stop_id, dropoff_fixed_stop_id,
	processing, search_retries, last_retry_at, requested_at, cancelled_at, matched_ride_id`

// CreateRequest inserts a new transport request
func (r *DispatchRepo) CreateRequest(ctx context.Context, req *models.Request) error {
	query := `
		INSERT INTO requests (
			id, rider_id, location_id, status, passengers, is_ada,
			pickup_latitude, pickup_longitude, dropoff_latitude, dropoff_longitude,
			pickup_zone_id, dropoff_zone_id, pickup_fixed_stop_id, dropoff_fixed_stop_id,
			requested_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		)
	`
	_, err := r.db.ExecContext(ctx, query,
		req.ID, req.RiderID, req.LocationID, req.Status, req.Passengers, req.IsADA,
		req.Pickup.Latitude, req.Pickup.Longitude, req.Dropoff.Latitude, req.Dropoff.Longitude,
		req.PickupZone, req.DropoffZone, req.PickupFixedStop, req.DropoffFixedStop,
		req.RequestedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert request: %w", err)
	}
	return nil
}

// GetRequest fetches a request by ID
func (r *DispatchRepo) GetRequest(ctx context.Context, requestID uuid.UUID) (*models.Request, error) {
	var dto requestDTO
	query := `SELECT ` + requestColumns + ` FROM requests WHERE id = $1`
	err := r.db.GetContext(ctx, &dto, query, requestID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, dispatch.ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get request: %w", err)
	}
	return dto.toRequest(), nil
}

// ListSearchingRequests returns unmatched requests oldest first
func (r *DispatchRepo) ListSearchingRequests(ctx context.Context) ([]*models.Request, error) {
	var dtos []requestDTO
	query := `SELECT ` + requestColumns + ` FROM requests
		WHERE status = $1
		ORDER BY requested_at ASC`
	if err := r.db.SelectContext(ctx, &dtos, query, models.RequestSearching); err != nil {
		return nil, fmt.Errorf("failed to list searching requests: %w", err)
	}
	requests := make([]*models.Request, 0, len(dtos))
	for i := range dtos {
		requests = append(requests, dtos[i].toRequest())
	}
	return requests, nil
}

// ClaimRequest marks a request as being processed by a sweep.
// Returns false when another sweep already holds it.
func (r *DispatchRepo) ClaimRequest(ctx context.Context, requestID uuid.UUID) (bool, error) {
	query := `UPDATE requests SET processing = TRUE
		WHERE id = $1 AND processing = FALSE AND status = $2`
	res, err := r.db.ExecContext(ctx, query, requestID, models.RequestSearching)
	if err != nil {
		return false, fmt.Errorf("failed to claim request: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows == 1, nil
}

// ReleaseRequest clears the processing claim on a request
func (r *DispatchRepo) ReleaseRequest(ctx context.Context, requestID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `UPDATE requests SET processing = FALSE WHERE id = $1`, requestID)
	if err != nil {
		return fmt.Errorf("failed to release request: %w", err)
	}
	return nil
}

// MarkRequestMatched records the match outcome on the request
func (r *DispatchRepo) MarkRequestMatched(ctx context.Context, requestID, rideID uuid.UUID) error {
	query := `UPDATE requests SET status = $1, matched_ride_id = $2, processing = FALSE WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, models.RequestMatched, rideID, requestID)
	if err != nil {
		return fmt.Errorf("failed to mark request matched: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return dispatch.ErrRequestNotFound
	}
	return nil
}

// CancelRequest transitions a still-searching request to cancelled
func (r *DispatchRepo) CancelRequest(ctx context.Context, requestID uuid.UUID, at time.Time) error {
	query := `UPDATE requests SET status = $1, cancelled_at = $2, processing = FALSE
		WHERE id = $3 AND status = $4`
	res, err := r.db.ExecContext(ctx, query, models.RequestCancelled, at, requestID, models.RequestSearching)
	if err != nil {
		return fmt.Errorf("failed to cancel request: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return dispatch.ErrRequestNotFound
	}
	return nil
}

// IncrementSearchRetries bumps the retry counter after a failed search pass
func (r *DispatchRepo) IncrementSearchRetries(ctx context.Context, requestID uuid.UUID) error {
	query := `UPDATE requests SET search_retries = search_retries + 1, last_retry_at = NOW() WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, requestID); err != nil {
		return fmt.Errorf("failed to increment search retries: %w", err)
	}
	return nil
}

// CreateMissedRequest records a request that had zero eligible vehicles
func (r *DispatchRepo) CreateMissedRequest(ctx context.Context, missed *models.MissedRequest) error {
	query := `
		INSERT INTO missed_requests (id, request_id, location_id, passengers, is_ada, missed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		missed.ID, missed.RequestID, missed.LocationID, missed.Passengers, missed.IsADA, missed.MissedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert missed request: %w", err)
	}
	return nil
}
