package models

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus is a wire-stable integer status consumed by rider clients
type RequestStatus int

const (
	RequestSearching RequestStatus = 100
	RequestCancelled RequestStatus = 101
	RequestMatched   RequestStatus = 102
)

// Request is a rider's or operator's ask for transport
type Request struct {
	ID          uuid.UUID     `json:"id" db:"id"`
	RiderID     *uuid.UUID    `json:"rider_id,omitempty" db:"rider_id"`
	LocationID  uuid.UUID     `json:"location_id" db:"location_id"`
	Status      RequestStatus `json:"status" db:"status"`
	Passengers  int           `json:"passengers" db:"passengers"`
	IsADA       bool          `json:"is_ada" db:"is_ada"`
	Pickup      Coordinates   `json:"pickup"`
	Dropoff     Coordinates   `json:"dropoff"`
	PickupZone  *uuid.UUID    `json:"pickup_zone,omitempty" db:"pickup_zone_id"`
	DropoffZone *uuid.UUID    `json:"dropoff_zone,omitempty" db:"dropoff_zone_id"`
	// PickupFixedStop / DropoffFixedStop reference fixed stops when the rider
	// asked for one instead of free-form coordinates.
	PickupFixedStop  *uuid.UUID `json:"pickup_fixed_stop,omitempty" db:"pickup_fixed_stop_id"`
	DropoffFixedStop *uuid.UUID `json:"dropoff_fixed_stop,omitempty" db:"dropoff_fixed_stop_id"`
	// Processing marks a request claimed by a running sweep so that
	// overlapping sweeps skip it.
	Processing     bool       `json:"-" db:"processing"`
	SearchRetries  int        `json:"search_retries" db:"search_retries"`
	LastRetryAt    *time.Time `json:"last_retry_at,omitempty" db:"last_retry_at"`
	RequestedAt    time.Time  `json:"requested_at" db:"requested_at"`
	CancelledAt    *time.Time `json:"cancelled_at,omitempty" db:"cancelled_at"`
	MatchedRideID  *uuid.UUID `json:"matched_ride_id,omitempty" db:"matched_ride_id"`
}

// MissedRequest records a request that had zero eligible vehicles,
// kept separately for reporting
type MissedRequest struct {
	ID         uuid.UUID `json:"id" db:"id"`
	RequestID  uuid.UUID `json:"request_id" db:"request_id"`
	LocationID uuid.UUID `json:"location_id" db:"location_id"`
	Passengers int       `json:"passengers" db:"passengers"`
	IsADA      bool      `json:"is_ada" db:"is_ada"`
	MissedAt   time.Time `json:"missed_at" db:"missed_at"`
}
