package models

import (
	"time"

	"github.com/google/uuid"
)

// QueueEntry is one ride in a driver's ordered queue
type QueueEntry struct {
	RideID     uuid.UUID  `json:"ride_id"`
	RiderID    *uuid.UUID `json:"rider_id,omitempty"`
	Status     RideStatus `json:"status"`
	Passengers int        `json:"passengers"`
	IsADA      bool       `json:"is_ada"`
	Hailed     bool       `json:"hailed"`
	// Current marks the ride whose stop is the route's next physical action.
	Current    bool        `json:"current"`
	Pickup     Coordinates `json:"pickup"`
	Dropoff    Coordinates `json:"dropoff"`
	PickupETA  *time.Time  `json:"pickup_eta,omitempty"`
	DropoffETA *time.Time  `json:"dropoff_eta,omitempty"`
}

// DriverQueue is the ordered set of rides on a driver's active route
type DriverQueue struct {
	DriverID  uuid.UUID    `json:"driver_id"`
	VehicleID uuid.UUID    `json:"vehicle_id"`
	RouteID   *uuid.UUID   `json:"route_id,omitempty"`
	Entries   []QueueEntry `json:"entries"`
}

// DriverAction is one physical visit the driver must make. Stops bundled at
// the same location collapse into a single action carrying every ride served
// there.
type DriverAction struct {
	Type        StopType    `json:"type"`
	RideIDs     []uuid.UUID `json:"ride_ids"`
	Coords      Coordinates `json:"coordinates"`
	FixedStopID *uuid.UUID  `json:"fixed_stop_id,omitempty"`
	Current     bool        `json:"current"`
	Passengers  int         `json:"passengers"`
	ETA         *time.Time  `json:"eta,omitempty"`
}

// SweepSummary reports the outcome of one dispatch sweep
type SweepSummary struct {
	Evaluated int `json:"evaluated"`
	Matched   int `json:"matched"`
	Unmatched int `json:"unmatched"`
	Missed    int `json:"missed"`
	Cancelled int `json:"cancelled"`
}
