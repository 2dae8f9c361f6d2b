package models

import (
	"time"

	"github.com/google/uuid"
)

// RequestCreatedEvent is published when a rider submits a new request
type RequestCreatedEvent struct {
	RequestID  uuid.UUID `json:"request_id"`
	LocationID uuid.UUID `json:"location_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// RequestMissedEvent is published when a request had zero eligible vehicles
type RequestMissedEvent struct {
	RequestID  uuid.UUID `json:"request_id"`
	LocationID uuid.UUID `json:"location_id"`
	Retries    int       `json:"retries"`
	MissedAt   time.Time `json:"missed_at"`
}

// RideMatchedEvent is published when the scheduler commits a match
type RideMatchedEvent struct {
	RideID     uuid.UUID  `json:"ride_id"`
	RequestID  *uuid.UUID `json:"request_id,omitempty"`
	DriverID   uuid.UUID  `json:"driver_id"`
	VehicleID  uuid.UUID  `json:"vehicle_id"`
	PickupETA  *time.Time `json:"pickup_eta,omitempty"`
	DropoffETA *time.Time `json:"dropoff_eta,omitempty"`
	MatchedAt  time.Time  `json:"matched_at"`
}

// RideStatusEvent is published whenever a ride's derived status changes
type RideStatusEvent struct {
	RideID    uuid.UUID  `json:"ride_id"`
	DriverID  uuid.UUID  `json:"driver_id"`
	RiderID   *uuid.UUID `json:"rider_id,omitempty"`
	Status    RideStatus `json:"status"`
	ChangedAt time.Time  `json:"changed_at"`
}

// RideETAEvent is published after ETA propagation changes a ride's ETAs
type RideETAEvent struct {
	RideID     uuid.UUID  `json:"ride_id"`
	DriverID   uuid.UUID  `json:"driver_id"`
	PickupETA  *time.Time `json:"pickup_eta,omitempty"`
	DropoffETA *time.Time `json:"dropoff_eta,omitempty"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
