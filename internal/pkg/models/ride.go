package models

import (
	"time"

	"github.com/google/uuid"
)

// RideStatus is a wire-stable integer status consumed by rider and driver clients
type RideStatus int

const (
	RideInQueue       RideStatus = 200
	NextInQueue       RideStatus = 201
	DriverEnRoute     RideStatus = 202
	DriverArrived     RideStatus = 203
	CancelledInQueue  RideStatus = 204
	CancelledEnRoute  RideStatus = 205
	CancelledNoShow   RideStatus = 206
	CancelledNotAble  RideStatus = 207
	RideInProgress    RideStatus = 300
	RideComplete      RideStatus = 700
)

// Cancelled reports whether the status is any of the cancellation variants
func (s RideStatus) Cancelled() bool {
	return s >= CancelledInQueue && s <= CancelledNotAble
}

// Active reports whether the ride still has pending work on a route
func (s RideStatus) Active() bool {
	return (s >= RideInQueue && s <= DriverArrived) || s == RideInProgress
}

// PrePickup reports whether the rider has not boarded yet
func (s RideStatus) PrePickup() bool {
	return s >= RideInQueue && s <= DriverArrived
}

// CancelSource identifies who cancelled a ride
type CancelSource string

const (
	CancelSourceRider  CancelSource = "rider"
	CancelSourceDriver CancelSource = "driver"
	CancelSourceNoShow CancelSource = "noshow"
	CancelSourceAdmin  CancelSource = "admin"
)

// Ride is the accepted unit of transport once a request is matched to a
// vehicle, or an operator hail with no rider
type Ride struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	RequestID  *uuid.UUID `json:"request_id,omitempty" db:"request_id"`
	RiderID    *uuid.UUID `json:"rider_id,omitempty" db:"rider_id"`
	DriverID   uuid.UUID  `json:"driver_id" db:"driver_id"`
	VehicleID  uuid.UUID  `json:"vehicle_id" db:"vehicle_id"`
	LocationID uuid.UUID  `json:"location_id" db:"location_id"`
	Status     RideStatus `json:"status" db:"status"`

	Passengers int  `json:"passengers" db:"passengers"`
	IsADA      bool `json:"is_ada" db:"is_ada"`

	Pickup           Coordinates `json:"pickup"`
	Dropoff          Coordinates `json:"dropoff"`
	PickupFixedStop  *uuid.UUID  `json:"pickup_fixed_stop,omitempty" db:"pickup_fixed_stop_id"`
	DropoffFixedStop *uuid.UUID  `json:"dropoff_fixed_stop,omitempty" db:"dropoff_fixed_stop_id"`

	PickupETA  *time.Time `json:"pickup_eta,omitempty" db:"pickup_eta"`
	DropoffETA *time.Time `json:"dropoff_eta,omitempty" db:"dropoff_eta"`

	// Pooled marks rides that shared the vehicle with another rider
	// between their own pickup and dropoff.
	Pooled bool `json:"pooled" db:"pooled"`
	// ActionsBeforeDropoff / StopsBeforeDropoff count other stops traversed
	// between this ride's pickup and dropoff; bundled fixed-stop visits
	// count once in StopsBeforeDropoff.
	ActionsBeforeDropoff int `json:"actions_before_dropoff" db:"actions_before_dropoff"`
	StopsBeforeDropoff   int `json:"stops_before_dropoff" db:"stops_before_dropoff"`

	CancelledBy *CancelSource `json:"cancelled_by,omitempty" db:"cancelled_by"`

	RequestedAt time.Time  `json:"requested_at" db:"requested_at"`
	MatchedAt   time.Time  `json:"matched_at" db:"matched_at"`
	ArrivedAt   *time.Time `json:"arrived_at,omitempty" db:"arrived_at"`
	PickedUpAt  *time.Time `json:"picked_up_at,omitempty" db:"picked_up_at"`
	DroppedAt   *time.Time `json:"dropped_at,omitempty" db:"dropped_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty" db:"cancelled_at"`
}

// Hailed reports whether the ride was created by the driver/operator
// with no rider attached
func (r *Ride) Hailed() bool {
	return r.RiderID == nil && r.RequestID == nil
}

// RideStatusUpdate carries a derived status/ETA pair to persist and publish
type RideStatusUpdate struct {
	RideID     uuid.UUID  `json:"ride_id"`
	Status     RideStatus `json:"status"`
	PickupETA  *time.Time `json:"pickup_eta,omitempty"`
	DropoffETA *time.Time `json:"dropoff_eta,omitempty"`
}
