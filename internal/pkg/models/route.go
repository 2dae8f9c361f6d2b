package models

import (
	"time"

	"github.com/google/uuid"
)

// StopType distinguishes pickup and dropoff events
type StopType string

const (
	StopPickup  StopType = "pickup"
	StopDropoff StopType = "dropoff"
)

// StopStatus is the lifecycle state of a stop within a route.
// The "current" state is derived from position relative to the active
// pointer, not stored; see routeplan.ActiveIndex.
type StopStatus string

const (
	StopWaiting   StopStatus = "waiting"
	StopCompleted StopStatus = "completed"
	StopCancelled StopStatus = "cancelled"
)

// Stop is one physical pickup or dropoff event within a route
type Stop struct {
	RideID      uuid.UUID   `json:"ride_id"`
	Type        StopType    `json:"type"`
	Status      StopStatus  `json:"status"`
	Coords      Coordinates `json:"coordinates"`
	FixedStopID *uuid.UUID  `json:"fixed_stop_id,omitempty"`

	Passengers    int `json:"passengers"`
	ADAPassengers int `json:"ada_passengers"`

	// ETA is the estimated arrival time; frozen once the stop completes,
	// cleared when the stop is cancelled.
	ETA *time.Time `json:"eta,omitempty"`
	// InitialETA is the ETA computed when the stop first joined the route.
	InitialETA *time.Time `json:"initial_eta,omitempty"`
	// ArrivedAt is set when the driver reports arrival at a pickup,
	// starting the no-show window.
	ArrivedAt *time.Time `json:"arrived_at,omitempty"`
}

// SameLocation reports whether two stops are served as one physical visit:
// either both reference the same fixed stop or their coordinates coincide.
func (s Stop) SameLocation(other Stop) bool {
	if s.FixedStopID != nil && other.FixedStopID != nil {
		return *s.FixedStopID == *other.FixedStopID
	}
	if s.FixedStopID != nil || other.FixedStopID != nil {
		return false
	}
	return s.Coords.SamePoint(other.Coords)
}

// Route is the live ordered stop sequence for one vehicle.
// Version increases on every committed mutation; ReplaceStops callers must
// present the version they read or the write is rejected.
type Route struct {
	ID        uuid.UUID `json:"id" db:"id"`
	VehicleID uuid.UUID `json:"vehicle_id" db:"vehicle_id"`
	DriverID  uuid.UUID `json:"driver_id" db:"driver_id"`
	Active    bool      `json:"active" db:"active"`
	Stops     []Stop    `json:"stops"`
	Version   int64     `json:"version" db:"version"`

	FirstRequestAt time.Time `json:"first_request_at" db:"first_request_at"`
	LastUpdate     time.Time `json:"last_update" db:"last_update"`
}
