package models

import (
	"time"

	"github.com/google/uuid"
)

// MatchingRule is the policy governing which requests a vehicle may serve
type MatchingRule string

const (
	// MatchingRuleShared vehicles serve any request in their location.
	MatchingRuleShared MatchingRule = "shared"
	// MatchingRulePriority vehicles are restricted to their assigned zones,
	// falling back to the shared pool when idle.
	MatchingRulePriority MatchingRule = "priority"
)

// Capacity is a vehicle's seat profile
type Capacity struct {
	Passengers int `json:"passengers" db:"passenger_capacity"`
	ADA        int `json:"ada" db:"ada_capacity"`
}

// Fits reports whether a party of the given size fits in this capacity
func (c Capacity) Fits(passengers, ada int) bool {
	return passengers <= c.Passengers && ada <= c.ADA
}

// Vehicle is a fleet vehicle with its capacity profile and matching rule
type Vehicle struct {
	ID           uuid.UUID    `json:"id" db:"id"`
	LocationID   uuid.UUID    `json:"location_id" db:"location_id"`
	DriverID     *uuid.UUID   `json:"driver_id,omitempty" db:"driver_id"`
	Name         string       `json:"name" db:"name"`
	LicensePlate string       `json:"license_plate" db:"license_plate"`
	Capacity     Capacity     `json:"capacity"`
	MatchingRule MatchingRule `json:"matching_rule" db:"matching_rule"`
	// ZoneIDs are the zones assigned to priority vehicles.
	ZoneIDs []uuid.UUID `json:"zone_ids"`

	Online    bool `json:"online" db:"online"`
	Available bool `json:"available" db:"available"`

	Position  Coordinates `json:"position"`
	UpdatedAt time.Time   `json:"updated_at" db:"updated_at"`
}

// ServesZone reports whether the zone is among the vehicle's assigned zones
func (v *Vehicle) ServesZone(zoneID uuid.UUID) bool {
	for _, z := range v.ZoneIDs {
		if z == zoneID {
			return true
		}
	}
	return false
}

// VehicleCandidate is a vehicle ordered for dispatch evaluation together
// with its effective search position and estimated time to pickup
type VehicleCandidate struct {
	Vehicle        *Vehicle
	Position       Coordinates
	PickupDuration time.Duration
}
