package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Coordinates is a geographic point
type Coordinates struct {
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}

// coordEpsilon bounds how far apart two points may be and
// still count as the same physical stop (~1 meter).
const coordEpsilon = 1e-5

// SamePoint reports whether two coordinates are close enough to
// be served as a single physical visit.
func (c Coordinates) SamePoint(other Coordinates) bool {
	dLat := c.Latitude - other.Latitude
	dLng := c.Longitude - other.Longitude
	if dLat < 0 {
		dLat = -dLat
	}
	if dLng < 0 {
		dLng = -dLng
	}
	return dLat < coordEpsilon && dLng < coordEpsilon
}

// Location is a service area (city/campus) in which vehicles operate
type Location struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	PoolingEnabled bool      `json:"pooling_enabled" db:"pooling_enabled"`
	IsADA          bool      `json:"is_ada" db:"is_ada"`
	Active         bool      `json:"active" db:"active"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// Zone is a named sub-region of a location's service area
type Zone struct {
	ID         uuid.UUID `json:"id" db:"id"`
	LocationID uuid.UUID `json:"location_id" db:"location_id"`
	Name       string    `json:"name" db:"name"`
	// Polygon is the service-area boundary as a GeoJSON-encoded ring.
	Polygon   string    `json:"polygon" db:"polygon"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Ring decodes the zone boundary into an ordered list of coordinates.
// The stored form is a GeoJSON-style array of [longitude, latitude] pairs.
func (z Zone) Ring() ([]Coordinates, error) {
	var pairs [][]float64
	if err := json.Unmarshal([]byte(z.Polygon), &pairs); err != nil {
		return nil, fmt.Errorf("invalid polygon for zone %s: %w", z.ID, err)
	}
	ring := make([]Coordinates, 0, len(pairs))
	for _, p := range pairs {
		if len(p) != 2 {
			return nil, fmt.Errorf("invalid polygon vertex for zone %s", z.ID)
		}
		ring = append(ring, Coordinates{Latitude: p[1], Longitude: p[0]})
	}
	return ring, nil
}

// FixedStop is a pre-approved named boarding/alighting location
type FixedStop struct {
	ID         uuid.UUID   `json:"id" db:"id"`
	LocationID uuid.UUID   `json:"location_id" db:"location_id"`
	ZoneID     *uuid.UUID  `json:"zone_id,omitempty" db:"zone_id"`
	Name       string      `json:"name" db:"name"`
	Coords     Coordinates `json:"coordinates"`
	Active     bool        `json:"active" db:"active"`
}

// VehicleLocation is a live position report for a vehicle
type VehicleLocation struct {
	VehicleID uuid.UUID   `json:"vehicle_id"`
	DriverID  uuid.UUID   `json:"driver_id"`
	Coords    Coordinates `json:"coordinates"`
	Timestamp time.Time   `json:"timestamp"`
}
