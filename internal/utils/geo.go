package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"

	"github.com/loopline/dispatch/internal/pkg/models"
)

// TravelCachePrecision is the geohash precision used to bucket coordinates
// for travel time cache keys. Precision 8 cells are roughly 38m x 19m, small
// enough that points in one cell share a travel estimate.
const TravelCachePrecision = 8

// EncodeCoordinates converts coordinates to a geohash string
func EncodeCoordinates(coords models.Coordinates, precision uint) string {
	return geohash.EncodeWithPrecision(coords.Latitude, coords.Longitude, precision)
}

// DecodeGeohash converts a geohash string to coordinates at the cell center
func DecodeGeohash(hash string) models.Coordinates {
	latitude, longitude := geohash.DecodeCenter(hash)
	return models.Coordinates{Latitude: latitude, Longitude: longitude}
}

// CalculateDistanceKm calculates the distance between two points in
// kilometers using the Haversine formula
func CalculateDistanceKm(from, to models.Coordinates) float64 {
	// Earth's radius in kilometers
	const earthRadius = 6371.0

	lat1 := from.Latitude * math.Pi / 180.0
	lon1 := from.Longitude * math.Pi / 180.0
	lat2 := to.Latitude * math.Pi / 180.0
	lon2 := to.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// PointInPolygon reports whether the point lies inside the polygon using a
// ray casting test. The polygon does not need to be closed.
func PointInPolygon(point models.Coordinates, polygon []models.Coordinates) bool {
	if len(polygon) < 3 {
		return false
	}

	inside := false
	j := len(polygon) - 1
	for i := 0; i < len(polygon); i++ {
		pi, pj := polygon[i], polygon[j]
		if (pi.Longitude > point.Longitude) != (pj.Longitude > point.Longitude) &&
			point.Latitude < (pj.Latitude-pi.Latitude)*(point.Longitude-pi.Longitude)/(pj.Longitude-pi.Longitude)+pi.Latitude {
			inside = !inside
		}
		j = i
	}
	return inside
}
