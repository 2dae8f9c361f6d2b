package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loopline/dispatch/internal/pkg/models"
)

func TestCalculateDistanceKm(t *testing.T) {
	// Union Square to the Ferry Building, San Francisco: about 1.6 km.
	unionSquare := models.Coordinates{Latitude: 37.7880, Longitude: -122.4075}
	ferryBuilding := models.Coordinates{Latitude: 37.7955, Longitude: -122.3937}

	d := CalculateDistanceKm(unionSquare, ferryBuilding)
	assert.InDelta(t, 1.47, d, 0.1)

	assert.Zero(t, CalculateDistanceKm(unionSquare, unionSquare))
}

func TestEncodeCoordinatesRoundTrip(t *testing.T) {
	coords := models.Coordinates{Latitude: 37.7880, Longitude: -122.4075}

	hash := EncodeCoordinates(coords, TravelCachePrecision)
	assert.Len(t, hash, TravelCachePrecision)

	decoded := DecodeGeohash(hash)
	assert.InDelta(t, coords.Latitude, decoded.Latitude, 0.001)
	assert.InDelta(t, coords.Longitude, decoded.Longitude, 0.001)

	// Nearby points share a cache bucket at this precision.
	nearby := models.Coordinates{Latitude: 37.78801, Longitude: -122.40751}
	assert.Equal(t, hash[:6], EncodeCoordinates(nearby, 6))
}

func TestPointInPolygon(t *testing.T) {
	square := []models.Coordinates{
		{Latitude: 0, Longitude: 0},
		{Latitude: 0, Longitude: 10},
		{Latitude: 10, Longitude: 10},
		{Latitude: 10, Longitude: 0},
	}

	assert.True(t, PointInPolygon(models.Coordinates{Latitude: 5, Longitude: 5}, square))
	assert.False(t, PointInPolygon(models.Coordinates{Latitude: 15, Longitude: 5}, square))
	assert.False(t, PointInPolygon(models.Coordinates{Latitude: 5, Longitude: -1}, square))
	assert.False(t, PointInPolygon(models.Coordinates{Latitude: 1, Longitude: 1}, square[:2]))
}
