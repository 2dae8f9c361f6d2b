package routeplan

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/loopline/dispatch/internal/pkg/models"
)

// lineDur is a deterministic estimator for tests: one minute per 0.01
// degrees of manhattan distance.
func lineDur(from, to models.Coordinates) time.Duration {
	d := math.Abs(to.Latitude-from.Latitude) + math.Abs(to.Longitude-from.Longitude)
	return time.Duration(math.Round(d*100)) * time.Minute
}

func at(lon float64) models.Coordinates {
	return models.Coordinates{Latitude: 0, Longitude: lon}
}

func pickupAt(rideID uuid.UUID, c models.Coordinates, pax int) models.Stop {
	return models.Stop{
		RideID:     rideID,
		Type:       models.StopPickup,
		Status:     models.StopWaiting,
		Coords:     c,
		Passengers: pax,
	}
}

func dropoffAt(rideID uuid.UUID, c models.Coordinates, pax int) models.Stop {
	return models.Stop{
		RideID:     rideID,
		Type:       models.StopDropoff,
		Status:     models.StopWaiting,
		Coords:     c,
		Passengers: pax,
	}
}

func withFixedStop(s models.Stop, fsID uuid.UUID) models.Stop {
	s.FixedStopID = &fsID
	return s
}

func completed(s models.Stop) models.Stop {
	s.Status = models.StopCompleted
	return s
}

func rideIDsOf(stops []models.Stop) []uuid.UUID {
	out := make([]uuid.UUID, len(stops))
	for i := range stops {
		out[i] = stops[i].RideID
	}
	return out
}
