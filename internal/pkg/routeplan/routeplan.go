// Package routeplan holds the pure route-sequencing core: stop insertion,
// occupancy simulation, ETA propagation and ride status derivation.
// Everything here operates on in-memory stop lists and performs no I/O;
// persistence and event publication are the callers' concern.
package routeplan

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/loopline/dispatch/internal/pkg/models"
)

var (
	// ErrNoFeasibleInsertion means no capacity-safe position pair exists for
	// the new pickup/dropoff on this route. It disqualifies one vehicle,
	// never the request.
	ErrNoFeasibleInsertion = errors.New("no capacity-safe insertion for this route")

	ErrStopNotFound     = errors.New("ride has no such stop on this route")
	ErrAlreadyPickedUp  = errors.New("ride already picked up")
	ErrNotPickedUp      = errors.New("ride not picked up yet")
	ErrAlreadyCompleted = errors.New("stop already completed")
	ErrNotArrivable     = errors.New("stop is not the route's current action")
)

// DurationFunc estimates travel time between two points. Callers bind an
// estimator (and a context) into a closure; the core never performs I/O
// itself so a single propagation pass sees one consistent snapshot.
type DurationFunc func(from, to models.Coordinates) time.Duration

// ActiveIndex returns the index of the route's active stop: the first stop
// still waiting to be served. Returns -1 when no work remains.
func ActiveIndex(stops []models.Stop) int {
	for i := range stops {
		if stops[i].Status == models.StopWaiting {
			return i
		}
	}
	return -1
}

// ActiveBundle returns the indices of every waiting stop served in the same
// physical visit as the active stop. Cancelled stops do not break a bundle.
func ActiveBundle(stops []models.Stop) []int {
	active := ActiveIndex(stops)
	if active < 0 {
		return nil
	}
	bundle := []int{active}
	for i := active + 1; i < len(stops); i++ {
		if stops[i].Status == models.StopCancelled {
			continue
		}
		if stops[i].Status != models.StopWaiting || !stops[i].SameLocation(stops[active]) {
			break
		}
		bundle = append(bundle, i)
	}
	return bundle
}

// findStop returns the index of the ride's stop of the given type, cancelled
// stops excluded. Returns -1 when absent.
func findStop(stops []models.Stop, rideID uuid.UUID, typ models.StopType) int {
	for i := range stops {
		if stops[i].RideID == rideID && stops[i].Type == typ && stops[i].Status != models.StopCancelled {
			return i
		}
	}
	return -1
}

// HasWaitingStops reports whether the route still has unfulfilled work.
func HasWaitingStops(stops []models.Stop) bool {
	return ActiveIndex(stops) >= 0
}

// WaitingRideIDs returns the distinct ride IDs with at least one waiting stop,
// in route order.
func WaitingRideIDs(stops []models.Stop) []uuid.UUID {
	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	for i := range stops {
		if stops[i].Status != models.StopWaiting {
			continue
		}
		if !seen[stops[i].RideID] {
			seen[stops[i].RideID] = true
			ids = append(ids, stops[i].RideID)
		}
	}
	return ids
}
