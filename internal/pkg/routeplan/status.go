package routeplan

import (
	"github.com/google/uuid"

	"github.com/loopline/dispatch/internal/pkg/models"
)

// DeriveStatus maps a ride's position inside the stop order to its externally
// visible status code. It is a pure read of the order plus the active
// pointer; callers persist and publish the result.
//
// The second return value is false when the ride has no live stops on this
// route (both cancelled or never present), in which case the ride's stored
// cancellation status stands.
func DeriveStatus(stops []models.Stop, rideID uuid.UUID) (models.RideStatus, bool) {
	pickupIdx := findStop(stops, rideID, models.StopPickup)
	dropoffIdx := findStop(stops, rideID, models.StopDropoff)
	if pickupIdx < 0 && dropoffIdx < 0 {
		return 0, false
	}

	if dropoffIdx >= 0 && stops[dropoffIdx].Status == models.StopCompleted {
		return models.RideComplete, true
	}
	if pickupIdx >= 0 && stops[pickupIdx].Status == models.StopCompleted {
		return models.RideInProgress, true
	}
	if pickupIdx < 0 {
		// Dropoff without a live pickup should not occur; report in-progress
		// so the ride still surfaces to the driver.
		return models.RideInProgress, true
	}

	// Rider not boarded: rank the pickup by how many distinct physical
	// visits separate it from the driver's current action.
	visits := visitsBefore(stops, pickupIdx)
	switch {
	case visits == 0:
		if stops[pickupIdx].ArrivedAt != nil {
			return models.DriverArrived, true
		}
		return models.DriverEnRoute, true
	case visits == 1:
		return models.NextInQueue, true
	default:
		return models.RideInQueue, true
	}
}

// visitsBefore counts the distinct physical visits strictly between the
// active stop and the stop at idx. Zero means idx is the active stop or
// bundled with it.
func visitsBefore(stops []models.Stop, idx int) int {
	visits := 0
	var last *models.Stop
	for i := range stops {
		if stops[i].Status != models.StopWaiting {
			continue
		}
		if last != nil && !last.SameLocation(stops[i]) {
			visits++
		}
		if i == idx {
			return visits
		}
		last = &stops[i]
	}
	return visits
}

// DeriveAll computes the status of every ride with live stops on the route,
// in route order. Used after any structural or pointer change to fan the
// updates out to persistence and notification.
func DeriveAll(stops []models.Stop) []models.RideStatusUpdate {
	seen := make(map[uuid.UUID]bool)
	var out []models.RideStatusUpdate
	for i := range stops {
		if stops[i].Status == models.StopCancelled || seen[stops[i].RideID] {
			continue
		}
		seen[stops[i].RideID] = true
		if status, ok := DeriveStatus(stops, stops[i].RideID); ok {
			out = append(out, models.RideStatusUpdate{
				RideID: stops[i].RideID,
				Status: status,
			})
		}
	}
	return out
}
