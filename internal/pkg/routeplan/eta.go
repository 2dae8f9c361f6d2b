package routeplan

import (
	"time"

	"github.com/loopline/dispatch/internal/pkg/models"
)

// Propagate recomputes cumulative arrival times for every waiting stop,
// walking the order from the vehicle's live position. ETAs of completed
// stops are frozen, cancelled stops are cleared. The pass is linear and
// reads no external state, so re-running it with the same inputs is a no-op.
//
// Stops bundled at one physical location share a single arrival; dwell is
// charged once per visit when the vehicle departs, and a dropoff's ETA
// includes the dwell needed to deboard.
func Propagate(stops []models.Stop, pos models.Coordinates, now time.Time, dwell time.Duration, dur DurationFunc) []models.Stop {
	out := cloneStops(stops)

	t := now
	prev := pos
	var lastVisited *models.Stop
	arrival := now

	for i := range out {
		switch out[i].Status {
		case models.StopCancelled:
			out[i].ETA = nil
			continue
		case models.StopCompleted:
			continue
		}

		if lastVisited == nil || !lastVisited.SameLocation(out[i]) {
			// New physical visit: close out the previous one, travel there.
			if lastVisited != nil {
				t = arrival.Add(dwell)
			}
			arrival = t.Add(dur(prev, out[i].Coords))
			prev = out[i].Coords
		}

		eta := arrival
		if out[i].Type == models.StopDropoff {
			eta = arrival.Add(dwell)
		}
		out[i].ETA = &eta
		if out[i].InitialETA == nil {
			initial := eta
			out[i].InitialETA = &initial
		}
		lastVisited = &out[i]
	}
	return out
}

// RideETAs extracts the pickup/dropoff ETA pair for every ride with waiting
// stops, for persistence onto the rides and publication to clients.
func RideETAs(stops []models.Stop) []models.RideStatusUpdate {
	byRide := make(map[string]*models.RideStatusUpdate)
	var order []string
	for i := range stops {
		if stops[i].Status != models.StopWaiting || stops[i].ETA == nil {
			continue
		}
		key := stops[i].RideID.String()
		upd, ok := byRide[key]
		if !ok {
			upd = &models.RideStatusUpdate{RideID: stops[i].RideID}
			byRide[key] = upd
			order = append(order, key)
		}
		switch stops[i].Type {
		case models.StopPickup:
			upd.PickupETA = stops[i].ETA
		case models.StopDropoff:
			upd.DropoffETA = stops[i].ETA
		}
	}
	out := make([]models.RideStatusUpdate, 0, len(order))
	for _, key := range order {
		out = append(out, *byRide[key])
	}
	return out
}
