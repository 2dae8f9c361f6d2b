package routeplan

import (
	"fmt"

	"github.com/loopline/dispatch/internal/pkg/models"
)

// PeakOccupancy returns the maximum concurrent passenger and ADA occupancy
// reached at any prefix of the stop order, cancelled stops excluded. A route
// already serving boarded riders contributes them through its completed
// pickups, so the result is the binding number for remaining-capacity checks.
func PeakOccupancy(stops []models.Stop) (pax, ada int) {
	var curPax, curADA int
	for i := range stops {
		if stops[i].Status == models.StopCancelled {
			continue
		}
		switch stops[i].Type {
		case models.StopPickup:
			curPax += stops[i].Passengers
			curADA += stops[i].ADAPassengers
		case models.StopDropoff:
			curPax -= stops[i].Passengers
			curADA -= stops[i].ADAPassengers
		}
		if curPax > pax {
			pax = curPax
		}
		if curADA > ada {
			ada = curADA
		}
	}
	return pax, ada
}

// fitsCapacity simulates the running occupancy over every prefix and reports
// whether it stays within the vehicle's capacity throughout.
func fitsCapacity(stops []models.Stop, cap models.Capacity) bool {
	pax, ada := PeakOccupancy(stops)
	return pax <= cap.Passengers && ada <= cap.ADA
}

// Validate checks the route invariants: per-prefix occupancy within capacity
// and every ride's pickup preceding its own dropoff. A nil return means the
// stop order is safe to commit.
func Validate(stops []models.Stop, cap models.Capacity) error {
	if !fitsCapacity(stops, cap) {
		pax, ada := PeakOccupancy(stops)
		return fmt.Errorf("occupancy %d/%d exceeds capacity %d/%d", pax, ada, cap.Passengers, cap.ADA)
	}
	pickupSeen := make(map[string]bool)
	for i := range stops {
		if stops[i].Status == models.StopCancelled {
			continue
		}
		key := stops[i].RideID.String()
		switch stops[i].Type {
		case models.StopPickup:
			if pickupSeen[key] {
				return fmt.Errorf("ride %s has duplicate pickup", key)
			}
			pickupSeen[key] = true
		case models.StopDropoff:
			if !pickupSeen[key] {
				return fmt.Errorf("ride %s has dropoff before pickup", key)
			}
		}
	}
	return nil
}
