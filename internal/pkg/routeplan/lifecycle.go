package routeplan

import (
	"time"

	"github.com/google/uuid"

	"github.com/loopline/dispatch/internal/pkg/models"
)

// ApplyPickup marks the ride's pickup stop completed and returns the new
// order. The pickup may be served out of route order (the driver is the
// ground truth); callers re-propagate ETAs afterwards.
func ApplyPickup(stops []models.Stop, rideID uuid.UUID, now time.Time) ([]models.Stop, error) {
	idx := findStop(stops, rideID, models.StopPickup)
	if idx < 0 {
		return nil, ErrStopNotFound
	}
	if stops[idx].Status == models.StopCompleted {
		return nil, ErrAlreadyPickedUp
	}
	out := cloneStops(stops)
	out[idx].Status = models.StopCompleted
	eta := now
	out[idx].ETA = &eta
	return out, nil
}

// ApplyDropoff marks the ride's dropoff stop completed. A dropoff before its
// own pickup is an illegal transition.
func ApplyDropoff(stops []models.Stop, rideID uuid.UUID, now time.Time) ([]models.Stop, error) {
	pickupIdx := findStop(stops, rideID, models.StopPickup)
	dropoffIdx := findStop(stops, rideID, models.StopDropoff)
	if dropoffIdx < 0 {
		return nil, ErrStopNotFound
	}
	if pickupIdx >= 0 && stops[pickupIdx].Status != models.StopCompleted {
		return nil, ErrNotPickedUp
	}
	if stops[dropoffIdx].Status == models.StopCompleted {
		return nil, ErrAlreadyCompleted
	}
	out := cloneStops(stops)
	out[dropoffIdx].Status = models.StopCompleted
	eta := now
	out[dropoffIdx].ETA = &eta
	return out, nil
}

// ApplyCancel marks both of the ride's stops cancelled and clears their
// ETAs. Cancelling after the dropoff completed is an illegal transition: a
// finished ride cannot be retracted.
func ApplyCancel(stops []models.Stop, rideID uuid.UUID) ([]models.Stop, error) {
	dropoffIdx := findStop(stops, rideID, models.StopDropoff)
	pickupIdx := findStop(stops, rideID, models.StopPickup)
	if dropoffIdx < 0 && pickupIdx < 0 {
		return nil, ErrStopNotFound
	}
	if dropoffIdx >= 0 && stops[dropoffIdx].Status == models.StopCompleted {
		return nil, ErrAlreadyCompleted
	}
	out := cloneStops(stops)
	for i := range out {
		if out[i].RideID == rideID && out[i].Status != models.StopCancelled {
			out[i].Status = models.StopCancelled
			out[i].ETA = nil
		}
	}
	return out, nil
}

// ApplyArrive records the driver's arrival on the ride's pickup stop and on
// every pickup bundled with it at the same location, so that all riders
// boarding at one fixed stop see the arrival together. Returns the new
// order and the ride IDs affected.
//
// Arrival is only legal at the route's current physical visit.
func ApplyArrive(stops []models.Stop, rideID uuid.UUID, now time.Time) ([]models.Stop, []uuid.UUID, error) {
	idx := findStop(stops, rideID, models.StopPickup)
	if idx < 0 {
		return nil, nil, ErrStopNotFound
	}
	if stops[idx].Status != models.StopWaiting {
		return nil, nil, ErrAlreadyPickedUp
	}
	inBundle := false
	for _, i := range ActiveBundle(stops) {
		if i == idx {
			inBundle = true
			break
		}
	}
	if !inBundle {
		return nil, nil, ErrNotArrivable
	}

	out := cloneStops(stops)
	var rideIDs []uuid.UUID
	for _, i := range ActiveBundle(out) {
		if out[i].Type != models.StopPickup || out[i].ArrivedAt != nil {
			continue
		}
		ts := now
		out[i].ArrivedAt = &ts
		rideIDs = append(rideIDs, out[i].RideID)
	}
	return out, rideIDs, nil
}

// TraversedCounts reports how many other stops the rider sat through between
// their own pickup and dropoff: actions counts every stop event, visits
// counts distinct physical locations (a fixed-stop bundle is one visit, and
// a dropoff served at the same visit as the preceding stop does not count
// the shared visit).
func TraversedCounts(stops []models.Stop, rideID uuid.UUID) (actions, visits int) {
	started := false
	var last *models.Stop
	for i := range stops {
		s := stops[i]
		if s.Status == models.StopCancelled {
			continue
		}
		isRide := s.RideID == rideID
		switch {
		case !started && isRide && s.Type == models.StopPickup:
			started = true
		case started && isRide && s.Type == models.StopDropoff:
			if last != nil && last.SameLocation(s) && visits > 0 {
				visits--
			}
			return actions, visits
		case started && !isRide:
			actions++
			if last == nil || !last.SameLocation(s) {
				visits++
			}
		}
		if started {
			ls := s
			last = &ls
		}
	}
	return actions, visits
}

// Pooled reports whether another rider shared the vehicle at any point
// between this ride's pickup and dropoff.
func Pooled(stops []models.Stop, rideID uuid.UUID) bool {
	inRide := false
	othersAboard := 0
	for i := range stops {
		s := stops[i]
		if s.Status == models.StopCancelled {
			continue
		}
		if s.RideID == rideID {
			switch s.Type {
			case models.StopPickup:
				inRide = true
			case models.StopDropoff:
				return othersAboard > 0
			}
			continue
		}
		switch s.Type {
		case models.StopPickup:
			if inRide {
				return true
			}
			othersAboard++
		case models.StopDropoff:
			if !inRide {
				othersAboard--
			}
		}
	}
	return othersAboard > 0
}
