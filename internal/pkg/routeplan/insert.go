package routeplan

import (
	"time"

	"github.com/loopline/dispatch/internal/pkg/models"
)

// Insert computes the best capacity-safe placement of a new pickup/dropoff
// pair on the vehicle's current stop order and returns the resulting order.
// The input slice is never modified.
//
// Placement follows two rules, in that order:
//  1. bundling is a hard preference: a pickup co-located with an existing
//     stop (same fixed stop or same coordinates) wins whenever any such
//     placement is capacity-feasible, because it adds zero detour;
//  2. among the rest, minimize travel time added versus the unmodified
//     route, ties resolving to the earliest position pair.
//
// Positions before the active stop are never considered: the driver's next
// physical action is not displaced by a new match.
func Insert(stops []models.Stop, pickup, dropoff models.Stop, cap models.Capacity, pos models.Coordinates, dur DurationFunc) ([]models.Stop, error) {
	pickup.Status = models.StopWaiting
	dropoff.Status = models.StopWaiting

	active := ActiveIndex(stops)
	if active < 0 {
		// Empty (or fully served) route: the new pair is the whole plan.
		out := append(cloneStops(stops), pickup, dropoff)
		if !fitsCapacity(out, cap) {
			return nil, ErrNoFeasibleInsertion
		}
		return out, nil
	}

	baseCost := planDuration(stops, pos, dur)

	type candidate struct {
		p, d    int
		bundled bool
		added   time.Duration
	}
	var best *candidate

	better := func(a, b *candidate) bool {
		if b == nil {
			return true
		}
		if a.bundled != b.bundled {
			return a.bundled
		}
		if a.added != b.added {
			return a.added < b.added
		}
		if a.p != b.p {
			return a.p < b.p
		}
		return a.d < b.d
	}

	n := len(stops)
	for p := active + 1; p <= n; p++ {
		for d := p + 1; d <= n+1; d++ {
			trial := insertAt(stops, p, pickup)
			trial = insertAt(trial, d, dropoff)
			if !fitsCapacity(trial, cap) {
				continue
			}
			c := &candidate{
				p:       p,
				d:       d,
				bundled: bundlesWith(trial, p),
				added:   planDuration(trial, pos, dur) - baseCost,
			}
			if better(c, best) {
				best = c
			}
		}
	}

	if best == nil {
		return nil, ErrNoFeasibleInsertion
	}
	out := insertAt(stops, best.p, pickup)
	return insertAt(out, best.d, dropoff), nil
}

// InsertBoarded places a stop pair whose pickup has already physically
// happened: the party is aboard at the vehicle's position. The pickup is
// pinned to the head of the waiting region so every capacity prefix from the
// vehicle's next action onward carries the boarded party; only the dropoff
// position is chosen, by the same bundling-then-added-time rule as Insert.
func InsertBoarded(stops []models.Stop, pickup, dropoff models.Stop, cap models.Capacity, pos models.Coordinates, dur DurationFunc) ([]models.Stop, error) {
	pickup.Status = models.StopWaiting
	dropoff.Status = models.StopWaiting

	head := ActiveIndex(stops)
	if head < 0 {
		head = len(stops)
	}
	withPickup := insertAt(stops, head, pickup)
	baseCost := planDuration(stops, pos, dur)

	type candidate struct {
		d       int
		bundled bool
		added   time.Duration
	}
	var best *candidate
	for d := head + 1; d <= len(withPickup); d++ {
		trial := insertAt(withPickup, d, dropoff)
		if !fitsCapacity(trial, cap) {
			continue
		}
		c := &candidate{
			d:       d,
			bundled: bundlesWith(trial, d),
			added:   planDuration(trial, pos, dur) - baseCost,
		}
		if best == nil || (c.bundled && !best.bundled) ||
			(c.bundled == best.bundled && c.added < best.added) {
			best = c
		}
	}
	if best == nil {
		return nil, ErrNoFeasibleInsertion
	}
	return insertAt(withPickup, best.d, dropoff), nil
}

// bundlesWith reports whether the stop at index i shares its physical
// location with an adjacent non-cancelled stop.
func bundlesWith(stops []models.Stop, i int) bool {
	for j := i - 1; j >= 0; j-- {
		if stops[j].Status == models.StopCancelled {
			continue
		}
		if stops[j].SameLocation(stops[i]) {
			return true
		}
		break
	}
	for j := i + 1; j < len(stops); j++ {
		if stops[j].Status == models.StopCancelled {
			continue
		}
		if stops[j].SameLocation(stops[i]) {
			return true
		}
		break
	}
	return false
}

// planDuration sums estimated travel over the waiting stops in order,
// starting from the vehicle's current position. Bundled consecutive stops
// contribute a zero-length leg.
func planDuration(stops []models.Stop, pos models.Coordinates, dur DurationFunc) time.Duration {
	var total time.Duration
	prev := pos
	var last *models.Stop
	for i := range stops {
		if stops[i].Status != models.StopWaiting {
			continue
		}
		if last == nil || !last.SameLocation(stops[i]) {
			total += dur(prev, stops[i].Coords)
			prev = stops[i].Coords
		}
		last = &stops[i]
	}
	return total
}

// insertAt returns a copy of stops with s inserted before index i.
func insertAt(stops []models.Stop, i int, s models.Stop) []models.Stop {
	out := make([]models.Stop, 0, len(stops)+1)
	out = append(out, stops[:i]...)
	out = append(out, s)
	out = append(out, stops[i:]...)
	return out
}

func cloneStops(stops []models.Stop) []models.Stop {
	out := make([]models.Stop, len(stops))
	copy(out, stops)
	return out
}
