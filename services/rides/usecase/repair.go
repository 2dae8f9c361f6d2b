package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/loopline/dispatch/internal/pkg/logger"
	"github.com/loopline/dispatch/internal/pkg/models"
	"github.com/loopline/dispatch/internal/pkg/routeplan"
	"github.com/loopline/dispatch/services/rides"
)

// RepairRoute re-aligns a vehicle's stop order with the persisted ride
// states. Rides cancelled or completed outside the normal flow can leave
// stops behind that block the route; the repair replays the missing
// transitions onto the order, re-propagates, and fans the corrected
// statuses out.
func (uc *RideUC) RepairRoute(ctx context.Context, vehicleID uuid.UUID) error {
	vehicle, err := uc.repo.GetVehicle(ctx, vehicleID)
	if err != nil {
		return err
	}

	if _, err := uc.repo.GetActiveRoute(ctx, vehicleID); err != nil {
		if errors.Is(err, rides.ErrRouteNotFound) {
			return nil
		}
		return err
	}

	route, stops, now, err := uc.mutateRoute(ctx, vehicle, func(stops []models.Stop, now time.Time) ([]models.Stop, error) {
		return uc.reconcileStops(ctx, stops, now)
	})
	if err != nil {
		return err
	}

	logger.Info("Repaired route",
		logger.String("route_id", route.ID.String()),
		logger.String("vehicle_id", vehicleID.String()))

	uc.fanOut(ctx, route, stops, uuid.Nil, now)
	return nil
}

// reconcileStops replays onto the stop order the lifecycle transitions the
// ride rows already carry. The ride table wins: it is written before the
// fan-out, so it is the later truth when the two drift apart.
func (uc *RideUC) reconcileStops(ctx context.Context, stops []models.Stop, now time.Time) ([]models.Stop, error) {
	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	for i := range stops {
		if stops[i].Status == models.StopCancelled || seen[stops[i].RideID] {
			continue
		}
		seen[stops[i].RideID] = true
		ids = append(ids, stops[i].RideID)
	}
	if len(ids) == 0 {
		return stops, nil
	}

	rideList, err := uc.repo.GetRidesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := stops
	for _, ride := range rideList {
		switch {
		case ride.Status.Cancelled():
			out = applyTolerant(out, func(s []models.Stop) ([]models.Stop, error) {
				return routeplan.ApplyCancel(s, ride.ID)
			})
		case ride.Status == models.RideInProgress:
			out = applyTolerant(out, func(s []models.Stop) ([]models.Stop, error) {
				return routeplan.ApplyPickup(s, ride.ID, pickupTime(ride, now))
			})
		case ride.Status == models.RideComplete:
			out = applyTolerant(out, func(s []models.Stop) ([]models.Stop, error) {
				return routeplan.ApplyPickup(s, ride.ID, pickupTime(ride, now))
			})
			out = applyTolerant(out, func(s []models.Stop) ([]models.Stop, error) {
				return routeplan.ApplyDropoff(s, ride.ID, now)
			})
		}
	}
	return out, nil
}

// applyTolerant applies a stop transition, keeping the input when the order
// already reflects it
func applyTolerant(stops []models.Stop, apply func([]models.Stop) ([]models.Stop, error)) []models.Stop {
	out, err := apply(stops)
	if err != nil {
		return stops
	}
	return out
}

func pickupTime(ride *models.Ride, now time.Time) time.Time {
	if ride.PickedUpAt != nil {
		return *ride.PickedUpAt
	}
	return now
}
