package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/loopline/dispatch/internal/pkg/logger"
	"github.com/loopline/dispatch/internal/pkg/models"
	"github.com/loopline/dispatch/internal/pkg/routeplan"
	"github.com/loopline/dispatch/internal/pkg/travel"
	"github.com/loopline/dispatch/services/rides"
)

// DriverQueue returns the ordered rides on the driver's active route, with
// statuses and ETAs derived from the current stop order. An idle driver gets
// an empty queue, not an error.
func (uc *RideUC) DriverQueue(ctx context.Context, driverID uuid.UUID) (*models.DriverQueue, error) {
	vehicle, err := uc.repo.GetVehicleByDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}

	queue := &models.DriverQueue{
		DriverID:  driverID,
		VehicleID: vehicle.ID,
	}

	route, err := uc.repo.GetActiveRouteByDriver(ctx, driverID)
	if errors.Is(err, rides.ErrRouteNotFound) {
		return queue, nil
	}
	if err != nil {
		return nil, err
	}
	route = uc.freshen(ctx, vehicle.ID, vehicle.Position, route)
	queue.RouteID = &route.ID

	ids := routeplan.WaitingRideIDs(route.Stops)
	if len(ids) == 0 {
		return queue, nil
	}
	rideList, err := uc.repo.GetRidesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*models.Ride, len(rideList))
	for _, r := range rideList {
		byID[r.ID] = r
	}

	current := make(map[uuid.UUID]bool)
	for _, i := range routeplan.ActiveBundle(route.Stops) {
		current[route.Stops[i].RideID] = true
	}
	etas := make(map[uuid.UUID]models.RideStatusUpdate)
	for _, e := range routeplan.RideETAs(route.Stops) {
		etas[e.RideID] = e
	}

	for _, id := range ids {
		ride, ok := byID[id]
		if !ok {
			logger.Warn("Route references a missing ride",
				logger.String("route_id", route.ID.String()),
				logger.String("ride_id", id.String()))
			continue
		}
		status, ok := routeplan.DeriveStatus(route.Stops, id)
		if !ok {
			status = ride.Status
		}
		entry := models.QueueEntry{
			RideID:     id,
			RiderID:    ride.RiderID,
			Status:     status,
			Passengers: ride.Passengers,
			IsADA:      ride.IsADA,
			Hailed:     ride.Hailed(),
			Current:    current[id],
			Pickup:     ride.Pickup,
			Dropoff:    ride.Dropoff,
		}
		if e, ok := etas[id]; ok {
			entry.PickupETA = e.PickupETA
			entry.DropoffETA = e.DropoffETA
		}
		queue.Entries = append(queue.Entries, entry)
	}
	return queue, nil
}

// DriverActions returns the physical visits ahead of the driver, in order.
// Waiting stops of the same type served at one location collapse into a
// single action carrying every ride handled there.
func (uc *RideUC) DriverActions(ctx context.Context, driverID uuid.UUID) ([]models.DriverAction, error) {
	vehicle, err := uc.repo.GetVehicleByDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}

	route, err := uc.repo.GetActiveRouteByDriver(ctx, driverID)
	if errors.Is(err, rides.ErrRouteNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	route = uc.freshen(ctx, vehicle.ID, vehicle.Position, route)

	var actions []models.DriverAction
	var last *models.Stop
	for i := range route.Stops {
		s := route.Stops[i]
		if s.Status != models.StopWaiting {
			continue
		}
		if last == nil || !last.SameLocation(s) || actions[len(actions)-1].Type != s.Type {
			actions = append(actions, models.DriverAction{
				Type:        s.Type,
				Coords:      s.Coords,
				FixedStopID: s.FixedStopID,
				ETA:         s.ETA,
			})
		}
		cur := &actions[len(actions)-1]
		cur.RideIDs = append(cur.RideIDs, s.RideID)
		cur.Passengers += s.Passengers
		ls := s
		last = &ls
	}
	if len(actions) > 0 {
		actions[0].Current = true
	}
	return actions, nil
}

// freshen re-propagates ETAs when the stored route has outlived the staleness
// window. Best effort: when the lock is held or the version moved underneath,
// the stored order is served as is and the next poll retries.
func (uc *RideUC) freshen(ctx context.Context, vehicleID uuid.UUID, fallbackPos models.Coordinates, route *models.Route) *models.Route {
	staleAfter := time.Duration(uc.cfg.Rides.StaleRouteSeconds) * time.Second
	if time.Since(route.LastUpdate) <= staleAfter || !routeplan.HasWaitingStops(route.Stops) {
		return route
	}

	locked, err := uc.repo.AcquireRouteLock(ctx, vehicleID, routeLockTTL)
	if err != nil || !locked {
		return route
	}
	defer func() {
		if err := uc.repo.ReleaseRouteLock(ctx, vehicleID); err != nil {
			logger.Warn("Failed to release route lock",
				logger.String("vehicle_id", vehicleID.String()),
				logger.Err(err))
		}
	}()

	pos, err := uc.repo.VehiclePosition(ctx, vehicleID)
	if err != nil {
		pos = fallbackPos
	}

	now := time.Now()
	durFn := travel.BindDuration(ctx, uc.estimator, uc.fallback)
	newStops := routeplan.Propagate(route.Stops, pos, now, uc.dwell(), durFn)

	if err := uc.repo.ReplaceStops(ctx, route.ID, newStops, route.Version); err != nil {
		logger.Debug("Skipped stale ETA refresh",
			logger.String("route_id", route.ID.String()),
			logger.Err(err))
		return route
	}

	route.Stops = newStops
	route.Version++
	route.LastUpdate = now
	uc.fanOut(ctx, route, newStops, uuid.Nil, now)
	return route
}
