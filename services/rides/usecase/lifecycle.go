package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/loopline/dispatch/internal/pkg/logger"
	"github.com/loopline/dispatch/internal/pkg/models"
	"github.com/loopline/dispatch/internal/pkg/routeplan"
	"github.com/loopline/dispatch/internal/pkg/travel"
	"github.com/loopline/dispatch/services/rides"
)

// PickUp records that the rider boarded. The driver is the ground truth, so
// boarding is accepted out of route order; every other ride on the route gets
// its status and ETAs re-derived afterwards.
func (uc *RideUC) PickUp(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.repo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if !ride.Status.PrePickup() {
		return nil, fmt.Errorf("%w: cannot pick up ride in status %d", rides.ErrInvalidTransition, ride.Status)
	}

	vehicle, err := uc.repo.GetVehicle(ctx, ride.VehicleID)
	if err != nil {
		return nil, err
	}

	route, stops, now, err := uc.mutateRoute(ctx, vehicle, func(stops []models.Stop, now time.Time) ([]models.Stop, error) {
		return routeplan.ApplyPickup(stops, rideID, now)
	})
	if err != nil {
		return nil, err
	}

	if err := uc.repo.RecordPickup(ctx, rideID, now); err != nil {
		return nil, err
	}

	ride.Status = models.RideInProgress
	ride.PickedUpAt = &now
	for _, e := range routeplan.RideETAs(stops) {
		if e.RideID == rideID {
			ride.DropoffETA = e.DropoffETA
		}
	}

	uc.publishOwnStatus(ctx, ride, now)
	uc.fanOut(ctx, route, stops, rideID, now)
	return ride, nil
}

// DropOff completes the ride. The pooling flag and traversal counts are
// frozen from the stop order at completion time.
func (uc *RideUC) DropOff(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.repo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.Status != models.RideInProgress {
		return nil, fmt.Errorf("%w: cannot drop off ride in status %d", rides.ErrInvalidTransition, ride.Status)
	}

	vehicle, err := uc.repo.GetVehicle(ctx, ride.VehicleID)
	if err != nil {
		return nil, err
	}

	route, stops, now, err := uc.mutateRoute(ctx, vehicle, func(stops []models.Stop, now time.Time) ([]models.Stop, error) {
		return routeplan.ApplyDropoff(stops, rideID, now)
	})
	if err != nil {
		return nil, err
	}

	pooled := routeplan.Pooled(stops, rideID)
	actions, visits := routeplan.TraversedCounts(stops, rideID)
	if err := uc.repo.RecordDropoff(ctx, rideID, now, pooled, actions, visits); err != nil {
		return nil, err
	}

	ride.Status = models.RideComplete
	ride.DroppedAt = &now
	ride.Pooled = pooled
	ride.ActionsBeforeDropoff = actions
	ride.StopsBeforeDropoff = visits

	uc.publishOwnStatus(ctx, ride, now)
	uc.fanOut(ctx, route, stops, rideID, now)
	return ride, nil
}

// Arrive records the driver's arrival at the ride's pickup. Arrival covers
// every pickup bundled at the same physical visit, and starts the no-show
// window for each of them.
func (uc *RideUC) Arrive(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.repo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if !ride.Status.PrePickup() {
		return nil, fmt.Errorf("%w: cannot arrive for ride in status %d", rides.ErrInvalidTransition, ride.Status)
	}

	vehicle, err := uc.repo.GetVehicle(ctx, ride.VehicleID)
	if err != nil {
		return nil, err
	}

	var arrivedIDs []uuid.UUID
	route, stops, now, err := uc.mutateRoute(ctx, vehicle, func(stops []models.Stop, now time.Time) ([]models.Stop, error) {
		out, ids, err := routeplan.ApplyArrive(stops, rideID, now)
		if err != nil {
			return nil, err
		}
		arrivedIDs = ids
		return out, nil
	})
	if err != nil {
		return nil, err
	}

	if err := uc.repo.RecordArrival(ctx, arrivedIDs, now); err != nil {
		return nil, err
	}

	ride.Status = models.DriverArrived
	ride.ArrivedAt = &now

	uc.publishOwnStatus(ctx, ride, now)
	uc.fanOut(ctx, route, stops, rideID, now)
	return ride, nil
}

// Cancel removes the ride from the route and stamps it with the cancellation
// variant implied by the source and the ride's progress. A boarded rider
// cannot be cancelled; the ride must complete.
func (uc *RideUC) Cancel(ctx context.Context, rideID uuid.UUID, source models.CancelSource) (*models.Ride, error) {
	ride, err := uc.repo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.Status.Cancelled() {
		return ride, nil
	}

	status, err := uc.cancelStatus(ride, source)
	if err != nil {
		return nil, err
	}

	vehicle, err := uc.repo.GetVehicle(ctx, ride.VehicleID)
	if err != nil {
		return nil, err
	}

	route, stops, now, err := uc.mutateRoute(ctx, vehicle, func(stops []models.Stop, now time.Time) ([]models.Stop, error) {
		return routeplan.ApplyCancel(stops, rideID)
	})
	if err != nil {
		return nil, err
	}

	if err := uc.repo.RecordCancel(ctx, rideID, status, source, now); err != nil {
		return nil, err
	}

	ride.Status = status
	ride.CancelledBy = &source
	ride.CancelledAt = &now

	logger.Info("Ride cancelled",
		logger.String("ride_id", rideID.String()),
		logger.String("source", string(source)),
		logger.Int("status", int(status)))

	uc.publishOwnStatus(ctx, ride, now)
	uc.fanOut(ctx, route, stops, rideID, now)
	return ride, nil
}

// cancelStatus maps who cancelled, and where the ride stood, to the
// wire-stable cancellation variant
func (uc *RideUC) cancelStatus(ride *models.Ride, source models.CancelSource) (models.RideStatus, error) {
	if !ride.Status.PrePickup() {
		return 0, fmt.Errorf("%w: cannot cancel ride in status %d", rides.ErrInvalidTransition, ride.Status)
	}
	switch source {
	case models.CancelSourceRider, models.CancelSourceAdmin:
		if ride.Status == models.RideInQueue || ride.Status == models.NextInQueue {
			return models.CancelledInQueue, nil
		}
		return models.CancelledEnRoute, nil
	case models.CancelSourceDriver:
		return models.CancelledNotAble, nil
	case models.CancelSourceNoShow:
		if ride.ArrivedAt == nil {
			return 0, fmt.Errorf("%w: driver has not arrived", rides.ErrInvalidTransition)
		}
		wait := time.Duration(uc.cfg.Rides.ArrivedWaitSeconds) * time.Second
		if time.Since(*ride.ArrivedAt) < wait {
			return 0, rides.ErrNoShowTooEarly
		}
		return models.CancelledNoShow, nil
	default:
		return 0, fmt.Errorf("%w: unknown cancel source %q", rides.ErrInvalidTransition, source)
	}
}

// Hail creates a ride for a walk-up passenger the driver boarded on the spot.
// The pickup is the vehicle's current position and completes immediately, so
// the rider only ever adds a dropoff to the route.
func (uc *RideUC) Hail(ctx context.Context, hail rides.HailRequest) (*models.Ride, error) {
	if hail.Passengers < 1 {
		return nil, fmt.Errorf("%w: a hail needs at least one passenger", rides.ErrInvalidTransition)
	}

	vehicle, err := uc.repo.GetVehicle(ctx, hail.VehicleID)
	if err != nil {
		return nil, err
	}
	if !vehicle.Online || vehicle.DriverID == nil {
		return nil, fmt.Errorf("%w: vehicle %s is not in service", rides.ErrInvalidTransition, vehicle.ID)
	}
	adaSeats := 0
	if hail.IsADA {
		if vehicle.Capacity.ADA == 0 {
			return nil, fmt.Errorf("%w: vehicle %s has no accessible capacity", rides.ErrInvalidTransition, vehicle.ID)
		}
		adaSeats = hail.Passengers
	}

	locked, err := uc.repo.AcquireRouteLock(ctx, vehicle.ID, routeLockTTL)
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, fmt.Errorf("route of vehicle %s is locked", vehicle.ID)
	}
	defer func() {
		if err := uc.repo.ReleaseRouteLock(ctx, vehicle.ID); err != nil {
			logger.Warn("Failed to release route lock",
				logger.String("vehicle_id", vehicle.ID.String()),
				logger.Err(err))
		}
	}()

	rideID := uuid.New()
	durFn := travel.BindDuration(ctx, uc.estimator, uc.fallback)

	var (
		ride     *models.Ride
		route    *models.Route
		newStops []models.Stop
		now      time.Time
	)
	err = uc.retrier.Execute(ctx, func(ctx context.Context) error {
		route, err = uc.repo.GetActiveRoute(ctx, vehicle.ID)
		if err != nil && !errors.Is(err, rides.ErrRouteNotFound) {
			return err
		}

		pos := uc.livePosition(ctx, vehicle)
		pickup := models.Stop{
			RideID:        rideID,
			Type:          models.StopPickup,
			Status:        models.StopWaiting,
			Coords:        pos,
			Passengers:    hail.Passengers,
			ADAPassengers: adaSeats,
		}
		dropoff := models.Stop{
			RideID:        rideID,
			Type:          models.StopDropoff,
			Status:        models.StopWaiting,
			Coords:        hail.Dropoff,
			Passengers:    hail.Passengers,
			ADAPassengers: adaSeats,
		}

		var stops []models.Stop
		if route != nil {
			stops = route.Stops
		}
		newStops, err = routeplan.InsertBoarded(stops, pickup, dropoff, vehicle.Capacity, pos, durFn)
		if err != nil {
			return err
		}

		now = time.Now()
		// The passenger is already aboard.
		newStops, err = routeplan.ApplyPickup(newStops, rideID, now)
		if err != nil {
			return err
		}
		newStops = routeplan.Propagate(newStops, pos, now, uc.dwell(), durFn)

		if route == nil {
			route = &models.Route{
				ID:             uuid.New(),
				VehicleID:      vehicle.ID,
				DriverID:       *vehicle.DriverID,
				Active:         true,
				Stops:          newStops,
				Version:        0,
				FirstRequestAt: now,
				LastUpdate:     now,
			}
			if err := uc.repo.CreateRoute(ctx, route); err != nil {
				return err
			}
		} else if err := uc.repo.ReplaceStops(ctx, route.ID, newStops, route.Version); err != nil {
			return err
		}

		ride = &models.Ride{
			ID:          rideID,
			DriverID:    route.DriverID,
			VehicleID:   vehicle.ID,
			LocationID:  vehicle.LocationID,
			Status:      models.RideInProgress,
			Passengers:  hail.Passengers,
			IsADA:       hail.IsADA,
			Pickup:      pos,
			Dropoff:     hail.Dropoff,
			RequestedAt: now,
			MatchedAt:   now,
			PickedUpAt:  &now,
		}
		for _, e := range routeplan.RideETAs(newStops) {
			if e.RideID == rideID {
				ride.DropoffETA = e.DropoffETA
			}
		}
		return uc.repo.CreateRide(ctx, ride)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Hail boarded",
		logger.String("ride_id", ride.ID.String()),
		logger.String("vehicle_id", vehicle.ID.String()),
		logger.Int("passengers", hail.Passengers))

	uc.publishOwnStatus(ctx, ride, now)
	uc.fanOut(ctx, route, newStops, rideID, now)
	return ride, nil
}
