package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/loopline/dispatch/internal/pkg/logger"
	"github.com/loopline/dispatch/internal/pkg/models"
	"github.com/loopline/dispatch/internal/pkg/retry"
	"github.com/loopline/dispatch/internal/pkg/routeplan"
	"github.com/loopline/dispatch/internal/pkg/travel"
	"github.com/loopline/dispatch/services/rides"
)

// routeLockTTL bounds how long one lifecycle action may hold a vehicle's
// route lock before it expires on its own.
const routeLockTTL = 5 * time.Second

// RideUC implements the ride lifecycle use case interface
type RideUC struct {
	cfg       *models.Config
	repo      rides.RideRepo
	gw        rides.RideGW
	estimator travel.Estimator
	fallback  *travel.HaversineEstimator
	retrier   *retry.Retrier
}

// NewRideUC creates a new ride use case
func NewRideUC(
	cfg *models.Config,
	repo rides.RideRepo,
	gw rides.RideGW,
	estimator travel.Estimator,
	zapLogger *logger.ZapLogger,
) *RideUC {
	retryCfg := retry.DefaultConfig()
	retryCfg.RetryableFunc = func(err error) bool {
		return errors.Is(err, rides.ErrRouteConflict)
	}
	return &RideUC{
		cfg:       cfg,
		repo:      repo,
		gw:        gw,
		estimator: estimator,
		fallback:  travel.NewHaversineEstimator(cfg.Travel.AverageSpeedKmh),
		retrier:   retry.New(retryCfg, zapLogger),
	}
}

func (uc *RideUC) dwell() time.Duration {
	return time.Duration(uc.cfg.Rides.StopDwellSeconds) * time.Second
}

func (uc *RideUC) livePosition(ctx context.Context, vehicle *models.Vehicle) models.Coordinates {
	pos, err := uc.repo.VehiclePosition(ctx, vehicle.ID)
	if err != nil {
		return vehicle.Position
	}
	return pos
}

// mutateRoute applies one structural change to a vehicle's active route under
// the route lock, re-propagates ETAs from the vehicle's live position, and
// commits the new order with the version check as backstop. A route left with
// no waiting stops is retired.
func (uc *RideUC) mutateRoute(
	ctx context.Context,
	vehicle *models.Vehicle,
	mutate func(stops []models.Stop, now time.Time) ([]models.Stop, error),
) (*models.Route, []models.Stop, time.Time, error) {
	locked, err := uc.repo.AcquireRouteLock(ctx, vehicle.ID, routeLockTTL)
	if err != nil {
		return nil, nil, time.Time{}, err
	}
	if !locked {
		return nil, nil, time.Time{}, fmt.Errorf("route of vehicle %s is locked", vehicle.ID)
	}
	defer func() {
		if err := uc.repo.ReleaseRouteLock(ctx, vehicle.ID); err != nil {
			logger.Warn("Failed to release route lock",
				logger.String("vehicle_id", vehicle.ID.String()),
				logger.Err(err))
		}
	}()

	durFn := travel.BindDuration(ctx, uc.estimator, uc.fallback)

	var (
		route    *models.Route
		newStops []models.Stop
		now      time.Time
	)
	err = uc.retrier.Execute(ctx, func(ctx context.Context) error {
		var err error
		route, err = uc.repo.GetActiveRoute(ctx, vehicle.ID)
		if err != nil {
			return err
		}

		now = time.Now()
		newStops, err = mutate(route.Stops, now)
		if err != nil {
			return err
		}

		pos := uc.livePosition(ctx, vehicle)
		newStops = routeplan.Propagate(newStops, pos, now, uc.dwell(), durFn)

		if err := uc.repo.ReplaceStops(ctx, route.ID, newStops, route.Version); err != nil {
			return err
		}
		if !routeplan.HasWaitingStops(newStops) {
			if err := uc.repo.RetireRoute(ctx, route.ID); err != nil {
				logger.Warn("Failed to retire finished route",
					logger.String("route_id", route.ID.String()),
					logger.Err(err))
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, time.Time{}, err
	}
	return route, newStops, now, nil
}

// fanOut persists and publishes the shifted statuses and ETAs of every ride
// on the route except the one the caller handles itself. Failures here are
// logged, not returned: the committed stop order is the source of truth and
// the queue poll reconciles clients that missed an event.
func (uc *RideUC) fanOut(ctx context.Context, route *models.Route, stops []models.Stop, exclude uuid.UUID, now time.Time) {
	updates := mergeUpdates(routeplan.DeriveAll(stops), routeplan.RideETAs(stops))

	if len(updates) == 0 {
		return
	}

	// Persist every derived status/ETA pair, the acting ride included; its
	// own event is published by the caller with the rider attached.
	if err := uc.repo.UpdateRideStatuses(ctx, updates); err != nil {
		logger.Warn("Failed to persist shifted ride statuses",
			logger.String("route_id", route.ID.String()),
			logger.Err(err))
	}

	var others []models.RideStatusUpdate
	for _, u := range updates {
		if u.RideID != exclude {
			others = append(others, u)
		}
	}
	for _, u := range others {
		if err := uc.gw.PublishRideStatus(ctx, models.RideStatusEvent{
			RideID:    u.RideID,
			DriverID:  route.DriverID,
			Status:    u.Status,
			ChangedAt: now,
		}); err != nil {
			logger.Warn("Failed to publish shifted ride status",
				logger.String("ride_id", u.RideID.String()),
				logger.Err(err))
		}
		if err := uc.gw.PublishRideETA(ctx, models.RideETAEvent{
			RideID:     u.RideID,
			DriverID:   route.DriverID,
			PickupETA:  u.PickupETA,
			DropoffETA: u.DropoffETA,
			UpdatedAt:  now,
		}); err != nil {
			logger.Warn("Failed to publish shifted ride ETA",
				logger.String("ride_id", u.RideID.String()),
				logger.Err(err))
		}
	}
}

func (uc *RideUC) publishOwnStatus(ctx context.Context, ride *models.Ride, now time.Time) {
	if err := uc.gw.PublishRideStatus(ctx, models.RideStatusEvent{
		RideID:    ride.ID,
		DriverID:  ride.DriverID,
		RiderID:   ride.RiderID,
		Status:    ride.Status,
		ChangedAt: now,
	}); err != nil {
		logger.Warn("Failed to publish ride status",
			logger.String("ride_id", ride.ID.String()),
			logger.Err(err))
	}
}

// mergeUpdates joins derived statuses with propagated ETAs per ride
func mergeUpdates(statuses, etas []models.RideStatusUpdate) []models.RideStatusUpdate {
	byRide := make(map[uuid.UUID]models.RideStatusUpdate, len(etas))
	for _, e := range etas {
		byRide[e.RideID] = e
	}
	out := make([]models.RideStatusUpdate, 0, len(statuses))
	for _, s := range statuses {
		if e, ok := byRide[s.RideID]; ok {
			s.PickupETA = e.PickupETA
			s.DropoffETA = e.DropoffETA
		}
		out = append(out, s)
	}
	return out
}
