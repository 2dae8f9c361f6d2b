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
	"github.com/loopline/dispatch/services/dispatch"
)

type searchOutcome int

const (
	outcomeSkipped searchOutcome = iota
	outcomeMatched
	outcomeUnmatched
	outcomeMissed
	outcomeCancelled
)

// RunSweep evaluates every searching request oldest first. Each pass is
// idempotent: matched and claimed requests are skipped, so overlapping
// sweeps never double-assign.
func (uc *DispatchUC) RunSweep(ctx context.Context) (*models.SweepSummary, error) {
	requests, err := uc.repo.ListSearchingRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests for sweep: %w", err)
	}

	summary := &models.SweepSummary{}
	for _, req := range requests {
		outcome, err := uc.processRequest(ctx, req)
		if err != nil {
			logger.Error("Sweep failed to process request",
				logger.String("request_id", req.ID.String()),
				logger.Err(err))
			continue
		}
		switch outcome {
		case outcomeSkipped:
			continue
		case outcomeMatched:
			summary.Matched++
		case outcomeUnmatched:
			summary.Unmatched++
		case outcomeMissed:
			summary.Missed++
		case outcomeCancelled:
			summary.Cancelled++
		}
		summary.Evaluated++
	}
	return summary, nil
}

// SearchRequest runs the matching pass for a single request, used when a
// fresh submission should not wait for the next periodic sweep
func (uc *DispatchUC) SearchRequest(ctx context.Context, requestID uuid.UUID) error {
	req, err := uc.repo.GetRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if req.Status != models.RequestSearching {
		return nil
	}
	_, err = uc.processRequest(ctx, req)
	return err
}

func (uc *DispatchUC) processRequest(ctx context.Context, req *models.Request) (searchOutcome, error) {
	if req.Processing {
		return outcomeSkipped, nil
	}
	claimed, err := uc.repo.ClaimRequest(ctx, req.ID)
	if err != nil {
		return outcomeSkipped, err
	}
	if !claimed {
		return outcomeSkipped, nil
	}

	now := time.Now()

	// Requests past the search timeout are cancelled rather than left to
	// spin forever; the missed event carries the no-availability notice.
	timeout := time.Duration(uc.cfg.Dispatch.SearchTimeout) * time.Second
	if now.Sub(req.RequestedAt) > timeout {
		return uc.expireRequest(ctx, req, now)
	}

	candidates, err := uc.eligibleCandidates(ctx, req)
	if err != nil {
		uc.release(ctx, req.ID)
		return outcomeSkipped, err
	}

	if len(candidates) == 0 {
		if err := uc.recordMissed(ctx, req, now); err != nil {
			uc.release(ctx, req.ID)
			return outcomeSkipped, err
		}
		uc.release(ctx, req.ID)
		return outcomeMissed, nil
	}

	for _, cand := range candidates {
		ride, err := uc.tryMatch(ctx, req, cand)
		if err != nil {
			logger.Debug("Candidate could not take the request",
				logger.String("request_id", req.ID.String()),
				logger.String("vehicle_id", cand.Vehicle.ID.String()),
				logger.Err(err))
			continue
		}

		if err := uc.repo.MarkRequestMatched(ctx, req.ID, ride.ID); err != nil {
			// The ride exists but the request still reads as searching. Drop
			// the claim so the next sweep can reconcile it.
			uc.release(ctx, req.ID)
			return outcomeSkipped, err
		}
		if err := uc.gw.PublishRideMatched(ctx, ride); err != nil {
			logger.Warn("Failed to publish ride matched event",
				logger.String("ride_id", ride.ID.String()),
				logger.Err(err))
		}
		return outcomeMatched, nil
	}

	if err := uc.repo.IncrementSearchRetries(ctx, req.ID); err != nil {
		logger.Warn("Failed to bump search retries",
			logger.String("request_id", req.ID.String()),
			logger.Err(err))
	}
	uc.release(ctx, req.ID)
	return outcomeUnmatched, nil
}

// tryMatch attempts to place the request on one candidate vehicle. The whole
// read-insert-commit section runs under the vehicle's route lock; the version
// check on the stop write remains the correctness backstop, retried on
// conflict.
func (uc *DispatchUC) tryMatch(ctx context.Context, req *models.Request, cand models.VehicleCandidate) (*models.Ride, error) {
	vehicle := cand.Vehicle

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
	pickup := models.Stop{
		RideID:        rideID,
		Type:          models.StopPickup,
		Status:        models.StopWaiting,
		Coords:        req.Pickup,
		FixedStopID:   req.PickupFixedStop,
		Passengers:    req.Passengers,
		ADAPassengers: adaSeats(req),
	}
	dropoff := models.Stop{
		RideID:        rideID,
		Type:          models.StopDropoff,
		Status:        models.StopWaiting,
		Coords:        req.Dropoff,
		FixedStopID:   req.DropoffFixedStop,
		Passengers:    req.Passengers,
		ADAPassengers: adaSeats(req),
	}

	durFn := travel.BindDuration(ctx, uc.estimator, uc.fallback)

	var ride *models.Ride
	err = uc.retrier.Execute(ctx, func(ctx context.Context) error {
		route, err := uc.repo.GetActiveRoute(ctx, vehicle.ID)
		if err != nil && !errors.Is(err, dispatch.ErrRouteNotFound) {
			return err
		}

		pos := uc.livePosition(ctx, vehicle)
		var stops []models.Stop
		if route != nil {
			stops = route.Stops
		}

		newStops, err := routeplan.Insert(stops, pickup, dropoff, vehicle.Capacity, pos, durFn)
		if err != nil {
			return err
		}

		now := time.Now()
		newStops = routeplan.Propagate(newStops, pos, now, uc.dwell(), durFn)

		created := route == nil
		if created {
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

		ride, err = uc.commitRide(ctx, req, vehicle, route, rideID, newStops, now)
		if err != nil {
			// The stop order landed but the ride row did not. Undo the stop
			// write so the route never references a ride that does not exist.
			uc.unwindStops(ctx, route, stops, created)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return ride, nil
}

// unwindStops reverts a committed stop order whose ride write failed. A route
// created for the failed match is retired outright; an existing route gets
// its prior stop order written back at the version the commit produced. Both
// run under the vehicle's route lock, so no third writer can interleave.
func (uc *DispatchUC) unwindStops(ctx context.Context, route *models.Route, prior []models.Stop, created bool) {
	var err error
	if created {
		err = uc.repo.RetireRoute(ctx, route.ID)
	} else {
		err = uc.repo.ReplaceStops(ctx, route.ID, prior, route.Version+1)
	}
	if err != nil {
		logger.Error("Failed to restore stop order after ride write failure",
			logger.String("route_id", route.ID.String()),
			logger.Err(err))
	}
}

// commitRide persists the new ride and fans the shifted statuses and ETAs of
// every other ride on the route out to storage and the bus
func (uc *DispatchUC) commitRide(ctx context.Context, req *models.Request, vehicle *models.Vehicle, route *models.Route, rideID uuid.UUID, stops []models.Stop, now time.Time) (*models.Ride, error) {
	status, ok := routeplan.DeriveStatus(stops, rideID)
	if !ok {
		return nil, fmt.Errorf("inserted ride %s has no stops on route %s", rideID, route.ID)
	}

	etas := routeplan.RideETAs(stops)
	updates := mergeUpdates(routeplan.DeriveAll(stops), etas)

	ride := &models.Ride{
		ID:               rideID,
		RequestID:        &req.ID,
		RiderID:          req.RiderID,
		DriverID:         route.DriverID,
		VehicleID:        vehicle.ID,
		LocationID:       req.LocationID,
		Status:           status,
		Passengers:       req.Passengers,
		IsADA:            req.IsADA,
		Pickup:           req.Pickup,
		Dropoff:          req.Dropoff,
		PickupFixedStop:  req.PickupFixedStop,
		DropoffFixedStop: req.DropoffFixedStop,
		RequestedAt:      req.RequestedAt,
		MatchedAt:        now,
	}
	for _, u := range updates {
		if u.RideID == rideID {
			ride.PickupETA = u.PickupETA
			ride.DropoffETA = u.DropoffETA
		}
	}

	if err := uc.repo.CreateRide(ctx, ride); err != nil {
		return nil, err
	}

	var others []models.RideStatusUpdate
	for _, u := range updates {
		if u.RideID != rideID {
			others = append(others, u)
		}
	}
	if err := uc.repo.UpdateRideStatuses(ctx, others); err != nil {
		logger.Warn("Failed to persist shifted ride statuses",
			logger.String("route_id", route.ID.String()),
			logger.Err(err))
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
	return ride, nil
}

// expireRequest cancels a request that outlived the search window
func (uc *DispatchUC) expireRequest(ctx context.Context, req *models.Request, now time.Time) (searchOutcome, error) {
	if err := uc.recordMissed(ctx, req, now); err != nil {
		logger.Warn("Failed to record missed request on expiry",
			logger.String("request_id", req.ID.String()),
			logger.Err(err))
	}
	if err := uc.repo.CancelRequest(ctx, req.ID, now); err != nil {
		return outcomeSkipped, err
	}
	logger.Info("Cancelled request past search timeout",
		logger.String("request_id", req.ID.String()),
		logger.Int("retries", req.SearchRetries))
	return outcomeCancelled, nil
}

func (uc *DispatchUC) recordMissed(ctx context.Context, req *models.Request, now time.Time) error {
	missed := &models.MissedRequest{
		ID:         uuid.New(),
		RequestID:  req.ID,
		LocationID: req.LocationID,
		Passengers: req.Passengers,
		IsADA:      req.IsADA,
		MissedAt:   now,
	}
	if err := uc.repo.CreateMissedRequest(ctx, missed); err != nil {
		return err
	}
	if err := uc.gw.PublishRequestMissed(ctx, missed, req.SearchRetries); err != nil {
		logger.Warn("Failed to publish request missed event",
			logger.String("request_id", req.ID.String()),
			logger.Err(err))
	}
	return nil
}

func (uc *DispatchUC) livePosition(ctx context.Context, vehicle *models.Vehicle) models.Coordinates {
	pos, err := uc.repo.VehiclePosition(ctx, vehicle.ID)
	if err != nil {
		return vehicle.Position
	}
	return pos
}

func (uc *DispatchUC) release(ctx context.Context, requestID uuid.UUID) {
	if err := uc.repo.ReleaseRequest(ctx, requestID); err != nil {
		logger.Warn("Failed to release request claim",
			logger.String("request_id", requestID.String()),
			logger.Err(err))
	}
}

func adaSeats(req *models.Request) int {
	if req.IsADA {
		return req.Passengers
	}
	return 0
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
