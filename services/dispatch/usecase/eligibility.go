package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/loopline/dispatch/internal/pkg/logger"
	"github.com/loopline/dispatch/internal/pkg/models"
	"github.com/loopline/dispatch/internal/pkg/routeplan"
	"github.com/loopline/dispatch/internal/utils"
)

// eligibleCandidates returns vehicles able to serve a request, nearest first
// by estimated travel time to the pickup.
func (uc *DispatchUC) eligibleCandidates(ctx context.Context, req *models.Request) ([]models.VehicleCandidate, error) {
	nearby, err := uc.repo.NearbyVehicleIDs(ctx, req.LocationID, req.Pickup,
		uc.cfg.Dispatch.SearchRadiusKm, uc.cfg.Dispatch.CandidateLimit)
	if err != nil {
		return nil, err
	}

	candidates := make([]models.VehicleCandidate, 0, len(nearby))
	for _, vehicleID := range nearby {
		vehicle, err := uc.repo.GetVehicle(ctx, vehicleID)
		if err != nil {
			logger.Warn("Skipping vehicle with unloadable profile",
				logger.String("vehicle_id", vehicleID.String()),
				logger.Err(err))
			continue
		}
		cand, ok := uc.evaluateVehicle(ctx, req, vehicle)
		if !ok {
			continue
		}
		candidates = append(candidates, cand)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].PickupDuration < candidates[j].PickupDuration
	})
	return candidates, nil
}

// evaluateVehicle applies the eligibility rules to one vehicle
func (uc *DispatchUC) evaluateVehicle(ctx context.Context, req *models.Request, vehicle *models.Vehicle) (models.VehicleCandidate, bool) {
	if !vehicle.Online || !vehicle.Available || vehicle.DriverID == nil {
		return models.VehicleCandidate{}, false
	}
	if vehicle.LocationID != req.LocationID {
		return models.VehicleCandidate{}, false
	}

	adaSeats := 0
	if req.IsADA {
		adaSeats = req.Passengers
		if vehicle.Capacity.ADA == 0 {
			return models.VehicleCandidate{}, false
		}
	}
	if !vehicle.Capacity.Fits(req.Passengers, adaSeats) {
		return models.VehicleCandidate{}, false
	}

	route, err := uc.repo.GetActiveRoute(ctx, vehicle.ID)
	if err != nil {
		route = nil
	}
	var stops []models.Stop
	if route != nil {
		stops = route.Stops
	}

	// The party must fit on top of the route's worst concurrent load.
	// Insertion re-validates per-position; this only prunes hopeless vehicles.
	peakPax, peakADA := routeplan.PeakOccupancy(stops)
	if !vehicle.Capacity.Fits(peakPax+req.Passengers, peakADA+adaSeats) {
		return models.VehicleCandidate{}, false
	}

	if !uc.zoneAllowed(ctx, req, vehicle, stops) {
		return models.VehicleCandidate{}, false
	}

	pos := uc.searchPosition(ctx, vehicle, stops)
	dur := uc.pickupDuration(ctx, pos, req.Pickup)

	return models.VehicleCandidate{
		Vehicle:        vehicle,
		Position:       pos,
		PickupDuration: dur,
	}, true
}

// zoneAllowed applies the matching rule. Shared vehicles serve the whole
// location. Priority vehicles serve requests touching their assigned zones
// at either end, falling back to the shared pool only when idle and fallback
// is enabled.
func (uc *DispatchUC) zoneAllowed(ctx context.Context, req *models.Request, vehicle *models.Vehicle, stops []models.Stop) bool {
	if vehicle.MatchingRule != models.MatchingRulePriority {
		return true
	}

	pickupZone := req.PickupZone
	if pickupZone == nil {
		if zone := uc.zoneContaining(ctx, req.LocationID, req.Pickup); zone != nil {
			pickupZone = &zone.ID
		}
	}
	if pickupZone != nil && vehicle.ServesZone(*pickupZone) {
		return true
	}

	dropoffZone := req.DropoffZone
	if dropoffZone == nil {
		if zone := uc.zoneContaining(ctx, req.LocationID, req.Dropoff); zone != nil {
			dropoffZone = &zone.ID
		}
	}
	if dropoffZone != nil && vehicle.ServesZone(*dropoffZone) {
		return true
	}

	return uc.cfg.Dispatch.ZoneFallbackEnabled && !routeplan.HasWaitingStops(stops)
}

// zoneContaining finds the zone whose boundary contains the point, if any
func (uc *DispatchUC) zoneContaining(ctx context.Context, locationID uuid.UUID, point models.Coordinates) *models.Zone {
	zones, err := uc.repo.GetZones(ctx, locationID)
	if err != nil {
		logger.Warn("Failed to load zones", logger.String("location_id", locationID.String()), logger.Err(err))
		return nil
	}
	for i := range zones {
		ring, err := zones[i].Ring()
		if err != nil {
			logger.Warn("Skipping zone with invalid boundary",
				logger.String("zone_id", zones[i].ID.String()),
				logger.Err(err))
			continue
		}
		if utils.PointInPolygon(point, ring) {
			return &zones[i]
		}
	}
	return nil
}

// searchPosition picks the point candidate ordering measures from: the last
// planned stop when the vehicle already has work, else its live position.
func (uc *DispatchUC) searchPosition(ctx context.Context, vehicle *models.Vehicle, stops []models.Stop) models.Coordinates {
	for i := len(stops) - 1; i >= 0; i-- {
		if stops[i].Status == models.StopWaiting {
			return stops[i].Coords
		}
	}
	pos, err := uc.repo.VehiclePosition(ctx, vehicle.ID)
	if err != nil {
		return vehicle.Position
	}
	return pos
}

func (uc *DispatchUC) pickupDuration(ctx context.Context, from, to models.Coordinates) time.Duration {
	dur, err := uc.estimator.Duration(ctx, from, to)
	if err != nil {
		dur, _ = uc.fallback.Duration(ctx, from, to)
	}
	return dur
}
