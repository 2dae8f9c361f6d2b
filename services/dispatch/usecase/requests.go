package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/loopline/dispatch/internal/pkg/logger"
	"github.com/loopline/dispatch/internal/pkg/models"
)

// CreateRequest validates and persists a rider's request, resolving fixed
// stop references to coordinates, and announces it on the bus
func (uc *DispatchUC) CreateRequest(ctx context.Context, req *models.Request) (*models.Request, error) {
	if req.Passengers < 1 {
		return nil, fmt.Errorf("request must carry at least one passenger")
	}

	location, err := uc.repo.GetLocation(ctx, req.LocationID)
	if err != nil {
		return nil, err
	}
	if !location.Active {
		return nil, fmt.Errorf("location %s is not active", location.ID)
	}
	if req.IsADA && !location.IsADA {
		return nil, fmt.Errorf("location %s does not offer ADA service", location.ID)
	}

	if req.PickupFixedStop != nil {
		fs, err := uc.repo.GetFixedStop(ctx, *req.PickupFixedStop)
		if err != nil {
			return nil, err
		}
		req.Pickup = fs.Coords
	}
	if req.DropoffFixedStop != nil {
		fs, err := uc.repo.GetFixedStop(ctx, *req.DropoffFixedStop)
		if err != nil {
			return nil, err
		}
		req.Dropoff = fs.Coords
	}
	if req.Pickup.SamePoint(req.Dropoff) {
		return nil, fmt.Errorf("pickup and dropoff are the same location")
	}

	req.ID = uuid.New()
	req.Status = models.RequestSearching
	req.RequestedAt = time.Now()

	if zone := uc.zoneContaining(ctx, req.LocationID, req.Pickup); zone != nil {
		req.PickupZone = &zone.ID
	}
	if zone := uc.zoneContaining(ctx, req.LocationID, req.Dropoff); zone != nil {
		req.DropoffZone = &zone.ID
	}

	if err := uc.repo.CreateRequest(ctx, req); err != nil {
		return nil, err
	}

	if err := uc.gw.PublishRequestCreated(ctx, req); err != nil {
		logger.Warn("Failed to publish request created event",
			logger.String("request_id", req.ID.String()),
			logger.Err(err))
	}

	return req, nil
}

// GetRequest returns a request by ID
func (uc *DispatchUC) GetRequest(ctx context.Context, requestID uuid.UUID) (*models.Request, error) {
	return uc.repo.GetRequest(ctx, requestID)
}

// CancelRequest cancels a still-searching request on the rider's behalf.
// Matched requests must be cancelled through their ride instead.
func (uc *DispatchUC) CancelRequest(ctx context.Context, requestID uuid.UUID) error {
	req, err := uc.repo.GetRequest(ctx, requestID)
	if err != nil {
		return err
	}
	switch req.Status {
	case models.RequestMatched:
		return fmt.Errorf("request %s is already matched to a ride", requestID)
	case models.RequestCancelled:
		return nil
	}
	return uc.repo.CancelRequest(ctx, requestID, time.Now())
}
