package gateway

import (
	"context"
	"time"

	"github.com/loopline/dispatch/internal/pkg/constants"
	"github.com/loopline/dispatch/internal/pkg/logger"
	"github.com/loopline/dispatch/internal/pkg/models"
	natspkg "github.com/loopline/dispatch/internal/pkg/nats"
	"github.com/loopline/dispatch/services/dispatch"
)

// dispatchGW publishes dispatch events to NATS
type dispatchGW struct {
	natsClient *natspkg.Client
}

// NewDispatchGW creates a new NATS gateway instance
func NewDispatchGW(client *natspkg.Client) dispatch.DispatchGW {
	return &dispatchGW{
		natsClient: client,
	}
}

// PublishRequestCreated announces a new transport request
func (g *dispatchGW) PublishRequestCreated(ctx context.Context, req *models.Request) error {
	event := models.RequestCreatedEvent{
		RequestID:  req.ID,
		LocationID: req.LocationID,
		CreatedAt:  req.RequestedAt,
	}
	return g.natsClient.PublishJSON(constants.SubjectRequestCreated, event)
}

// PublishRequestMissed announces a request that found no eligible vehicle
func (g *dispatchGW) PublishRequestMissed(ctx context.Context, missed *models.MissedRequest, retries int) error {
	event := models.RequestMissedEvent{
		RequestID:  missed.RequestID,
		LocationID: missed.LocationID,
		Retries:    retries,
		MissedAt:   missed.MissedAt,
	}
	return g.natsClient.PublishJSON(constants.SubjectRequestMissed, event)
}

// PublishRideMatched announces a committed match
func (g *dispatchGW) PublishRideMatched(ctx context.Context, ride *models.Ride) error {
	logger.Info("Publishing ride matched event",
		logger.String("ride_id", ride.ID.String()),
		logger.String("vehicle_id", ride.VehicleID.String()))

	event := models.RideMatchedEvent{
		RideID:     ride.ID,
		RequestID:  ride.RequestID,
		DriverID:   ride.DriverID,
		VehicleID:  ride.VehicleID,
		PickupETA:  ride.PickupETA,
		DropoffETA: ride.DropoffETA,
		MatchedAt:  ride.MatchedAt,
	}
	return g.natsClient.PublishJSON(constants.SubjectRideMatched, event)
}

// PublishRideStatus announces a derived status change on an already matched ride
func (g *dispatchGW) PublishRideStatus(ctx context.Context, event models.RideStatusEvent) error {
	if event.ChangedAt.IsZero() {
		event.ChangedAt = time.Now()
	}
	return g.natsClient.PublishJSON(constants.SubjectRideStatus, event)
}

// PublishRideETA announces refreshed ETAs on an already matched ride
func (g *dispatchGW) PublishRideETA(ctx context.Context, event models.RideETAEvent) error {
	if event.UpdatedAt.IsZero() {
		event.UpdatedAt = time.Now()
	}
	return g.natsClient.PublishJSON(constants.SubjectRideETA, event)
}
