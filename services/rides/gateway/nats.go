package gateway

import (
	"context"
	"time"

	"github.com/loopline/dispatch/internal/pkg/constants"
	"github.com/loopline/dispatch/internal/pkg/models"
	natspkg "github.com/loopline/dispatch/internal/pkg/nats"
	"github.com/loopline/dispatch/services/rides"
)

// rideGW publishes ride lifecycle events to NATS
type rideGW struct {
	natsClient *natspkg.Client
}

// NewRideGW creates a new NATS gateway instance
func NewRideGW(client *natspkg.Client) rides.RideGW {
	return &rideGW{
		natsClient: client,
	}
}

// PublishRideStatus announces a ride status transition
func (g *rideGW) PublishRideStatus(ctx context.Context, event models.RideStatusEvent) error {
	if event.ChangedAt.IsZero() {
		event.ChangedAt = time.Now()
	}
	return g.natsClient.PublishJSON(constants.SubjectRideStatus, event)
}

// PublishRideETA announces refreshed ETAs for a ride
func (g *rideGW) PublishRideETA(ctx context.Context, event models.RideETAEvent) error {
	if event.UpdatedAt.IsZero() {
		event.UpdatedAt = time.Now()
	}
	return g.natsClient.PublishJSON(constants.SubjectRideETA, event)
}
