package dispatch

import (
	"context"

	"github.com/loopline/dispatch/internal/pkg/models"
)

// DispatchGW defines the interface for dispatch gateway operations
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/loopline/dispatch/services/dispatch DispatchGW
type DispatchGW interface {
	PublishRequestCreated(ctx context.Context, req *models.Request) error
	PublishRequestMissed(ctx context.Context, missed *models.MissedRequest, retries int) error
	PublishRideMatched(ctx context.Context, ride *models.Ride) error
	PublishRideStatus(ctx context.Context, event models.RideStatusEvent) error
	PublishRideETA(ctx context.Context, event models.RideETAEvent) error
}
