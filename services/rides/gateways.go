package rides

import (
	"context"

	"github.com/loopline/dispatch/internal/pkg/models"
)

// RideGW defines the interface for ride gateway operations
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/loopline/dispatch/services/rides RideGW
type RideGW interface {
	PublishRideStatus(ctx context.Context, event models.RideStatusEvent) error
	PublishRideETA(ctx context.Context, event models.RideETAEvent) error
}
