// Package travel produces point-to-point travel time estimates for route
// planning. The production stack layers a Redis cache over an OSRM routing
// engine, with a straight-line fallback when the engine is unreachable.
package travel

import (
	"context"
	"time"

	"github.com/loopline/dispatch/internal/pkg/logger"
	"github.com/loopline/dispatch/internal/pkg/models"
	"github.com/loopline/dispatch/internal/pkg/routeplan"
	"github.com/loopline/dispatch/internal/utils"
)

// Estimator estimates driving time between two points.
type Estimator interface {
	Duration(ctx context.Context, from, to models.Coordinates) (time.Duration, error)
}

// HaversineEstimator approximates travel time from straight-line distance at
// a configured average speed. It never fails, which makes it the terminal
// fallback in the estimator chain.
type HaversineEstimator struct {
	speedKmh float64
}

// NewHaversineEstimator creates a fallback estimator. A non-positive speed
// defaults to 25 km/h, a reasonable shuttle average in mixed traffic.
func NewHaversineEstimator(speedKmh float64) *HaversineEstimator {
	if speedKmh <= 0 {
		speedKmh = 25.0
	}
	return &HaversineEstimator{speedKmh: speedKmh}
}

// Duration returns the straight-line travel time estimate.
func (h *HaversineEstimator) Duration(_ context.Context, from, to models.Coordinates) (time.Duration, error) {
	distKm := utils.CalculateDistanceKm(from, to)
	hours := distKm / h.speedKmh
	return time.Duration(hours * float64(time.Hour)), nil
}

// BindDuration adapts an estimator into the closure form the route planner
// consumes. Estimator failures degrade to the fallback so a planning pass
// always completes; the error is logged once per leg.
func BindDuration(ctx context.Context, est Estimator, fallback *HaversineEstimator) routeplan.DurationFunc {
	return func(from, to models.Coordinates) time.Duration {
		d, err := est.Duration(ctx, from, to)
		if err == nil {
			return d
		}
		logger.Warn("Travel estimate failed, using fallback",
			logger.Float64("from_lat", from.Latitude),
			logger.Float64("from_lng", from.Longitude),
			logger.Float64("to_lat", to.Latitude),
			logger.Float64("to_lng", to.Longitude),
			logger.Err(err))
		d, _ = fallback.Duration(ctx, from, to)
		return d
	}
}
