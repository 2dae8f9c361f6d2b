package usecase

import (
	"errors"
	"time"

	"github.com/loopline/dispatch/internal/pkg/logger"
	"github.com/loopline/dispatch/internal/pkg/models"
	"github.com/loopline/dispatch/internal/pkg/retry"
	"github.com/loopline/dispatch/internal/pkg/travel"
	"github.com/loopline/dispatch/services/dispatch"
)

// routeLockTTL bounds how long one match attempt may hold a vehicle's
// route lock before it expires on its own.
const routeLockTTL = 5 * time.Second

// DispatchUC implements the dispatch use case interface
type DispatchUC struct {
	cfg       *models.Config
	repo      dispatch.DispatchRepo
	gw        dispatch.DispatchGW
	estimator travel.Estimator
	fallback  *travel.HaversineEstimator
	retrier   *retry.Retrier
}

// NewDispatchUC creates a new dispatch use case
func NewDispatchUC(
	cfg *models.Config,
	repo dispatch.DispatchRepo,
	gw dispatch.DispatchGW,
	estimator travel.Estimator,
	zapLogger *logger.ZapLogger,
) *DispatchUC {
	retryCfg := retry.DefaultConfig()
	retryCfg.RetryableFunc = func(err error) bool {
		return errors.Is(err, dispatch.ErrRouteConflict)
	}
	return &DispatchUC{
		cfg:       cfg,
		repo:      repo,
		gw:        gw,
		estimator: estimator,
		fallback:  travel.NewHaversineEstimator(cfg.Travel.AverageSpeedKmh),
		retrier:   retry.New(retryCfg, zapLogger),
	}
}

func (uc *DispatchUC) dwell() time.Duration {
	return time.Duration(uc.cfg.Rides.StopDwellSeconds) * time.Second
}
