package usecase

import (
	"context"
	"errors"

	"github.com/loopline/dispatch/internal/pkg/models"
	"github.com/loopline/dispatch/services/rides"
)

// DriverMoved records a vehicle movement report into the position store and
// the geo index, and refreshes route ETAs once the staleness window elapses.
// Movement pings are frequent, so the refresh is rate-limited by the same
// window the queue poll uses.
func (uc *RideUC) DriverMoved(ctx context.Context, location models.VehicleLocation) error {
	if err := uc.repo.UpdateVehiclePosition(ctx, location); err != nil {
		return err
	}

	route, err := uc.repo.GetActiveRoute(ctx, location.VehicleID)
	if errors.Is(err, rides.ErrRouteNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	uc.freshen(ctx, location.VehicleID, location.Coords, route)
	return nil
}
