package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loopline/dispatch/internal/pkg/models"
	"github.com/loopline/dispatch/services/rides"
)

func TestDriverQueue_IdleDriverGetsEmptyQueue(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	vehicle := serviceVehicle()
	driverID := *vehicle.DriverID

	mockRepo.EXPECT().GetVehicleByDriver(gomock.Any(), driverID).Return(vehicle, nil)
	mockRepo.EXPECT().GetActiveRouteByDriver(gomock.Any(), driverID).Return(nil, rides.ErrRouteNotFound)

	queue, err := uc.DriverQueue(context.Background(), driverID)
	require.NoError(t, err)

	assert.Equal(t, driverID, queue.DriverID)
	assert.Equal(t, vehicle.ID, queue.VehicleID)
	assert.Nil(t, queue.RouteID)
	assert.Empty(t, queue.Entries)
}

func TestDriverQueue_OrdersAndFlagsEntries(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	vehicle := serviceVehicle()
	driverID := *vehicle.DriverID
	rideA := uuid.New()
	rideB := uuid.New()

	pickupA, dropoffA := stopPair(rideA, 37.7800, 37.7900)
	pickupB, dropoffB := stopPair(rideB, 37.7850, 37.7950)
	pickupA.Status = models.StopCompleted
	eta := time.Now().Add(5 * time.Minute)
	dropoffA.ETA = &eta
	pickupB.ETA = &eta
	dropoffB.ETA = &eta
	route := activeRoute(vehicle, pickupA, dropoffA, pickupB, dropoffB)

	rideARow := rideFor(vehicle, rideA, models.RideInProgress)
	rideBRow := rideFor(vehicle, rideB, models.RideInQueue)

	mockRepo.EXPECT().GetVehicleByDriver(gomock.Any(), driverID).Return(vehicle, nil)
	mockRepo.EXPECT().GetActiveRouteByDriver(gomock.Any(), driverID).Return(route, nil)
	mockRepo.EXPECT().
		GetRidesByIDs(gomock.Any(), []uuid.UUID{rideA, rideB}).
		Return([]*models.Ride{rideARow, rideBRow}, nil)

	queue, err := uc.DriverQueue(context.Background(), driverID)
	require.NoError(t, err)

	require.NotNil(t, queue.RouteID)
	assert.Equal(t, route.ID, *queue.RouteID)
	require.Len(t, queue.Entries, 2)

	first := queue.Entries[0]
	assert.Equal(t, rideA, first.RideID)
	assert.Equal(t, models.RideInProgress, first.Status)
	assert.True(t, first.Current)
	require.NotNil(t, first.DropoffETA)

	second := queue.Entries[1]
	assert.Equal(t, rideB, second.RideID)
	assert.Equal(t, models.NextInQueue, second.Status)
	assert.False(t, second.Current)
	require.NotNil(t, second.PickupETA)
}

func TestDriverActions_BundlesSharedVisit(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	vehicle := serviceVehicle()
	driverID := *vehicle.DriverID
	rideA := uuid.New()
	rideB := uuid.New()
	fixedStop := uuid.New()

	pickupA, dropoffA := stopPair(rideA, 37.7800, 37.7900)
	pickupB, dropoffB := stopPair(rideB, 37.7800, 37.7950)
	pickupA.FixedStopID = &fixedStop
	pickupB.FixedStopID = &fixedStop
	pickupB.Passengers = 2
	route := activeRoute(vehicle, pickupA, pickupB, dropoffA, dropoffB)

	mockRepo.EXPECT().GetVehicleByDriver(gomock.Any(), driverID).Return(vehicle, nil)
	mockRepo.EXPECT().GetActiveRouteByDriver(gomock.Any(), driverID).Return(route, nil)

	actions, err := uc.DriverActions(context.Background(), driverID)
	require.NoError(t, err)

	require.Len(t, actions, 3)

	bundle := actions[0]
	assert.Equal(t, models.StopPickup, bundle.Type)
	assert.True(t, bundle.Current)
	assert.Equal(t, []uuid.UUID{rideA, rideB}, bundle.RideIDs)
	assert.Equal(t, 3, bundle.Passengers)
	require.NotNil(t, bundle.FixedStopID)
	assert.Equal(t, fixedStop, *bundle.FixedStopID)

	assert.Equal(t, models.StopDropoff, actions[1].Type)
	assert.False(t, actions[1].Current)
	assert.Equal(t, models.StopDropoff, actions[2].Type)
}

func TestDriverActions_IdleDriverGetsNone(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	vehicle := serviceVehicle()
	driverID := *vehicle.DriverID

	mockRepo.EXPECT().GetVehicleByDriver(gomock.Any(), driverID).Return(vehicle, nil)
	mockRepo.EXPECT().GetActiveRouteByDriver(gomock.Any(), driverID).Return(nil, rides.ErrRouteNotFound)

	actions, err := uc.DriverActions(context.Background(), driverID)
	require.NoError(t, err)
	assert.Empty(t, actions)
}

func TestDriverQueue_RefreshesStaleRoute(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	vehicle := serviceVehicle()
	driverID := *vehicle.DriverID
	rideID := uuid.New()

	pickup, dropoff := stopPair(rideID, 37.7800, 37.7900)
	route := activeRoute(vehicle, pickup, dropoff)
	route.LastUpdate = time.Now().Add(-10 * time.Minute)

	rideRow := rideFor(vehicle, rideID, models.DriverEnRoute)

	mockRepo.EXPECT().GetVehicleByDriver(gomock.Any(), driverID).Return(vehicle, nil)
	mockRepo.EXPECT().GetActiveRouteByDriver(gomock.Any(), driverID).Return(route, nil)
	mockRepo.EXPECT().AcquireRouteLock(gomock.Any(), vehicle.ID, gomock.Any()).Return(true, nil)
	mockRepo.EXPECT().ReleaseRouteLock(gomock.Any(), vehicle.ID).Return(nil)
	mockRepo.EXPECT().VehiclePosition(gomock.Any(), vehicle.ID).Return(vehicle.Position, nil)

	var refreshedStops []models.Stop
	mockRepo.EXPECT().
		ReplaceStops(gomock.Any(), route.ID, gomock.Any(), route.Version).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, stops []models.Stop, _ int64) error {
			refreshedStops = stops
			return nil
		})
	mockRepo.EXPECT().UpdateRideStatuses(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishRideStatus(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishRideETA(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().
		GetRidesByIDs(gomock.Any(), []uuid.UUID{rideID}).
		Return([]*models.Ride{rideRow}, nil)

	queue, err := uc.DriverQueue(context.Background(), driverID)
	require.NoError(t, err)

	require.Len(t, queue.Entries, 1)
	require.NotNil(t, queue.Entries[0].PickupETA)

	require.Len(t, refreshedStops, 2)
	require.NotNil(t, refreshedStops[0].ETA)
	require.NotNil(t, refreshedStops[1].ETA)
}

func TestDriverQueue_StaleRefreshSkippedWhenLocked(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	vehicle := serviceVehicle()
	driverID := *vehicle.DriverID
	rideID := uuid.New()

	pickup, dropoff := stopPair(rideID, 37.7800, 37.7900)
	eta := time.Now().Add(3 * time.Minute)
	pickup.ETA = &eta
	dropoff.ETA = &eta
	route := activeRoute(vehicle, pickup, dropoff)
	route.LastUpdate = time.Now().Add(-10 * time.Minute)

	rideRow := rideFor(vehicle, rideID, models.DriverEnRoute)

	mockRepo.EXPECT().GetVehicleByDriver(gomock.Any(), driverID).Return(vehicle, nil)
	mockRepo.EXPECT().GetActiveRouteByDriver(gomock.Any(), driverID).Return(route, nil)
	mockRepo.EXPECT().AcquireRouteLock(gomock.Any(), vehicle.ID, gomock.Any()).Return(false, nil)
	mockRepo.EXPECT().
		GetRidesByIDs(gomock.Any(), []uuid.UUID{rideID}).
		Return([]*models.Ride{rideRow}, nil)

	queue, err := uc.DriverQueue(context.Background(), driverID)
	require.NoError(t, err)

	// The stored order is served untouched.
	require.Len(t, queue.Entries, 1)
	assert.Equal(t, &eta, queue.Entries[0].PickupETA)
}

func TestDriverMoved_NoRouteStoresPositionOnly(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	vehicle := serviceVehicle()
	location := models.VehicleLocation{
		VehicleID: vehicle.ID,
		DriverID:  *vehicle.DriverID,
		Coords:    models.Coordinates{Latitude: 37.7810, Longitude: -122.4120},
		Timestamp: time.Now(),
	}

	mockRepo.EXPECT().UpdateVehiclePosition(gomock.Any(), location).Return(nil)
	mockRepo.EXPECT().GetActiveRoute(gomock.Any(), vehicle.ID).Return(nil, rides.ErrRouteNotFound)

	err := uc.DriverMoved(context.Background(), location)
	require.NoError(t, err)
}

func TestDriverMoved_FreshRouteIsNotRefreshed(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	vehicle := serviceVehicle()
	rideID := uuid.New()
	pickup, dropoff := stopPair(rideID, 37.7800, 37.7900)
	route := activeRoute(vehicle, pickup, dropoff)

	location := models.VehicleLocation{
		VehicleID: vehicle.ID,
		DriverID:  *vehicle.DriverID,
		Coords:    models.Coordinates{Latitude: 37.7810, Longitude: -122.4120},
		Timestamp: time.Now(),
	}

	mockRepo.EXPECT().UpdateVehiclePosition(gomock.Any(), location).Return(nil)
	mockRepo.EXPECT().GetActiveRoute(gomock.Any(), vehicle.ID).Return(route, nil)

	err := uc.DriverMoved(context.Background(), location)
	require.NoError(t, err)
}

func TestRepairRoute_CancelsOrphanedStops(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	vehicle := serviceVehicle()
	rideA := uuid.New()
	rideB := uuid.New()

	pickupA, dropoffA := stopPair(rideA, 37.7800, 37.7900)
	pickupB, dropoffB := stopPair(rideB, 37.7850, 37.7950)
	route := activeRoute(vehicle, pickupA, dropoffA, pickupB, dropoffB)

	rideARow := rideFor(vehicle, rideA, models.CancelledInQueue)
	rideBRow := rideFor(vehicle, rideB, models.DriverEnRoute)

	mockRepo.EXPECT().GetVehicle(gomock.Any(), vehicle.ID).Return(vehicle, nil)
	mockRepo.EXPECT().GetActiveRoute(gomock.Any(), vehicle.ID).Return(route, nil).Times(2)
	mockRepo.EXPECT().AcquireRouteLock(gomock.Any(), vehicle.ID, gomock.Any()).Return(true, nil)
	mockRepo.EXPECT().ReleaseRouteLock(gomock.Any(), vehicle.ID).Return(nil)
	mockRepo.EXPECT().
		GetRidesByIDs(gomock.Any(), []uuid.UUID{rideA, rideB}).
		Return([]*models.Ride{rideARow, rideBRow}, nil)
	mockRepo.EXPECT().VehiclePosition(gomock.Any(), vehicle.ID).Return(vehicle.Position, nil)

	var committedStops []models.Stop
	mockRepo.EXPECT().
		ReplaceStops(gomock.Any(), route.ID, gomock.Any(), route.Version).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, stops []models.Stop, _ int64) error {
			committedStops = stops
			return nil
		})
	mockRepo.EXPECT().UpdateRideStatuses(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishRideStatus(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishRideETA(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.RepairRoute(context.Background(), vehicle.ID)
	require.NoError(t, err)

	require.Len(t, committedStops, 4)
	assert.Equal(t, models.StopCancelled, committedStops[0].Status)
	assert.Equal(t, models.StopCancelled, committedStops[1].Status)
	assert.Equal(t, models.StopWaiting, committedStops[2].Status)
	assert.Equal(t, models.StopWaiting, committedStops[3].Status)
}
