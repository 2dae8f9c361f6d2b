package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loopline/dispatch/internal/pkg/logger"
	"github.com/loopline/dispatch/internal/pkg/models"
	"github.com/loopline/dispatch/internal/pkg/travel"
	"github.com/loopline/dispatch/services/rides"
	"github.com/loopline/dispatch/services/rides/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		Rides: models.RidesConfig{
			StopDwellSeconds:   30,
			ArrivedWaitSeconds: 300,
			StaleRouteSeconds:  120,
		},
		Travel: models.TravelConfig{
			AverageSpeedKmh: 25,
		},
	}
}

func newTestUC(t *testing.T) (*RideUC, *mocks.MockRideRepo, *mocks.MockRideGW) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockRideRepo(ctrl)
	mockGW := mocks.NewMockRideGW(ctrl)

	zapLogger, err := logger.NewZapLogger(logger.Config{Level: "error"})
	require.NoError(t, err)

	uc := NewRideUC(testConfig(), mockRepo, mockGW, travel.NewHaversineEstimator(25), zapLogger)
	return uc, mockRepo, mockGW
}

func serviceVehicle() *models.Vehicle {
	driverID := uuid.New()
	return &models.Vehicle{
		ID:           uuid.New(),
		LocationID:   uuid.New(),
		DriverID:     &driverID,
		Name:         "Shuttle 1",
		Capacity:     models.Capacity{Passengers: 4, ADA: 1},
		MatchingRule: models.MatchingRuleShared,
		Online:       true,
		Available:    true,
		Position:     models.Coordinates{Latitude: 37.7790, Longitude: -122.4110},
	}
}

func stopPair(rideID uuid.UUID, pickupLat, dropoffLat float64) (models.Stop, models.Stop) {
	pickup := models.Stop{
		RideID:     rideID,
		Type:       models.StopPickup,
		Status:     models.StopWaiting,
		Coords:     models.Coordinates{Latitude: pickupLat, Longitude: -122.4100},
		Passengers: 1,
	}
	dropoff := models.Stop{
		RideID:     rideID,
		Type:       models.StopDropoff,
		Status:     models.StopWaiting,
		Coords:     models.Coordinates{Latitude: dropoffLat, Longitude: -122.4100},
		Passengers: 1,
	}
	return pickup, dropoff
}

func activeRoute(vehicle *models.Vehicle, stops ...models.Stop) *models.Route {
	return &models.Route{
		ID:             uuid.New(),
		VehicleID:      vehicle.ID,
		DriverID:       *vehicle.DriverID,
		Active:         true,
		Stops:          stops,
		Version:        3,
		FirstRequestAt: time.Now().Add(-5 * time.Minute),
		LastUpdate:     time.Now(),
	}
}

func rideFor(vehicle *models.Vehicle, rideID uuid.UUID, status models.RideStatus) *models.Ride {
	riderID := uuid.New()
	return &models.Ride{
		ID:         rideID,
		RiderID:    &riderID,
		DriverID:   *vehicle.DriverID,
		VehicleID:  vehicle.ID,
		LocationID: vehicle.LocationID,
		Status:     status,
		Passengers: 1,
		Pickup:     models.Coordinates{Latitude: 37.7800, Longitude: -122.4100},
		Dropoff:    models.Coordinates{Latitude: 37.7900, Longitude: -122.4100},
	}
}

func TestPickUp_MarksRideInProgress(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	vehicle := serviceVehicle()
	rideID := uuid.New()
	ride := rideFor(vehicle, rideID, models.DriverArrived)
	pickup, dropoff := stopPair(rideID, 37.7800, 37.7900)
	route := activeRoute(vehicle, pickup, dropoff)

	mockRepo.EXPECT().GetRide(gomock.Any(), rideID).Return(ride, nil)
	mockRepo.EXPECT().GetVehicle(gomock.Any(), vehicle.ID).Return(vehicle, nil)
	mockRepo.EXPECT().AcquireRouteLock(gomock.Any(), vehicle.ID, gomock.Any()).Return(true, nil)
	mockRepo.EXPECT().ReleaseRouteLock(gomock.Any(), vehicle.ID).Return(nil)
	mockRepo.EXPECT().GetActiveRoute(gomock.Any(), vehicle.ID).Return(route, nil)
	mockRepo.EXPECT().VehiclePosition(gomock.Any(), vehicle.ID).Return(vehicle.Position, nil)

	var committedStops []models.Stop
	mockRepo.EXPECT().
		ReplaceStops(gomock.Any(), route.ID, gomock.Any(), route.Version).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, stops []models.Stop, _ int64) error {
			committedStops = stops
			return nil
		})
	mockRepo.EXPECT().RecordPickup(gomock.Any(), rideID, gomock.Any()).Return(nil)
	mockRepo.EXPECT().UpdateRideStatuses(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishRideStatus(gomock.Any(), gomock.Any()).Return(nil)

	got, err := uc.PickUp(context.Background(), rideID)
	require.NoError(t, err)

	assert.Equal(t, models.RideInProgress, got.Status)
	require.NotNil(t, got.PickedUpAt)
	require.NotNil(t, got.DropoffETA)

	require.Len(t, committedStops, 2)
	assert.Equal(t, models.StopCompleted, committedStops[0].Status)
	assert.Equal(t, models.StopWaiting, committedStops[1].Status)
}

func TestPickUp_RejectsBoardedRide(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	vehicle := serviceVehicle()
	rideID := uuid.New()
	ride := rideFor(vehicle, rideID, models.RideInProgress)

	mockRepo.EXPECT().GetRide(gomock.Any(), rideID).Return(ride, nil)

	_, err := uc.PickUp(context.Background(), rideID)
	assert.ErrorIs(t, err, rides.ErrInvalidTransition)
}

func TestDropOff_SoloRideRetiresRoute(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	vehicle := serviceVehicle()
	rideID := uuid.New()
	ride := rideFor(vehicle, rideID, models.RideInProgress)
	pickup, dropoff := stopPair(rideID, 37.7800, 37.7900)
	pickup.Status = models.StopCompleted
	route := activeRoute(vehicle, pickup, dropoff)

	mockRepo.EXPECT().GetRide(gomock.Any(), rideID).Return(ride, nil)
	mockRepo.EXPECT().GetVehicle(gomock.Any(), vehicle.ID).Return(vehicle, nil)
	mockRepo.EXPECT().AcquireRouteLock(gomock.Any(), vehicle.ID, gomock.Any()).Return(true, nil)
	mockRepo.EXPECT().ReleaseRouteLock(gomock.Any(), vehicle.ID).Return(nil)
	mockRepo.EXPECT().GetActiveRoute(gomock.Any(), vehicle.ID).Return(route, nil)
	mockRepo.EXPECT().VehiclePosition(gomock.Any(), vehicle.ID).Return(vehicle.Position, nil)
	mockRepo.EXPECT().ReplaceStops(gomock.Any(), route.ID, gomock.Any(), route.Version).Return(nil)
	mockRepo.EXPECT().RetireRoute(gomock.Any(), route.ID).Return(nil)

	var gotPooled bool
	var gotActions, gotVisits int
	mockRepo.EXPECT().
		RecordDropoff(gomock.Any(), rideID, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ time.Time, pooled bool, actions, visits int) error {
			gotPooled = pooled
			gotActions = actions
			gotVisits = visits
			return nil
		})
	mockRepo.EXPECT().UpdateRideStatuses(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishRideStatus(gomock.Any(), gomock.Any()).Return(nil)

	got, err := uc.DropOff(context.Background(), rideID)
	require.NoError(t, err)

	assert.Equal(t, models.RideComplete, got.Status)
	require.NotNil(t, got.DroppedAt)
	assert.False(t, gotPooled)
	assert.Zero(t, gotActions)
	assert.Zero(t, gotVisits)
}

func TestDropOff_PooledRideRecordsTraversal(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	vehicle := serviceVehicle()
	rideA := uuid.New()
	rideB := uuid.New()
	ride := rideFor(vehicle, rideA, models.RideInProgress)

	pickupA, dropoffA := stopPair(rideA, 37.7800, 37.7900)
	pickupB, dropoffB := stopPair(rideB, 37.7820, 37.7950)
	pickupA.Status = models.StopCompleted
	pickupB.Status = models.StopCompleted
	route := activeRoute(vehicle, pickupA, pickupB, dropoffA, dropoffB)

	mockRepo.EXPECT().GetRide(gomock.Any(), rideA).Return(ride, nil)
	mockRepo.EXPECT().GetVehicle(gomock.Any(), vehicle.ID).Return(vehicle, nil)
	mockRepo.EXPECT().AcquireRouteLock(gomock.Any(), vehicle.ID, gomock.Any()).Return(true, nil)
	mockRepo.EXPECT().ReleaseRouteLock(gomock.Any(), vehicle.ID).Return(nil)
	mockRepo.EXPECT().GetActiveRoute(gomock.Any(), vehicle.ID).Return(route, nil)
	mockRepo.EXPECT().VehiclePosition(gomock.Any(), vehicle.ID).Return(vehicle.Position, nil)
	mockRepo.EXPECT().ReplaceStops(gomock.Any(), route.ID, gomock.Any(), route.Version).Return(nil)

	var gotPooled bool
	var gotActions, gotVisits int
	mockRepo.EXPECT().
		RecordDropoff(gomock.Any(), rideA, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ time.Time, pooled bool, actions, visits int) error {
			gotPooled = pooled
			gotActions = actions
			gotVisits = visits
			return nil
		})
	mockRepo.EXPECT().UpdateRideStatuses(gomock.Any(), gomock.Any()).Return(nil)

	// The completed ride's own event, plus the shifted status and ETA of
	// the rider still aboard.
	mockGW.EXPECT().PublishRideStatus(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	mockGW.EXPECT().PublishRideETA(gomock.Any(), gomock.Any()).Return(nil)

	got, err := uc.DropOff(context.Background(), rideA)
	require.NoError(t, err)

	assert.Equal(t, models.RideComplete, got.Status)
	assert.True(t, got.Pooled)
	assert.True(t, gotPooled)
	assert.Equal(t, 1, gotActions)
	assert.Equal(t, 1, gotVisits)
}

func TestDropOff_RequiresBoardedRide(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	vehicle := serviceVehicle()
	rideID := uuid.New()
	ride := rideFor(vehicle, rideID, models.DriverEnRoute)

	mockRepo.EXPECT().GetRide(gomock.Any(), rideID).Return(ride, nil)

	_, err := uc.DropOff(context.Background(), rideID)
	assert.ErrorIs(t, err, rides.ErrInvalidTransition)
}

func TestArrive_StampsArrivalOnPickup(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	vehicle := serviceVehicle()
	rideID := uuid.New()
	ride := rideFor(vehicle, rideID, models.DriverEnRoute)
	pickup, dropoff := stopPair(rideID, 37.7800, 37.7900)
	route := activeRoute(vehicle, pickup, dropoff)

	mockRepo.EXPECT().GetRide(gomock.Any(), rideID).Return(ride, nil)
	mockRepo.EXPECT().GetVehicle(gomock.Any(), vehicle.ID).Return(vehicle, nil)
	mockRepo.EXPECT().AcquireRouteLock(gomock.Any(), vehicle.ID, gomock.Any()).Return(true, nil)
	mockRepo.EXPECT().ReleaseRouteLock(gomock.Any(), vehicle.ID).Return(nil)
	mockRepo.EXPECT().GetActiveRoute(gomock.Any(), vehicle.ID).Return(route, nil)
	mockRepo.EXPECT().VehiclePosition(gomock.Any(), vehicle.ID).Return(vehicle.Position, nil)
	mockRepo.EXPECT().ReplaceStops(gomock.Any(), route.ID, gomock.Any(), route.Version).Return(nil)

	var arrivedIDs []uuid.UUID
	mockRepo.EXPECT().
		RecordArrival(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ids []uuid.UUID, _ time.Time) error {
			arrivedIDs = ids
			return nil
		})
	mockRepo.EXPECT().UpdateRideStatuses(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishRideStatus(gomock.Any(), gomock.Any()).Return(nil)

	got, err := uc.Arrive(context.Background(), rideID)
	require.NoError(t, err)

	assert.Equal(t, models.DriverArrived, got.Status)
	require.NotNil(t, got.ArrivedAt)
	assert.Equal(t, []uuid.UUID{rideID}, arrivedIDs)
}

func TestCancel_RiderBeforeDispatch(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	vehicle := serviceVehicle()
	rideID := uuid.New()
	ride := rideFor(vehicle, rideID, models.RideInQueue)
	pickup, dropoff := stopPair(rideID, 37.7800, 37.7900)
	route := activeRoute(vehicle, pickup, dropoff)

	mockRepo.EXPECT().GetRide(gomock.Any(), rideID).Return(ride, nil)
	mockRepo.EXPECT().GetVehicle(gomock.Any(), vehicle.ID).Return(vehicle, nil)
	mockRepo.EXPECT().AcquireRouteLock(gomock.Any(), vehicle.ID, gomock.Any()).Return(true, nil)
	mockRepo.EXPECT().ReleaseRouteLock(gomock.Any(), vehicle.ID).Return(nil)
	mockRepo.EXPECT().GetActiveRoute(gomock.Any(), vehicle.ID).Return(route, nil)
	mockRepo.EXPECT().VehiclePosition(gomock.Any(), vehicle.ID).Return(vehicle.Position, nil)

	var committedStops []models.Stop
	mockRepo.EXPECT().
		ReplaceStops(gomock.Any(), route.ID, gomock.Any(), route.Version).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, stops []models.Stop, _ int64) error {
			committedStops = stops
			return nil
		})
	mockRepo.EXPECT().RetireRoute(gomock.Any(), route.ID).Return(nil)
	mockRepo.EXPECT().
		RecordCancel(gomock.Any(), rideID, models.CancelledInQueue, models.CancelSourceRider, gomock.Any()).
		Return(nil)
	mockGW.EXPECT().PublishRideStatus(gomock.Any(), gomock.Any()).Return(nil)

	got, err := uc.Cancel(context.Background(), rideID, models.CancelSourceRider)
	require.NoError(t, err)

	assert.Equal(t, models.CancelledInQueue, got.Status)
	require.NotNil(t, got.CancelledBy)
	assert.Equal(t, models.CancelSourceRider, *got.CancelledBy)

	require.Len(t, committedStops, 2)
	assert.Equal(t, models.StopCancelled, committedStops[0].Status)
	assert.Equal(t, models.StopCancelled, committedStops[1].Status)
}

func TestCancel_StatusMapping(t *testing.T) {
	uc, _, _ := newTestUC(t)

	arrived := time.Now().Add(-10 * time.Minute)

	cases := []struct {
		name   string
		ride   *models.Ride
		source models.CancelSource
		want   models.RideStatus
	}{
		{"rider in queue", &models.Ride{Status: models.RideInQueue}, models.CancelSourceRider, models.CancelledInQueue},
		{"rider next in queue", &models.Ride{Status: models.NextInQueue}, models.CancelSourceRider, models.CancelledInQueue},
		{"rider en route", &models.Ride{Status: models.DriverEnRoute}, models.CancelSourceRider, models.CancelledEnRoute},
		{"rider after arrival", &models.Ride{Status: models.DriverArrived}, models.CancelSourceRider, models.CancelledEnRoute},
		{"admin en route", &models.Ride{Status: models.DriverEnRoute}, models.CancelSourceAdmin, models.CancelledEnRoute},
		{"driver not able", &models.Ride{Status: models.DriverEnRoute}, models.CancelSourceDriver, models.CancelledNotAble},
		{"no show after wait", &models.Ride{Status: models.DriverArrived, ArrivedAt: &arrived}, models.CancelSourceNoShow, models.CancelledNoShow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := uc.cancelStatus(tc.ride, tc.source)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCancel_NoShowInsideWaitWindow(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	vehicle := serviceVehicle()
	rideID := uuid.New()
	ride := rideFor(vehicle, rideID, models.DriverArrived)
	arrived := time.Now().Add(-time.Minute)
	ride.ArrivedAt = &arrived

	mockRepo.EXPECT().GetRide(gomock.Any(), rideID).Return(ride, nil)

	_, err := uc.Cancel(context.Background(), rideID, models.CancelSourceNoShow)
	assert.ErrorIs(t, err, rides.ErrNoShowTooEarly)
}

func TestCancel_BoardedRideIsNotCancellable(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	vehicle := serviceVehicle()
	rideID := uuid.New()
	ride := rideFor(vehicle, rideID, models.RideInProgress)

	mockRepo.EXPECT().GetRide(gomock.Any(), rideID).Return(ride, nil)

	_, err := uc.Cancel(context.Background(), rideID, models.CancelSourceRider)
	assert.ErrorIs(t, err, rides.ErrInvalidTransition)
}

func TestCancel_AlreadyCancelledIsANoOp(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	vehicle := serviceVehicle()
	rideID := uuid.New()
	ride := rideFor(vehicle, rideID, models.CancelledInQueue)

	mockRepo.EXPECT().GetRide(gomock.Any(), rideID).Return(ride, nil)

	got, err := uc.Cancel(context.Background(), rideID, models.CancelSourceRider)
	require.NoError(t, err)
	assert.Equal(t, models.CancelledInQueue, got.Status)
}

func TestHail_BoardsWalkUpOnIdleVehicle(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	vehicle := serviceVehicle()
	pos := vehicle.Position

	mockRepo.EXPECT().GetVehicle(gomock.Any(), vehicle.ID).Return(vehicle, nil)
	mockRepo.EXPECT().AcquireRouteLock(gomock.Any(), vehicle.ID, gomock.Any()).Return(true, nil)
	mockRepo.EXPECT().ReleaseRouteLock(gomock.Any(), vehicle.ID).Return(nil)
	mockRepo.EXPECT().GetActiveRoute(gomock.Any(), vehicle.ID).Return(nil, rides.ErrRouteNotFound)
	mockRepo.EXPECT().VehiclePosition(gomock.Any(), vehicle.ID).Return(pos, nil)

	var createdRoute *models.Route
	mockRepo.EXPECT().
		CreateRoute(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, route *models.Route) error {
			createdRoute = route
			return nil
		})

	var createdRide *models.Ride
	mockRepo.EXPECT().
		CreateRide(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ride *models.Ride) error {
			createdRide = ride
			return nil
		})
	mockRepo.EXPECT().UpdateRideStatuses(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishRideStatus(gomock.Any(), gomock.Any()).Return(nil)

	got, err := uc.Hail(context.Background(), rides.HailRequest{
		VehicleID:  vehicle.ID,
		Passengers: 2,
		Dropoff:    models.Coordinates{Latitude: 37.7900, Longitude: -122.4100},
	})
	require.NoError(t, err)

	assert.Equal(t, models.RideInProgress, got.Status)
	assert.True(t, got.Hailed())
	require.NotNil(t, got.PickedUpAt)
	assert.Equal(t, pos, got.Pickup)
	require.NotNil(t, got.DropoffETA)
	assert.Equal(t, createdRide.ID, got.ID)

	require.NotNil(t, createdRoute)
	require.Len(t, createdRoute.Stops, 2)
	assert.Equal(t, models.StopCompleted, createdRoute.Stops[0].Status)
	assert.Equal(t, models.StopWaiting, createdRoute.Stops[1].Status)
}

func TestHail_BoardedPartyPrecedesPendingPickup(t *testing.T) {
	// A walk-up party of 2 boards while a pickup of 3 is still pending on a
	// capacity-4 vehicle. Carrying both at once would be 5, so the committed
	// order must serve the walk-up dropoff before the pending pickup.
	uc, mockRepo, mockGW := newTestUC(t)

	vehicle := serviceVehicle()
	pickupA, dropoffA := stopPair(uuid.New(), 37.7820, 37.7860)
	pickupA.Passengers = 3
	dropoffA.Passengers = 3
	route := activeRoute(vehicle, pickupA, dropoffA)

	mockRepo.EXPECT().GetVehicle(gomock.Any(), vehicle.ID).Return(vehicle, nil)
	mockRepo.EXPECT().AcquireRouteLock(gomock.Any(), vehicle.ID, gomock.Any()).Return(true, nil)
	mockRepo.EXPECT().ReleaseRouteLock(gomock.Any(), vehicle.ID).Return(nil)
	mockRepo.EXPECT().GetActiveRoute(gomock.Any(), vehicle.ID).Return(route, nil)
	mockRepo.EXPECT().VehiclePosition(gomock.Any(), vehicle.ID).Return(vehicle.Position, nil)

	var committed []models.Stop
	mockRepo.EXPECT().
		ReplaceStops(gomock.Any(), route.ID, gomock.Any(), route.Version).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, stops []models.Stop, _ int64) error {
			committed = stops
			return nil
		})
	mockRepo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().UpdateRideStatuses(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishRideStatus(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	mockGW.EXPECT().PublishRideETA(gomock.Any(), gomock.Any()).Return(nil)

	got, err := uc.Hail(context.Background(), rides.HailRequest{
		VehicleID:  vehicle.ID,
		Passengers: 2,
		Dropoff:    models.Coordinates{Latitude: 37.7900, Longitude: -122.4100},
	})
	require.NoError(t, err)
	assert.Equal(t, models.RideInProgress, got.Status)

	require.Len(t, committed, 4)
	assert.Equal(t, got.ID, committed[0].RideID)
	assert.Equal(t, models.StopCompleted, committed[0].Status)
	assert.Equal(t, got.ID, committed[1].RideID)
	assert.Equal(t, models.StopDropoff, committed[1].Type)
	assert.Equal(t, pickupA.RideID, committed[2].RideID)
	assert.Equal(t, dropoffA.RideID, committed[3].RideID)
}

func TestHail_RejectsADAWithoutCapacity(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	vehicle := serviceVehicle()
	vehicle.Capacity.ADA = 0

	mockRepo.EXPECT().GetVehicle(gomock.Any(), vehicle.ID).Return(vehicle, nil)

	_, err := uc.Hail(context.Background(), rides.HailRequest{
		VehicleID:  vehicle.ID,
		Passengers: 1,
		IsADA:      true,
		Dropoff:    models.Coordinates{Latitude: 37.7900, Longitude: -122.4100},
	})
	assert.ErrorIs(t, err, rides.ErrInvalidTransition)
}

func TestHail_RejectsOfflineVehicle(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	vehicle := serviceVehicle()
	vehicle.Online = false

	mockRepo.EXPECT().GetVehicle(gomock.Any(), vehicle.ID).Return(vehicle, nil)

	_, err := uc.Hail(context.Background(), rides.HailRequest{
		VehicleID:  vehicle.ID,
		Passengers: 1,
		Dropoff:    models.Coordinates{Latitude: 37.7900, Longitude: -122.4100},
	})
	assert.ErrorIs(t, err, rides.ErrInvalidTransition)
}

func TestPickUp_RetriesOnRouteVersionConflict(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	vehicle := serviceVehicle()
	rideID := uuid.New()
	ride := rideFor(vehicle, rideID, models.DriverEnRoute)
	pickup, dropoff := stopPair(rideID, 37.7800, 37.7900)

	routeV3 := activeRoute(vehicle, pickup, dropoff)
	routeV4 := activeRoute(vehicle, pickup, dropoff)
	routeV4.ID = routeV3.ID
	routeV4.Version = 4

	mockRepo.EXPECT().GetRide(gomock.Any(), rideID).Return(ride, nil)
	mockRepo.EXPECT().GetVehicle(gomock.Any(), vehicle.ID).Return(vehicle, nil)
	mockRepo.EXPECT().AcquireRouteLock(gomock.Any(), vehicle.ID, gomock.Any()).Return(true, nil)
	mockRepo.EXPECT().ReleaseRouteLock(gomock.Any(), vehicle.ID).Return(nil)

	gomock.InOrder(
		mockRepo.EXPECT().GetActiveRoute(gomock.Any(), vehicle.ID).Return(routeV3, nil),
		mockRepo.EXPECT().GetActiveRoute(gomock.Any(), vehicle.ID).Return(routeV4, nil),
	)
	mockRepo.EXPECT().VehiclePosition(gomock.Any(), vehicle.ID).Return(vehicle.Position, nil).Times(2)
	gomock.InOrder(
		mockRepo.EXPECT().
			ReplaceStops(gomock.Any(), routeV3.ID, gomock.Any(), int64(3)).
			Return(rides.ErrRouteConflict),
		mockRepo.EXPECT().
			ReplaceStops(gomock.Any(), routeV3.ID, gomock.Any(), int64(4)).
			Return(nil),
	)
	mockRepo.EXPECT().RecordPickup(gomock.Any(), rideID, gomock.Any()).Return(nil)
	mockRepo.EXPECT().UpdateRideStatuses(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishRideStatus(gomock.Any(), gomock.Any()).Return(nil)

	got, err := uc.PickUp(context.Background(), rideID)
	require.NoError(t, err)
	assert.Equal(t, models.RideInProgress, got.Status)
}
