package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loopline/dispatch/internal/pkg/logger"
	"github.com/loopline/dispatch/internal/pkg/models"
	"github.com/loopline/dispatch/internal/pkg/travel"
	"github.com/loopline/dispatch/services/dispatch"
	"github.com/loopline/dispatch/services/dispatch/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		Dispatch: models.DispatchConfig{
			SweepInterval:       30,
			SearchTimeout:       180,
			CandidateLimit:      10,
			SearchRadiusKm:      5,
			ZoneFallbackEnabled: true,
		},
		Rides: models.RidesConfig{
			StopDwellSeconds: 30,
		},
		Travel: models.TravelConfig{
			AverageSpeedKmh: 25,
		},
	}
}

func newTestUC(t *testing.T) (*DispatchUC, *mocks.MockDispatchRepo, *mocks.MockDispatchGW) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)

	zapLogger, err := logger.NewZapLogger(logger.Config{Level: "error"})
	require.NoError(t, err)

	uc := NewDispatchUC(testConfig(), mockRepo, mockGW, travel.NewHaversineEstimator(25), zapLogger)
	return uc, mockRepo, mockGW
}

func searchingRequest() *models.Request {
	return &models.Request{
		ID:          uuid.New(),
		LocationID:  uuid.New(),
		Status:      models.RequestSearching,
		Passengers:  1,
		Pickup:      models.Coordinates{Latitude: 37.7800, Longitude: -122.4100},
		Dropoff:     models.Coordinates{Latitude: 37.7900, Longitude: -122.4100},
		RequestedAt: time.Now().Add(-10 * time.Second),
	}
}

func availableVehicle(locationID uuid.UUID) *models.Vehicle {
	driverID := uuid.New()
	return &models.Vehicle{
		ID:           uuid.New(),
		LocationID:   locationID,
		DriverID:     &driverID,
		Name:         "Shuttle 1",
		Capacity:     models.Capacity{Passengers: 4, ADA: 1},
		MatchingRule: models.MatchingRuleShared,
		Online:       true,
		Available:    true,
		Position:     models.Coordinates{Latitude: 37.7790, Longitude: -122.4110},
	}
}

func TestRunSweep_MatchesRequestOnIdleVehicle(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	req := searchingRequest()
	vehicle := availableVehicle(req.LocationID)
	pos := vehicle.Position

	mockRepo.EXPECT().ListSearchingRequests(gomock.Any()).Return([]*models.Request{req}, nil)
	mockRepo.EXPECT().ClaimRequest(gomock.Any(), req.ID).Return(true, nil)
	mockRepo.EXPECT().
		NearbyVehicleIDs(gomock.Any(), req.LocationID, req.Pickup, 5.0, 10).
		Return([]uuid.UUID{vehicle.ID}, nil)
	mockRepo.EXPECT().GetVehicle(gomock.Any(), vehicle.ID).Return(vehicle, nil)
	mockRepo.EXPECT().
		GetActiveRoute(gomock.Any(), vehicle.ID).
		Return(nil, dispatch.ErrRouteNotFound).
		Times(2)
	mockRepo.EXPECT().VehiclePosition(gomock.Any(), vehicle.ID).Return(pos, nil).Times(2)
	mockRepo.EXPECT().AcquireRouteLock(gomock.Any(), vehicle.ID, gomock.Any()).Return(true, nil)
	mockRepo.EXPECT().ReleaseRouteLock(gomock.Any(), vehicle.ID).Return(nil)

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
	mockRepo.EXPECT().MarkRequestMatched(gomock.Any(), req.ID, gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishRideMatched(gomock.Any(), gomock.Any()).Return(nil)

	summary, err := uc.RunSweep(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Matched)
	assert.Equal(t, 1, summary.Evaluated)

	require.NotNil(t, createdRoute)
	require.Len(t, createdRoute.Stops, 2)
	assert.Equal(t, models.StopPickup, createdRoute.Stops[0].Type)
	assert.Equal(t, models.StopDropoff, createdRoute.Stops[1].Type)

	require.NotNil(t, createdRide)
	assert.Equal(t, models.DriverEnRoute, createdRide.Status)
	assert.Equal(t, *vehicle.DriverID, createdRide.DriverID)
	require.NotNil(t, createdRide.PickupETA)
	require.NotNil(t, createdRide.DropoffETA)
	assert.True(t, createdRide.PickupETA.Before(*createdRide.DropoffETA))
}

func TestRunSweep_NoEligibleVehicles_RecordsMissedRequest(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	req := searchingRequest()

	mockRepo.EXPECT().ListSearchingRequests(gomock.Any()).Return([]*models.Request{req}, nil)
	mockRepo.EXPECT().ClaimRequest(gomock.Any(), req.ID).Return(true, nil)
	mockRepo.EXPECT().
		NearbyVehicleIDs(gomock.Any(), req.LocationID, req.Pickup, 5.0, 10).
		Return(nil, nil)
	mockRepo.EXPECT().
		CreateMissedRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, missed *models.MissedRequest) error {
			assert.Equal(t, req.ID, missed.RequestID)
			assert.Equal(t, req.LocationID, missed.LocationID)
			return nil
		})
	mockGW.EXPECT().PublishRequestMissed(gomock.Any(), gomock.Any(), req.SearchRetries).Return(nil)
	mockRepo.EXPECT().ReleaseRequest(gomock.Any(), req.ID).Return(nil)

	summary, err := uc.RunSweep(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Missed)
	assert.Equal(t, 0, summary.Matched)
}

func TestRunSweep_ExpiredRequestIsCancelled(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	req := searchingRequest()
	req.RequestedAt = time.Now().Add(-10 * time.Minute)
	req.SearchRetries = 4

	mockRepo.EXPECT().ListSearchingRequests(gomock.Any()).Return([]*models.Request{req}, nil)
	mockRepo.EXPECT().ClaimRequest(gomock.Any(), req.ID).Return(true, nil)
	mockRepo.EXPECT().CreateMissedRequest(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishRequestMissed(gomock.Any(), gomock.Any(), 4).Return(nil)
	mockRepo.EXPECT().CancelRequest(gomock.Any(), req.ID, gomock.Any()).Return(nil)

	summary, err := uc.RunSweep(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Cancelled)
}

func TestRunSweep_SkipsRequestClaimedByAnotherSweep(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	req := searchingRequest()

	mockRepo.EXPECT().ListSearchingRequests(gomock.Any()).Return([]*models.Request{req}, nil)
	mockRepo.EXPECT().ClaimRequest(gomock.Any(), req.ID).Return(false, nil)

	summary, err := uc.RunSweep(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, summary.Evaluated)
}

func TestRunSweep_AllCandidatesFail_BumpsRetryCounter(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	req := searchingRequest()
	vehicle := availableVehicle(req.LocationID)

	mockRepo.EXPECT().ListSearchingRequests(gomock.Any()).Return([]*models.Request{req}, nil)
	mockRepo.EXPECT().ClaimRequest(gomock.Any(), req.ID).Return(true, nil)
	mockRepo.EXPECT().
		NearbyVehicleIDs(gomock.Any(), req.LocationID, req.Pickup, 5.0, 10).
		Return([]uuid.UUID{vehicle.ID}, nil)
	mockRepo.EXPECT().GetVehicle(gomock.Any(), vehicle.ID).Return(vehicle, nil)
	mockRepo.EXPECT().GetActiveRoute(gomock.Any(), vehicle.ID).Return(nil, dispatch.ErrRouteNotFound)
	mockRepo.EXPECT().VehiclePosition(gomock.Any(), vehicle.ID).Return(vehicle.Position, nil)

	// Another writer holds the route lock, so the only candidate is skipped.
	mockRepo.EXPECT().AcquireRouteLock(gomock.Any(), vehicle.ID, gomock.Any()).Return(false, nil)
	mockRepo.EXPECT().IncrementSearchRetries(gomock.Any(), req.ID).Return(nil)
	mockRepo.EXPECT().ReleaseRequest(gomock.Any(), req.ID).Return(nil)

	summary, err := uc.RunSweep(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Unmatched)
}

func TestSearchRequest_RetriesOnRouteVersionConflict(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	req := searchingRequest()
	vehicle := availableVehicle(req.LocationID)

	rideB := uuid.New()
	existingStops := []models.Stop{
		{
			RideID:     rideB,
			Type:       models.StopPickup,
			Status:     models.StopWaiting,
			Coords:     models.Coordinates{Latitude: 37.7810, Longitude: -122.4100},
			Passengers: 1,
		},
		{
			RideID:     rideB,
			Type:       models.StopDropoff,
			Status:     models.StopWaiting,
			Coords:     models.Coordinates{Latitude: 37.7850, Longitude: -122.4100},
			Passengers: 1,
		},
	}
	routeID := uuid.New()
	routeV1 := &models.Route{
		ID:        routeID,
		VehicleID: vehicle.ID,
		DriverID:  *vehicle.DriverID,
		Active:    true,
		Stops:     existingStops,
		Version:   1,
	}
	routeV2 := &models.Route{
		ID:        routeID,
		VehicleID: vehicle.ID,
		DriverID:  *vehicle.DriverID,
		Active:    true,
		Stops:     existingStops,
		Version:   2,
	}

	mockRepo.EXPECT().GetRequest(gomock.Any(), req.ID).Return(req, nil)
	mockRepo.EXPECT().ClaimRequest(gomock.Any(), req.ID).Return(true, nil)
	mockRepo.EXPECT().
		NearbyVehicleIDs(gomock.Any(), req.LocationID, req.Pickup, 5.0, 10).
		Return([]uuid.UUID{vehicle.ID}, nil)
	mockRepo.EXPECT().GetVehicle(gomock.Any(), vehicle.ID).Return(vehicle, nil)

	// Eligibility and the first commit attempt read version 1; the retry
	// after the conflict re-reads and sees version 2.
	mockRepo.EXPECT().GetActiveRoute(gomock.Any(), vehicle.ID).Return(routeV1, nil).Times(2)
	mockRepo.EXPECT().GetActiveRoute(gomock.Any(), vehicle.ID).Return(routeV2, nil)
	mockRepo.EXPECT().VehiclePosition(gomock.Any(), vehicle.ID).Return(vehicle.Position, nil).Times(2)

	mockRepo.EXPECT().AcquireRouteLock(gomock.Any(), vehicle.ID, gomock.Any()).Return(true, nil)
	mockRepo.EXPECT().ReleaseRouteLock(gomock.Any(), vehicle.ID).Return(nil)

	mockRepo.EXPECT().
		ReplaceStops(gomock.Any(), routeID, gomock.Any(), int64(1)).
		Return(dispatch.ErrRouteConflict)
	mockRepo.EXPECT().
		ReplaceStops(gomock.Any(), routeID, gomock.Any(), int64(2)).
		Return(nil)

	mockRepo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().
		UpdateRideStatuses(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, updates []models.RideStatusUpdate) error {
			require.Len(t, updates, 1)
			assert.Equal(t, rideB, updates[0].RideID)
			return nil
		})
	mockGW.EXPECT().PublishRideStatus(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishRideETA(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().MarkRequestMatched(gomock.Any(), req.ID, gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishRideMatched(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.SearchRequest(context.Background(), req.ID)

	require.NoError(t, err)
}

func TestSearchRequest_RideWriteFailureRestoresPriorStops(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	req := searchingRequest()
	vehicle := availableVehicle(req.LocationID)

	rideB := uuid.New()
	existingStops := []models.Stop{
		{
			RideID:     rideB,
			Type:       models.StopPickup,
			Status:     models.StopWaiting,
			Coords:     models.Coordinates{Latitude: 37.7810, Longitude: -122.4100},
			Passengers: 1,
		},
		{
			RideID:     rideB,
			Type:       models.StopDropoff,
			Status:     models.StopWaiting,
			Coords:     models.Coordinates{Latitude: 37.7850, Longitude: -122.4100},
			Passengers: 1,
		},
	}
	route := &models.Route{
		ID:        uuid.New(),
		VehicleID: vehicle.ID,
		DriverID:  *vehicle.DriverID,
		Active:    true,
		Stops:     existingStops,
		Version:   1,
	}

	mockRepo.EXPECT().GetRequest(gomock.Any(), req.ID).Return(req, nil)
	mockRepo.EXPECT().ClaimRequest(gomock.Any(), req.ID).Return(true, nil)
	mockRepo.EXPECT().
		NearbyVehicleIDs(gomock.Any(), req.LocationID, req.Pickup, 5.0, 10).
		Return([]uuid.UUID{vehicle.ID}, nil)
	mockRepo.EXPECT().GetVehicle(gomock.Any(), vehicle.ID).Return(vehicle, nil)
	mockRepo.EXPECT().GetActiveRoute(gomock.Any(), vehicle.ID).Return(route, nil).Times(2)
	mockRepo.EXPECT().VehiclePosition(gomock.Any(), vehicle.ID).Return(vehicle.Position, nil)
	mockRepo.EXPECT().AcquireRouteLock(gomock.Any(), vehicle.ID, gomock.Any()).Return(true, nil)
	mockRepo.EXPECT().ReleaseRouteLock(gomock.Any(), vehicle.ID).Return(nil)

	mockRepo.EXPECT().
		ReplaceStops(gomock.Any(), route.ID, gomock.Any(), int64(1)).
		Return(nil)
	mockRepo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))

	// The stop write must be rolled back to the pre-match order at the
	// version the commit produced.
	mockRepo.EXPECT().
		ReplaceStops(gomock.Any(), route.ID, gomock.Any(), int64(2)).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, stops []models.Stop, _ int64) error {
			require.Len(t, stops, 2)
			for _, s := range stops {
				assert.Equal(t, rideB, s.RideID)
			}
			return nil
		})

	mockRepo.EXPECT().IncrementSearchRetries(gomock.Any(), req.ID).Return(nil)
	mockRepo.EXPECT().ReleaseRequest(gomock.Any(), req.ID).Return(nil)

	err := uc.SearchRequest(context.Background(), req.ID)

	require.NoError(t, err)
}

func TestSearchRequest_RideWriteFailureRetiresFreshRoute(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	req := searchingRequest()
	vehicle := availableVehicle(req.LocationID)

	mockRepo.EXPECT().GetRequest(gomock.Any(), req.ID).Return(req, nil)
	mockRepo.EXPECT().ClaimRequest(gomock.Any(), req.ID).Return(true, nil)
	mockRepo.EXPECT().
		NearbyVehicleIDs(gomock.Any(), req.LocationID, req.Pickup, 5.0, 10).
		Return([]uuid.UUID{vehicle.ID}, nil)
	mockRepo.EXPECT().GetVehicle(gomock.Any(), vehicle.ID).Return(vehicle, nil)
	mockRepo.EXPECT().
		GetActiveRoute(gomock.Any(), vehicle.ID).
		Return(nil, dispatch.ErrRouteNotFound).
		Times(2)
	mockRepo.EXPECT().VehiclePosition(gomock.Any(), vehicle.ID).Return(vehicle.Position, nil).Times(2)
	mockRepo.EXPECT().AcquireRouteLock(gomock.Any(), vehicle.ID, gomock.Any()).Return(true, nil)
	mockRepo.EXPECT().ReleaseRouteLock(gomock.Any(), vehicle.ID).Return(nil)

	var createdRoute *models.Route
	mockRepo.EXPECT().
		CreateRoute(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, route *models.Route) error {
			createdRoute = route
			return nil
		})
	mockRepo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))

	// A route created only for this match must not survive the failed ride.
	mockRepo.EXPECT().
		RetireRoute(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, routeID uuid.UUID) error {
			require.NotNil(t, createdRoute)
			assert.Equal(t, createdRoute.ID, routeID)
			return nil
		})

	mockRepo.EXPECT().IncrementSearchRetries(gomock.Any(), req.ID).Return(nil)
	mockRepo.EXPECT().ReleaseRequest(gomock.Any(), req.ID).Return(nil)

	err := uc.SearchRequest(context.Background(), req.ID)

	require.NoError(t, err)
}

func TestSearchRequest_MarkMatchedFailureReleasesClaim(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	req := searchingRequest()
	vehicle := availableVehicle(req.LocationID)

	mockRepo.EXPECT().GetRequest(gomock.Any(), req.ID).Return(req, nil)
	mockRepo.EXPECT().ClaimRequest(gomock.Any(), req.ID).Return(true, nil)
	mockRepo.EXPECT().
		NearbyVehicleIDs(gomock.Any(), req.LocationID, req.Pickup, 5.0, 10).
		Return([]uuid.UUID{vehicle.ID}, nil)
	mockRepo.EXPECT().GetVehicle(gomock.Any(), vehicle.ID).Return(vehicle, nil)
	mockRepo.EXPECT().
		GetActiveRoute(gomock.Any(), vehicle.ID).
		Return(nil, dispatch.ErrRouteNotFound).
		Times(2)
	mockRepo.EXPECT().VehiclePosition(gomock.Any(), vehicle.ID).Return(vehicle.Position, nil).Times(2)
	mockRepo.EXPECT().AcquireRouteLock(gomock.Any(), vehicle.ID, gomock.Any()).Return(true, nil)
	mockRepo.EXPECT().ReleaseRouteLock(gomock.Any(), vehicle.ID).Return(nil)
	mockRepo.EXPECT().CreateRoute(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().UpdateRideStatuses(gomock.Any(), gomock.Any()).Return(nil)

	mockRepo.EXPECT().
		MarkRequestMatched(gomock.Any(), req.ID, gomock.Any()).
		Return(errors.New("db down"))
	// The claim must not stay held when the match could not be recorded.
	mockRepo.EXPECT().ReleaseRequest(gomock.Any(), req.ID).Return(nil)
	mockGW.EXPECT().PublishRideMatched(gomock.Any(), gomock.Any()).Times(0)

	err := uc.SearchRequest(context.Background(), req.ID)

	assert.Error(t, err)
}

func TestSearchRequest_MatchedRequestIsANoOp(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	req := searchingRequest()
	req.Status = models.RequestMatched

	mockRepo.EXPECT().GetRequest(gomock.Any(), req.ID).Return(req, nil)

	err := uc.SearchRequest(context.Background(), req.ID)

	require.NoError(t, err)
}

func TestRunSweep_ListError(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	mockRepo.EXPECT().ListSearchingRequests(gomock.Any()).Return(nil, errors.New("db down"))

	_, err := uc.RunSweep(context.Background())

	assert.Error(t, err)
}
