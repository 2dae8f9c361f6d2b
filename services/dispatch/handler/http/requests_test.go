package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loopline/dispatch/internal/pkg/models"
	"github.com/loopline/dispatch/services/dispatch"
	"github.com/loopline/dispatch/services/dispatch/mocks"
)

func TestCreateRequest_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewDispatchHandler(mockUC)

	locationID := uuid.New()
	body := `{
		"location_id": "` + locationID.String() + `",
		"passengers": 2,
		"pickup": {"latitude": 37.78, "longitude": -122.41},
		"dropoff": {"latitude": 37.79, "longitude": -122.40}
	}`

	created := &models.Request{
		ID:         uuid.New(),
		LocationID: locationID,
		Status:     models.RequestSearching,
		Passengers: 2,
	}
	mockUC.EXPECT().
		CreateRequest(gomock.Any(), gomock.Any()).
		Return(created, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/requests", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.CreateRequest(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), created.ID.String())
}

func TestCreateRequest_MissingPassengers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewDispatchHandler(mockUC)

	body := `{"location_id": "` + uuid.New().String() + `", "passengers": 0}`

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/requests", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.CreateRequest(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetRequest_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewDispatchHandler(mockUC)

	requestID := uuid.New()
	mockUC.EXPECT().
		GetRequest(gomock.Any(), requestID).
		Return(nil, dispatch.ErrRequestNotFound)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/requests/:requestID")
	c.SetParamNames("requestID")
	c.SetParamValues(requestID.String())

	err := handler.GetRequest(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCancelRequest_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewDispatchHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/requests/:requestID/cancel")
	c.SetParamNames("requestID")
	c.SetParamValues("not-a-uuid")

	err := handler.CancelRequest(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRunSweep_ReturnsSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewDispatchHandler(mockUC)

	mockUC.EXPECT().
		RunSweep(gomock.Any()).
		Return(&models.SweepSummary{Evaluated: 3, Matched: 2, Missed: 1}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/internal/dispatch/search", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.RunSweep(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"matched":2`)
}
