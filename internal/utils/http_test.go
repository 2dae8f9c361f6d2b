package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	c, rec := newTestContext()

	err := SuccessResponse(c, http.StatusCreated, "Request accepted", map[string]interface{}{"id": "abc"})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body Response
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Request accepted", body.Message)
	assert.Equal(t, "abc", body.Data.(map[string]interface{})["id"])
}

func TestErrorResponseHandlerEchoesStatusCode(t *testing.T) {
	c, rec := newTestContext()

	err := ErrorResponseHandler(c, http.StatusConflict, "route version conflict")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)

	var body ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "route version conflict", body.Error)
	assert.Equal(t, http.StatusConflict, body.Code)
}

func TestBadRequestResponse(t *testing.T) {
	c, rec := newTestContext()

	err := BadRequestResponse(c, "Invalid vehicle ID")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Invalid vehicle ID", body.Error)
}

func TestNotFoundResponseDefaultsMessage(t *testing.T) {
	c, rec := newTestContext()

	err := NotFoundResponse(c, "")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Resource not found", body.Error)
}

func TestInternalServerErrorResponseDefaultsMessage(t *testing.T) {
	c, rec := newTestContext()

	err := InternalServerErrorResponse(c, "")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body.Error)
}
