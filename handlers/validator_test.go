package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsabin/discovery/api"
	"github.com/jsabin/discovery/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenAPIValidator(t *testing.T) {
	_, err := NewOpenAPIValidator([]byte("not: [an openapi document"))
	assert.Error(t, err)

	validator, err := NewOpenAPIValidator(api.OpenAPI)
	require.NoError(t, err)

	e := echo.New()
	e.Use(validator)
	service.RegisterErrorHandler(e, log.NewNopLogger())
	reached := 0
	handler := func(c echo.Context) error {
		reached++
		return c.NoContent(http.StatusAccepted)
	}
	e.PUT("/v1/announcement/:node_id", handler)
	e.GET("/internal/debug", handler)

	tests := []struct {
		name           string
		method         string
		target         string
		contentType    string
		body           string
		expectedStatus int
	}{
		{name: "valid", method: http.MethodPut, target: "/v1/announcement/" + testNodeID, contentType: "application/json", body: `{"environment":"testing","services":[]}`, expectedStatus: http.StatusAccepted},
		{name: "missing body", method: http.MethodPut, target: "/v1/announcement/" + testNodeID, contentType: "application/json", expectedStatus: http.StatusBadRequest},
		{name: "wrong content type", method: http.MethodPut, target: "/v1/announcement/" + testNodeID, contentType: "text/plain", body: "hello", expectedStatus: http.StatusBadRequest},
		{name: "schema violation", method: http.MethodPut, target: "/v1/announcement/" + testNodeID, contentType: "application/json", body: `{"environment":3,"services":[]}`, expectedStatus: http.StatusBadRequest},
		{name: "undocumented route passes through", method: http.MethodGet, target: "/internal/debug", expectedStatus: http.StatusAccepted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := reached
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusBadRequest {
				assert.Equal(t, before, reached, "invalid requests never reach the handler")
				assert.Equal(t, service.ErrBadParameter, errorCode(t, rec))
			}
		})
	}
}
