package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jsabin/discovery/api"
	"github.com/jsabin/discovery/domain"
	"github.com/jsabin/discovery/interfaces"
	"github.com/jsabin/discovery/interfaces/mock"
	"github.com/jsabin/discovery/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEnvironment = "testing"

const (
	testNodeID    = "8b5a4b7a-7c3e-4d38-9c43-2c1840c1a1f1"
	testServiceID = "1f0a2f6e-9f39-4a44-9d6b-7a3b8e4e2c55"
)

type serverFixture struct {
	aggregator *mock.ServiceAggregatorMock
	dynamic    *mock.DynamicStoreMock
	static     *mock.ConfigStoreMock
	replicas   map[string]interfaces.Replica
}

func newServerFixture() *serverFixture {
	return &serverFixture{
		aggregator: &mock.ServiceAggregatorMock{},
		dynamic:    &mock.DynamicStoreMock{},
		static:     &mock.ConfigStoreMock{},
		replicas:   map[string]interfaces.Replica{},
	}
}

func (f *serverFixture) serve(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	validator, err := NewOpenAPIValidator(api.OpenAPI)
	require.NoError(t, err)
	e.Use(validator)
	RegisterHandlers(e, NewHTTPServer(testEnvironment, f.aggregator, f.dynamic, f.static, f.replicas, log.NewNopLogger()))
	service.RegisterErrorHandler(e, log.NewNopLogger())

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var errBody struct {
		Error *struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&errBody))
	require.NotNil(t, errBody.Error)
	assert.NotEmpty(t, errBody.Error.Message)
	return errBody.Error.Code
}

func mustParseID[T any](s string) domain.ID[T] {
	id, err := domain.ParseID[T](s)
	if err != nil {
		panic(err)
	}
	return id
}

func testServices() []domain.Service {
	nodeID := mustParseID[domain.NodeKind](testNodeID)
	return []domain.Service{
		{ID: mustParseID[domain.ServiceKind](testServiceID), NodeID: &nodeID, Type: "storage", Pool: "general", Location: "/dc1", Properties: map[string]string{"http": "http://10.0.0.1"}},
		{ID: domain.NewID[domain.ServiceKind](), Type: "storage", Pool: "general", Location: "/dc2"},
	}
}

func TestHTTPServer_GetServices(t *testing.T) {
	unavailable := func(ctx context.Context) ([]domain.Service, error) {
		return nil, service.NewServiceUnavailableError("registry is initializing", nil)
	}
	tests := []struct {
		name           string
		target         string
		setup          func(m *mock.ServiceAggregatorMock)
		expectedStatus int
		expectedCode   string
		wantServices   int
	}{
		{
			name:   "all",
			target: "/v1/service",
			setup: func(m *mock.ServiceAggregatorMock) {
				m.GetAllFunc = func(ctx context.Context) ([]domain.Service, error) { return testServices(), nil }
			},
			expectedStatus: http.StatusOK,
			wantServices:   2,
		},
		{
			name:   "by type",
			target: "/v1/service/storage",
			setup: func(m *mock.ServiceAggregatorMock) {
				m.GetByTypeFunc = func(ctx context.Context, serviceType string) ([]domain.Service, error) {
					assert.Equal(t, "storage", serviceType)
					return testServices()[:1], nil
				}
			},
			expectedStatus: http.StatusOK,
			wantServices:   1,
		},
		{
			name:   "by type and pool",
			target: "/v1/service/storage/general",
			setup: func(m *mock.ServiceAggregatorMock) {
				m.GetByTypeAndPoolFunc = func(ctx context.Context, serviceType, pool string) ([]domain.Service, error) {
					assert.Equal(t, "storage", serviceType)
					assert.Equal(t, "general", pool)
					return []domain.Service{}, nil
				}
			},
			expectedStatus: http.StatusOK,
			wantServices:   0,
		},
		{
			name:           "503 all while initializing",
			target:         "/v1/service",
			setup:          func(m *mock.ServiceAggregatorMock) { m.GetAllFunc = unavailable },
			expectedStatus: http.StatusServiceUnavailable,
			expectedCode:   service.ErrServiceUnavailable,
		},
		{
			name:   "503 by type while initializing",
			target: "/v1/service/storage",
			setup: func(m *mock.ServiceAggregatorMock) {
				m.GetByTypeFunc = func(ctx context.Context, serviceType string) ([]domain.Service, error) { return unavailable(ctx) }
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedCode:   service.ErrServiceUnavailable,
		},
		{
			name:   "503 by type and pool while initializing",
			target: "/v1/service/storage/general",
			setup: func(m *mock.ServiceAggregatorMock) {
				m.GetByTypeAndPoolFunc = func(ctx context.Context, serviceType, pool string) ([]domain.Service, error) { return unavailable(ctx) }
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedCode:   service.ErrServiceUnavailable,
		},
		{
			name:   "500 aggregation error",
			target: "/v1/service",
			setup: func(m *mock.ServiceAggregatorMock) {
				m.GetAllFunc = func(ctx context.Context) ([]domain.Service, error) { return nil, assert.AnError }
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   service.ErrInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServerFixture()
			tt.setup(f.aggregator)
			rec := f.serve(t, http.MethodGet, tt.target, "")

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus != http.StatusOK {
				assert.Equal(t, tt.expectedCode, errorCode(t, rec))
				return
			}
			var resp api.ServicesResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, testEnvironment, resp.Environment)
			assert.NotNil(t, resp.Services, "an empty answer still carries a services list")
			assert.Len(t, resp.Services, tt.wantServices)
		})
	}
}

func TestHTTPServer_GetServicesRepresentation(t *testing.T) {
	f := newServerFixture()
	f.aggregator.GetAllFunc = func(ctx context.Context) ([]domain.Service, error) { return testServices(), nil }
	rec := f.serve(t, http.MethodGet, "/v1/service", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var raw struct {
		Environment string           `json:"environment"`
		Services    []map[string]any `json:"services"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&raw))
	require.Len(t, raw.Services, 2)
	assert.Equal(t, map[string]any{
		"id":         testServiceID,
		"nodeId":     testNodeID,
		"type":       "storage",
		"pool":       "general",
		"location":   "/dc1",
		"properties": map[string]any{"http": "http://10.0.0.1"},
	}, raw.Services[0])
	assert.Nil(t, raw.Services[1]["nodeId"])
	assert.Equal(t, map[string]any{}, raw.Services[1]["properties"])
}

func TestHTTPServer_PutAnnouncement(t *testing.T) {
	validBody := `{"environment":"testing","pool":"red","location":"/dc1/rack7","services":[{"id":"` + testServiceID + `","type":"storage","properties":{"http":"http://10.0.0.1"}}]}`

	tests := []struct {
		name           string
		nodeID         string
		body           string
		putErr         error
		expectedStatus int
		check          func(t *testing.T, nodeID domain.NodeID, a domain.DynamicAnnouncement)
	}{
		{
			name:           "ok",
			nodeID:         testNodeID,
			body:           validBody,
			expectedStatus: http.StatusAccepted,
			check: func(t *testing.T, nodeID domain.NodeID, a domain.DynamicAnnouncement) {
				assert.Equal(t, testNodeID, nodeID.String())
				assert.Equal(t, "red", a.Pool)
				assert.Equal(t, "/dc1/rack7", a.Location)
				require.Len(t, a.Services, 1)
				assert.Equal(t, testServiceID, a.Services[0].ID.String())
				assert.Equal(t, "storage", a.Services[0].Type)
				assert.Equal(t, map[string]string{"http": "http://10.0.0.1"}, a.Services[0].Properties)
			},
		},
		{
			name:           "ok defaults pool and location",
			nodeID:         testNodeID,
			body:           `{"environment":"testing","services":[{"id":"` + testServiceID + `","type":"storage"}]}`,
			expectedStatus: http.StatusAccepted,
			check: func(t *testing.T, nodeID domain.NodeID, a domain.DynamicAnnouncement) {
				assert.Equal(t, domain.DefaultPool, a.Pool)
				assert.Equal(t, "/"+testNodeID, a.Location)
			},
		},
		{
			name:           "ok empty services withdraws everything",
			nodeID:         testNodeID,
			body:           `{"environment":"testing","services":[]}`,
			expectedStatus: http.StatusAccepted,
			check: func(t *testing.T, nodeID domain.NodeID, a domain.DynamicAnnouncement) {
				assert.Empty(t, a.Services)
			},
		},
		{name: "400 invalid JSON", nodeID: testNodeID, body: `{invalid`, expectedStatus: http.StatusBadRequest},
		{name: "400 invalid node id", nodeID: "node-1", body: validBody, expectedStatus: http.StatusBadRequest},
		{
			name:           "400 missing environment",
			nodeID:         testNodeID,
			body:           `{"services":[{"id":"` + testServiceID + `","type":"storage"}]}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "400 environment mismatch",
			nodeID:         testNodeID,
			body:           `{"environment":"production","services":[{"id":"` + testServiceID + `","type":"storage"}]}`,
			expectedStatus: http.StatusBadRequest,
		},
		{name: "400 missing services", nodeID: testNodeID, body: `{"environment":"testing"}`, expectedStatus: http.StatusBadRequest},
		{
			name:           "400 service without type",
			nodeID:         testNodeID,
			body:           `{"environment":"testing","services":[{"id":"` + testServiceID + `"}]}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "400 service with invalid id",
			nodeID:         testNodeID,
			body:           `{"environment":"testing","services":[{"id":"svc-1","type":"storage"}]}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "500 store error",
			nodeID:         testNodeID,
			body:           validBody,
			putErr:         service.NewInternalServerError("failed to encode announcement", nil),
			expectedStatus: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServerFixture()
			f.dynamic.PutFunc = func(nodeID domain.NodeID, announcement domain.DynamicAnnouncement) error {
				if tt.check != nil {
					tt.check(t, nodeID, announcement)
				}
				return tt.putErr
			}
			rec := f.serve(t, http.MethodPut, "/v1/announcement/"+tt.nodeID, tt.body)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusAccepted {
				assert.Empty(t, rec.Body.Bytes())
				assert.Len(t, f.dynamic.PutCalls(), 1)
				return
			}
			if tt.expectedStatus == http.StatusBadRequest {
				assert.Equal(t, service.ErrBadParameter, errorCode(t, rec))
				assert.Empty(t, f.dynamic.PutCalls(), "rejected announcements never reach the store")
			}
		})
	}
}

func TestHTTPServer_DeleteAnnouncement(t *testing.T) {
	f := newServerFixture()
	rec := f.serve(t, http.MethodDelete, "/v1/announcement/"+testNodeID, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	calls := f.dynamic.DeleteCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, testNodeID, calls[0].NodeID.String())

	rec = f.serve(t, http.MethodDelete, "/v1/announcement/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, f.dynamic.DeleteCalls(), 1)
}

func TestHTTPServer_StaticAnnouncements(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		f := newServerFixture()
		f.static.GetAllFunc = func(ctx context.Context) ([]domain.Service, error) { return testServices()[1:], nil }
		rec := f.serve(t, http.MethodGet, "/v1/announcement/static", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var resp api.ServicesResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Len(t, resp.Services, 1)
	})

	t.Run("post with pool and generated id", func(t *testing.T) {
		f := newServerFixture()
		body := `{"environment":"testing","location":"/static","services":[{"id":"` + testServiceID + `","type":"storage"},{"type":"web","properties":{"http":"http://web"}}]}`
		rec := f.serve(t, http.MethodPost, "/v1/announcement/static?pool=alpha", body)
		require.Equal(t, http.StatusCreated, rec.Code)

		calls := f.static.PutCalls()
		require.Len(t, calls, 1)
		stored := calls[0].Services
		require.Len(t, stored, 2)
		assert.Equal(t, testServiceID, stored[0].ID.String())
		assert.False(t, stored[1].ID.IsZero())
		for _, s := range stored {
			assert.Equal(t, "alpha", s.Pool)
			assert.Equal(t, "/static", s.Location)
			assert.Nil(t, s.NodeID)
		}

		var resp api.ServicesResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, api.ToServiceRepresentations(stored), resp.Services)
	})

	t.Run("post defaults pool", func(t *testing.T) {
		f := newServerFixture()
		rec := f.serve(t, http.MethodPost, "/v1/announcement/static", `{"environment":"testing","services":[{"type":"web"}]}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, domain.DefaultPool, f.static.PutCalls()[0].Services[0].Pool)
	})

	t.Run("post rejects other environment", func(t *testing.T) {
		f := newServerFixture()
		rec := f.serve(t, http.MethodPost, "/v1/announcement/static", `{"environment":"production","services":[{"type":"web"}]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, f.static.PutCalls())
	})

	t.Run("post rejects empty services", func(t *testing.T) {
		f := newServerFixture()
		rec := f.serve(t, http.MethodPost, "/v1/announcement/static", `{"environment":"testing","services":[]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	deleteTests := []struct {
		name           string
		serviceID      string
		deleteErr      error
		expectedStatus int
	}{
		{name: "delete ok", serviceID: testServiceID, expectedStatus: http.StatusOK},
		{name: "delete 404", serviceID: testServiceID, deleteErr: service.NewEntityNotFoundError("Entity not found", nil), expectedStatus: http.StatusNotFound},
		{name: "delete 400 invalid id", serviceID: "svc-1", expectedStatus: http.StatusBadRequest},
	}
	for _, tt := range deleteTests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServerFixture()
			f.static.DeleteFunc = func(ctx context.Context, id domain.ServiceID) error {
				assert.Equal(t, tt.serviceID, id.String())
				return tt.deleteErr
			}
			rec := f.serve(t, http.MethodDelete, "/v1/announcement/static/"+tt.serviceID, "")
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestHTTPServer_ExchangeEntries(t *testing.T) {
	created := time.Date(2026, 2, 19, 12, 0, 0, 0, time.UTC)
	incoming := []domain.Entry{{Key: []byte("node-1"), Value: []byte("[]"), Version: 42, MaxAge: 30 * time.Second, CreatedAt: created}}
	outgoing := []domain.Entry{{Key: []byte("node-2"), Version: 43, MaxAge: time.Hour, CreatedAt: created, Tombstone: true}}

	f := newServerFixture()
	replica := &mock.ReplicaMock{
		ExchangeFunc: func(entries []domain.Entry) []domain.Entry {
			assert.Equal(t, incoming, entries)
			return outgoing
		},
	}
	f.replicas["dynamic"] = replica

	body, err := json.Marshal(api.ExchangeRequest{Entries: api.ToExchangeEntries(incoming)})
	require.NoError(t, err)
	rec := f.serve(t, http.MethodPost, "/v1/store/dynamic/exchange", string(body))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.ExchangeResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, outgoing, api.FromExchangeEntries(resp.Entries))
	assert.Len(t, replica.ExchangeCalls(), 1)

	rec = f.serve(t, http.MethodPost, "/v1/store/unknown/exchange", string(body))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, service.ErrEntityNotFound, errorCode(t, rec))

	rec = f.serve(t, http.MethodPost, "/v1/store/dynamic/exchange", `{"entries":[{"key":"bm9kZQ=="}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "entries must carry version, max age and creation time")
}

func TestHTTPServer_UnknownRoute(t *testing.T) {
	f := newServerFixture()
	rec := f.serve(t, http.MethodGet, "/v1/unknown", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, service.ErrEntityNotFound, errorCode(t, rec))
}
