// Package handlers contains the HTTP boundary of the registry.
package handlers

import (
	"fmt"
	"net/http"

	"github.com/jsabin/discovery/api"
	"github.com/jsabin/discovery/domain"
	"github.com/jsabin/discovery/helpers"
	"github.com/jsabin/discovery/interfaces"
	"github.com/jsabin/discovery/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// HTTPServer implements ServerInterface of the embedded OpenAPI document.
type HTTPServer struct {
	environment string
	aggregator  interfaces.ServiceAggregator
	dynamic     interfaces.DynamicStore
	static      interfaces.ConfigStore
	replicas    map[string]interfaces.Replica
	logger      log.Logger
}

var _ ServerInterface = (*HTTPServer)(nil)

// NewHTTPServer creates a new HTTPServer. replicas maps store names to the stores served to peers.
func NewHTTPServer(
	environment string,
	aggregator interfaces.ServiceAggregator,
	dynamic interfaces.DynamicStore,
	static interfaces.ConfigStore,
	replicas map[string]interfaces.Replica,
	logger log.Logger,
) *HTTPServer {
	logger = log.WithPrefix(logger, "component", "HTTPServer")
	return &HTTPServer{
		environment: helpers.StrPanic(environment, "handlers.http.go: environment is required"),
		aggregator:  helpers.NilPanic(aggregator, "handlers.http.go: aggregator is required"),
		dynamic:     helpers.NilPanic(dynamic, "handlers.http.go: dynamic store is required"),
		static:      helpers.NilPanic(static, "handlers.http.go: config store is required"),
		replicas:    replicas,
		logger:      logger,
	}
}

// GetAllServices (GET /v1/service) returns every service. 503 while the registry is initializing.
func (h *HTTPServer) GetAllServices(ectx echo.Context) error {
	services, err := h.aggregator.GetAll(ectx.Request().Context())
	if err != nil {
		return fmt.Errorf("getAllServices failed to aggregate services, err: %w", err)
	}
	return ectx.JSON(http.StatusOK, toServicesResponse(h.environment, services))
}

// GetServicesByType (GET /v1/service/{type}) returns the services of a type. 503 while the registry is initializing.
func (h *HTTPServer) GetServicesByType(ectx echo.Context, pType string) error {
	services, err := h.aggregator.GetByType(ectx.Request().Context(), pType)
	if err != nil {
		return fmt.Errorf("getServicesByType failed to aggregate services of type %s, err: %w", pType, err)
	}
	return ectx.JSON(http.StatusOK, toServicesResponse(h.environment, services))
}

// GetServicesByTypeAndPool (GET /v1/service/{type}/{pool}) returns the services of a type in a pool.
// 503 while the registry is initializing.
func (h *HTTPServer) GetServicesByTypeAndPool(ectx echo.Context, pType string, pool string) error {
	services, err := h.aggregator.GetByTypeAndPool(ectx.Request().Context(), pType, pool)
	if err != nil {
		return fmt.Errorf("getServicesByTypeAndPool failed to aggregate services of type %s in pool %s, err: %w", pType, pool, err)
	}
	return ectx.JSON(http.StatusOK, toServicesResponse(h.environment, services))
}

// PutAnnouncement (PUT /v1/announcement/{node_id}) replaces the services announced by a node.
// Returns 202 on success, 400 on parse/validation error.
func (h *HTTPServer) PutAnnouncement(ectx echo.Context, nodeId string) error {
	var req api.DynamicAnnouncementRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}

	nodeID, announcement, err := fromDynamicAnnouncementRequest(h.environment, nodeId, req)
	if err != nil {
		return fmt.Errorf("putAnnouncement failed to convert request to announcement, err: %w", err)
	}
	if err := h.dynamic.Put(nodeID, announcement); err != nil {
		return fmt.Errorf("putAnnouncement failed to store announcement of node %s, err: %w", nodeID, err)
	}

	level.Debug(h.logger).Log("msg", "announcement stored", "node_id", nodeID, "services", len(announcement.Services))
	return ectx.NoContent(http.StatusAccepted)
}

// DeleteAnnouncement (DELETE /v1/announcement/{node_id}) withdraws the services announced by a node.
func (h *HTTPServer) DeleteAnnouncement(ectx echo.Context, nodeId string) error {
	nodeID, err := domain.ParseID[domain.NodeKind](nodeId)
	if err != nil {
		return service.NewBadParameterError("node_id must be a uuid", err)
	}
	h.dynamic.Delete(nodeID)

	level.Debug(h.logger).Log("msg", "announcement withdrawn", "node_id", nodeID)
	return ectx.NoContent(http.StatusOK)
}

// GetStaticServices (GET /v1/announcement/static) lists the statically configured services.
func (h *HTTPServer) GetStaticServices(ectx echo.Context) error {
	services, err := h.static.GetAll(ectx.Request().Context())
	if err != nil {
		return fmt.Errorf("getStaticServices failed to list static services, err: %w", err)
	}
	return ectx.JSON(http.StatusOK, toServicesResponse(h.environment, services))
}

// PostStaticAnnouncement (POST /v1/announcement/static) stores static services. Returns 201 with the stored services.
func (h *HTTPServer) PostStaticAnnouncement(ectx echo.Context, params api.PostStaticAnnouncementParams) error {
	var req api.StaticAnnouncementRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}

	services, err := fromStaticAnnouncementRequest(h.environment, params.Pool, req)
	if err != nil {
		return fmt.Errorf("postStaticAnnouncement failed to convert request to services, err: %w", err)
	}
	if err := h.static.Put(ectx.Request().Context(), services); err != nil {
		return fmt.Errorf("postStaticAnnouncement failed to store static services, err: %w", err)
	}
	return ectx.JSON(http.StatusCreated, toServicesResponse(h.environment, services))
}

// DeleteStaticService (DELETE /v1/announcement/static/{service_id}) removes a static service. 404 when it does not exist.
func (h *HTTPServer) DeleteStaticService(ectx echo.Context, serviceId string) error {
	id, err := domain.ParseID[domain.ServiceKind](serviceId)
	if err != nil {
		return service.NewBadParameterError("service_id must be a uuid", err)
	}
	if err := h.static.Delete(ectx.Request().Context(), id); err != nil {
		return fmt.Errorf("deleteStaticService failed to delete static service %s, err: %w", id, err)
	}
	return ectx.NoContent(http.StatusOK)
}

// ExchangeEntries (POST /v1/store/{store}/exchange) merges a peer's entries into the named store and answers
// with the entries the peer is missing or holds older. 404 for unknown stores.
func (h *HTTPServer) ExchangeEntries(ectx echo.Context, store string) error {
	replica, ok := h.replicas[store]
	if !ok {
		return service.NewEntityNotFoundError("unknown store "+store, nil)
	}

	var req api.ExchangeRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}

	response := replica.Exchange(api.FromExchangeEntries(req.Entries))
	return ectx.JSON(http.StatusOK, api.ExchangeResponse{Entries: api.ToExchangeEntries(response)})
}
