package handlers

import (
	"fmt"
	"net/http"

	"github.com/jsabin/discovery/api"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /v1/service)
	GetAllServices(ctx echo.Context) error
	// (GET /v1/service/{type})
	GetServicesByType(ctx echo.Context, pType string) error
	// (GET /v1/service/{type}/{pool})
	GetServicesByTypeAndPool(ctx echo.Context, pType string, pool string) error
	// (PUT /v1/announcement/{node_id})
	PutAnnouncement(ctx echo.Context, nodeId string) error
	// (DELETE /v1/announcement/{node_id})
	DeleteAnnouncement(ctx echo.Context, nodeId string) error
	// (GET /v1/announcement/static)
	GetStaticServices(ctx echo.Context) error
	// (POST /v1/announcement/static)
	PostStaticAnnouncement(ctx echo.Context, params api.PostStaticAnnouncementParams) error
	// (DELETE /v1/announcement/static/{service_id})
	DeleteStaticService(ctx echo.Context, serviceId string) error
	// (POST /v1/store/{store}/exchange)
	ExchangeEntries(ctx echo.Context, store string) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func bindPathParameter(ctx echo.Context, name string, dest *string) error {
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), dest, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err)).SetInternal(err)
	}
	return nil
}

// GetAllServices converts echo context to params.
func (w *ServerInterfaceWrapper) GetAllServices(ctx echo.Context) error {
	return w.Handler.GetAllServices(ctx)
}

// GetServicesByType converts echo context to params.
func (w *ServerInterfaceWrapper) GetServicesByType(ctx echo.Context) error {
	var pType string
	if err := bindPathParameter(ctx, "type", &pType); err != nil {
		return err
	}
	return w.Handler.GetServicesByType(ctx, pType)
}

// GetServicesByTypeAndPool converts echo context to params.
func (w *ServerInterfaceWrapper) GetServicesByTypeAndPool(ctx echo.Context) error {
	var pType, pool string
	if err := bindPathParameter(ctx, "type", &pType); err != nil {
		return err
	}
	if err := bindPathParameter(ctx, "pool", &pool); err != nil {
		return err
	}
	return w.Handler.GetServicesByTypeAndPool(ctx, pType, pool)
}

// PutAnnouncement converts echo context to params.
func (w *ServerInterfaceWrapper) PutAnnouncement(ctx echo.Context) error {
	var nodeId string
	if err := bindPathParameter(ctx, "node_id", &nodeId); err != nil {
		return err
	}
	return w.Handler.PutAnnouncement(ctx, nodeId)
}

// DeleteAnnouncement converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteAnnouncement(ctx echo.Context) error {
	var nodeId string
	if err := bindPathParameter(ctx, "node_id", &nodeId); err != nil {
		return err
	}
	return w.Handler.DeleteAnnouncement(ctx, nodeId)
}

// GetStaticServices converts echo context to params.
func (w *ServerInterfaceWrapper) GetStaticServices(ctx echo.Context) error {
	return w.Handler.GetStaticServices(ctx)
}

// PostStaticAnnouncement converts echo context to params.
func (w *ServerInterfaceWrapper) PostStaticAnnouncement(ctx echo.Context) error {
	var params api.PostStaticAnnouncementParams
	err := runtime.BindQueryParameter("form", true, false, "pool", ctx.QueryParams(), &params.Pool)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter pool: %s", err)).SetInternal(err)
	}
	return w.Handler.PostStaticAnnouncement(ctx, params)
}

// DeleteStaticService converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteStaticService(ctx echo.Context) error {
	var serviceId string
	if err := bindPathParameter(ctx, "service_id", &serviceId); err != nil {
		return err
	}
	return w.Handler.DeleteStaticService(ctx, serviceId)
}

// ExchangeEntries converts echo context to params.
func (w *ServerInterfaceWrapper) ExchangeEntries(ctx echo.Context) error {
	var store string
	if err := bindPathParameter(ctx, "store", &store); err != nil {
		return err
	}
	return w.Handler.ExchangeEntries(ctx, store)
}

// EchoRouter is the subset of echo.Echo and echo.Group used to register routes.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends baseURL to the paths, so that the paths
// can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/v1/service", wrapper.GetAllServices)
	router.GET(baseURL+"/v1/service/:type", wrapper.GetServicesByType)
	router.GET(baseURL+"/v1/service/:type/:pool", wrapper.GetServicesByTypeAndPool)
	router.PUT(baseURL+"/v1/announcement/:node_id", wrapper.PutAnnouncement)
	router.DELETE(baseURL+"/v1/announcement/:node_id", wrapper.DeleteAnnouncement)
	router.GET(baseURL+"/v1/announcement/static", wrapper.GetStaticServices)
	router.POST(baseURL+"/v1/announcement/static", wrapper.PostStaticAnnouncement)
	router.DELETE(baseURL+"/v1/announcement/static/:service_id", wrapper.DeleteStaticService)
	router.POST(baseURL+"/v1/store/:store/exchange", wrapper.ExchangeEntries)
}
