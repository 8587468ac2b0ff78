package service

import (
	"errors"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// RegisterErrorHandler register custom error handler.
func RegisterErrorHandler(e *echo.Echo, logger log.Logger) {
	e.HTTPErrorHandler = NewHTTPErrorHandler(NewErrorCodeToStatusCodeMaps(), logger).Handler
}

// NewErrorCodeToStatusCodeMaps creates an error code to http status mapping.
func NewErrorCodeToStatusCodeMaps() map[string]int {
	return map[string]int{
		ErrBadParameter:        http.StatusBadRequest,
		ErrEntityNotFound:      http.StatusNotFound,
		ErrInternalServerError: http.StatusInternalServerError,
		ErrServiceUnavailable:  http.StatusServiceUnavailable,
	}
}

// HTTPErrorHandler renders errors returned by echo handlers as ErrResponse bodies.
type HTTPErrorHandler struct {
	errorCodeToHTTPStatusCodeMap map[string]int
	logger                       log.Logger
}

// NewHTTPErrorHandler creates a new instance of the HTTPErrorHandler.
func NewHTTPErrorHandler(errorCodeToStatusCodeMaps map[string]int, logger log.Logger) *HTTPErrorHandler {
	return &HTTPErrorHandler{
		errorCodeToHTTPStatusCodeMap: errorCodeToStatusCodeMaps,
		logger:                       logger,
	}
}

func (h *HTTPErrorHandler) getStatusCode(errorCode string) int {
	status, ok := h.errorCodeToHTTPStatusCodeMap[errorCode]
	if ok {
		return status
	}

	return http.StatusInternalServerError
}

// codeForStatus classifies framework errors (unknown route, wrong method, validation) by their status.
func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrBadParameter
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		return ErrEntityNotFound
	case http.StatusServiceUnavailable:
		return ErrServiceUnavailable
	default:
		return ErrInternalServerError
	}
}

// Handler handles error returned by echo Handlers.
func (h *HTTPErrorHandler) Handler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	de := ToDiscoveryError(err)
	if de == nil {
		de = NewDiscoveryError(ErrInternalServerError, "an internal server error has occurred", err)
	}

	var statusCode int
	var he *echo.HTTPError
	if errors.As(err, &he) && ToDiscoveryError(err) == nil {
		if herr, ok := he.Internal.(*echo.HTTPError); ok {
			he = herr
		}
		code := codeForStatus(he.Code)
		var requestError *openapi3filter.RequestError
		if errors.As(he.Internal, &requestError) {
			code = ErrBadParameter
		}

		m, ok := he.Message.(string)
		if !ok || m == "" {
			m = http.StatusText(he.Code)
		}
		de = NewDiscoveryError(code, m, err)
		statusCode = he.Code
	} else {
		he = nil
		statusCode = h.getStatusCode(de.Code)
	}

	if statusCode >= http.StatusInternalServerError && statusCode != http.StatusServiceUnavailable {
		level.Error(h.logger).Log("msg", "HTTP request error", "err", err)
	} else {
		level.Debug(h.logger).Log("msg", "HTTP request rejected", "status", statusCode, "err", err)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(statusCode)
		return
	}
	_ = c.JSON(statusCode, ErrResponse{Error: de})
}

// ErrResponse from server.
type ErrResponse struct {
	Error *DiscoveryError `json:"error,omitempty"`
}
