package service

import (
	"context"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func discoveryErrorCodeToGRPCCode(code string) codes.Code {
	switch code {
	case ErrBadParameter:
		return codes.InvalidArgument
	case ErrEntityNotFound:
		return codes.NotFound
	case ErrServiceUnavailable:
		return codes.Unavailable
	case ErrInternalServerError:
		return codes.Internal
	default:
		return codes.Unknown
	}
}

// DiscoveryErrorToGRPC converts an error to a gRPC status error. Errors without a DiscoveryError in their
// chain become codes.Unknown with "internal error".
func DiscoveryErrorToGRPC(err error) error {
	if err == nil {
		return nil
	}
	if de := ToDiscoveryError(err); de != nil {
		return status.Error(discoveryErrorCodeToGRPCCode(de.Code), de.Message)
	}
	return status.Error(codes.Unknown, "internal error")
}

// DiscoveryErrorToGRPCInterceptor returns a unary server interceptor that logs handler errors and
// converts them to gRPC status errors.
func DiscoveryErrorToGRPCInterceptor(logger log.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		if de := ToDiscoveryError(err); de != nil && de.Code != ErrInternalServerError {
			level.Info(logger).Log("msg", "gRPC handler error", "method", info.FullMethod, "error_code", de.Code, "err", err)
		} else {
			level.Error(logger).Log("msg", "gRPC handler error", "method", info.FullMethod, "err", err)
		}
		return resp, DiscoveryErrorToGRPC(err)
	}
}
