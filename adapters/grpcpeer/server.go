package grpcpeer

import (
	"context"

	"github.com/jsabin/discovery/api"
	"github.com/jsabin/discovery/interfaces"
	"github.com/jsabin/discovery/service"

	"google.golang.org/grpc"
)

// ExchangeMethod is the full gRPC method name of the exchange call.
const ExchangeMethod = "/discovery.Replication/Exchange"

// ExchangeRequest is the gRPC request of an exchange: the HTTP request body plus the store name from its path.
type ExchangeRequest struct {
	Store   string              `json:"store"`
	Entries []api.ExchangeEntry `json:"entries"`
}

// ReplicationServer is the server API of the discovery.Replication service.
type ReplicationServer interface {
	Exchange(ctx context.Context, req *ExchangeRequest) (*api.ExchangeResponse, error)
}

// Server answers exchanges for the registered stores.
type Server struct {
	replicas map[string]interfaces.Replica
}

var _ ReplicationServer = (*Server)(nil)

// NewServer creates a Server. replicas maps store names to the stores served to peers.
func NewServer(replicas map[string]interfaces.Replica) *Server {
	return &Server{replicas: replicas}
}

// Register adds the replication service to registrar.
func (s *Server) Register(registrar grpc.ServiceRegistrar) {
	registrar.RegisterService(&replicationServiceDesc, s)
}

// Exchange merges the peer's entries into the named store and answers with what the peer is missing or holds older.
func (s *Server) Exchange(_ context.Context, req *ExchangeRequest) (*api.ExchangeResponse, error) {
	replica, ok := s.replicas[req.Store]
	if !ok {
		return nil, service.NewEntityNotFoundError("unknown store "+req.Store, nil)
	}
	response := replica.Exchange(api.FromExchangeEntries(req.Entries))
	return &api.ExchangeResponse{Entries: api.ToExchangeEntries(response)}, nil
}

func exchangeHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ExchangeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReplicationServer).Exchange(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExchangeMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ReplicationServer).Exchange(ctx, req.(*ExchangeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var replicationServiceDesc = grpc.ServiceDesc{
	ServiceName: "discovery.Replication",
	HandlerType: (*ReplicationServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Exchange",
			Handler:    exchangeHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "discovery/replication",
}
