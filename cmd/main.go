package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jsabin/discovery/adapters/grpcpeer"
	"github.com/jsabin/discovery/adapters/httppeer"
	"github.com/jsabin/discovery/adapters/membership"
	_ "github.com/jsabin/discovery/adapters/membership/consul"
	_ "github.com/jsabin/discovery/adapters/membership/etcd"
	_ "github.com/jsabin/discovery/adapters/membership/zookeeper"
	"github.com/jsabin/discovery/adapters/myredis"
	"github.com/jsabin/discovery/api"
	"github.com/jsabin/discovery/domain"
	"github.com/jsabin/discovery/handlers"
	"github.com/jsabin/discovery/interfaces"
	"github.com/jsabin/discovery/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// dynamicStoreName is the name the replicated dynamic store is exchanged under.
const dynamicStoreName = "dynamic"

func main() {
	// Initialize logger
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	level.Info(logger).Log("msg", "Starting discovery service")

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}
	levelOpt, _ := levelOption(config.LogLevel)
	logger = level.NewFilter(logger, levelOpt)
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"environment", config.Environment,
		"service_port_http", config.HTTPPort,
		"redis_addr", config.RedisAddr,
		"transport", config.Transport,
		"self_address", config.SelfAddress,
		"membership", config.Membership.Kind,
		"proxy_types", len(config.Proxy.Types),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tracker := service.NewInitializationTracker()

	var static interfaces.ConfigStore
	var closeRedis func() error
	{
		redisClient, err := myredis.NewRedisUniversalClient(config.RedisAddr)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to create Redis client", "err", err)
			os.Exit(1)
		}
		closeRedis = redisClient.Close

		pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
		defer pingCancel()
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			level.Error(logger).Log("msg", "Failed to connect to Redis", "err", err)
			os.Exit(1)
		}
		level.Info(logger).Log("msg", "Connected to Redis")

		marshal := func(s domain.Service) ([]byte, error) { return json.Marshal(s) }
		unmarshal := func(b []byte) (domain.Service, error) {
			var s domain.Service
			err := json.Unmarshal(b, &s)
			return s, err
		}
		static = service.NewConfigStore(myredis.NewCache[domain.Service](redisClient, config.StaticStorePrefix, marshal, unmarshal), logger)
	}

	// Replicated dynamic store
	store := service.NewDistributedStore(service.DistributedStoreConfig{
		Name:            dynamicStoreName,
		TombstoneMaxAge: config.Store.TombstoneMaxAge,
		SweepInterval:   config.Store.ExpiryInterval,
	}, service.NewTimeProvider(time.Now), logger)
	dynamic := service.NewReplicatedDynamicStore(store, config.Store.MaxAge, logger)
	replicas := map[string]interfaces.Replica{store.Name(): store}

	members, err := membership.New(config.Membership, logger)
	if err != nil {
		level.Error(logger).Log("msg", "Failed to create membership", "err", err)
		os.Exit(1)
	}

	var remote interfaces.RemoteStore
	var closeRemote func() error
	switch config.Transport {
	case TransportGRPC:
		grpcRemote := grpcpeer.NewRemoteStore()
		remote, closeRemote = grpcRemote, grpcRemote.Close
	default:
		remote, closeRemote = httppeer.NewRemoteStore(httppeer.NewHTTPClient()), func() error { return nil }
	}

	replicator := service.NewReplicator(service.ReplicatorConfig{
		Store:       store.Name(),
		Interval:    config.Store.ReplicationInterval,
		PeerTimeout: config.Store.ReplicationInterval,
		TriggerRate: config.Store.TriggerRate,
	}, store, store.Changes(), members, remote, tracker.Register(service.ReplicationTask), logger)

	// Proxy store
	var upstream interfaces.Upstream
	switch {
	case config.Proxy.Enabled():
		upstream = httppeer.NewUpstream(httppeer.NewHTTPClient(), config.Proxy.Environment, config.Proxy.URIs)
	case len(config.Proxy.Types) > 0 || len(config.Proxy.URIs) > 0:
		level.Warn(logger).Log("msg", "Proxy needs both types and uris, running without proxy",
			"proxy_types", len(config.Proxy.Types), "proxy_uris", len(config.Proxy.URIs))
	}
	proxy := service.NewProxyStore(service.ProxyStoreConfig{
		Types:           config.Proxy.Types,
		RefreshInterval: config.Proxy.RefreshInterval,
		FetchTimeout:    config.Proxy.FetchTimeout,
	}, upstream, tracker, logger)

	aggregator := service.NewServiceAggregator(dynamic, static, proxy, tracker)

	// Create HTTP server (Echo)
	var e *echo.Echo
	{
		validator, err := handlers.NewOpenAPIValidator(api.OpenAPI)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to load OpenAPI document", "err", err)
			os.Exit(1)
		}
		e = echo.New()
		e.HideBanner = true
		service.RegisterErrorHandler(e, logger)
		e.Use(validator)
		handlers.RegisterHandlers(e, handlers.NewHTTPServer(config.Environment, aggregator, dynamic, static, replicas, logger))
	}

	// Create gRPC server for replication
	var grpcServer *grpc.Server
	var grpcListener net.Listener
	if config.Transport == TransportGRPC {
		grpcListener, err = net.Listen("tcp", fmt.Sprintf(":%d", config.GRPCPort))
		if err != nil {
			level.Error(logger).Log("msg", "Failed to listen", "port", config.GRPCPort, "err", err)
			os.Exit(1)
		}
		grpcServer = grpc.NewServer(grpc.UnaryInterceptor(service.DiscoveryErrorToGRPCInterceptor(logger)))
		grpcpeer.NewServer(replicas).Register(grpcServer)

		healthServer := health.NewServer()
		healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
		grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
		go func() {
			select {
			case <-tracker.Ready():
				healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
			case <-ctx.Done():
			}
		}()
	}

	// Start background loops
	store.Start(ctx)
	proxy.Start(ctx)
	if err := members.Register(ctx); err != nil {
		level.Error(logger).Log("msg", "Failed to register in membership", "err", err)
		os.Exit(1)
	}
	replicator.Start(ctx)
	go func() {
		select {
		case <-tracker.Ready():
			level.Info(logger).Log("msg", "Initialization complete")
		case <-ctx.Done():
		}
	}()

	// Setup graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	// Start servers in goroutines
	go func() {
		addr := fmt.Sprintf(":%d", config.HTTPPort)
		level.Info(logger).Log("msg", "Starting HTTP server", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			level.Error(logger).Log("msg", "HTTP server error", "err", err)
		}
	}()
	if grpcServer != nil {
		go func() {
			level.Info(logger).Log("msg", "Starting gRPC server", "addr", grpcListener.Addr().String())
			if err := grpcServer.Serve(grpcListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
				level.Error(logger).Log("msg", "gRPC server error", "err", err)
			}
		}()
	}

	// Wait for interrupt signal
	<-quit
	level.Info(logger).Log("msg", "Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := members.Deregister(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "Error during membership deregistration", "err", err)
	}
	if err := e.Shutdown(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "Error during server shutdown", "err", err)
	}
	if grpcServer != nil {
		stopped := make(chan struct{})
		go func() {
			grpcServer.GracefulStop()
			close(stopped)
		}()
		select {
		case <-stopped:
		case <-shutdownCtx.Done():
			grpcServer.Stop()
		}
	}

	cancel()
	replicator.Stop()
	proxy.Stop()
	store.Stop()

	if err := errors.Join(members.Close(), closeRemote(), closeRedis()); err != nil {
		level.Error(logger).Log("msg", "Error releasing connections", "err", err)
	}

	level.Info(logger).Log("msg", "Server stopped")
}
