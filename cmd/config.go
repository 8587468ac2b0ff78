package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/jsabin/discovery/adapters/membership"

	"github.com/go-kit/log/level"
	"gopkg.in/yaml.v3"
)

// Env variable names.
const (
	envConfigPath          = "CONFIG_PATH"
	envEnvironment         = "ENVIRONMENT"
	envHTTPPort            = "SERVICE_PORT_HTTP"
	envGRPCPort            = "SERVICE_PORT_GRPC"
	envRedisAddr           = "REDIS_ADDR"
	envStaticStorePrefix   = "STATIC_STORE_PREFIX"
	envLogLevel            = "LOG_LEVEL"
	envMaxAge              = "MAX_AGE"
	envTombstoneMaxAge     = "TOMBSTONE_MAX_AGE"
	envReplicationInterval = "REPLICATION_INTERVAL"
	envExpiryInterval      = "EXPIRY_INTERVAL"
	envTriggerRate         = "REPLICATION_TRIGGER_RATE"
	envTransport           = "REPLICATION_TRANSPORT"
	envSelfAddress         = "SELF_ADDRESS"
	envMembership          = "MEMBERSHIP"
	envMembershipEndpoints = "MEMBERSHIP_ENDPOINTS"
	envPeers               = "PEERS"
	envProxyEnvironment    = "PROXY_ENVIRONMENT"
	envProxyURIs           = "PROXY_URIS"
	envProxyTypes          = "PROXY_TYPES"
	envProxyRefresh        = "PROXY_REFRESH_INTERVAL"
	envProxyFetchTimeout   = "PROXY_FETCH_TIMEOUT"
)

// Replication transports.
const (
	TransportHTTP = "http"
	TransportGRPC = "grpc"
)

// Defaults.
const (
	defaultStaticStorePrefix   = "announcements"
	defaultLogLevel            = "info"
	defaultMaxAge              = 30 * time.Second
	defaultTombstoneMaxAge     = 24 * time.Hour
	defaultReplicationInterval = 5 * time.Second
	defaultExpiryInterval      = time.Second
	defaultTriggerRate         = 1.0
	defaultProxyRefresh        = 10 * time.Second
	defaultProxyFetchTimeout   = 5 * time.Second
)

type StoreConfig struct {
	MaxAge              time.Duration
	TombstoneMaxAge     time.Duration
	ReplicationInterval time.Duration
	ExpiryInterval      time.Duration
	TriggerRate         float64
}

type ProxyConfig struct {
	Environment     string
	URIs            []string
	Types           []string
	RefreshInterval time.Duration
	FetchTimeout    time.Duration
}

// Enabled reports whether both proxied types and upstream URIs are set. Either one alone leaves the
// proxy store unconfigured.
func (p ProxyConfig) Enabled() bool {
	return len(p.Types) > 0 && len(p.URIs) > 0
}

// Config is the registry configuration. LoadConfig fills it from the YAML file at CONFIG_PATH, if any,
// with environment variables taking precedence.
type Config struct {
	Environment       string
	HTTPPort          int
	GRPCPort          int
	RedisAddr         string
	StaticStorePrefix string
	LogLevel          string
	Store             StoreConfig
	Transport         string
	SelfAddress       string
	Membership        membership.Config
	Proxy             ProxyConfig
}

type yamlConfig struct {
	Environment string          `yaml:"environment"`
	HTTPPort    int             `yaml:"http_port"`
	GRPCPort    int             `yaml:"grpc_port"`
	LogLevel    string          `yaml:"log_level"`
	Redis       yamlRedis       `yaml:"redis"`
	Store       yamlStore       `yaml:"store"`
	Replication yamlReplication `yaml:"replication"`
	Membership  yamlMembership  `yaml:"membership"`
	Proxy       yamlProxy       `yaml:"proxy"`
}

type yamlRedis struct {
	Addr   string `yaml:"addr"`
	Prefix string `yaml:"prefix"`
}

type yamlStore struct {
	MaxAge              string   `yaml:"max_age"`
	TombstoneMaxAge     string   `yaml:"tombstone_max_age"`
	ReplicationInterval string   `yaml:"replication_interval"`
	ExpiryInterval      string   `yaml:"expiry_interval"`
	TriggerRate         *float64 `yaml:"trigger_rate"`
}

type yamlReplication struct {
	Transport string `yaml:"transport"`
	Self      string `yaml:"self"`
}

type yamlMembership struct {
	Kind      string   `yaml:"kind"`
	Endpoints []string `yaml:"endpoints"`
	Peers     []string `yaml:"peers"`
}

type yamlProxy struct {
	Environment     string   `yaml:"environment"`
	URIs            []string `yaml:"uris"`
	Types           []string `yaml:"types"`
	RefreshInterval string   `yaml:"refresh_interval"`
	FetchTimeout    string   `yaml:"fetch_timeout"`
}

func loadYAMLConfig(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out yamlConfig
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// source resolves one key: the environment variable when set and not blank, the YAML value otherwise.
// Problems are collected in errs.
type source struct {
	errs []error
}

func (s *source) str(env string, fromYAML string) string {
	if v := strings.TrimSpace(os.Getenv(env)); v != "" {
		return v
	}
	return fromYAML
}

func (s *source) list(env string, fromYAML []string) []string {
	v := strings.TrimSpace(os.Getenv(env))
	if v == "" {
		return fromYAML
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func (s *source) port(env string, fromYAML int) int {
	raw := s.str(env, "")
	if raw == "" {
		if fromYAML == 0 {
			s.errs = append(s.errs, fmt.Errorf("%s is required", env))
			return 0
		}
		raw = strconv.Itoa(fromYAML)
	}
	port, err := strconv.Atoi(raw)
	if err != nil || port <= 0 || port > 65535 {
		s.errs = append(s.errs, fmt.Errorf("%s must be a valid port (1-65535), got %q", env, raw))
		return 0
	}
	return port
}

func (s *source) duration(env string, fromYAML string, def time.Duration) time.Duration {
	raw := s.str(env, fromYAML)
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		s.errs = append(s.errs, fmt.Errorf("invalid %s: %w", env, err))
		return 0
	}
	if d <= 0 {
		s.errs = append(s.errs, fmt.Errorf("%s must be positive, got %s", env, raw))
		return 0
	}
	return d
}

func (s *source) rate(env string, fromYAML *float64, def float64) float64 {
	raw := s.str(env, "")
	if raw == "" {
		if fromYAML != nil {
			return *fromYAML
		}
		return def
	}
	r, err := strconv.ParseFloat(raw, 64)
	if err != nil || r < 0 {
		s.errs = append(s.errs, fmt.Errorf("%s must be a non-negative number, got %q", env, raw))
		return 0
	}
	return r
}

func (s *source) required(env string, value string) string {
	if value == "" {
		s.errs = append(s.errs, fmt.Errorf("%s is required", env))
	}
	return value
}

// LoadConfig builds the configuration from the optional YAML file at CONFIG_PATH and environment variables.
// ENVIRONMENT, SERVICE_PORT_HTTP and REDIS_ADDR are required, SERVICE_PORT_GRPC too when the replication
// transport is grpc. All problems found are returned joined.
func LoadConfig() (*Config, error) {
	raw := &yamlConfig{}
	if configPath := strings.TrimSpace(os.Getenv(envConfigPath)); configPath != "" {
		if !filepath.IsAbs(configPath) {
			abs, err := filepath.Abs(configPath)
			if err != nil {
				return nil, err
			}
			configPath = abs
		}
		loaded, err := loadYAMLConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", configPath, err)
		}
		raw = loaded
	}

	src := &source{}
	cfg := &Config{
		Environment:       src.required(envEnvironment, src.str(envEnvironment, raw.Environment)),
		HTTPPort:          src.port(envHTTPPort, raw.HTTPPort),
		RedisAddr:         src.required(envRedisAddr, src.str(envRedisAddr, raw.Redis.Addr)),
		StaticStorePrefix: src.str(envStaticStorePrefix, raw.Redis.Prefix),
		LogLevel:          strings.ToLower(src.str(envLogLevel, raw.LogLevel)),
		Store: StoreConfig{
			MaxAge:              src.duration(envMaxAge, raw.Store.MaxAge, defaultMaxAge),
			TombstoneMaxAge:     src.duration(envTombstoneMaxAge, raw.Store.TombstoneMaxAge, defaultTombstoneMaxAge),
			ReplicationInterval: src.duration(envReplicationInterval, raw.Store.ReplicationInterval, defaultReplicationInterval),
			ExpiryInterval:      src.duration(envExpiryInterval, raw.Store.ExpiryInterval, defaultExpiryInterval),
			TriggerRate:         src.rate(envTriggerRate, raw.Store.TriggerRate, defaultTriggerRate),
		},
		Transport:   strings.ToLower(src.str(envTransport, raw.Replication.Transport)),
		SelfAddress: src.str(envSelfAddress, raw.Replication.Self),
		Membership: membership.Config{
			Kind:      strings.ToLower(src.str(envMembership, raw.Membership.Kind)),
			Endpoints: src.list(envMembershipEndpoints, raw.Membership.Endpoints),
			Peers:     src.list(envPeers, raw.Membership.Peers),
		},
		Proxy: ProxyConfig{
			Environment:     src.str(envProxyEnvironment, raw.Proxy.Environment),
			URIs:            src.list(envProxyURIs, raw.Proxy.URIs),
			Types:           src.list(envProxyTypes, raw.Proxy.Types),
			RefreshInterval: src.duration(envProxyRefresh, raw.Proxy.RefreshInterval, defaultProxyRefresh),
			FetchTimeout:    src.duration(envProxyFetchTimeout, raw.Proxy.FetchTimeout, defaultProxyFetchTimeout),
		},
	}
	if cfg.StaticStorePrefix == "" {
		cfg.StaticStorePrefix = defaultStaticStorePrefix
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	if _, err := levelOption(cfg.LogLevel); err != nil {
		src.errs = append(src.errs, err)
	}

	switch cfg.Transport {
	case "":
		cfg.Transport = TransportHTTP
	case TransportHTTP:
	case TransportGRPC:
		cfg.GRPCPort = src.port(envGRPCPort, raw.GRPCPort)
	default:
		src.errs = append(src.errs, fmt.Errorf("%s must be %s or %s, got %q", envTransport, TransportHTTP, TransportGRPC, cfg.Transport))
	}
	if cfg.SelfAddress == "" {
		port := cfg.HTTPPort
		if cfg.Transport == TransportGRPC {
			port = cfg.GRPCPort
		}
		cfg.SelfAddress = fmt.Sprintf("localhost:%d", port)
	}

	if cfg.Membership.Kind == "" {
		cfg.Membership.Kind = membership.KindStatic
	}
	if !slices.Contains(membership.Kinds(), cfg.Membership.Kind) {
		src.errs = append(src.errs, fmt.Errorf("%s must be one of %v, got %q", envMembership, membership.Kinds(), cfg.Membership.Kind))
	}
	cfg.Membership.Self = cfg.SelfAddress
	cfg.Membership.Namespace = cfg.Environment

	if cfg.Store.ExpiryInterval > 0 && cfg.Store.ReplicationInterval > 0 && cfg.Store.ExpiryInterval >= cfg.Store.ReplicationInterval {
		src.errs = append(src.errs, fmt.Errorf("%s (%s) must be shorter than %s (%s)",
			envExpiryInterval, cfg.Store.ExpiryInterval, envReplicationInterval, cfg.Store.ReplicationInterval))
	}

	if cfg.Proxy.Enabled() {
		if cfg.Proxy.Environment == "" {
			src.errs = append(src.errs, fmt.Errorf("%s is required when proxying", envProxyEnvironment))
		} else if cfg.Proxy.Environment == cfg.Environment {
			src.errs = append(src.errs, fmt.Errorf("%s must differ from %s %q", envProxyEnvironment, envEnvironment, cfg.Environment))
		}
	}

	if err := errors.Join(src.errs...); err != nil {
		return nil, err
	}
	return cfg, nil
}

// levelOption maps a LOG_LEVEL value to the go-kit level filter.
func levelOption(name string) (level.Option, error) {
	switch name {
	case "debug":
		return level.AllowDebug(), nil
	case "info":
		return level.AllowInfo(), nil
	case "warn":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	default:
		return nil, fmt.Errorf("%s must be debug, info, warn or error, got %q", envLogLevel, name)
	}
}
