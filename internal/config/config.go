package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress               string
	DatabaseURI              string
	UserServiceAddress       string
	RestaurantServiceAddress string
	GatewayTimeout           time.Duration
	ShutdownTimeout          time.Duration
}

const (
	defaultRunAddress      = ":8080"
	defaultGatewayTimeout  = 10 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:               getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:              getString(lookup, "DATABASE_URI", ""),
		UserServiceAddress:       getString(lookup, "USER_SERVICE_ADDRESS", ""),
		RestaurantServiceAddress: getString(lookup, "RESTAURANT_SERVICE_ADDRESS", ""),
		GatewayTimeout:           getDuration(lookup, "GATEWAY_TIMEOUT", defaultGatewayTimeout),
		ShutdownTimeout:          getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("orderservice", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		gatewayTimeoutStr  = cfg.GatewayTimeout.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.UserServiceAddress, "u", cfg.UserServiceAddress, "User service base URL")
	fs.StringVar(&cfg.RestaurantServiceAddress, "r", cfg.RestaurantServiceAddress, "Restaurant service base URL")
	fs.StringVar(&gatewayTimeoutStr, "gateway-timeout", gatewayTimeoutStr, "Timeout for collaborator service calls")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.GatewayTimeout, err = time.ParseDuration(gatewayTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid gateway timeout: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.GatewayTimeout <= 0 {
		cfg.GatewayTimeout = defaultGatewayTimeout
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.UserServiceAddress == "" {
		return nil, fmt.Errorf("user service address must be provided")
	}

	if cfg.RestaurantServiceAddress == "" {
		return nil, fmt.Errorf("restaurant service address must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
