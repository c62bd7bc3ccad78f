package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config aggregates the service configuration.
type Config struct {
	Server ServerConfig
	USSD   USSDConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	ussd, err := loadUSSDConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, USSD: ussd}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Allow ":8080" or "127.0.0.1:8080" directly.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// USSDConfig describes dialog-session behavior.
type USSDConfig struct {
	// SessionTimeout is the idle window after which a dialog session is
	// swept. The gateway itself abandons dialogs after 90 seconds.
	SessionTimeout time.Duration
	// SeedDemoBalances preloads the demo ledger entries on startup.
	SeedDemoBalances bool
}

func loadUSSDConfig() (USSDConfig, error) {
	timeoutMs := 90_000
	if override, err := parseOptionalIntEnv("USSD_SESSION_TIMEOUT_MS"); err != nil {
		return USSDConfig{}, err
	} else if override != nil {
		if *override <= 0 {
			return USSDConfig{}, fmt.Errorf("USSD_SESSION_TIMEOUT_MS must be positive, got %d", *override)
		}
		timeoutMs = *override
	}

	seed, err := parseBoolEnv("USSD_DEMO_SEED", true)
	if err != nil {
		return USSDConfig{}, err
	}

	return USSDConfig{
		SessionTimeout:   time.Duration(timeoutMs) * time.Millisecond,
		SeedDemoBalances: seed,
	}, nil
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
