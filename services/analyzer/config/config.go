package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds environment-driven settings for the analyzer API.
type Config struct {
	Port             int
	MapsAPIKey       string
	GeocodeBaseURL   string
	AddressesCSVPath string
	BearerToken      string
}

// Load reads configuration from environment variables (optionally .env).
// The Maps API key is optional; without it the geocoding endpoints report
// that lookups are unavailable and sessions must be created with explicit
// coordinates.
func Load() (Config, error) {
	_ = godotenv.Load() // ignore missing file

	cfg := Config{
		Port:             8080,
		AddressesCSVPath: "addresses.csv",
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil && port > 0 {
			cfg.Port = port
		} else {
			return cfg, fmt.Errorf("invalid PORT: %s", portStr)
		}
	} else if portStr := os.Getenv("API_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil && port > 0 {
			cfg.Port = port
		} else {
			return cfg, fmt.Errorf("invalid API_PORT: %s", portStr)
		}
	}

	cfg.MapsAPIKey = os.Getenv("GOOGLE_MAPS_API_KEY")
	cfg.GeocodeBaseURL = os.Getenv("GEOCODE_BASE_URL")

	if path := os.Getenv("ADDRESSES_CSV_PATH"); path != "" {
		cfg.AddressesCSVPath = path
	}

	cfg.BearerToken = os.Getenv("API_BEARER_TOKEN")

	return cfg, nil
}

// ListenAddr returns the host:port string for the HTTP server.
func (c Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}
