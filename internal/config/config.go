package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	// ERDDAP source configuration.
	ERDDAPBaseURL string
	ERDDAPDataset string
	ERDDAPTimeout time.Duration

	// Query region and pressure band.
	RegionMinLon float64
	RegionMaxLon float64
	RegionMinLat float64
	RegionMaxLat float64
	MinPressure  float64
	MaxPressure  float64

	// How far back each fetch window reaches, and how often to fetch.
	Lookback      time.Duration
	FetchInterval time.Duration

	KafkaBrokers    []string
	KafkaSinkTopic  string
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	erddapTimeout, err := durationEnv("ERDDAP_TIMEOUT", "30s")
	if err != nil {
		return nil, err
	}

	lookback, err := durationEnv("LOOKBACK", "168h")
	if err != nil {
		return nil, err
	}

	fetchInterval, err := durationEnv("FETCH_INTERVAL", "6h")
	if err != nil {
		return nil, err
	}

	shutdownTimeout, err := durationEnv("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	minLon, err := floatEnv("REGION_MIN_LON", "-75")
	if err != nil {
		return nil, err
	}
	maxLon, err := floatEnv("REGION_MAX_LON", "-45")
	if err != nil {
		return nil, err
	}
	minLat, err := floatEnv("REGION_MIN_LAT", "20")
	if err != nil {
		return nil, err
	}
	maxLat, err := floatEnv("REGION_MAX_LAT", "30")
	if err != nil {
		return nil, err
	}

	minPressure, err := floatEnv("MIN_PRESSURE_DBAR", "0")
	if err != nil {
		return nil, err
	}
	maxPressure, err := floatEnv("MAX_PRESSURE_DBAR", "2000")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ERDDAPBaseURL: envOrDefault("ERDDAP_BASE_URL", "https://erddap.ifremer.fr/erddap"),
		ERDDAPDataset: envOrDefault("ERDDAP_DATASET", "ArgoFloats"),
		ERDDAPTimeout: erddapTimeout,

		RegionMinLon: minLon,
		RegionMaxLon: maxLon,
		RegionMinLat: minLat,
		RegionMaxLat: maxLat,
		MinPressure:  minPressure,
		MaxPressure:  maxPressure,

		Lookback:      lookback,
		FetchInterval: fetchInterval,

		KafkaBrokers:    parseBrokers(envOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaSinkTopic:  envOrDefault("KAFKA_SINK_TOPIC", "ocean-sound-profiles"),
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
	}

	if cfg.RegionMinLon >= cfg.RegionMaxLon {
		return nil, errors.New("REGION_MIN_LON must be less than REGION_MAX_LON")
	}
	if cfg.RegionMinLat >= cfg.RegionMaxLat {
		return nil, errors.New("REGION_MIN_LAT must be less than REGION_MAX_LAT")
	}
	if cfg.MinPressure < 0 {
		return nil, errors.New("MIN_PRESSURE_DBAR must not be negative")
	}
	if cfg.MaxPressure <= cfg.MinPressure {
		return nil, errors.New("MAX_PRESSURE_DBAR must exceed MIN_PRESSURE_DBAR")
	}
	if len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_BROKERS is required")
	}
	if cfg.KafkaSinkTopic == "" {
		return nil, errors.New("KAFKA_SINK_TOPIC is required")
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func durationEnv(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, def))
	if err != nil || d <= 0 {
		return 0, errors.New("invalid " + key)
	}
	return d, nil
}

func floatEnv(key, def string) (float64, error) {
	f, err := strconv.ParseFloat(envOrDefault(key, def), 64)
	if err != nil {
		return 0, errors.New("invalid " + key)
	}
	return f, nil
}

func parseBrokers(s string) []string {
	parts := strings.Split(s, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if b := strings.TrimSpace(p); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
