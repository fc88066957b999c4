package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                 string
	DatabaseURL          string
	JWTSecret            string
	LogLevel             string
	DefaultOutlierMethod string
	MicroThreshold       float64
	CacheTTL             time.Duration
	QueryTimeout         time.Duration
	DBMaxConns           int32
	AllowedOrigins       []string
}

// Load reads a .env file if present, then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() (Config, error) {
	cfg := Config{
		Port:                 getEnv("PORT", "8080"),
		DatabaseURL:          getEnv("DATABASE_URL", ""),
		JWTSecret:            getEnv("JWT_SECRET", ""),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		DefaultOutlierMethod: getEnv("DEFAULT_OUTLIER_METHOD", "std"),
		AllowedOrigins:       splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:5173")),
	}

	var errs []error
	if cfg.DatabaseURL == "" {
		errs = append(errs, errors.New("DATABASE_URL is required"))
	}
	if cfg.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}

	var err error
	if cfg.MicroThreshold, err = strconv.ParseFloat(getEnv("MICRO_THRESHOLD", "2.0"), 64); err != nil {
		errs = append(errs, fmt.Errorf("MICRO_THRESHOLD: %w", err))
	}
	if cfg.CacheTTL, err = time.ParseDuration(getEnv("CACHE_TTL", "5m")); err != nil {
		errs = append(errs, fmt.Errorf("CACHE_TTL: %w", err))
	}
	if cfg.QueryTimeout, err = time.ParseDuration(getEnv("QUERY_TIMEOUT", "10s")); err != nil {
		errs = append(errs, fmt.Errorf("QUERY_TIMEOUT: %w", err))
	}
	maxConns, err := strconv.ParseInt(getEnv("DB_MAX_CONNS", "10"), 10, 32)
	if err != nil || maxConns < 1 {
		errs = append(errs, fmt.Errorf("DB_MAX_CONNS: must be a positive integer"))
	}
	cfg.DBMaxConns = int32(maxConns)

	return cfg, errors.Join(errs...)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
