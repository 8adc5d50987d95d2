package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/Dosada05/family-games/models"
	"github.com/joho/godotenv"
)

type StorageDriver string

const (
	StorageMemory   StorageDriver = "memory"
	StoragePostgres StorageDriver = "postgres"
	StorageR2       StorageDriver = "r2"
)

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	PublicBaseURL   string
	Prefix          string
}

// Config holds every runtime setting of the application.
type Config struct {
	ServerPort     int
	LogLevel       slog.Level
	StorageDriver  StorageDriver
	DatabaseURL    string
	R2             R2Config
	AllowedOrigins []string
	DefaultPoints  models.PointValues
}

// Load reads configuration from the environment, after loading an optional
// .env file for local development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := intEnv("SERVER_PORT", 8080)
	if err != nil {
		return nil, err
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(envOrDefault("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL environment variable: %w", err)
	}

	cfg := &Config{
		ServerPort:     port,
		LogLevel:       level,
		StorageDriver:  StorageDriver(strings.ToLower(envOrDefault("STORAGE_DRIVER", string(StorageMemory)))),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		AllowedOrigins: splitList(envOrDefault("CORS_ALLOWED_ORIGINS", "*")),
		R2: R2Config{
			AccountID:       os.Getenv("R2_ACCOUNT_ID"),
			AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
			BucketName:      os.Getenv("R2_BUCKET_NAME"),
			PublicBaseURL:   os.Getenv("R2_PUBLIC_BASE_URL"),
			Prefix:          os.Getenv("R2_PREFIX"),
		},
	}

	switch cfg.StorageDriver {
	case StorageMemory:
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL environment variable is required for the postgres storage driver")
		}
	case StorageR2:
		r2 := cfg.R2
		if r2.AccountID == "" || r2.AccessKeyID == "" || r2.SecretAccessKey == "" || r2.BucketName == "" {
			return nil, fmt.Errorf("R2_ACCOUNT_ID, R2_ACCESS_KEY_ID, R2_SECRET_ACCESS_KEY and R2_BUCKET_NAME are required for the r2 storage driver")
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q (expected memory, postgres or r2)", cfg.StorageDriver)
	}

	if cfg.DefaultPoints, err = loadDefaultPoints(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadDefaultPoints() (models.PointValues, error) {
	var points models.PointValues
	for _, p := range []struct {
		env string
		def int
		dst *int
	}{
		{"POINTS_FIRST", 10, &points.First},
		{"POINTS_SECOND", 5, &points.Second},
		{"POINTS_THIRD", 2, &points.Third},
	} {
		v, err := intEnv(p.env, p.def)
		if err != nil {
			return models.PointValues{}, err
		}
		if v < 0 {
			return models.PointValues{}, fmt.Errorf("%s must not be negative, got %d", p.env, v)
		}
		*p.dst = v
	}
	return points, nil
}

func envOrDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func intEnv(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s environment variable: %w", key, err)
	}
	return v, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
