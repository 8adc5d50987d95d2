package config

import (
	"log/slog"
	"testing"

	"github.com/Dosada05/family-games/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"SERVER_PORT", "LOG_LEVEL", "STORAGE_DRIVER", "DATABASE_URL", "CORS_ALLOWED_ORIGINS",
		"R2_ACCOUNT_ID", "R2_ACCESS_KEY_ID", "R2_SECRET_ACCESS_KEY", "R2_BUCKET_NAME", "R2_PUBLIC_BASE_URL", "R2_PREFIX",
		"POINTS_FIRST", "POINTS_SECOND", "POINTS_THIRD",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, StorageMemory, cfg.StorageDriver)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, models.PointValues{First: 10, Second: 5, Third: 2}, cfg.DefaultPoints)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/games")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("POINTS_FIRST", "25")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, StoragePostgres, cfg.StorageDriver)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
	assert.Equal(t, 25, cfg.DefaultPoints.First)
	assert.Equal(t, 5, cfg.DefaultPoints.Second)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "bad port", env: map[string]string{"SERVER_PORT": "eighty"}},
		{name: "port out of range", env: map[string]string{"SERVER_PORT": "70000"}},
		{name: "bad log level", env: map[string]string{"LOG_LEVEL": "loud"}},
		{name: "unknown driver", env: map[string]string{"STORAGE_DRIVER": "sqlite"}},
		{name: "postgres without url", env: map[string]string{"STORAGE_DRIVER": "postgres"}},
		{name: "r2 without credentials", env: map[string]string{"STORAGE_DRIVER": "r2", "R2_BUCKET_NAME": "b"}},
		{name: "negative points", env: map[string]string{"POINTS_THIRD": "-1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
