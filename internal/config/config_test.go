package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "")
	t.Setenv("STORAGE_CACHE", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "8000", cfg.Server.Port)
	require.Equal(t, BackendFile, cfg.Storage.Backend)
	require.Equal(t, CacheMemory, cfg.Storage.Cache)
	require.Equal(t, "data", cfg.Storage.DataDir)
	require.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.Server.AllowedOrigins)
	require.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORAGE_BACKEND", "Mongo")
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("MONGODB_TIMEOUT", "3")
	t.Setenv("STORAGE_CACHE", "redis")
	t.Setenv("REDIS_HOST", "localhost")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_RPS", "2.5")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Server.Port)
	require.Equal(t, BackendMongo, cfg.Storage.Backend)
	require.Equal(t, 3*time.Second, cfg.MongoDB.Timeout)
	require.Equal(t, "localhost:6379", cfg.Redis.Addr())
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	require.True(t, cfg.RateLimit.Enabled)
	require.Equal(t, 2.5, cfg.RateLimit.RPS)
}

func TestLoadConfigRejectsIncompleteBackends(t *testing.T) {
	cases := map[string]map[string]string{
		"mongo without uri":  {"STORAGE_BACKEND": "mongo", "MONGODB_URI": ""},
		"minio without host": {"STORAGE_BACKEND": "minio", "MINIO_ENDPOINT": ""},
		"unknown backend":    {"STORAGE_BACKEND": "sqlite"},
		"redis without host": {"STORAGE_BACKEND": "file", "STORAGE_CACHE": "redis", "REDIS_HOST": ""},
		"unknown cache":      {"STORAGE_BACKEND": "file", "STORAGE_CACHE": "memcached"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			require.Error(t, err)
		})
	}
}
