package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgconfig "github.com/utafrali/storefront/pkg/config"
)

func load(t *testing.T, vars map[string]string) (*Config, error) {
	t.Helper()
	cfg := &Config{}
	err := pkgconfig.LoadFromMap(cfg, vars)
	return cfg, err
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(t, map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, 8001, cfg.HTTPPort)
	assert.Equal(t, "catalog_db", cfg.PostgresDB)
	assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 50.0, cfg.RateLimitRPS)
	assert.Equal(t, 100, cfg.RateLimitBurst)
	assert.False(t, cfg.CacheEnabled)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("CATALOG_HTTP_PORT", "9100")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.HTTPPort)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		vars    map[string]string
		wantErr string
	}{
		{"port too high", map[string]string{"CATALOG_HTTP_PORT": "70000"}, "invalid HTTP port"},
		{"port zero", map[string]string{"CATALOG_HTTP_PORT": "0"}, "invalid HTTP port"},
		{"min above max", map[string]string{"DB_MIN_CONNS": "30", "DB_MAX_CONNS": "10"}, "invalid pool sizes"},
		{"cache without ttl", map[string]string{"CACHE_ENABLED": "true", "CACHE_TTL_SECONDS": "0"}, "CACHE_TTL_SECONDS"},
		{"negative rate limit", map[string]string{"RATE_LIMIT_RPS": "-1"}, "RATE_LIMIT_RPS"},
		{"rate limit without burst", map[string]string{"RATE_LIMIT_BURST": "0"}, "RATE_LIMIT_BURST"},
		{"sample rate", map[string]string{"OTEL_SAMPLE_RATE": "1.5"}, "OTEL_SAMPLE_RATE"},
		{"not a number", map[string]string{"REDIS_PORT": "abc"}, "parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(t, tt.vars)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_Postgres(t *testing.T) {
	cfg, err := load(t, map[string]string{
		"POSTGRES_HOST":                "db",
		"CATALOG_DB_NAME":              "shop",
		"DB_MAX_CONN_LIFETIME_MINUTES": "10",
	})
	require.NoError(t, err)

	pg := cfg.Postgres()
	assert.Equal(t, "db", pg.Host)
	assert.Equal(t, 10*time.Minute, pg.MaxConnLifetime)
	assert.Equal(t, "postgres://storefront:storefront_secret@db:5432/shop?sslmode=disable", pg.DSN())
}

func TestConfig_Redis(t *testing.T) {
	cfg, err := load(t, map[string]string{
		"CACHE_ENABLED": "true",
		"REDIS_HOST":    "cache",
		"REDIS_DB":      "2",
	})
	require.NoError(t, err)

	rc := cfg.Redis()
	assert.Equal(t, "cache:6379", rc.Addr())
	assert.Equal(t, 2, rc.DB)
	assert.Equal(t, 10, rc.PoolSize)
}
