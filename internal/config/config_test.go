package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "JWT_EXPIRY", "LOOKUP_FANOUT_LIMIT", "REDIS_URL", "SPAM_TALLY_CACHE_TTL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 8, cfg.LookupFanoutLimit)
	assert.Equal(t, 30*time.Second, cfg.SpamTallyCacheTTL)
	assert.Empty(t, cfg.RedisURL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_EXPIRY", "15m")
	t.Setenv("LOOKUP_FANOUT_LIMIT", "2")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 15*time.Minute, cfg.JWTExpiry)
	assert.Equal(t, 2, cfg.LookupFanoutLimit)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
}

func TestLoadFallsBackOnInvalidValues(t *testing.T) {
	t.Setenv("JWT_EXPIRY", "soon")
	t.Setenv("LOOKUP_FANOUT_LIMIT", "-3")

	cfg := Load()

	assert.Equal(t, time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 8, cfg.LookupFanoutLimit)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "idcaller", DBSSLMode: "disable",
	}
	assert.Equal(t, "host=db user=u password=p dbname=idcaller port=5432 sslmode=disable TimeZone=UTC", cfg.DSN())
}
