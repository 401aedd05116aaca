package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis (optional spam tally cache)
	RedisURL          string
	SpamTallyCacheTTL time.Duration

	// JWT
	JWTSecret string
	JWTExpiry time.Duration

	// Lookup
	LookupFanoutLimit int

	// Logging
	LogRetentionDays int

	// Server
	Port               string
	CORSOrigins        string
	RateLimitPerMinute int
	AuthRateLimit      int

	// Error tracking
	SentryDSN string
	AppEnv    string
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "idcaller"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		RedisURL:          getEnv("REDIS_URL", ""),
		SpamTallyCacheTTL: parseDuration(getEnv("SPAM_TALLY_CACHE_TTL", "30s"), 30*time.Second),

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTExpiry: parseDuration(getEnv("JWT_EXPIRY", "1h"), time.Hour),

		LookupFanoutLimit: parseInt(getEnv("LOOKUP_FANOUT_LIMIT", "8"), 8),

		LogRetentionDays: parseInt(getEnv("LOG_RETENTION_DAYS", "30"), 30),

		Port:               getEnv("PORT", "3000"),
		CORSOrigins:        getEnv("CORS_ORIGINS", "*"),
		RateLimitPerMinute: parseInt(getEnv("RATE_LIMIT_PER_MINUTE", "60"), 60),
		AuthRateLimit:      parseInt(getEnv("AUTH_RATE_LIMIT_PER_MINUTE", "10"), 10),

		SentryDSN: getEnv("SENTRY_DSN", ""),
		AppEnv:    getEnv("APP_ENV", "development"),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
