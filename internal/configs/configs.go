package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	AppURL                 string
	DatabaseURL            string
	DatabaseDriver         string
	RateLimit              int
	ShutdownTimeoutSeconds int
	RedisAddr              string
	RedisCachePrefix       string
	CacheTTL               time.Duration
	ListOrder              string
	LogLevel               string
	LogFormat              string
}

func Load() (Config, error) {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")

	databaseURL := getEnv("DATABASE_URL", getEnv("DATABASE_DSN", "todos.db"))

	var redisAddr string
	if redisHost := os.Getenv("REDIS_HOST"); redisHost != "" {
		redisAddr = fmt.Sprintf("%s:%s", redisHost, getEnv("REDIS_PORT", "6379"))
	}

	logLevel := getEnv("LOG_LEVEL", "info")
	if debug, err := strconv.ParseBool(os.Getenv("DEBUG")); err == nil && debug {
		logLevel = "debug"
	}

	rateLimit, err := getEnvAsInt("RATE_LIMIT_PER_MINUTE", 120)
	if err != nil {
		return Config{}, err
	}
	shutdownTimeout, err := getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20)
	if err != nil {
		return Config{}, err
	}
	cacheTTL, err := getEnvAsInt("CACHE_TTL_SECONDS", 30)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseURL:            databaseURL,
		DatabaseDriver:         getEnv("DATABASE_DRIVER", inferDriver(databaseURL)),
		RateLimit:              rateLimit,
		ShutdownTimeoutSeconds: shutdownTimeout,
		RedisAddr:              redisAddr,
		RedisCachePrefix:       getEnv("REDIS_CACHE_PREFIX", "todos"),
		CacheTTL:               time.Duration(cacheTTL) * time.Second,
		ListOrder:              getEnv("TASK_LIST_ORDER", "due_date"),
		LogLevel:               logLevel,
		LogFormat:              getEnv("LOG_FORMAT", "text"),
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	if cfg.AppURL == "" {
		return fmt.Errorf("APP_HOST/APP_PORT must not be empty (e.g. 127.0.0.1:8080)")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.DatabaseDriver != DriverSQLite && cfg.DatabaseDriver != DriverPostgres {
		return fmt.Errorf("DATABASE_DRIVER must be %q or %q, got %q", DriverSQLite, DriverPostgres, cfg.DatabaseDriver)
	}
	if cfg.RateLimit < 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must not be negative")
	}
	if cfg.ShutdownTimeoutSeconds <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0")
	}
	if cfg.RedisAddr != "" && cfg.CacheTTL <= 0 {
		return fmt.Errorf("CACHE_TTL_SECONDS must be greater than 0 when REDIS_HOST is set")
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}
	return nil
}

// RedactedDatabaseURL hides credentials so the DSN can be logged.
func (c Config) RedactedDatabaseURL() string {
	u, err := url.Parse(c.DatabaseURL)
	if err != nil || u.User == nil {
		if i := strings.LastIndex(c.DatabaseURL, "@"); i >= 0 {
			return "redacted" + c.DatabaseURL[i:]
		}
		return c.DatabaseURL
	}
	u.User = url.User("redacted")
	return u.String()
}

func inferDriver(databaseURL string) string {
	lower := strings.ToLower(databaseURL)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") ||
		strings.Contains(lower, "host=") {
		return DriverPostgres
	}
	return DriverSQLite
}

func getEnv(key, defaultVal string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) (int, error) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid integer value for %s", key)
		}
		return i, nil
	}
	return defaultVal, nil
}
