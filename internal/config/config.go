package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	Redis     RedisConfig
	Collector CollectorConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type AuthConfig struct {
	AccessSecret     string
	RefreshSecret    string
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string

	// ProgressChannel is the pub/sub channel carrying batch-scoring progress
	// events from the batch runner to the API's websocket hub.
	ProgressChannel string
}

type CollectorConfig struct {
	// BoardURL is the listing page of the job board to ingest offers from.
	BoardURL string
	// OfferSelector / TitleSelector / CSPSelector are the CSS selectors used
	// on the listing page.
	OfferSelector string
	TitleSelector string
	CSPSelector   string
	// Headless switches the fetch to a headless browser for boards that
	// render their listings client-side.
	Headless bool
	MaxPages int
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE"),

		ConnectTimeout:        durationOrDefault("DB_CONNECT_TIMEOUT", 10*time.Second),
		PoolMaxConns:          int32OrDefault("DB_POOL_MAX_CONNS", 8),
		PoolMinConns:          int32OrDefault("DB_POOL_MIN_CONNS", 1),
		PoolMaxConnLifetime:   durationOrDefault("DB_POOL_MAX_CONN_LIFETIME", time.Hour),
		PoolMaxConnIdleTime:   durationOrDefault("DB_POOL_MAX_CONN_IDLE_TIME", 30*time.Minute),
		PoolHealthCheckPeriod: durationOrDefault("DB_POOL_HEALTH_CHECK_PERIOD", time.Minute),
	}

	cfg.Auth = AuthConfig{
		AccessSecret:     req("JWT_ACCESS_SECRET"),
		RefreshSecret:    req("JWT_REFRESH_SECRET"),
		AccessExpiresIn:  durationOrDefault("JWT_ACCESS_EXPIRES_IN", 15*time.Minute),
		RefreshExpiresIn: durationOrDefault("JWT_REFRESH_EXPIRES_IN", 7*24*time.Hour),
	}

	cfg.Redis = RedisConfig{
		Host:            opt("REDIS_HOST"),
		Port:            opt("REDIS_PORT"),
		Password:        opt("REDIS_PASSWORD"),
		ProgressChannel: stringOrDefault("REDIS_PROGRESS_CHANNEL", "scoring:progression"),
	}

	cfg.Collector = CollectorConfig{
		BoardURL:      opt("COLLECTOR_BOARD_URL"),
		OfferSelector: stringOrDefault("COLLECTOR_OFFER_SELECTOR", "article.offre"),
		TitleSelector: stringOrDefault("COLLECTOR_TITLE_SELECTOR", "h2.titre"),
		CSPSelector:   stringOrDefault("COLLECTOR_CSP_SELECTOR", ".csp"),
		Headless:      boolOrDefault("COLLECTOR_HEADLESS", false),
		MaxPages:      intOrDefault("COLLECTOR_MAX_PAGES", 3),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func stringOrDefault(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func durationOrDefault(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func intOrDefault(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func int32OrDefault(key string, def int32) int32 {
	return int32(intOrDefault(key, int(def)))
}

func boolOrDefault(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
