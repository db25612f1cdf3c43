package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName         string
	AppEnv          string
	AppPort         string
	DatabaseDriver  string
	DatabasePath    string
	DatabaseURL     string
	RedisURL        string
	SessionCookie   string
	SessionTTL      time.Duration
	SessionSecure   bool
	BcryptCost      int
	SeedDemo        bool
	LoginRateLimit  int
	LoginRateWindow time.Duration
	LogLevel        string
	LogFormat       string
	CORSOrigins     string
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("SCHOOL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "School Admin API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "3000")
	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.path", "school.db")
	v.SetDefault("session.cookie", "school_session")
	v.SetDefault("session.ttl", "24h")
	v.SetDefault("session.secure", false)
	v.SetDefault("bcrypt.cost", bcrypt.DefaultCost)
	v.SetDefault("seed.demo", true)
	v.SetDefault("login.rate_limit", 10)
	v.SetDefault("login.rate_window", "1m")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	sessionTTL, err := parseDuration(v.GetString("session.ttl"), 24*time.Hour)
	if err != nil {
		return Config{}, fmt.Errorf("invalid session ttl: %w", err)
	}

	rateWindow, err := parseDuration(v.GetString("login.rate_window"), time.Minute)
	if err != nil {
		return Config{}, fmt.Errorf("invalid login rate window: %w", err)
	}

	cfg := Config{
		AppName:         v.GetString("app.name"),
		AppEnv:          v.GetString("app.env"),
		AppPort:         v.GetString("app.port"),
		DatabaseDriver:  strings.ToLower(strings.TrimSpace(v.GetString("database.driver"))),
		DatabasePath:    v.GetString("database.path"),
		DatabaseURL:     v.GetString("database.url"),
		RedisURL:        v.GetString("redis.url"),
		SessionCookie:   v.GetString("session.cookie"),
		SessionTTL:      sessionTTL,
		SessionSecure:   v.GetBool("session.secure"),
		BcryptCost:      v.GetInt("bcrypt.cost"),
		SeedDemo:        v.GetBool("seed.demo"),
		LoginRateLimit:  v.GetInt("login.rate_limit"),
		LoginRateWindow: rateWindow,
		LogLevel:        strings.ToLower(v.GetString("log.level")),
		LogFormat:       strings.ToLower(v.GetString("log.format")),
		CORSOrigins:     v.GetString("cors.origins"),
	}

	switch cfg.DatabaseDriver {
	case DriverSQLite:
		if strings.TrimSpace(cfg.DatabasePath) == "" {
			return Config{}, fmt.Errorf("database path must be provided for sqlite")
		}
	case DriverPostgres:
		if strings.TrimSpace(cfg.DatabaseURL) == "" {
			return Config{}, fmt.Errorf("database url must be provided for postgres")
		}
	default:
		return Config{}, fmt.Errorf("unsupported database driver %q", cfg.DatabaseDriver)
	}

	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		cfg.BcryptCost = bcrypt.DefaultCost
	}

	if cfg.LoginRateLimit <= 0 {
		cfg.LoginRateLimit = 10
	}

	return cfg, nil
}

func parseDuration(value string, fallback time.Duration) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, err
	}
	if parsed <= 0 {
		return fallback, nil
	}
	return parsed, nil
}
