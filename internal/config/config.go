package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/random"
	"github.com/spf13/viper"
)

// Config is built once at startup and handed to the components that need it.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	Log       LogConfig
}

type ServerConfig struct {
	Port        string
	Env         string
	BodyLimit   string
	TrustProxy  bool
	CORSOrigins []string
}

type DatabaseConfig struct {
	URL           string
	RunMigrations bool
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// AuthConfig holds the session token settings.
type AuthConfig struct {
	JWTSecret   string
	JWTLifetime time.Duration
	// GeneratedSecret is true when JWT_SECRET was missing and a random one was used.
	GeneratedSecret bool
}

// RateLimitConfig caps each client IP to Max requests per Window.
type RateLimitConfig struct {
	Max    int
	Window time.Duration
}

type LogConfig struct {
	Level  string
	Format string // "console" or "json"
}

// IsProduction reports whether the service runs with APP_ENV=production.
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// Load reads configuration from the environment, an optional .env file and an
// optional CONFIG_FILE understood by viper.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	if p := os.Getenv("CONFIG_FILE"); p != "" {
		v.SetConfigFile(p)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", p, err)
		}
	}

	v.SetDefault("PORT", "3000")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("BODY_LIMIT", "1M")
	v.SetDefault("TRUST_PROXY", false)
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("JWT_LIFETIME", "30d")
	v.SetDefault("RATE_LIMIT_MAX", 100)
	v.SetDefault("RATE_LIMIT_WINDOW", "15m")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	cfg := &Config{
		Server: ServerConfig{
			Port:        v.GetString("PORT"),
			Env:         v.GetString("APP_ENV"),
			BodyLimit:   v.GetString("BODY_LIMIT"),
			TrustProxy:  v.GetBool("TRUST_PROXY"),
			CORSOrigins: splitList(v.GetString("CORS_ORIGINS")),
		},
		Database: DatabaseConfig{
			URL:           v.GetString("DATABASE_URL"),
			RunMigrations: v.GetBool("RUN_MIGRATIONS"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		RateLimit: RateLimitConfig{
			Max: v.GetInt("RATE_LIMIT_MAX"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}

	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	lifetime, err := ParseLifetime(v.GetString("JWT_LIFETIME"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_LIFETIME: %w", err)
	}
	cfg.Auth.JWTLifetime = lifetime

	window, err := time.ParseDuration(v.GetString("RATE_LIMIT_WINDOW"))
	if err != nil || window <= 0 {
		return nil, fmt.Errorf("invalid RATE_LIMIT_WINDOW %q", v.GetString("RATE_LIMIT_WINDOW"))
	}
	cfg.RateLimit.Window = window
	if cfg.RateLimit.Max <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_MAX must be positive, got %d", cfg.RateLimit.Max)
	}

	cfg.Auth.JWTSecret = v.GetString("JWT_SECRET")
	if cfg.Auth.JWTSecret == "" {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("JWT_SECRET environment variable is required in production")
		}
		cfg.Auth.JWTSecret = random.String(32)
		cfg.Auth.GeneratedSecret = true
	}

	return cfg, nil
}

// ParseLifetime accepts Go durations ("720h"), a day count ("30d") or a plain
// number of seconds ("3600").
func ParseLifetime(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty lifetime")
	}

	var d time.Duration
	switch {
	case strings.HasSuffix(s, "d"):
		days, err := strconv.Atoi(strings.TrimSuffix(s, "d"))
		if err != nil {
			return 0, fmt.Errorf("invalid day count %q", s)
		}
		d = time.Duration(days) * 24 * time.Hour
	default:
		if secs, err := strconv.Atoi(s); err == nil {
			d = time.Duration(secs) * time.Second
			break
		}
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return 0, err
		}
		d = parsed
	}

	if d <= 0 {
		return 0, fmt.Errorf("lifetime must be positive, got %q", s)
	}
	return d, nil
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
