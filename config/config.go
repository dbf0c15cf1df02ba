package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

// Config holds all environment-driven settings, read once at startup
type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Store       StoreConfig
	Geolocation GeolocationConfig
	Auth        AuthConfig
	OIDC        OIDCConfig
	Logging     LoggingConfig
}

type ServerConfig struct {
	Port            string
	SecretKey       string
	UseHTTPS        bool
	DisplayTimezone *time.Location
}

type DatabaseConfig struct {
	Path string
}

// StoreConfig selects the remote key-value store. Leaving every remote field
// empty selects the in-memory store for the lifetime of the process.
type StoreConfig struct {
	UpstashURL   string
	UpstashToken string
	RedisURL     string
	Timeout      time.Duration
	RetentionCap int
}

type GeolocationConfig struct {
	APIURL    string
	Timeout   time.Duration
	CacheSize int
	CacheTTL  time.Duration
}

type AuthConfig struct {
	AdminUsers   []string
	SeedUsername string
	SeedPassword string
}

type OIDCConfig struct {
	Domain       string
	ClientID     string
	ClientSecret string
	CallbackURL  string
}

// Enabled reports whether single sign-on has been configured
func (c OIDCConfig) Enabled() bool {
	return c.Domain != "" && c.ClientID != "" && c.ClientSecret != "" && c.CallbackURL != ""
}

type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads the optional .env file and the process environment
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("error while loading .env file: %v", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only
func FromEnv() (*Config, error) {
	var errs []string

	cfg := &Config{
		Server: ServerConfig{
			Port:      cast.ToString(coalesce("PORT", "8080")),
			SecretKey: cast.ToString(coalesce("SECRET_KEY", "")),
			UseHTTPS:  cast.ToBool(coalesce("USE_HTTPS", false)),
		},
		Database: DatabaseConfig{
			Path: cast.ToString(coalesce("DATABASE_PATH", "tracker.db")),
		},
		Store: StoreConfig{
			UpstashURL:   strings.TrimSpace(cast.ToString(coalesce("UPSTASH_REDIS_REST_URL", ""))),
			UpstashToken: strings.TrimSpace(cast.ToString(coalesce("UPSTASH_REDIS_REST_TOKEN", ""))),
			RedisURL:     strings.TrimSpace(cast.ToString(coalesce("REDIS_URL", ""))),
			Timeout:      duration("STORE_TIMEOUT", 5*time.Second, &errs),
			RetentionCap: cast.ToInt(coalesce("RETENTION_CAP", 200)),
		},
		Geolocation: GeolocationConfig{
			APIURL:    strings.TrimRight(cast.ToString(coalesce("GEOLOCATION_API_URL", "http://ip-api.com/json")), "/"),
			Timeout:   duration("GEOLOCATION_TIMEOUT", 5*time.Second, &errs),
			CacheSize: cast.ToInt(coalesce("GEOLOCATION_CACHE_SIZE", 1024)),
			CacheTTL:  duration("GEOLOCATION_CACHE_TTL", time.Hour, &errs),
		},
		Auth: AuthConfig{
			AdminUsers:   splitList(cast.ToString(coalesce("ADMIN_USERS", ""))),
			SeedUsername: cast.ToString(coalesce("SEED_USERNAME", "")),
			SeedPassword: cast.ToString(coalesce("SEED_PASSWORD", "")),
		},
		OIDC: OIDCConfig{
			Domain:       cast.ToString(coalesce("OIDC_DOMAIN", "")),
			ClientID:     cast.ToString(coalesce("OIDC_CLIENT_ID", "")),
			ClientSecret: cast.ToString(coalesce("OIDC_CLIENT_SECRET", "")),
			CallbackURL:  cast.ToString(coalesce("OIDC_CALLBACK_URL", "")),
		},
		Logging: LoggingConfig{
			Level:  cast.ToString(coalesce("LOG_LEVEL", "info")),
			Format: cast.ToString(coalesce("LOG_FORMAT", "console")),
		},
	}

	tzName := cast.ToString(coalesce("DISPLAY_TIMEZONE", "Europe/Amsterdam"))
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		errs = append(errs, fmt.Sprintf("DISPLAY_TIMEZONE: unknown zone %q", tzName))
		loc = time.UTC
	}
	cfg.Server.DisplayTimezone = loc

	if cfg.Store.RetentionCap < 2 {
		errs = append(errs, fmt.Sprintf("RETENTION_CAP: must be at least 2, got %d", cfg.Store.RetentionCap))
	}
	if cfg.Geolocation.CacheSize < 1 {
		errs = append(errs, fmt.Sprintf("GEOLOCATION_CACHE_SIZE: must be positive, got %d", cfg.Geolocation.CacheSize))
	}
	if (cfg.Store.UpstashURL == "") != (cfg.Store.UpstashToken == "") {
		log.Printf("only one of UPSTASH_REDIS_REST_URL and UPSTASH_REDIS_REST_TOKEN is set, ignoring both")
		cfg.Store.UpstashURL = ""
		cfg.Store.UpstashToken = ""
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return cfg, nil
}

// IsAdmin reports whether username may access the admin panel. An empty
// admin list grants access to every logged-in user.
func (c AuthConfig) IsAdmin(username string) bool {
	if len(c.AdminUsers) == 0 {
		return username != ""
	}
	for _, admin := range c.AdminUsers {
		if admin == username {
			return true
		}
	}
	return false
}

func coalesce(key string, value interface{}) interface{} {
	val, exist := os.LookupEnv(key)
	if exist {
		return val
	}
	return value
}

func duration(key string, defaultVal time.Duration, errs *[]string) time.Duration {
	v := cast.ToString(coalesce(key, ""))
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		*errs = append(*errs, fmt.Sprintf("%s: invalid duration %q", key, v))
		return defaultVal
	}
	return d
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
