package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	Workers   int    `env:"WORKERS,   default=8"`

	Mongo    MongoConfig
	Redis    RedisConfig
	NATS     NATSConfig
	Location LocationConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=geopoint"`
}

type RedisConfig struct {
	Addr            string        `env:"REDIS_ADDR,        default=localhost:6379"`
	Password        string        `env:"REDIS_PASSWORD"`
	DB              int           `env:"REDIS_DB,          default=0"`
	LastLocationTTL time.Duration `env:"LAST_LOCATION_TTL, default=24h"`
}

// NATSConfig is optional: an empty URL disables report publishing.
type NATSConfig struct {
	URL string `env:"NATS_URL"`
}

type LocationConfig struct {
	Provider    string        `env:"LOCATION_PROVIDER, default=ipapi"`
	IPAPIURL    string        `env:"IPAPI_URL,         default=http://ip-api.com/json/?fields=status,message,lat,lon"`
	HTTPTimeout time.Duration `env:"IPAPI_TIMEOUT,     default=5s"`
	StaticLat   *float64      `env:"STATIC_LAT, noinit"`
	StaticLng   *float64      `env:"STATIC_LNG, noinit"`
}

const (
	ProviderIPAPI  = "ipapi"
	ProviderStatic = "static"
)

// IsDevelopment reports whether the service runs in a local environment.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith reads configuration from l and checks cross-field constraints.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Location.Provider {
	case ProviderIPAPI:
	case ProviderStatic:
		if (c.Location.StaticLat == nil) != (c.Location.StaticLng == nil) {
			return fmt.Errorf("STATIC_LAT and STATIC_LNG must be set together")
		}
	default:
		return fmt.Errorf("unknown LOCATION_PROVIDER %q", c.Location.Provider)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("WORKERS must be positive, got %d", c.Workers)
	}
	return nil
}
