package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, etc.)
// - default: Values common across all environments (booking policy, timeouts, etc.)
// - empty optional values switch an adapter off (REDIS_ADDR, AMQP_URL)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	Booking BookingConfig
	Catalog CatalogConfig
	Search  SearchConfig
	Redis   RedisConfig
	AMQP    AMQPConfig
	CORS    CORSConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" required:"true"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

type BookingConfig struct {
	MaxStayNights   int           `envconfig:"BOOKING_MAX_STAY_NIGHTS" default:"30"`
	RateLimitMax    int           `envconfig:"BOOKING_RATE_LIMIT_MAX" default:"5"`
	RateLimitWindow time.Duration `envconfig:"BOOKING_RATE_LIMIT_WINDOW" default:"60s"`
}

type CatalogConfig struct {
	SeedHotels int    `envconfig:"CATALOG_SEED_HOTELS" default:"200"`
	Seed       uint64 `envconfig:"CATALOG_SEED" default:"42"`
}

type SearchConfig struct {
	CacheTTL     time.Duration `envconfig:"SEARCH_CACHE_TTL" default:"60s"`
	DefaultLimit int           `envconfig:"SEARCH_DEFAULT_LIMIT" default:"50"`
	MaxLimit     int           `envconfig:"SEARCH_MAX_LIMIT" default:"1000"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	Prefix   string `envconfig:"REDIS_PREFIX" default:"hotel-search"`
}

type AMQPConfig struct {
	URL      string `envconfig:"AMQP_URL"`
	Exchange string `envconfig:"AMQP_EXCHANGE" default:"booking.events"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

func (c AMQPConfig) Enabled() bool {
	return c.URL != ""
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Booking.MaxStayNights < 1 {
		return fmt.Errorf("BOOKING_MAX_STAY_NIGHTS must be positive, got %d", c.Booking.MaxStayNights)
	}
	if c.Booking.RateLimitMax > 0 && c.Booking.RateLimitWindow <= 0 {
		return fmt.Errorf("BOOKING_RATE_LIMIT_WINDOW must be positive, got %s", c.Booking.RateLimitWindow)
	}
	if c.Search.DefaultLimit < 1 || c.Search.DefaultLimit > c.Search.MaxLimit {
		return fmt.Errorf("SEARCH_DEFAULT_LIMIT must be between 1 and %d, got %d", c.Search.MaxLimit, c.Search.DefaultLimit)
	}
	if c.Catalog.SeedHotels < 0 {
		return fmt.Errorf("CATALOG_SEED_HOTELS cannot be negative, got %d", c.Catalog.SeedHotels)
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8889", // Test port
			ShutdownTimeout: time.Second,
		},
		Booking: BookingConfig{
			MaxStayNights:   30,
			RateLimitMax:    0, // disabled so tests can fire many requests per guest
			RateLimitWindow: time.Minute,
		},
		Catalog: CatalogConfig{
			SeedHotels: 0,
			Seed:       42,
		},
		Search: SearchConfig{
			CacheTTL:     time.Minute,
			DefaultLimit: 50,
			MaxLimit:     1000,
		},
		Redis: RedisConfig{Prefix: "hotel-search-test"},
		AMQP:  AMQPConfig{Exchange: "booking.events.test"},
		CORS: CORSConfig{
			AllowOrigins:  []string{"http://localhost:3000"},
			AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
			MaxAge:        time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
	}
}
