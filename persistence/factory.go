package persistence

import (
	"clementus360/gal-bestfriend/supabase"
	"time"

	"github.com/redis/go-redis/v9"
)

// Driver names a Store backend.
type Driver string

const (
	DriverMemory   Driver = "memory"
	DriverRedis    Driver = "redis"
	DriverSQLite   Driver = "sqlite"
	DriverSupabase Driver = "supabase"
)

// Option configures NewStore.
type Option func(*storeConfig)

type storeConfig struct {
	redisClient *redis.Client
	ttl         time.Duration
	sqlitePath  string
	supabaseURL string
	supabaseKey string
}

// WithRedisClient sets the client for the redis driver.
func WithRedisClient(client *redis.Client) Option {
	return func(c *storeConfig) {
		c.redisClient = client
	}
}

// WithTTL sets how long redis keeps untouched state.
func WithTTL(ttl time.Duration) Option {
	return func(c *storeConfig) {
		c.ttl = ttl
	}
}

func WithSQLitePath(path string) Option {
	return func(c *storeConfig) {
		c.sqlitePath = path
	}
}

func WithSupabase(apiURL, apiKey string) Option {
	return func(c *storeConfig) {
		c.supabaseURL = apiURL
		c.supabaseKey = apiKey
	}
}

// NewStore creates the Store for driver.
func NewStore(driver Driver, opts ...Option) (Store, error) {
	cfg := &storeConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	switch driver {
	case DriverMemory, "":
		return NewMemoryStore(), nil

	case DriverRedis:
		if cfg.redisClient == nil {
			return nil, ErrInvalidConfig
		}
		return NewRedisStore(cfg.redisClient, cfg.ttl), nil

	case DriverSQLite:
		if cfg.sqlitePath == "" {
			return nil, ErrInvalidConfig
		}
		return NewSQLiteStore(cfg.sqlitePath)

	case DriverSupabase:
		client, err := supabase.NewClient(cfg.supabaseURL, cfg.supabaseKey)
		if err != nil {
			return nil, err
		}
		return supabase.NewPreferenceStore(client), nil

	default:
		return nil, ErrInvalidDriver
	}
}
