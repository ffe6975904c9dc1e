package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// ProjectName is used in the root welcome message and log fields.
const ProjectName = "microposts-api"

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// MaxPayloadBytes bounds the post-creation body; inclusive limit.
	MaxPayloadBytes int64 `env:"MAX_PAYLOAD_BYTES, default=1048576"`

	JWT   JWTConfig
	Cache CacheConfig
	Mongo MongoConfig
	Redis RedisConfig
}

type JWTConfig struct {
	Secret          string `env:"JWT_SECRET"`
	Algorithm       string `env:"JWT_ALGORITHM,          default=HS256"`
	LifetimeMinutes int    `env:"TOKEN_LIFETIME_MINUTES, default=30"`
}

// Lifetime returns the configured token lifetime as a duration.
func (c JWTConfig) Lifetime() time.Duration {
	return time.Duration(c.LifetimeMinutes) * time.Minute
}

type CacheConfig struct {
	// Backend selects the post-listing cache: "memory" (per-process) or "redis".
	Backend    string `env:"CACHE_BACKEND,     default=memory"`
	TTLSeconds int    `env:"CACHE_TTL_SECONDS, default=300"`
}

// TTL returns the configured cache freshness window as a duration.
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=microposts"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
// It runs once at startup; the resulting Config is passed into constructors
// and never mutated afterwards.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
