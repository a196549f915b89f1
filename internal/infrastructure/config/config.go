package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-envconfig"
)

// devJWTSecret is the fallback signing key for local development. Startup
// refuses it outside the development environment.
const devJWTSecret = "dev-only-secret-change-in-production"

type Config struct {
	Port       string        `env:"PORT,        default=8080"`
	Env        string        `env:"ENV,         default=development"`
	JWTSecret  string        `env:"JWT_SECRET"`
	JWTTTL     time.Duration `env:"JWT_TTL,     default=24h"`
	LogLevel   string        `env:"LOG_LEVEL,   default=info"`
	CORSOrigin string        `env:"CORS_ORIGIN, default=http://localhost:4200"`

	Mongo     MongoConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=fullstack_app"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type RateLimitConfig struct {
	Limit  int           `env:"RATE_LIMIT,  default=100"`
	Window time.Duration `env:"RATE_WINDOW, default=60s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// IsDevelopment reports whether the process runs in the development environment.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ResolveJWTSecret returns the signing key to use. A missing JWT_SECRET falls
// back to an insecure default in development only, with a prominent warning;
// in any other environment it is a startup error.
func (c *Config) ResolveJWTSecret(log zerolog.Logger) (string, error) {
	if c.JWTSecret != "" {
		return c.JWTSecret, nil
	}
	if !c.IsDevelopment() {
		return "", errors.New("JWT_SECRET is required outside development")
	}
	log.Warn().Msg("JWT_SECRET not set! Using development default. DO NOT use in production!")
	return devJWTSecret, nil
}
