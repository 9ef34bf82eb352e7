// Package config loads process-wide settings from the environment.
// It is read exactly once at startup; components receive their settings
// through constructors.
package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// App holds every setting the service needs.
type App struct {
	// HTTP
	Addr string `envconfig:"ADDR" default:":8080"`

	// JWT
	JWTSecret    string `envconfig:"JWT_SECRET" required:"true"`
	JWTExpireMin int    `envconfig:"JWT_EXPIRE_MIN" default:"15"`

	// DB: driver is one of mysql, postgres, sqlite.
	DBDriver   string `envconfig:"DB_DRIVER" default:"sqlite"`
	DBUser     string `envconfig:"DB_USER"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBHost     string `envconfig:"DB_HOST" default:"127.0.0.1"`
	DBPort     string `envconfig:"DB_PORT" default:"3306"`
	DBName     string `envconfig:"DB_NAME" default:"users"`
	SQLitePath string `envconfig:"SQLITE_PATH" default:"./users.db"`

	// Redis (optional read cache; empty host disables it)
	RedisHost     string `envconfig:"REDIS_HOST"`
	RedisPort     string `envconfig:"REDIS_PORT" default:"6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`

	// CacheTTLSec is the lifetime of cached user reads.
	CacheTTLSec int `envconfig:"CACHE_TTL_SEC" default:"60"`
}

// Load processes the environment into an App.
func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}

// JWTExpiration returns the token lifetime as a duration.
func (c App) JWTExpiration() time.Duration {
	return time.Duration(c.JWTExpireMin) * time.Minute
}

// CacheTTL returns the cache entry lifetime as a duration.
func (c App) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSec) * time.Second
}
