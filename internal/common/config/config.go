package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

const EnvDevelopment = "development"

type Config struct {
	Env   string `env:"APP_ENV" envDefault:"production"`
	Debug bool   `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port            int           `env:"PORT" envDefault:"8080"`
		Origin          string        `env:"ORIGIN" envDefault:"http://localhost:3000"`
		ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
		WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"15s"`
		IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
		ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	}

	Mongo struct {
		URI            string        `env:"MONGO_URI,required,notEmpty"`
		Database       string        `env:"MONGO_DATABASE" envDefault:"default_server"`
		UserCollection string        `env:"MONGO_USER_COLLECTION" envDefault:"users"`
		ConnectTimeout time.Duration `env:"MONGO_CONNECT_TIMEOUT" envDefault:"10s"`
	}

	Redis struct {
		Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
		Password string `env:"REDIS_PASSWORD" envDefault:""`
		DB       int    `env:"REDIS_DB" envDefault:"0"`

		PoolSize    int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
		DialTimeout time.Duration `env:"REDIS_DIAL_TIMEOUT" envDefault:"5s"`
	}

	Session struct {
		TTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	}

	// Host advertised in the generated API document.
	SwaggerHost string `env:"SWAGGER_HOST" envDefault:"localhost:8080"`
}

// Load reads the optional .env file and then the process environment.
func Load() (*Config, error) {
	// .env is optional; in production variables come from the environment.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Session.TTL <= 0 {
		return nil, fmt.Errorf("invalid SESSION_TTL: %s", cfg.Session.TTL)
	}

	return cfg, nil
}

// IsDevelopment reports whether error details may be exposed to clients.
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}
