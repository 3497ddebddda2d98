package config

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string `env:"ENV" env-default:"local" env-description:"environment name, local enables console logging"`
	LogLevel   string `env:"LOG_LEVEL" env-default:"info" env-description:"logging level, debug, info, etc."`
	HttpServer HttpServer
	Database   Database
	Limiter    Limiter
	Range      Range
}

type HttpServer struct {
	Port           string        `env:"APP_PORT" env-default:"3000"`
	Timeout        time.Duration `env:"HTTP_TIMEOUT" env-default:"4s"`
	IdleTimeout    time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	SwaggerEnabled bool          `env:"HTTP_SWAGGER_ENABLED" env-default:"false"`
	AllowedOrigins []string      `env:"HTTP_ALLOWED_ORIGINS" env-default:"*" env-description:"comma separated CORS origins"`
}

type Database struct {
	URI        string        `env:"MONGO_URI" env-required:"true" env-description:"mongodb connection string"`
	Name       string        `env:"MONGO_DATABASE" env-default:"cities"`
	Collection string        `env:"MONGO_COLLECTION" env-default:"cities"`
	Timeout    time.Duration `env:"MONGO_TIMEOUT" env-default:"10s" env-description:"connect and ping timeout"`
}

type Limiter struct {
	RPS   int           `env:"LIMITER_RPS" env-default:"10"`
	Burst int           `env:"LIMITER_BURST" env-default:"20"`
	TTL   time.Duration `env:"LIMITER_TTL" env-default:"10m"`
}

type Range struct {
	Limit int64 `env:"RANGE_LIMIT" env-default:"20" env-description:"max items served per window"`
}

// Load reads the configuration from the environment. The first element of
// args, when present, overrides the listening port.
func Load(args []string) (*Config, error) {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read config from environment: %w", err)
	}

	if len(args) > 0 && args[0] != "" {
		cfg.HttpServer.Port = args[0]
	}

	port, err := strconv.Atoi(cfg.HttpServer.Port)
	if err != nil || port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid port %q", cfg.HttpServer.Port)
	}

	if cfg.Range.Limit < 1 {
		return nil, fmt.Errorf("range limit must be positive, got %d", cfg.Range.Limit)
	}

	return &cfg, nil
}

func MustLoad(args []string) *Config {
	cfg, err := Load(args)
	if err != nil {
		log.Fatalf("cannot load config: %s", err)
	}

	return cfg
}
