package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyUUID    = key("uuid")
	KeyLogger  = key("logger")
	KeyMetrics = key("metrics")
)

type Config struct {
	Service  Service
	Postgres ReadEnvPostgres
	Logger   Logger
	Metrics  Metrics
	Platform Platform
	Auth     Auth
	API      API
	Session  Session
}

type Service struct {
	Port string `env:"SERVICE_PORT" env-default:"3000"`
	Name string `env:"SERVICE_NAME" env-default:"market-chat"`
}

type ReadEnvPostgres struct {
	User     string `env:"POSTGRES_USER" env-default:"postgres"`
	Password string `env:"POSTGRES_PASSWORD" env-default:"postgres"`
	Database string `env:"POSTGRES_DB" env-default:"market"`
	Host     string `env:"POSTGRES_HOST" env-default:"localhost"`
	Port     string `env:"POSTGRES_PORT" env-default:"5432"`
}

type Logger struct {
	Host string `env:"LOGGER_HOST" env-default:"localhost"`
	Port string `env:"LOGGER_PORT" env-default:"5140"`
}

type Metrics struct {
	Host string `env:"GRAFANA_HOST" env-default:"localhost"`
	Port int    `env:"GRAFANA_PORT" env-default:"8125"`
}

type Platform struct {
	Env string `env:"ENV" env-default:"stage"`
}

type Auth struct {
	JWTSecret string        `env:"JWT_SECRET" env-default:"change-me"`
	TokenTTL  time.Duration `env:"JWT_TTL" env-default:"24h"`
}

// API is the client side view of the backend.
type API struct {
	BaseURL string        `env:"MARKET_API_URL" env-default:"http://localhost:3000/api"`
	Timeout time.Duration `env:"MARKET_API_TIMEOUT" env-default:"10s"`
}

type Session struct {
	Path string `env:"MARKET_SESSION_PATH"`
}

func MustLoad() *Config {
	cfg := &Config{}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read env variables: %s", err)
	}

	return cfg
}
