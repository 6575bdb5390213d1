// Package config loads runtime configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	RabbitMQ    RabbitMQConfig
	Internal    InternalConfig
	Adoption    AdoptionConfig
	Cache       CacheConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type RabbitMQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

// InternalConfig covers service-to-service calls: the shared secret for
// signing internal tokens, their lifetime, and the API base URL the
// expiration worker calls back into.
type InternalConfig struct {
	ServiceSecret string
	TokenTTL      time.Duration
	APIBaseURL    string
}

type AdoptionConfig struct {
	// PendingExpiration is how long a pet stays reserved for a pending
	// application before the worker releases it.
	PendingExpiration time.Duration
}

type CacheConfig struct {
	PetListTTL time.Duration
}

// Load reads configuration from the environment. A missing .env file is not
// an error; container deployments set real environment variables.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("PORT", "5000"),
			ReadTimeout:  getEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getEnvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvInt("DB_PORT", 3306),
			User:            getEnv("DB_USER", "petlove"),
			Password:        getEnv("DB_PASSWORD", "petlove"),
			Name:            getEnv("DB_NAME", "petlove"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQConfig{
			Host:     getEnv("RABBITMQ_HOST", "localhost"),
			Port:     getEnvInt("RABBITMQ_PORT", 5672),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
		},
		Internal: InternalConfig{
			ServiceSecret: getEnv("INTERNAL_SERVICE_SECRET", "petlove-internal-secret"),
			TokenTTL:      getEnvDuration("INTERNAL_TOKEN_TTL", 2*time.Minute),
			APIBaseURL:    getEnv("INTERNAL_API_BASE_URL", "http://localhost:5000"),
		},
		Adoption: AdoptionConfig{
			PendingExpiration: getEnvDuration("ADOPTION_PENDING_EXPIRATION", 48*time.Hour),
		},
		Cache: CacheConfig{
			PetListTTL: getEnvDuration("PET_LIST_CACHE_TTL", 60*time.Second),
		},
	}
}

// GetDSN builds the MySQL DSN. parseTime is required so DATETIME columns
// scan into time.Time.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
