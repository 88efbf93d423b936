package config

import (
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo/options"
	"gopkg.in/yaml.v3"
)

const (
	CONFIG_PATH = "./res/config.yaml"
)

// ServiceConfig holds the configuration for the service.
type ServiceConfig struct {
	ServiceName    string          `yaml:"service_name" validate:"required"`
	LogLevel       string          `yaml:"loglevel" validate:"required"`
	Host           string          `yaml:"host" validate:"required"`
	Port           string          `yaml:"port" validate:"required"`
	PrivateKeyPath string          `yaml:"private_key_path" validate:"required"`
	Database       Database        `yaml:"database" validate:"required"`
	CORS           CORSConfig      `yaml:"cors"`
	LoginLimit     RateLimitConfig `yaml:"login_rate_limit"`
}

type Database struct {
	// Type selects the credential store backend ("mongo" or "postgres").
	// The movie/director catalog always lives in MongoDB.
	Type string `yaml:"type" validate:"required,oneof=mongo postgres"`
	// For MongoDB
	MongoDB MongoDBConfig `yaml:"mongodb_config" validate:"required"`
	// For PostgreSQL
	Postgres PostgresConfig `yaml:"postgres_config" validate:"omitempty"`
}

// MongoDBConfig holds the MongoDB connection configuration.
type MongoDBConfig struct {
	DSN              string             `yaml:"dsn" validate:"required"`
	Timeout          time.Duration      `yaml:"timeout"`
	Options          MongoServerOptions `yaml:"mongo_server_options"`
	ValidCollections []string           `yaml:"valid_collections" validate:"required"`
	ValidFields      []string           `yaml:"valid_fields" validate:"required"`
}

type PostgresConfig struct {
	DSN             string        `yaml:"dsn"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

type MongoServerOptions struct {
	APIVersion           string `yaml:"api_version"`
	SetStrict            bool   `yaml:"set_strict"`
	SetDeprecationErrors bool   `yaml:"set_deprecation_errors"`
}

// CORSConfig lists the origins the browser clients call from.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// RateLimitConfig shapes the login limiter: RequestsPerSecond sustained,
// Burst at peak. Zero values disable the limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// ReadLocalConfig reads the service configuration from a YAML file at the specified path.
// It unmarshals the YAML content into a ServiceConfig struct and returns it.
// If there is an error reading the file or unmarshaling the content, it returns an error.
func ReadLocalConfig(configPath string) (*ServiceConfig, error) {
	config := &ServiceConfig{}

	yamlFile, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(yamlFile, config)
	if err != nil {
		return nil, err
	}

	return config, nil
}

func BuildServerAPIOptions(cfg MongoServerOptions) *options.ServerAPIOptions {
	opts := options.ServerAPI(options.ServerAPIVersion(cfg.APIVersion))
	opts.SetStrict(cfg.SetStrict)
	opts.SetDeprecationErrors(cfg.SetDeprecationErrors)

	return opts
}

func ListToMap(list []string) map[string]bool {
	result := make(map[string]bool)
	for _, item := range list {
		result[item] = true
	}
	return result
}
