package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Storage drivers accepted by Storage.Driver.
const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Storage struct {
		Driver string `yaml:"driver" env:"STORAGE_DRIVER"`
		// Path is the data file location for the file driver.
		Path string `yaml:"path" env:"STORAGE_PATH"`

		Redis struct {
			Host     string `yaml:"host" env:"REDIS_HOST"`
			Port     int    `yaml:"port" env:"REDIS_PORT"`
			Password string `yaml:"password" env:"REDIS_PASSWORD"`
			DB       int    `yaml:"db" env:"REDIS_DB"`
		} `yaml:"redis"`

		Postgres struct {
			Host     string `yaml:"host" env:"DB_HOST"`
			Port     string `yaml:"port" env:"DB_PORT"`
			User     string `yaml:"user" env:"DB_USER"`
			Password string `yaml:"password" env:"DB_PASSWORD"`
			DBName   string `yaml:"dbname" env:"DB_NAME"`
			SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE"`
		} `yaml:"postgres"`
	} `yaml:"storage"`

	Auth struct {
		// DefaultPassword is assigned to accounts minted by student creation.
		DefaultPassword string `yaml:"default_password" env:"AUTH_DEFAULT_PASSWORD"`
		// EmailDomain is the suffix of synthesized logins.
		EmailDomain string `yaml:"email_domain" env:"AUTH_EMAIL_DOMAIN"`
		// HashPasswords enables bcrypt storage and comparison. Off by
		// default: the historical behavior is plaintext equality.
		HashPasswords bool `yaml:"hash_passwords" env:"AUTH_HASH_PASSWORDS"`
	} `yaml:"auth"`

	Promotion struct {
		// RequireAdjacent rejects passed exams that do not target the
		// student's immediate next rung. Off by default: historically any
		// rank name may be awarded, including a lower one.
		RequireAdjacent bool `yaml:"require_adjacent" env:"PROMOTION_REQUIRE_ADJACENT"`
	} `yaml:"promotion"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Storage.Driver = DriverFile
	config.Storage.Path = "data/dojo.json"

	config.Storage.Redis.Host = "localhost"
	config.Storage.Redis.Port = 6379
	config.Storage.Redis.DB = 0

	config.Storage.Postgres.Host = "localhost"
	config.Storage.Postgres.Port = "5432"
	config.Storage.Postgres.User = "postgres"
	config.Storage.Postgres.Password = "postgres"
	config.Storage.Postgres.DBName = "dojomaster"
	config.Storage.Postgres.SSLMode = "disable"

	config.Auth.DefaultPassword = "123"
	config.Auth.EmailDomain = "dojo.com"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	switch config.Storage.Driver {
	case DriverMemory, DriverRedis, DriverPostgres:
	case DriverFile:
		if config.Storage.Path == "" {
			return fmt.Errorf("storage path is required for the file driver")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", config.Storage.Driver)
	}

	if config.Auth.EmailDomain == "" {
		return fmt.Errorf("auth email domain is required")
	}

	return nil
}
