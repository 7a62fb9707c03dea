package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	JWT struct {
		Secret    string `yaml:"secret" env:"JWT_SECRET"`
		ExpiresIn string `yaml:"expires_in" env:"JWT_EXPIRES_IN"`
		Issuer    string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Upload UploadConfig `yaml:"upload"`

	Auth struct {
		DefaultPassword   string `yaml:"default_password" env:"DEFAULT_PASSWORD"`
		ChangePasswordKey string `yaml:"change_password_key" env:"CHANGE_PASSWORD_KEY"`
	} `yaml:"auth"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// UploadConfig governs file uploads: where files land on disk, how large
// one file may be and which MIME types are accepted per attachment kind.
type UploadConfig struct {
	Path                 string   `yaml:"path" env:"UPLOAD_PATH"`
	MaxFileSize          int64    `yaml:"max_file_size" env:"MAX_FILE_SIZE"`
	AllowedImageTypes    []string `yaml:"allowed_image_types" env:"ALLOWED_IMAGE_TYPES"`
	AllowedDocumentTypes []string `yaml:"allowed_document_types" env:"ALLOWED_DOCUMENT_TYPES"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := processStructFields(config); err != nil {
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

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "tadreeb"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"

	config.JWT.ExpiresIn = "24h"
	config.JWT.Issuer = "tadreeb.app"

	config.Upload.Path = "storage/uploads"
	config.Upload.MaxFileSize = 10 << 20
	config.Upload.AllowedImageTypes = []string{"image/jpeg", "image/png", "image/gif"}
	config.Upload.AllowedDocumentTypes = []string{"application/pdf"}

	config.Auth.DefaultPassword = "admin123"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is usable
func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if _, err := time.ParseDuration(config.JWT.ExpiresIn); err != nil {
		return fmt.Errorf("invalid JWT expiry format: %w", err)
	}

	if config.Upload.MaxFileSize <= 0 {
		return fmt.Errorf("max file size must be positive")
	}

	return nil
}

// GetPostgresConnectionString returns the postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}
