package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// PublicBaseURL is the externally visible origin used to build share links
	PublicBaseURL string `mapstructure:"PUBLIC_BASE_URL"`

	// MailboxReadOnly rejects every mail mutation
	MailboxReadOnly bool `mapstructure:"MAILBOX_READ_ONLY"`

	// Blob storage (S3 or any S3-compatible endpoint such as MinIO)
	S3Endpoint        string `mapstructure:"S3_ENDPOINT"`
	S3Region          string `mapstructure:"S3_REGION"`
	S3AccessKeyID     string `mapstructure:"S3_ACCESS_KEY_ID"`
	S3SecretAccessKey string `mapstructure:"S3_SECRET_ACCESS_KEY"`
	S3Bucket          string `mapstructure:"S3_BUCKET"`
	S3UsePathStyle    bool   `mapstructure:"S3_USE_PATH_STYLE"`
	S3PublicBaseURL   string `mapstructure:"S3_PUBLIC_BASE_URL"`
	MaxUploadSize     int64  `mapstructure:"MAX_UPLOAD_SIZE"`

	// RabbitMQ configuration
	RabbitURL      string `mapstructure:"RABBIT_URL"`
	RabbitExchange string `mapstructure:"RABBIT_EXCHANGE"`
	RabbitQueue    string `mapstructure:"RABBIT_QUEUE"`

	// WorkerPort serves the worker's health and metrics endpoints
	WorkerPort string `mapstructure:"WORKER_PORT"`

	// Redis configuration
	RedisAddr     string        `mapstructure:"REDIS_ADDR"`
	RedisPassword string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int           `mapstructure:"REDIS_DB"`
	CacheTTL      time.Duration `mapstructure:"CACHE_TTL"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "crescendai")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})

	viper.SetDefault("PUBLIC_BASE_URL", "http://localhost:3000")
	viper.SetDefault("MAILBOX_READ_ONLY", false)

	// Storage defaults; an empty bucket disables uploads
	viper.SetDefault("S3_ENDPOINT", "")
	viper.SetDefault("S3_REGION", "us-east-1")
	viper.SetDefault("S3_ACCESS_KEY_ID", "")
	viper.SetDefault("S3_SECRET_ACCESS_KEY", "")
	viper.SetDefault("S3_BUCKET", "")
	viper.SetDefault("S3_USE_PATH_STYLE", true)
	viper.SetDefault("S3_PUBLIC_BASE_URL", "")
	viper.SetDefault("MAX_UPLOAD_SIZE", 50<<20)

	// Messaging defaults; an empty URL disables the processing queue
	viper.SetDefault("RABBIT_URL", "")
	viper.SetDefault("RABBIT_EXCHANGE", "crescendai.events")
	viper.SetDefault("RABBIT_QUEUE", "recording.process")
	viper.SetDefault("WORKER_PORT", "8081")

	// Cache defaults; an empty address falls back to a no-op cache
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("CACHE_TTL", "60s")
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.MaxUploadSize <= 0 {
		return fmt.Errorf("MAX_UPLOAD_SIZE must be positive")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// StorageEnabled reports whether a bucket is configured
func (c *Config) StorageEnabled() bool {
	return c.S3Bucket != ""
}

// MessagingEnabled reports whether a broker URL is configured
func (c *Config) MessagingEnabled() bool {
	return c.RabbitURL != ""
}
