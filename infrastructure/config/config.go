package config

import (
	"fmt"
	"os"
)

// Storage drivers selectable through STORAGE_DRIVER.
const (
	StorageDriverDynamoDB = "dynamodb"
	StorageDriverFile     = "file"
	StorageDriverMemory   = "memory"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// AWS configuration
	AWSRegion    string
	FlowTable    string
	EventBusName string

	// Flow document configuration
	FlowDocumentID string
	StorageDriver  string
	CachePath      string

	// Lambda configuration
	IsLambda bool

	// Authentication
	JWTSecret string
	JWTIssuer string

	// Logging and features
	LogLevel      string
	EnableMetrics bool
	EnableTracing bool
	EnableCORS    bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		AWSRegion:     getEnv("AWS_REGION", "us-east-1"),
		FlowTable:     getEnv("FLOW_TABLE", "menu-flows"),
		EventBusName:  getEnv("EVENT_BUS_NAME", "menu-flow-events"),

		FlowDocumentID: getEnv("FLOW_DOCUMENT_ID", "default"),
		StorageDriver:  getEnv("STORAGE_DRIVER", StorageDriverFile),
		CachePath:      getEnv("FLOW_CACHE_PATH", "flow-cache.json"),

		IsLambda: getEnvBool("IS_LAMBDA", false),

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTIssuer: getEnv("JWT_ISSUER", "flow-management-app"),

		LogLevel:      getEnv("LOG_LEVEL", "info"),
		EnableMetrics: getEnvBool("ENABLE_METRICS", false),
		EnableTracing: getEnvBool("ENABLE_TRACING", false),
		EnableCORS:    getEnvBool("ENABLE_CORS", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case StorageDriverDynamoDB, StorageDriverFile, StorageDriverMemory:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}

	if c.Environment == "production" {
		if c.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required in production")
		}
		if c.StorageDriver == StorageDriverDynamoDB && c.FlowTable == "" {
			return fmt.Errorf("FLOW_TABLE is required")
		}
	}

	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}
