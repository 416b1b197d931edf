package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"resume-backend/pkg/utils"
)

// Counter backends
const (
	BackendDynamoDB = "dynamodb"
	BackendSQLite   = "sqlite"
	BackendBolt     = "bolt"
	BackendMemory   = "memory"
)

// Mail backends
const (
	MailBackendSES = "ses"
	MailBackendLog = "log"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string `validate:"required"`
	Environment   string `validate:"required,oneof=development staging production"`
	APIBaseURL    string `validate:"omitempty,url"`
	SiteTitle     string `validate:"required"`

	// AWS configuration
	AWSRegion     string `validate:"required"`
	DynamoDBTable string
	EventBusName  string

	// Counter storage
	CounterID      string `validate:"required"`
	CounterBackend string `validate:"required,oneof=dynamodb sqlite bolt memory"`
	CounterMode    string `validate:"required,oneof=atomic read-write"`
	SQLitePath     string
	BoltPath       string

	// Contact form
	ContactEnabled bool
	EmailRecipient string `validate:"omitempty,email"`
	MailBackend    string `validate:"required,oneof=ses log"`

	// Lambda configuration
	IsLambda           bool
	LambdaFunctionName string

	// Logging
	LogLevel string `validate:"required,oneof=debug info warn error"`

	// Feature flags
	EnableMetrics    bool
	EnableTracing    bool
	MetricsNamespace string
}

// LoadConfig loads configuration from environment variables for a binary
// that serves the contact form
func LoadConfig() (*Config, error) {
	return load(true)
}

// LoadVisitorConfig loads configuration for a binary that only counts
// visitors; no mail recipient is required.
func LoadVisitorConfig() (*Config, error) {
	return load(false)
}

func load(contactEnabled bool) (*Config, error) {
	environment := getEnv("ENVIRONMENT", "development")
	lambdaName := getEnv("AWS_LAMBDA_FUNCTION_NAME", "")

	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   environment,
		APIBaseURL:    strings.TrimRight(getEnv("API_BASE_URL", ""), "/"),
		SiteTitle:     getEnv("SITE_TITLE", "Resume"),

		AWSRegion:     getEnv("AWS_REGION", "eu-west-1"),
		DynamoDBTable: getEnv("TABLE_NAME", getEnv("DYNAMODB_TABLE", "ResumeVisitorCount")),
		EventBusName:  getEnv("EVENT_BUS_NAME", ""),

		CounterID:      getEnv("COUNTER_ID", "resume"),
		CounterBackend: getEnv("COUNTER_BACKEND", BackendDynamoDB),
		CounterMode:    getEnv("COUNTER_MODE", "atomic"),
		SQLitePath:     getEnv("SQLITE_PATH", "data/visitors.db"),
		BoltPath:       getEnv("BOLT_PATH", "data/visitors.bolt"),

		ContactEnabled: contactEnabled,
		EmailRecipient: getEnv("EMAIL_RECIPIENT", getEnv("SES_EMAIL", "")),
		MailBackend:    getEnv("MAIL_BACKEND", MailBackendSES),

		IsLambda:           getEnvBool("IS_LAMBDA", lambdaName != ""),
		LambdaFunctionName: lambdaName,

		LogLevel:         strings.ToLower(getEnv("LOG_LEVEL", "info")),
		EnableMetrics:    getEnvBool("ENABLE_METRICS", false),
		EnableTracing:    getEnvBool("ENABLE_TRACING", false),
		MetricsNamespace: getEnv("METRICS_NAMESPACE", "Resume/"+environment),
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load is an alias for LoadConfig
func Load() (*Config, error) {
	return LoadConfig()
}

// Validate checks field constraints and cross-field rules
func (c *Config) Validate() error {
	if err := utils.ValidateStruct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	switch c.CounterBackend {
	case BackendDynamoDB:
		if c.DynamoDBTable == "" {
			return fmt.Errorf("TABLE_NAME is required for the dynamodb backend")
		}
	case BackendSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for the sqlite backend")
		}
	case BackendBolt:
		if c.BoltPath == "" {
			return fmt.Errorf("BOLT_PATH is required for the bolt backend")
		}
	}

	if c.IsProduction() {
		if c.CounterBackend == BackendMemory {
			return fmt.Errorf("the memory counter backend cannot be used in production")
		}
		if c.ContactEnabled && c.EmailRecipient == "" {
			return fmt.Errorf("EMAIL_RECIPIENT is required in production")
		}
	}

	if c.IsLambda && (c.CounterBackend == BackendSQLite || c.CounterBackend == BackendBolt) {
		return fmt.Errorf("the %s counter backend needs a persistent disk and cannot run on Lambda", c.CounterBackend)
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
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	return value == "yes"
}
