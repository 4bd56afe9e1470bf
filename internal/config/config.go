package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig

	// Database configuration
	Database DatabaseConfig

	// Redis configuration (volunteer session store)
	Redis RedisConfig

	// Generative model configuration
	AI AIConfig

	// Transactional email configuration
	Email EmailConfig

	// Authentication configuration
	Auth AuthConfig

	// Logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  time.Duration
}

// RedisConfig holds the optional session store settings. When Host is
// empty, volunteer sessions fall back to the in-memory store.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

// AIConfig holds the generative model provider settings
type AIConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// EmailConfig holds the transactional email provider settings
type EmailConfig struct {
	ResendAPIKey string
	From         string
	AdminEmail   string
}

// AuthConfig holds the credentials for the three access surfaces:
// the admin HTTP API (shared secret header), the admin UI (JWT),
// and the volunteer check-in login (static credentials).
type AuthConfig struct {
	AdminAPIKey       string
	CronSecret        string
	JWTSecret         string
	JWTExpiry         time.Duration
	VolunteerUsername string
	VolunteerPassword string
	SessionTTL        time.Duration
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string // "json" or "pretty"
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", "postgres"),
			Name:         getEnv("DB_NAME", "azpdscc"),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns: getIntEnv("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getIntEnv("DB_MAX_IDLE_CONNS", 5),
			MaxLifetime:  getDurationEnv("DB_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		AI: AIConfig{
			APIKey:  getEnv("OPENAI_API_KEY", ""),
			Model:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			Timeout: getDurationEnv("AI_TIMEOUT", 45*time.Second),
		},
		Email: EmailConfig{
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			From:         getEnv("EMAIL_FROM", "AZPDSCC <noreply@azpdscc.org>"),
			AdminEmail:   getEnv("ADMIN_EMAIL", "admin@azpdscc.org"),
		},
		Auth: AuthConfig{
			AdminAPIKey:       getEnv("ADMIN_API_KEY", ""),
			CronSecret:        getEnv("CRON_SECRET", ""),
			JWTSecret:         getEnv("JWT_SECRET", ""),
			JWTExpiry:         getDurationEnv("JWT_EXPIRY", 24*time.Hour),
			VolunteerUsername: getEnv("VOLUNTEER_USERNAME", ""),
			VolunteerPassword: getEnv("VOLUNTEER_PASSWORD", ""),
			SessionTTL:        getDurationEnv("SESSION_TTL", 12*time.Hour),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid. Only the database is
// hard-required; every other credential degrades its feature to a
// "not configured" error at call time.
func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	return nil
}

// GetDSN returns the PostgreSQL connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// Configured reports whether the generative model provider is usable
func (c *AIConfig) Configured() bool {
	return c.APIKey != ""
}

// Configured reports whether the email provider is usable
func (c *EmailConfig) Configured() bool {
	return c.ResendAPIKey != ""
}

// Configured reports whether a Redis session store is available
func (c *RedisConfig) Configured() bool {
	return c.Host != ""
}

// Addr returns the Redis host:port address
func (c *RedisConfig) Addr() string {
	return c.Host + ":" + c.Port
}

// VolunteerLoginConfigured reports whether the volunteer check-in
// login surface has credentials
func (c *AuthConfig) VolunteerLoginConfigured() bool {
	return c.VolunteerUsername != "" && c.VolunteerPassword != ""
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
