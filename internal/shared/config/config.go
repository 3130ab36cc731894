package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for our application
type Config struct {
	// Server configuration
	Port           string
	GinMode        string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxHeaderBytes int

	// Booking provider configuration
	Korail KorailConfig

	// SMS gateway configuration
	SMS SMSConfig

	// Notification configuration
	Notification NotificationConfig

	// CORS configuration
	CORS CORSConfig

	// Logging
	LogLevel string
}

// KorailConfig holds booking-provider credentials and call timeouts
type KorailConfig struct {
	Username       string
	Password       string
	SearchTimeout  time.Duration
	ReserveTimeout time.Duration
}

// SMSConfig holds SMS gateway (Solapi) configuration
type SMSConfig struct {
	APIKey    string
	APISecret string
	Sender    string
	BaseURL   string
	Timeout   time.Duration
}

// NotificationConfig holds the reservation confirmation recipient
type NotificationConfig struct {
	Phone string
}

// CORSConfig holds allowed origins for browser clients
type CORSConfig struct {
	AllowedOrigins []string
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		// Server configuration
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		ReadTimeout:    getDurationEnv("READ_TIMEOUT", 15*time.Second),
		WriteTimeout:   getDurationEnv("WRITE_TIMEOUT", 60*time.Second),
		IdleTimeout:    getDurationEnv("IDLE_TIMEOUT", 60*time.Second),
		MaxHeaderBytes: getIntEnv("MAX_HEADER_BYTES", 1<<20), // 1 MB

		// Booking provider configuration
		Korail: KorailConfig{
			Username:       getEnv("KORAIL_USERNAME", ""),
			Password:       getEnv("KORAIL_PASSWORD", ""),
			SearchTimeout:  getDurationEnv("KORAIL_SEARCH_TIMEOUT", 15*time.Second),
			ReserveTimeout: getDurationEnv("KORAIL_RESERVE_TIMEOUT", 30*time.Second),
		},

		// SMS gateway configuration
		SMS: SMSConfig{
			APIKey:    getEnv("SMS_API_KEY", ""),
			APISecret: getEnv("SMS_API_SECRET", ""),
			Sender:    getEnv("SMS_SENDER", ""),
			BaseURL:   getEnv("SMS_BASE_URL", "https://api.solapi.com"),
			Timeout:   getDurationEnv("SMS_TIMEOUT", 10*time.Second),
		},

		// Notification configuration
		Notification: NotificationConfig{
			Phone: getEnv("NOTIFICATION_PHONE", ""),
		},

		// CORS configuration
		CORS: CORSConfig{
			AllowedOrigins: getStringSliceEnv("CORS_ORIGINS", []string{"*"}),
		},

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "debug"),
	}
}

// HasKorailCredentials reports whether booking-provider credentials are configured
func (c *Config) HasKorailCredentials() bool {
	return c.Korail.Username != "" && c.Korail.Password != ""
}

// HasNotificationRecipient reports whether a confirmation SMS recipient is configured
func (c *Config) HasNotificationRecipient() bool {
	return c.Notification.Phone != ""
}

// AllowAllOrigins reports whether CORS is configured permissively
func (c *CORSConfig) AllowAllOrigins() bool {
	for _, origin := range c.AllowedOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getIntEnv gets an integer environment variable with a fallback value
func getIntEnv(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return fallback
}

// getDurationEnv gets a duration environment variable with a fallback value
func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return fallback
}

// getStringSliceEnv gets a comma-separated string environment variable as a slice
func getStringSliceEnv(key string, fallback []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		var result []string
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

// GetServerAddress returns the full server address
func (c *Config) GetServerAddress() string {
	return ":" + c.Port
}
