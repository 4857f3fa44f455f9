// Package authapi provides a client for the hosted authentication
// service's admin API.
package authapi

import (
	"os"
	"strings"
	"time"
)

// Config holds configuration for the auth admin API client.
type Config struct {
	BaseURL    string        // Base URL of the auth service (e.g. "https://auth.example.com")
	ServiceKey string        // Privileged service-role key for admin calls
	Timeout    time.Duration // HTTP request timeout
}

// LoadConfig loads auth API configuration from environment variables.
func LoadConfig() Config {
	return Config{
		BaseURL:    strings.TrimSuffix(os.Getenv("AUTH_API_URL"), "/"),
		ServiceKey: os.Getenv("AUTH_SERVICE_KEY"),
		Timeout:    10 * time.Second,
	}
}
