package solutions

import (
	"errors"
	"os"
	"strings"
	"time"
)

// Config holds Freshdesk connection settings
type Config struct {
	// BaseURL is the Freshdesk instance root (e.g. https://example.freshdesk.com)
	BaseURL string

	// APIKey authenticates requests; sent as Basic auth with password "X"
	APIKey string

	// Timeout for API requests. Zero means no timeout: a hung transport
	// hangs the caller, matching the remote-API contract this client keeps.
	Timeout time.Duration

	// UserAgent identifies the client to Freshdesk
	UserAgent string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	baseURL := os.Getenv("FRESHDESK_BASE_URL")
	if baseURL == "" {
		return nil, errors.New("FRESHDESK_BASE_URL environment variable is required")
	}

	apiKey := os.Getenv("FRESHDESK_API_KEY")
	if apiKey == "" {
		return nil, errors.New("FRESHDESK_API_KEY environment variable is required")
	}

	var timeout time.Duration
	if t := os.Getenv("FRESHDESK_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			timeout = d
		}
	}

	userAgent := os.Getenv("FRESHDESK_USER_AGENT")
	if userAgent == "" {
		userAgent = "freshdesk-solutions-go/1.0 (github.com/olgasafonova/freshdesk-solutions-go)"
	}

	return &Config{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		APIKey:    apiKey,
		Timeout:   timeout,
		UserAgent: userAgent,
	}, nil
}

// HasCredentials returns true if an API key is configured
func (c *Config) HasCredentials() bool {
	return c.APIKey != ""
}
