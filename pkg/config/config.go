package config

import "time"

// Config is the umbrella configuration object returned by Initialize()
// and used throughout the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// HTTP server settings
	Server *ServerConfig

	// Queue and worker pool configuration
	Queue *QueueConfig

	// Background cron loop configuration
	Cron *CronConfig

	// Proactive notification features
	Notifications *NotificationsConfig

	// LLM providers by name ("anthropic", ...)
	LLMProviders map[string]*LLMProviderConfig

	// Data retention and cleanup
	Retention *RetentionConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// ListenAddr is the host:port the HTTP server binds to.
	ListenAddr string

	// AllowedWSOrigins is the extra set of Origin patterns accepted on
	// WebSocket upgrades, in addition to the server's own host.
	AllowedWSOrigins []string
}

// CronConfig controls the background evaluation loop.
type CronConfig struct {
	// Enabled turns the whole cron loop on or off. Disable it on
	// replicas that only serve HTTP.
	Enabled bool
}

// NotificationsConfig groups the proactive notification features.
type NotificationsConfig struct {
	// SmartEnabled gates the LLM-driven proactive push evaluator.
	SmartEnabled bool

	// SmartCooldown is the minimum gap between proactive pushes per user.
	SmartCooldown time.Duration

	// KioskEnabled gates the LLM-driven kiosk display evaluator.
	KioskEnabled bool
}

// LLMProviderType identifies a supported provider implementation.
type LLMProviderType string

const (
	ProviderAnthropic LLMProviderType = "anthropic"
)

// LLMProviderConfig defines one LLM provider.
type LLMProviderConfig struct {
	// Provider type (required)
	Type LLMProviderType `yaml:"type"`

	// Model name (required)
	Model string `yaml:"model"`

	// Environment variable name for the API key
	APIKeyEnv string `yaml:"api_key_env,omitempty"`

	// Optional custom endpoint/base URL
	BaseURL string `yaml:"base_url,omitempty"`

	// MaxTokens caps the response size per call.
	MaxTokens int `yaml:"max_tokens,omitempty"`
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// Provider retrieves an LLM provider configuration by name.
func (c *Config) Provider(name string) (*LLMProviderConfig, bool) {
	p, ok := c.LLMProviders[name]
	return p, ok
}
