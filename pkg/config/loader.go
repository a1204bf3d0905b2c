package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// daybreakYAMLConfig represents the complete daybreak.yaml file structure.
type daybreakYAMLConfig struct {
	Server        *serverYAMLConfig            `yaml:"server"`
	Queue         *QueueConfig                 `yaml:"queue"`
	Cron          *cronYAMLConfig              `yaml:"cron"`
	Notifications *notificationsYAMLConfig     `yaml:"notifications"`
	LLMProviders  map[string]LLMProviderConfig `yaml:"llm_providers"`
	Retention     *RetentionConfig             `yaml:"retention"`
}

// serverYAMLConfig holds HTTP server settings from YAML.
type serverYAMLConfig struct {
	ListenAddr       string   `yaml:"listen_addr,omitempty"`
	AllowedWSOrigins []string `yaml:"allowed_ws_origins,omitempty"`
}

// cronYAMLConfig holds background loop settings from YAML.
type cronYAMLConfig struct {
	Enabled *bool `yaml:"enabled,omitempty"`
}

// notificationsYAMLConfig holds proactive notification settings from YAML.
type notificationsYAMLConfig struct {
	Smart *smartYAMLConfig `yaml:"smart,omitempty"`
	Kiosk *kioskYAMLConfig `yaml:"kiosk,omitempty"`
}

type smartYAMLConfig struct {
	Enabled  *bool  `yaml:"enabled,omitempty"`
	Cooldown string `yaml:"cooldown,omitempty"` // Parsed to time.Duration
}

type kioskYAMLConfig struct {
	Enabled *bool `yaml:"enabled,omitempty"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load daybreak.yaml from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge user-provided values over built-in defaults
//  5. Validate all configuration
//  6. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"llm_providers", len(cfg.LLMProviders),
		"cron_enabled", cfg.Cron.Enabled,
		"smart_notifications", cfg.Notifications.SmartEnabled)
	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	raw, err := loadDaybreakYAML(configDir)
	if err != nil {
		return nil, NewLoadError("daybreak.yaml", err)
	}

	// Resolve queue config (merge user YAML with built-in defaults).
	// Start with defaults, then merge user config on top to preserve
	// unset defaults.
	queueConfig := DefaultQueueConfig()
	if raw.Queue != nil {
		if err := mergo.Merge(queueConfig, raw.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}

	retentionConfig := DefaultRetentionConfig()
	if raw.Retention != nil {
		if err := mergo.Merge(retentionConfig, raw.Retention, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge retention config: %w", err)
		}
	}

	providers := make(map[string]*LLMProviderConfig, len(raw.LLMProviders))
	for name, p := range raw.LLMProviders {
		pc := p
		providers[name] = &pc
	}

	return &Config{
		configDir:     configDir,
		Server:        resolveServerConfig(raw.Server),
		Queue:         queueConfig,
		Cron:          resolveCronConfig(raw.Cron),
		Notifications: resolveNotificationsConfig(raw.Notifications),
		LLMProviders:  providers,
		Retention:     retentionConfig,
	}, nil
}

func loadDaybreakYAML(configDir string) (*daybreakYAMLConfig, error) {
	path := filepath.Join(configDir, "daybreak.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, err
	}

	// Expand environment variables using {{.VAR}} template syntax
	data = ExpandEnv(data)

	var config daybreakYAMLConfig
	config.LLMProviders = make(map[string]LLMProviderConfig)
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return &config, nil
}

// resolveServerConfig resolves server configuration from YAML, applying defaults.
func resolveServerConfig(raw *serverYAMLConfig) *ServerConfig {
	cfg := &ServerConfig{
		ListenAddr: ":8080",
	}
	if raw == nil {
		return cfg
	}
	if raw.ListenAddr != "" {
		cfg.ListenAddr = raw.ListenAddr
	}
	cfg.AllowedWSOrigins = raw.AllowedWSOrigins
	return cfg
}

// resolveCronConfig resolves cron configuration from YAML, applying defaults.
func resolveCronConfig(raw *cronYAMLConfig) *CronConfig {
	cfg := &CronConfig{Enabled: true}
	if raw != nil && raw.Enabled != nil {
		cfg.Enabled = *raw.Enabled
	}
	return cfg
}

// resolveNotificationsConfig resolves notification feature flags from YAML,
// applying defaults.
func resolveNotificationsConfig(raw *notificationsYAMLConfig) *NotificationsConfig {
	cfg := &NotificationsConfig{
		SmartEnabled:  false,
		SmartCooldown: 10 * time.Minute,
		KioskEnabled:  false,
	}
	if raw == nil {
		return cfg
	}
	if raw.Smart != nil {
		if raw.Smart.Enabled != nil {
			cfg.SmartEnabled = *raw.Smart.Enabled
		}
		if raw.Smart.Cooldown != "" {
			if d, err := time.ParseDuration(raw.Smart.Cooldown); err == nil {
				cfg.SmartCooldown = d
			} else {
				slog.Warn("Invalid cooldown in smart notification config, using default",
					"value", raw.Smart.Cooldown,
					"default", cfg.SmartCooldown,
					"error", err)
			}
		}
	}
	if raw.Kiosk != nil && raw.Kiosk.Enabled != nil {
		cfg.KioskEnabled = *raw.Kiosk.Enabled
	}
	return cfg
}

// validate performs validation on loaded configuration.
func validate(cfg *Config) error {
	q := cfg.Queue
	if q.WorkerCount < 1 {
		return NewValidationError("queue", "worker_count", ErrInvalidValue)
	}
	if q.MaxConcurrentJobs < 1 {
		return NewValidationError("queue", "max_concurrent_jobs", ErrInvalidValue)
	}
	if q.MaxAttempts < 1 {
		return NewValidationError("queue", "max_attempts", ErrInvalidValue)
	}
	if q.PollInterval <= 0 || q.JobTimeout <= 0 || q.HeartbeatInterval <= 0 {
		return NewValidationError("queue", "intervals", ErrInvalidValue)
	}
	if q.OrphanThreshold <= q.HeartbeatInterval {
		return NewValidationError("queue", "orphan_threshold",
			fmt.Errorf("%w: must exceed heartbeat_interval", ErrInvalidValue))
	}

	for name, p := range cfg.LLMProviders {
		if p.Type == "" {
			return NewValidationError("llm_provider "+name, "type", ErrMissingRequiredField)
		}
		if p.Type != ProviderAnthropic {
			return NewValidationError("llm_provider "+name, "type",
				fmt.Errorf("%w: %q", ErrInvalidValue, p.Type))
		}
		if p.Model == "" {
			return NewValidationError("llm_provider "+name, "model", ErrMissingRequiredField)
		}
	}

	if cfg.Retention.AuditRetentionDays < 1 {
		return NewValidationError("retention", "audit_retention_days", ErrInvalidValue)
	}
	if cfg.Notifications.SmartCooldown < 0 {
		return NewValidationError("notifications", "smart.cooldown", ErrInvalidValue)
	}
	return nil
}
