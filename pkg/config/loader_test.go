package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "daybreak.yaml"), []byte(content), 0o644))
	return dir
}

func TestInitializeAppliesDefaults(t *testing.T) {
	dir := writeConfig(t, `
server:
  listen_addr: ":9090"
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.ListenAddr)
	assert.Equal(t, 5, cfg.Queue.WorkerCount)
	assert.Equal(t, 10, cfg.Queue.MaxConcurrentJobs)
	assert.Equal(t, 3, cfg.Queue.MaxAttempts)
	assert.True(t, cfg.Cron.Enabled)
	assert.False(t, cfg.Notifications.SmartEnabled)
	assert.Equal(t, 10*time.Minute, cfg.Notifications.SmartCooldown)
	assert.Equal(t, 365, cfg.Retention.AuditRetentionDays)
}

func TestInitializeMergesQueueOverrides(t *testing.T) {
	dir := writeConfig(t, `
queue:
  worker_count: 2
  max_attempts: 7
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Queue.WorkerCount)
	assert.Equal(t, 7, cfg.Queue.MaxAttempts)
	// Unset values keep their defaults.
	assert.Equal(t, 1*time.Second, cfg.Queue.PollInterval)
	assert.Equal(t, 2*time.Minute, cfg.Queue.JobTimeout)
}

func TestInitializeNotifications(t *testing.T) {
	dir := writeConfig(t, `
cron:
  enabled: false
notifications:
  smart:
    enabled: true
    cooldown: 30m
  kiosk:
    enabled: true
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.False(t, cfg.Cron.Enabled)
	assert.True(t, cfg.Notifications.SmartEnabled)
	assert.Equal(t, 30*time.Minute, cfg.Notifications.SmartCooldown)
	assert.True(t, cfg.Notifications.KioskEnabled)
}

func TestInitializeExpandsEnvInProviders(t *testing.T) {
	t.Setenv("TEST_MODEL_NAME", "claude-sonnet-4-5")

	dir := writeConfig(t, `
llm_providers:
  anthropic:
    type: anthropic
    model: "{{.TEST_MODEL_NAME}}"
    api_key_env: ANTHROPIC_API_KEY
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	p, ok := cfg.Provider("anthropic")
	require.True(t, ok)
	assert.Equal(t, "claude-sonnet-4-5", p.Model)
	assert.Equal(t, "ANTHROPIC_API_KEY", p.APIKeyEnv)
}

func TestInitializeRejectsInvalidQueueValues(t *testing.T) {
	dir := writeConfig(t, `
queue:
  worker_count: -1
`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "worker_count")
}

func TestInitializeRejectsProviderWithoutModel(t *testing.T) {
	dir := writeConfig(t, `
llm_providers:
  anthropic:
    type: anthropic
`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model")
}

func TestInitializeRejectsUnknownProviderType(t *testing.T) {
	dir := writeConfig(t, `
llm_providers:
  other:
    type: groq
    model: whatever
`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "type")
}

func TestInitializeMissingFile(t *testing.T) {
	_, err := Initialize(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestExpandEnvMissingVariable(t *testing.T) {
	out := ExpandEnv([]byte("key: {{.DEFINITELY_NOT_SET_ANYWHERE}}"))
	assert.Equal(t, "key: ", string(out))
}

func TestExpandEnvPassesThroughPlainYAML(t *testing.T) {
	in := []byte("pattern: user_$ID\npassword: p@ss$word")
	assert.Equal(t, in, ExpandEnv(in))
}
