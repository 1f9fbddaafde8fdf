package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 5*time.Minute, cfg.ProbeTTL)
	assert.True(t, cfg.EnableCalendar)
	assert.True(t, cfg.EnableVC)
	assert.True(t, cfg.EnableMessaging)
	assert.True(t, cfg.EnableFeedCard)
	assert.Empty(t, cfg.MetricsAddr)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LARK_MCP_APP_ID", "cli_test")
	t.Setenv("LARK_MCP_ENABLE_VC", "false")
	t.Setenv("LARK_MCP_REQUEST_TIMEOUT", "10s")
	t.Setenv("LARK_MCP_METRICS_ADDR", ":9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "cli_test", cfg.AppID)
	assert.False(t, cfg.EnableVC)
	assert.True(t, cfg.EnableCalendar)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, ":9090", cfg.MetricsAddr)
}

func TestLoad_File(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
app_id: cli_from_file
app_secret: secret_from_file
base_url: https://open.larksuite.com
probe_ttl: 1m
enable_feed_card: false
webhook_url: https://open.feishu.cn/open-apis/bot/v2/hook/abc
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	t.Setenv("LARK_MCP_CONFIG", configPath)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "cli_from_file", cfg.AppID)
	assert.Equal(t, "https://open.larksuite.com", cfg.BaseURL)
	assert.Equal(t, time.Minute, cfg.ProbeTTL)
	assert.False(t, cfg.EnableFeedCard)
	assert.Equal(t, "https://open.feishu.cn/open-apis/bot/v2/hook/abc", cfg.WebhookURL)
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("app_id: cli_from_file\n"), 0644))
	t.Setenv("LARK_MCP_CONFIG", configPath)
	t.Setenv("LARK_MCP_APP_ID", "cli_from_env")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "cli_from_env", cfg.AppID)
}

func TestValidate(t *testing.T) {
	cfg := New()
	require.NoError(t, cfg.Validate())

	cfg = New()
	cfg.RequestTimeout = 0
	assert.Error(t, cfg.Validate())

	cfg = New()
	cfg.EnableCalendar = false
	cfg.EnableVC = false
	cfg.EnableMessaging = false
	cfg.EnableFeedCard = false
	assert.Error(t, cfg.Validate())
}

func TestNeedsAPIClient(t *testing.T) {
	cfg := New()
	assert.True(t, cfg.NeedsAPIClient())

	cfg = New()
	cfg.EnableCalendar = false
	cfg.EnableVC = false
	cfg.EnableFeedCard = false
	cfg.WebhookURL = "https://open.feishu.cn/open-apis/bot/v2/hook/abc"
	assert.False(t, cfg.NeedsAPIClient())

	cfg.WebhookURL = ""
	assert.True(t, cfg.NeedsAPIClient())
}
