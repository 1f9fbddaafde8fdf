// Package config defines server configuration and its loading order.
package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config contains process configuration for the tool server.
type Config struct {
	// AppID and AppSecret are the Lark open-platform app credentials.
	AppID     string `koanf:"app_id"`
	AppSecret string `koanf:"app_secret"`

	// BaseURL selects the open-platform endpoint. Empty means the Feishu
	// cloud (open.feishu.cn); Lark tenants use open.larksuite.com.
	BaseURL string `koanf:"base_url"`

	// RequestTimeout bounds every remote call.
	RequestTimeout time.Duration `koanf:"request_timeout"`

	// ProbeTTL is how long a successful bot probe is memoized.
	ProbeTTL time.Duration `koanf:"probe_ttl"`

	// Domain toggles. A disabled domain registers no tools.
	EnableCalendar  bool `koanf:"enable_calendar"`
	EnableVC        bool `koanf:"enable_vc"`
	EnableMessaging bool `koanf:"enable_messaging"`
	EnableFeedCard  bool `koanf:"enable_feed_card"`

	// WebhookURL and WebhookSecret configure the default custom-bot webhook
	// for lark_send_webhook.
	WebhookURL    string `koanf:"webhook_url"`
	WebhookSecret string `koanf:"webhook_secret"`

	// MetricsAddr exposes Prometheus metrics when non-empty, e.g. ":9090".
	MetricsAddr string `koanf:"metrics_addr"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		RequestTimeout:  30 * time.Second,
		ProbeTTL:        5 * time.Minute,
		EnableCalendar:  true,
		EnableVC:        true,
		EnableMessaging: true,
		EnableFeedCard:  true,
	}
}

// Load builds a Config by layering defaults, an optional YAML file, and env
// vars. Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if LARK_MCP_CONFIG is set
//  3. env (prefix LARK_MCP_)
func Load() (*Config, error) {
	k := koanf.New(".")

	if path := os.Getenv("LARK_MCP_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: LARK_MCP_APP_ID, LARK_MCP_ENABLE_CALENDAR, ...
	// Underscores are preserved to match the koanf tags on the struct.
	envProvider := env.Provider("LARK_MCP_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "lark_mcp_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := New()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded configuration. App credentials may still come
// from LARK_APP_ID/LARK_APP_SECRET at client construction, so only internal
// consistency is enforced here.
func (c *Config) Validate() error {
	if c.RequestTimeout <= 0 {
		return errors.New("request_timeout must be positive")
	}
	if c.ProbeTTL <= 0 {
		return errors.New("probe_ttl must be positive")
	}
	if !c.EnableCalendar && !c.EnableVC && !c.EnableMessaging && !c.EnableFeedCard {
		return errors.New("at least one tool domain must be enabled")
	}
	return nil
}

// NeedsAPIClient reports whether any enabled domain requires app credentials.
// A messaging-only setup with a configured webhook can run without them.
func (c *Config) NeedsAPIClient() bool {
	if c.EnableCalendar || c.EnableVC || c.EnableFeedCard {
		return true
	}
	return c.EnableMessaging && c.WebhookURL == ""
}
