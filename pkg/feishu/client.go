package feishu

import (
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	lark "github.com/larksuite/oapi-sdk-go/v3"
	larkcore "github.com/larksuite/oapi-sdk-go/v3/core"
)

// Default open-platform endpoints. Feishu and Lark are separate clouds with
// separate credentials; the same API surface is served on both.
const (
	FeishuBaseURL = "https://open.feishu.cn"
	LarkBaseURL   = "https://open.larksuite.com"
)

// Client is a thin wrapper around the official Lark open-platform SDK.
// It carries the tenant credentials and a single-entry memoized result of the
// bot-info probe so repeated credential checks don't hit the remote endpoint.
type Client struct {
	api      *lark.Client
	appID    string
	probeTTL time.Duration

	probeCache *probeEntry
	cacheLock  sync.RWMutex
}

// Options configures a Client. Zero values fall back to environment variables
// and SDK defaults.
type Options struct {
	AppID     string
	AppSecret string
	// BaseURL selects the open-platform endpoint. Empty means the Feishu
	// cloud; use LarkBaseURL for Lark tenants or a test server URL.
	BaseURL string
	// Timeout bounds every remote call made through the SDK.
	Timeout time.Duration
	// ProbeTTL is how long a successful bot probe is memoized.
	ProbeTTL time.Duration
	// HTTPClient overrides the SDK transport, mainly for tests.
	HTTPClient *http.Client
}

// NewClient builds a Client. Credentials are resolved in order:
// explicit options, then LARK_APP_ID / LARK_APP_SECRET environment variables.
func NewClient(opts Options) (*Client, error) {
	appID := opts.AppID
	if appID == "" {
		appID = os.Getenv("LARK_APP_ID")
	}
	appSecret := opts.AppSecret
	if appSecret == "" {
		appSecret = os.Getenv("LARK_APP_SECRET")
	}
	if appID == "" || appSecret == "" {
		return nil, fmt.Errorf("lark app credentials are required (set app_id/app_secret or LARK_APP_ID/LARK_APP_SECRET)")
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = os.Getenv("LARK_BASE_URL")
	}
	if baseURL == "" {
		baseURL = FeishuBaseURL
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	probeTTL := opts.ProbeTTL
	if probeTTL <= 0 {
		probeTTL = 5 * time.Minute
	}

	sdkOpts := []lark.ClientOptionFunc{
		lark.WithOpenBaseUrl(baseURL),
		lark.WithReqTimeout(timeout),
		lark.WithEnableTokenCache(true),
		lark.WithLogLevel(larkcore.LogLevelWarn),
	}
	if opts.HTTPClient != nil {
		sdkOpts = append(sdkOpts, lark.WithHttpClient(opts.HTTPClient))
	}

	return &Client{
		api:      lark.NewClient(appID, appSecret, sdkOpts...),
		appID:    appID,
		probeTTL: probeTTL,
	}, nil
}

// AppID returns the configured application id.
func (c *Client) AppID() string {
	return c.appID
}

// apiError normalizes a logical open-platform failure into one error shape.
func apiError(op string, code int, msg string) error {
	return fmt.Errorf("feishu: %s failed: code=%d msg=%s", op, code, msg)
}
