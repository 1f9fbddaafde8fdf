package feishu

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	larkcore "github.com/larksuite/oapi-sdk-go/v3/core"
)

const botInfoPath = "/open-apis/bot/v3/info"

// BotInfo is the bot identity returned by the probe endpoint. A successful
// fetch proves the app id/secret are live.
type BotInfo struct {
	ActivateStatus int      `json:"activate_status"`
	AppName        string   `json:"app_name"`
	AvatarURL      string   `json:"avatar_url"`
	OpenID         string   `json:"open_id"`
	IPWhiteList    []string `json:"ip_white_list,omitempty"`
}

// probeEntry is the single memoized probe result, keyed by the app id the
// client was built with.
type probeEntry struct {
	appID     string
	info      BotInfo
	fetchedAt time.Time
}

// Probe validates the configured credentials against the bot-identity
// endpoint. A successful result is memoized for the configured TTL so
// repeated liveness checks stay local; force bypasses the memo. The returned
// bool reports whether the result came from the cache.
func (c *Client) Probe(ctx context.Context, force bool) (BotInfo, bool, error) {
	if !force {
		c.cacheLock.RLock()
		entry := c.probeCache
		c.cacheLock.RUnlock()
		if entry != nil && entry.appID == c.appID && time.Since(entry.fetchedAt) < c.probeTTL {
			return entry.info, true, nil
		}
	}

	// The legacy bot endpoint puts the payload next to code/msg instead of
	// under data, so it gets its own envelope.
	resp, err := c.api.Get(ctx, botInfoPath, nil, larkcore.AccessTokenTypeTenant)
	if err != nil {
		return BotInfo{}, false, fmt.Errorf("bot probe request failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return BotInfo{}, false, fmt.Errorf("feishu: bot probe failed: status=%d body=%s", resp.StatusCode, string(resp.RawBody))
	}
	var parsed struct {
		Code int     `json:"code"`
		Msg  string  `json:"msg"`
		Bot  BotInfo `json:"bot"`
	}
	if err := json.Unmarshal(resp.RawBody, &parsed); err != nil {
		return BotInfo{}, false, fmt.Errorf("failed to parse bot info: %w", err)
	}
	if parsed.Code != 0 {
		return BotInfo{}, false, apiError("bot probe", parsed.Code, parsed.Msg)
	}

	c.cacheLock.Lock()
	c.probeCache = &probeEntry{appID: c.appID, info: parsed.Bot, fetchedAt: time.Now()}
	c.cacheLock.Unlock()
	return parsed.Bot, false, nil
}
