package feishu

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	larkcore "github.com/larksuite/oapi-sdk-go/v3/core"
)

// Feed-card endpoints have no typed service in the SDK yet, so the calls go
// through the SDK's raw transport with a tenant token.
const (
	appFeedCardPath      = "/open-apis/im/v2/app_feed_card"
	appFeedCardBatchPath = "/open-apis/im/v2/app_feed_card/batch"
)

// FeedCard is the pinned notification entry shown at the top of a user's
// message list. BizID is chosen by the application and scopes later updates
// and deletes together with the target user id.
type FeedCard struct {
	BizID         string          `json:"biz_id"`
	Title         string          `json:"title"`
	AvatarKey     string          `json:"avatar_key,omitempty"`
	Preview       string          `json:"preview,omitempty"`
	Link          *FeedCardLink   `json:"link,omitempty"`
	StatusLabel   *FeedCardStatus `json:"status_label,omitempty"`
	TimeSensitive bool            `json:"time_sensitive,omitempty"`
}

// FeedCardLink is the landing target opened when the card is tapped.
type FeedCardLink struct {
	Link string `json:"link"`
}

// FeedCardStatus is the colored label rendered next to the card title.
type FeedCardStatus struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

// FeedCardTarget addresses one card instance for update or delete.
type FeedCardTarget struct {
	BizID  string `json:"biz_id"`
	UserID string `json:"user_id"`
}

type feedCardEnvelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func (c *Client) rawCall(ctx context.Context, op, method, path string, body interface{}) (json.RawMessage, error) {
	var resp *larkcore.ApiResp
	var err error
	switch method {
	case http.MethodPost:
		resp, err = c.api.Post(ctx, path, body, larkcore.AccessTokenTypeTenant)
	case http.MethodPut:
		resp, err = c.api.Put(ctx, path, body, larkcore.AccessTokenTypeTenant)
	case http.MethodDelete:
		resp, err = c.api.Delete(ctx, path, body, larkcore.AccessTokenTypeTenant)
	case http.MethodGet:
		resp, err = c.api.Get(ctx, path, body, larkcore.AccessTokenTypeTenant)
	default:
		return nil, fmt.Errorf("feishu: unsupported method %s", method)
	}
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", op, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feishu: %s failed: status=%d body=%s", op, resp.StatusCode, string(resp.RawBody))
	}
	var env feedCardEnvelope
	if err := json.Unmarshal(resp.RawBody, &env); err != nil {
		return nil, fmt.Errorf("failed to parse %s response: %w", op, err)
	}
	if env.Code != 0 {
		return nil, apiError(op, env.Code, env.Msg)
	}
	return env.Data, nil
}

// CreateFeedCard pushes a feed card to the given users and returns the
// per-user instances the platform rejected.
func (c *Client) CreateFeedCard(ctx context.Context, card FeedCard, userIDs []string, userIDType string) (map[string]interface{}, error) {
	body := map[string]interface{}{
		"biz_id":        card.BizID,
		"app_feed_card": card,
		"user_ids":      userIDs,
	}
	data, err := c.rawCall(ctx, "create feed card", http.MethodPost, appFeedCardPath+"?user_id_type="+userIDType, body)
	if err != nil {
		return nil, err
	}
	result := map[string]interface{}{
		"biz_id":   card.BizID,
		"user_ids": userIDs,
	}
	var parsed struct {
		FailedCards []FeedCardTarget `json:"failed_cards"`
	}
	if err := json.Unmarshal(data, &parsed); err == nil && len(parsed.FailedCards) > 0 {
		result["failed_cards"] = parsed.FailedCards
	}
	return result, nil
}

// UpdateFeedCard rewrites the card content for every (biz id, user) pair.
func (c *Client) UpdateFeedCard(ctx context.Context, card FeedCard, targets []FeedCardTarget, userIDType string) (map[string]interface{}, error) {
	cards := make([]map[string]interface{}, 0, len(targets))
	for _, t := range targets {
		updated := card
		updated.BizID = t.BizID
		cards = append(cards, map[string]interface{}{
			"app_feed_card": updated,
			"user_id":       t.UserID,
		})
	}
	body := map[string]interface{}{"feed_cards": cards}
	data, err := c.rawCall(ctx, "update feed card", http.MethodPut, appFeedCardBatchPath+"?user_id_type="+userIDType, body)
	if err != nil {
		return nil, err
	}
	return batchFeedCardResult(data, targets), nil
}

// DeleteFeedCard removes the card instances addressed by targets.
func (c *Client) DeleteFeedCard(ctx context.Context, targets []FeedCardTarget, userIDType string) (map[string]interface{}, error) {
	body := map[string]interface{}{"feed_cards": targets}
	data, err := c.rawCall(ctx, "delete feed card", http.MethodDelete, appFeedCardBatchPath+"?user_id_type="+userIDType, body)
	if err != nil {
		return nil, err
	}
	return batchFeedCardResult(data, targets), nil
}

func batchFeedCardResult(data json.RawMessage, targets []FeedCardTarget) map[string]interface{} {
	result := map[string]interface{}{
		"requested": len(targets),
		"succeeded": len(targets),
	}
	var parsed struct {
		FailedCards []FeedCardTarget `json:"failed_cards"`
	}
	if err := json.Unmarshal(data, &parsed); err == nil && len(parsed.FailedCards) > 0 {
		result["succeeded"] = len(targets) - len(parsed.FailedCards)
		result["failed_cards"] = parsed.FailedCards
	}
	return result
}
