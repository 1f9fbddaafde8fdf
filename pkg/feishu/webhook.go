package feishu

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

type webhookResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

// signWebhook computes the custom-bot signature: base64 of an HMAC-SHA256
// keyed by "<timestamp>\n<secret>" over an empty payload.
func signWebhook(secret string, timestamp int64) (string, error) {
	stringToSign := strconv.FormatInt(timestamp, 10) + "\n" + secret
	h := hmac.New(sha256.New, []byte(stringToSign))
	if _, err := h.Write([]byte{}); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(h.Sum(nil)), nil
}

// SendWebhook posts a text message to a custom-bot webhook. When secret is
// non-empty the request carries the timestamp signature the bot's security
// setting requires.
func SendWebhook(ctx context.Context, httpClient *http.Client, webhookURL, secret, text string) (string, error) {
	if webhookURL == "" {
		return "", fmt.Errorf("feishu: webhook url is required")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	message := map[string]interface{}{
		"msg_type": "text",
		"content": map[string]string{
			"text": text,
		},
	}
	if secret != "" {
		timestamp := time.Now().Unix()
		sign, err := signWebhook(secret, timestamp)
		if err != nil {
			return "", fmt.Errorf("failed to sign webhook message: %w", err)
		}
		message["timestamp"] = strconv.FormatInt(timestamp, 10)
		message["sign"] = sign
	}

	messageBody, err := json.Marshal(message)
	if err != nil {
		return "", fmt.Errorf("failed to marshal message to JSON: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewBuffer(messageBody))
	if err != nil {
		return "", fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send HTTP request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("webhook send failed: status=%d body=%s", resp.StatusCode, string(respBody))
	}

	var wr webhookResponse
	if err := json.Unmarshal(respBody, &wr); err == nil && wr.Code != 0 {
		return "", apiError("webhook send", wr.Code, wr.Msg)
	}
	return "send success", nil
}
