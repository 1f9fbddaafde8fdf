package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/larkops/lark-mcp-server/pkg/feishu"
	"github.com/mark3labs/mcp-go/mcp"
)

func SendMessage(client *feishu.Client) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		receiveID, err := request.RequireString("receive_id")
		if err != nil {
			return nil, err
		}
		content, err := request.RequireString("content")
		if err != nil {
			return nil, err
		}
		msgType := request.GetString("msg_type", "text")
		receiveIDType := request.GetString("receive_id_type", "open_id")
		switch receiveIDType {
		case "open_id", "union_id", "user_id", "email", "chat_id":
		default:
			return nil, fmt.Errorf("invalid receive_id_type %q", receiveIDType)
		}

		// Plain text is wrapped into the platform content document; any other
		// msg_type must already be the JSON document.
		if msgType == "text" && !json.Valid([]byte(content)) {
			content, err = feishu.TextContent(content)
			if err != nil {
				return nil, err
			}
		} else if msgType != "text" && !json.Valid([]byte(content)) {
			return nil, fmt.Errorf("content must be a JSON document when msg_type is %q", msgType)
		}

		res, err := client.SendMessage(ctx, feishu.MessageInput{
			ReceiveID:     receiveID,
			ReceiveIDType: receiveIDType,
			MsgType:       msgType,
			Content:       content,
		})
		if err != nil {
			return nil, err
		}
		jsonResponse, err := json.Marshal(res)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize response: %w", err)
		}
		return mcp.NewToolResultText(string(jsonResponse)), nil
	}
}

// SendWebhook needs no API client; the default webhook and secret come from
// configuration and can be overridden per call.
func SendWebhook(defaultURL, defaultSecret string) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := request.RequireString("text")
		if err != nil {
			return nil, err
		}
		webhookURL := request.GetString("webhook_url", defaultURL)
		if webhookURL == "" {
			return nil, fmt.Errorf("webhook_url is required when no webhook is configured")
		}
		secret := request.GetString("secret", defaultSecret)
		res, err := feishu.SendWebhook(ctx, nil, webhookURL, secret, text)
		if err != nil {
			return nil, fmt.Errorf("send webhook message failed: %w", err)
		}
		return mcp.NewToolResultText(res), nil
	}
}

func UrgentMessage(client *feishu.Client) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		messageID, err := request.RequireString("message_id")
		if err != nil {
			return nil, err
		}
		channel := request.GetString("channel", feishu.UrgentChannelApp)
		switch channel {
		case feishu.UrgentChannelApp, feishu.UrgentChannelSms, feishu.UrgentChannelPhone:
		default:
			return nil, fmt.Errorf("invalid channel %q: want app, sms or phone", channel)
		}
		userIDs := mergeIDList(request, "user_id", "user_ids")
		if len(userIDs) == 0 {
			return nil, fmt.Errorf("at least one receiver is required: set user_id or user_ids")
		}
		idType, err := userIDType(request)
		if err != nil {
			return nil, err
		}
		invalid, err := client.Urgent(ctx, channel, messageID, idType, userIDs)
		if err != nil {
			return nil, err
		}
		jsonResponse, err := json.Marshal(map[string]interface{}{
			"message_id":       messageID,
			"channel":          channel,
			"requested":        len(userIDs),
			"escalated":        len(userIDs) - len(invalid),
			"invalid_user_ids": invalid,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to serialize response: %w", err)
		}
		return mcp.NewToolResultText(string(jsonResponse)), nil
	}
}
