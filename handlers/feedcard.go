package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/larkops/lark-mcp-server/pkg/feishu"
	"github.com/mark3labs/mcp-go/mcp"
)

func feedCardFromRequest(request mcp.CallToolRequest) (feishu.FeedCard, error) {
	title, err := request.RequireString("title")
	if err != nil {
		return feishu.FeedCard{}, err
	}
	card := feishu.FeedCard{
		Title:         title,
		Preview:       request.GetString("preview", ""),
		TimeSensitive: request.GetBool("time_sensitive", false),
	}
	if link := request.GetString("link", ""); link != "" {
		card.Link = &feishu.FeedCardLink{Link: link}
	}
	if statusText := request.GetString("status_text", ""); statusText != "" {
		card.StatusLabel = &feishu.FeedCardStatus{
			Text: statusText,
			Type: request.GetString("status_type", "primary"),
		}
	}
	return card, nil
}

func feedCardTargets(request mcp.CallToolRequest, bizID string) ([]feishu.FeedCardTarget, error) {
	userIDs := mergeIDList(request, "user_id", "user_ids")
	if len(userIDs) == 0 {
		return nil, fmt.Errorf("at least one target is required: set user_id or user_ids")
	}
	targets := make([]feishu.FeedCardTarget, 0, len(userIDs))
	for _, uid := range userIDs {
		targets = append(targets, feishu.FeedCardTarget{BizID: bizID, UserID: uid})
	}
	return targets, nil
}

func CreateFeedCard(client *feishu.Client) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		card, err := feedCardFromRequest(request)
		if err != nil {
			return nil, err
		}
		card.BizID = request.GetString("biz_id", "")
		if card.BizID == "" {
			card.BizID = uuid.NewString()
		}
		userIDs := mergeIDList(request, "user_id", "user_ids")
		if len(userIDs) == 0 {
			return nil, fmt.Errorf("at least one target is required: set user_id or user_ids")
		}
		idType, err := userIDType(request)
		if err != nil {
			return nil, err
		}
		res, err := client.CreateFeedCard(ctx, card, userIDs, idType)
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

func UpdateFeedCard(client *feishu.Client) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		bizID, err := request.RequireString("biz_id")
		if err != nil {
			return nil, err
		}
		card, err := feedCardFromRequest(request)
		if err != nil {
			return nil, err
		}
		targets, err := feedCardTargets(request, bizID)
		if err != nil {
			return nil, err
		}
		idType, err := userIDType(request)
		if err != nil {
			return nil, err
		}
		res, err := client.UpdateFeedCard(ctx, card, targets, idType)
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

func DeleteFeedCard(client *feishu.Client) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		bizID, err := request.RequireString("biz_id")
		if err != nil {
			return nil, err
		}
		targets, err := feedCardTargets(request, bizID)
		if err != nil {
			return nil, err
		}
		idType, err := userIDType(request)
		if err != nil {
			return nil, err
		}
		res, err := client.DeleteFeedCard(ctx, targets, idType)
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
