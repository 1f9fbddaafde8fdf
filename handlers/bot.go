package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/larkops/lark-mcp-server/pkg/feishu"
	"github.com/mark3labs/mcp-go/mcp"
)

func BotProbe(client *feishu.Client) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		info, cached, err := client.Probe(ctx, request.GetBool("force", false))
		if err != nil {
			return nil, fmt.Errorf("credential probe failed: %w", err)
		}
		jsonResponse, err := json.Marshal(map[string]interface{}{
			"app_id": client.AppID(),
			"bot":    info,
			"cached": cached,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to serialize response: %w", err)
		}
		return mcp.NewToolResultText(string(jsonResponse)), nil
	}
}
