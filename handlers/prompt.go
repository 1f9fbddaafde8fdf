package handlers

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

func UserIDTypePrompt() func(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return func(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		return mcp.NewGetPromptResult(
			"arg-user-id-type",
			[]mcp.PromptMessage{
				mcp.NewPromptMessage(
					mcp.RoleAssistant,
					mcp.NewTextContent("When using the tools, pass user ids that match user_id_type. "+
						"open_id is app-scoped and the default; union_id spans apps of one developer; "+
						"user_id is the tenant-internal id and needs extra permission scopes."),
				),
			},
		), nil
	}
}
