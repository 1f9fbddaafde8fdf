package prompts

import "github.com/mark3labs/mcp-go/mcp"

func UserIDTypePrompt() mcp.Prompt {
	return mcp.NewPrompt(
		"arg-user-id-type",
		mcp.WithPromptDescription("When using the tools, pass user ids that match user_id_type: open_id (default, app-scoped), union_id or user_id."),
	)
}
