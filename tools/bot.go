package tools

import "github.com/mark3labs/mcp-go/mcp"

func BotProbeTool() mcp.Tool {
	return mcp.NewTool(
		"lark_bot_probe",
		mcp.WithDescription("Validate the configured app credentials against the bot-identity endpoint. "+
			"Returns the bot name, open id and activation status. The result is cached for a short TTL; set force to bypass the cache"),
		mcp.WithBoolean("force", mcp.Description("Bypass the cached probe result. Default is false")),
	)
}
