package tools

import "github.com/mark3labs/mcp-go/mcp"

func SendMessageTool() mcp.Tool {
	return mcp.NewTool(
		"lark_send_message",
		mcp.WithDescription("Send a message to a user or chat. Pass plain text, or set msg_type and pass the platform JSON content document"),
		mcp.WithString("receive_id", mcp.Required(), mcp.Description("Target user or chat id, matching receive_id_type")),
		mcp.WithString("content", mcp.Required(), mcp.Description("Plain text, or the JSON content document when msg_type is set")),
		mcp.WithString("msg_type", mcp.Description("Message type such as text, post or interactive. Default is text"), mcp.Enum("text", "post", "image", "interactive", "share_chat", "share_user")),
		mcp.WithString("receive_id_type", mcp.Description("Id type of receive_id: open_id, union_id, user_id, email or chat_id. Default is open_id"), mcp.Enum("open_id", "union_id", "user_id", "email", "chat_id")),
	)
}

func SendWebhookTool() mcp.Tool {
	return mcp.NewTool(
		"lark_send_webhook",
		mcp.WithDescription("Send a text message through a custom-bot webhook. Uses the configured webhook when webhook_url is omitted"),
		mcp.WithString("text", mcp.Required(), mcp.Description("Message text to send")),
		mcp.WithString("webhook_url", mcp.Description("Custom-bot webhook URL. Default is the configured webhook")),
		mcp.WithString("secret", mcp.Description("Signing secret of the custom bot, if its security setting requires one")),
	)
}

func UrgentMessageTool() mcp.Tool {
	return mcp.NewTool(
		"lark_message_urgent",
		mcp.WithDescription("Escalate delivery of a previously sent message: in-app buzz, SMS or phone call. "+
			"Receivers can be passed as a single user_id or a list of user_ids; both are merged. SMS and phone escalations are billed by the platform"),
		mcp.WithString("message_id", mcp.Required(), mcp.Description("Id of the message to escalate, as returned by lark_send_message")),
		mcp.WithString("channel", mcp.Description("Escalation channel: app, sms or phone. Default is app"), mcp.Enum("app", "sms", "phone")),
		mcp.WithString("user_id", mcp.Description("Single receiver user id")),
		mcp.WithArray("user_ids", mcp.Description("List of receiver user ids"), mcp.Items(map[string]interface{}{"type": "string"})),
		mcp.WithString("user_id_type", mcp.Description("Id type for receiver ids. Default is open_id"), mcp.Enum("open_id", "union_id", "user_id")),
	)
}
