package tools

import "github.com/mark3labs/mcp-go/mcp"

func CreateFeedCardTool() mcp.Tool {
	return mcp.NewTool(
		"lark_feed_card_create",
		mcp.WithDescription("Pin a feed card to the top of the message list of the given users. "+
			"biz_id is the application-chosen business id used for later updates and deletes; a uuid is generated when omitted. "+
			"Targets can be passed as a single user_id or a list of user_ids; both are merged"),
		mcp.WithString("title", mcp.Required(), mcp.Description("Card title")),
		mcp.WithString("user_id", mcp.Description("Single target user id")),
		mcp.WithArray("user_ids", mcp.Description("List of target user ids"), mcp.Items(map[string]interface{}{"type": "string"})),
		mcp.WithString("biz_id", mcp.Description("Business id of the card. Generated when omitted")),
		mcp.WithString("preview", mcp.Description("Preview text shown under the title")),
		mcp.WithString("link", mcp.Description("URL opened when the card is tapped")),
		mcp.WithString("status_text", mcp.Description("Text of the status label shown next to the title")),
		mcp.WithString("status_type", mcp.Description("Color of the status label. Default is primary"), mcp.Enum("primary", "secondary", "success", "danger")),
		mcp.WithBoolean("time_sensitive", mcp.Description("Mark the card as time sensitive. Default is false")),
		mcp.WithString("user_id_type", mcp.Description("Id type for user fields. Default is open_id"), mcp.Enum("open_id", "union_id", "user_id")),
	)
}

func UpdateFeedCardTool() mcp.Tool {
	return mcp.NewTool(
		"lark_feed_card_update",
		mcp.WithDescription("Rewrite the content of an existing feed card for the given users, addressed by business id plus user id"),
		mcp.WithString("biz_id", mcp.Required(), mcp.Description("Business id used when the card was created")),
		mcp.WithString("title", mcp.Required(), mcp.Description("New card title")),
		mcp.WithString("user_id", mcp.Description("Single target user id")),
		mcp.WithArray("user_ids", mcp.Description("List of target user ids"), mcp.Items(map[string]interface{}{"type": "string"})),
		mcp.WithString("preview", mcp.Description("New preview text")),
		mcp.WithString("link", mcp.Description("New URL opened when the card is tapped")),
		mcp.WithString("status_text", mcp.Description("New status label text")),
		mcp.WithString("status_type", mcp.Description("Color of the status label. Default is primary"), mcp.Enum("primary", "secondary", "success", "danger")),
		mcp.WithBoolean("time_sensitive", mcp.Description("Mark the card as time sensitive. Default is false")),
		mcp.WithString("user_id_type", mcp.Description("Id type for user fields. Default is open_id"), mcp.Enum("open_id", "union_id", "user_id")),
	)
}

func DeleteFeedCardTool() mcp.Tool {
	return mcp.NewTool(
		"lark_feed_card_delete",
		mcp.WithDescription("Remove a feed card from the message list of the given users, addressed by business id plus user id"),
		mcp.WithString("biz_id", mcp.Required(), mcp.Description("Business id used when the card was created")),
		mcp.WithString("user_id", mcp.Description("Single target user id")),
		mcp.WithArray("user_ids", mcp.Description("List of target user ids"), mcp.Items(map[string]interface{}{"type": "string"})),
		mcp.WithString("user_id_type", mcp.Description("Id type for user fields. Default is open_id"), mcp.Enum("open_id", "union_id", "user_id")),
	)
}
