package tools

import "github.com/mark3labs/mcp-go/mcp"

func ReserveMeetingTool() mcp.Tool {
	return mcp.NewTool(
		"lark_vc_reserve",
		mcp.WithDescription("Reserve a video-conference meeting and return the meeting number and join url"),
		mcp.WithString("topic", mcp.Required(), mcp.Description("Meeting topic")),
		mcp.WithString("end_time", mcp.Description("Reservation expiry, RFC3339 or unix seconds. Platform default when omitted")),
		mcp.WithBoolean("auto_record", mcp.Description("Start recording automatically when the meeting begins. Default is false")),
		mcp.WithString("user_id_type", mcp.Description("Id type for user fields. Default is open_id"), mcp.Enum("open_id", "union_id", "user_id")),
	)
}

func GetReservationTool() mcp.Tool {
	return mcp.NewTool(
		"lark_vc_get_reservation",
		mcp.WithDescription("Get a video-conference reservation by reservation id"),
		mcp.WithString("reserve_id", mcp.Required(), mcp.Description("Reservation id")),
		mcp.WithString("user_id_type", mcp.Description("Id type for user fields. Default is open_id"), mcp.Enum("open_id", "union_id", "user_id")),
	)
}

func DeleteReservationTool() mcp.Tool {
	return mcp.NewTool(
		"lark_vc_delete_reservation",
		mcp.WithDescription("Delete a video-conference reservation, releasing its meeting number"),
		mcp.WithString("reserve_id", mcp.Required(), mcp.Description("Reservation id")),
	)
}

func ActiveMeetingTool() mcp.Tool {
	return mcp.NewTool(
		"lark_vc_active_meeting",
		mcp.WithDescription("Get the live meeting running under a reservation, optionally with its participant list"),
		mcp.WithString("reserve_id", mcp.Required(), mcp.Description("Reservation id")),
		mcp.WithBoolean("with_participants", mcp.Description("Include the participant list. Default is false")),
	)
}

func ListMeetingsTool() mcp.Tool {
	return mcp.NewTool(
		"lark_vc_list_meetings",
		mcp.WithDescription("List meetings held under a meeting number inside a time window. Returns one page plus a page_token"),
		mcp.WithString("meeting_no", mcp.Required(), mcp.Description("9-digit meeting number")),
		mcp.WithString("start", mcp.Required(), mcp.Description("Window start, RFC3339 or unix seconds")),
		mcp.WithString("end", mcp.Required(), mcp.Description("Window end, RFC3339 or unix seconds")),
		mcp.WithNumber("page_size", mcp.Description("Number of meetings per page. Default is 20")),
		mcp.WithString("page_token", mcp.Description("Page token from a previous call")),
	)
}
