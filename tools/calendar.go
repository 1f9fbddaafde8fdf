package tools

import "github.com/mark3labs/mcp-go/mcp"

func PrimaryCalendarTool() mcp.Tool {
	return mcp.NewTool(
		"lark_calendar_primary",
		mcp.WithDescription("Get the primary calendar of the bot identity and return its calendar id"),
		mcp.WithString("user_id_type", mcp.Description("Id type for user fields: open_id, union_id or user_id. Default is open_id"), mcp.Enum("open_id", "union_id", "user_id")),
	)
}

func ListCalendarsTool() mcp.Tool {
	return mcp.NewTool(
		"lark_calendar_list",
		mcp.WithDescription("List calendars visible to the app. Returns one page plus a page_token for the next page"),
		mcp.WithNumber("page_size", mcp.Description("Number of calendars per page. Default is 50")),
		mcp.WithString("page_token", mcp.Description("Page token from a previous call. Omit for the first page")),
	)
}

func CreateEventTool() mcp.Tool {
	return mcp.NewTool(
		"lark_calendar_create_event",
		mcp.WithDescription("Create a calendar event. Uses the primary calendar when calendar_id is omitted. "+
			"Attendees can be passed as a single attendee_id or a list of attendee_ids; both are merged"),
		mcp.WithString("summary", mcp.Required(), mcp.Description("Event title")),
		mcp.WithString("start", mcp.Required(), mcp.Description("Start time, RFC3339 or unix seconds")),
		mcp.WithString("end", mcp.Required(), mcp.Description("End time, RFC3339 or unix seconds")),
		mcp.WithString("calendar_id", mcp.Description("Target calendar id. Default is the primary calendar")),
		mcp.WithString("description", mcp.Description("Event description")),
		mcp.WithString("location", mcp.Description("Event location name")),
		mcp.WithString("timezone", mcp.Description("IANA timezone for the event times. Default is UTC")),
		mcp.WithString("attendee_id", mcp.Description("Single attendee user id")),
		mcp.WithArray("attendee_ids", mcp.Description("List of attendee user ids"), mcp.Items(map[string]interface{}{"type": "string"})),
		mcp.WithString("user_id_type", mcp.Description("Id type for user fields: open_id, union_id or user_id. Default is open_id"), mcp.Enum("open_id", "union_id", "user_id")),
		mcp.WithBoolean("notify_attendees", mcp.Description("Send the platform invitation notification to attendees. Default is true")),
	)
}

func GetEventTool() mcp.Tool {
	return mcp.NewTool(
		"lark_calendar_get_event",
		mcp.WithDescription("Get a single calendar event by calendar id and event id"),
		mcp.WithString("calendar_id", mcp.Required(), mcp.Description("Calendar id")),
		mcp.WithString("event_id", mcp.Required(), mcp.Description("Event id")),
	)
}

func ListEventsTool() mcp.Tool {
	return mcp.NewTool(
		"lark_calendar_list_events",
		mcp.WithDescription("List events on a calendar, optionally inside a time window. Returns one page plus a page_token"),
		mcp.WithString("calendar_id", mcp.Required(), mcp.Description("Calendar id")),
		mcp.WithString("start", mcp.Description("Window start, RFC3339 or unix seconds. Optional")),
		mcp.WithString("end", mcp.Description("Window end, RFC3339 or unix seconds. Optional")),
		mcp.WithNumber("page_size", mcp.Description("Number of events per page. Default is 50")),
		mcp.WithString("page_token", mcp.Description("Page token from a previous call")),
	)
}

func UpdateEventTool() mcp.Tool {
	return mcp.NewTool(
		"lark_calendar_update_event",
		mcp.WithDescription("Update the title, times, description or location of an existing calendar event"),
		mcp.WithString("calendar_id", mcp.Required(), mcp.Description("Calendar id")),
		mcp.WithString("event_id", mcp.Required(), mcp.Description("Event id")),
		mcp.WithString("summary", mcp.Required(), mcp.Description("Event title")),
		mcp.WithString("start", mcp.Required(), mcp.Description("Start time, RFC3339 or unix seconds")),
		mcp.WithString("end", mcp.Required(), mcp.Description("End time, RFC3339 or unix seconds")),
		mcp.WithString("description", mcp.Description("Event description")),
		mcp.WithString("location", mcp.Description("Event location name")),
		mcp.WithString("timezone", mcp.Description("IANA timezone for the event times. Default is UTC")),
		mcp.WithString("user_id_type", mcp.Description("Id type for user fields. Default is open_id"), mcp.Enum("open_id", "union_id", "user_id")),
	)
}

func DeleteEventTool() mcp.Tool {
	return mcp.NewTool(
		"lark_calendar_delete_event",
		mcp.WithDescription("Delete a calendar event"),
		mcp.WithString("calendar_id", mcp.Required(), mcp.Description("Calendar id")),
		mcp.WithString("event_id", mcp.Required(), mcp.Description("Event id")),
	)
}

func FreeBusyTool() mcp.Tool {
	return mcp.NewTool(
		"lark_calendar_freebusy",
		mcp.WithDescription("Query busy windows over a time window for a set of users or a single meeting room. "+
			"Users can be passed as a single user_id or a list of user_ids; both are merged. Pass room_id instead to query a room"),
		mcp.WithString("start", mcp.Required(), mcp.Description("Window start, RFC3339 or unix seconds")),
		mcp.WithString("end", mcp.Required(), mcp.Description("Window end, RFC3339 or unix seconds")),
		mcp.WithString("user_id", mcp.Description("Single user id to query")),
		mcp.WithArray("user_ids", mcp.Description("List of user ids to query"), mcp.Items(map[string]interface{}{"type": "string"})),
		mcp.WithString("room_id", mcp.Description("Meeting room id to query instead of users")),
		mcp.WithString("user_id_type", mcp.Description("Id type for user fields. Default is open_id"), mcp.Enum("open_id", "union_id", "user_id")),
	)
}
