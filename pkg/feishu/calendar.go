package feishu

import (
	"context"
	"fmt"
	"strconv"

	larkcalendar "github.com/larksuite/oapi-sdk-go/v3/service/calendar/v4"
)

// PrimaryCalendar resolves the primary calendar of the calling identity and
// returns its calendar id.
func (c *Client) PrimaryCalendar(ctx context.Context, userIDType string) (string, error) {
	req := larkcalendar.NewPrimaryCalendarReqBuilder().
		UserIdType(userIDType).
		Build()
	resp, err := c.api.Calendar.Calendar.Primary(ctx, req)
	if err != nil {
		return "", fmt.Errorf("primary calendar request failed: %w", err)
	}
	if !resp.Success() {
		return "", apiError("primary calendar", resp.Code, resp.Msg)
	}
	for _, uc := range resp.Data.Calendars {
		if uc.Calendar != nil && uc.Calendar.CalendarId != nil {
			return *uc.Calendar.CalendarId, nil
		}
	}
	return "", fmt.Errorf("feishu: primary calendar not found for app %s", c.appID)
}

// ListCalendars returns one page of calendars visible to the app.
func (c *Client) ListCalendars(ctx context.Context, pageSize int, pageToken string) (map[string]interface{}, error) {
	builder := larkcalendar.NewListCalendarReqBuilder()
	if pageSize > 0 {
		builder.PageSize(pageSize)
	}
	if pageToken != "" {
		builder.PageToken(pageToken)
	}
	resp, err := c.api.Calendar.Calendar.List(ctx, builder.Build())
	if err != nil {
		return nil, fmt.Errorf("list calendars request failed: %w", err)
	}
	if !resp.Success() {
		return nil, apiError("list calendars", resp.Code, resp.Msg)
	}
	return map[string]interface{}{
		"calendars":  resp.Data.CalendarList,
		"page_token": resp.Data.PageToken,
		"has_more":   resp.Data.HasMore,
	}, nil
}

// EventInput carries the normalized fields of a calendar event write.
// Start/End are unix seconds; Timezone follows IANA names.
type EventInput struct {
	Summary     string
	Description string
	Start       int64
	End         int64
	Timezone    string
	Location    string
	NeedNotify  bool
}

func buildEvent(in EventInput) *larkcalendar.CalendarEvent {
	builder := larkcalendar.NewCalendarEventBuilder().
		Summary(in.Summary).
		StartTime(larkcalendar.NewTimeInfoBuilder().
			Timestamp(strconv.FormatInt(in.Start, 10)).
			Timezone(in.Timezone).
			Build()).
		EndTime(larkcalendar.NewTimeInfoBuilder().
			Timestamp(strconv.FormatInt(in.End, 10)).
			Timezone(in.Timezone).
			Build())
	if in.Description != "" {
		builder.Description(in.Description)
	}
	if in.Location != "" {
		builder.Location(larkcalendar.NewEventLocationBuilder().Name(in.Location).Build())
	}
	return builder.Build()
}

// CreateEvent creates an event on calendarID (resolving the primary calendar
// when empty) and, when attendees are given, attaches them with a second
// sequential call.
func (c *Client) CreateEvent(ctx context.Context, calendarID, userIDType string, in EventInput, attendees []string) (map[string]interface{}, error) {
	var err error
	if calendarID == "" {
		calendarID, err = c.PrimaryCalendar(ctx, userIDType)
		if err != nil {
			return nil, err
		}
	}

	req := larkcalendar.NewCreateCalendarEventReqBuilder().
		CalendarId(calendarID).
		UserIdType(userIDType).
		CalendarEvent(buildEvent(in)).
		Build()
	resp, err := c.api.Calendar.CalendarEvent.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create event request failed: %w", err)
	}
	if !resp.Success() {
		return nil, apiError("create event", resp.Code, resp.Msg)
	}
	if resp.Data.Event == nil || resp.Data.Event.EventId == nil {
		return nil, fmt.Errorf("feishu: create event returned no event id")
	}
	eventID := *resp.Data.Event.EventId

	result := map[string]interface{}{
		"calendar_id": calendarID,
		"event_id":    eventID,
		"event":       resp.Data.Event,
	}
	if len(attendees) > 0 {
		invalid, err := c.AddAttendees(ctx, calendarID, eventID, userIDType, attendees, in.NeedNotify)
		if err != nil {
			return nil, err
		}
		result["attendees_added"] = len(attendees) - len(invalid)
		if len(invalid) > 0 {
			result["invalid_attendees"] = invalid
		}
	}
	return result, nil
}

// AddAttendees attaches user attendees to an existing event and returns the
// ids the platform rejected.
func (c *Client) AddAttendees(ctx context.Context, calendarID, eventID, userIDType string, userIDs []string, notify bool) ([]string, error) {
	list := make([]*larkcalendar.CalendarEventAttendee, 0, len(userIDs))
	for _, id := range userIDs {
		list = append(list, larkcalendar.NewCalendarEventAttendeeBuilder().
			Type("user").
			UserId(id).
			Build())
	}
	req := larkcalendar.NewCreateCalendarEventAttendeeReqBuilder().
		CalendarId(calendarID).
		EventId(eventID).
		UserIdType(userIDType).
		Body(larkcalendar.NewCreateCalendarEventAttendeeReqBodyBuilder().
			Attendees(list).
			NeedNotification(notify).
			Build()).
		Build()
	resp, err := c.api.Calendar.CalendarEventAttendee.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("add attendees request failed: %w", err)
	}
	if !resp.Success() {
		return nil, apiError("add attendees", resp.Code, resp.Msg)
	}

	// The platform silently drops unresolvable ids; report the difference.
	accepted := make(map[string]bool, len(resp.Data.Attendees))
	for _, a := range resp.Data.Attendees {
		if a.UserId != nil {
			accepted[*a.UserId] = true
		}
	}
	var invalid []string
	for _, id := range userIDs {
		if !accepted[id] {
			invalid = append(invalid, id)
		}
	}
	return invalid, nil
}

// GetEvent fetches a single event.
func (c *Client) GetEvent(ctx context.Context, calendarID, eventID string) (interface{}, error) {
	req := larkcalendar.NewGetCalendarEventReqBuilder().
		CalendarId(calendarID).
		EventId(eventID).
		Build()
	resp, err := c.api.Calendar.CalendarEvent.Get(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("get event request failed: %w", err)
	}
	if !resp.Success() {
		return nil, apiError("get event", resp.Code, resp.Msg)
	}
	return resp.Data.Event, nil
}

// ListEvents returns one page of events on a calendar, optionally bounded by
// a unix-second window.
func (c *Client) ListEvents(ctx context.Context, calendarID string, start, end int64, pageSize int, pageToken string) (map[string]interface{}, error) {
	builder := larkcalendar.NewListCalendarEventReqBuilder().
		CalendarId(calendarID)
	if start > 0 {
		builder.StartTime(strconv.FormatInt(start, 10))
	}
	if end > 0 {
		builder.EndTime(strconv.FormatInt(end, 10))
	}
	if pageSize > 0 {
		builder.PageSize(pageSize)
	}
	if pageToken != "" {
		builder.PageToken(pageToken)
	}
	resp, err := c.api.Calendar.CalendarEvent.List(ctx, builder.Build())
	if err != nil {
		return nil, fmt.Errorf("list events request failed: %w", err)
	}
	if !resp.Success() {
		return nil, apiError("list events", resp.Code, resp.Msg)
	}
	return map[string]interface{}{
		"calendar_id": calendarID,
		"events":      resp.Data.Items,
		"page_token":  resp.Data.PageToken,
		"has_more":    resp.Data.HasMore,
	}, nil
}

// UpdateEvent patches the provided fields of an existing event.
func (c *Client) UpdateEvent(ctx context.Context, calendarID, eventID, userIDType string, in EventInput) (interface{}, error) {
	req := larkcalendar.NewPatchCalendarEventReqBuilder().
		CalendarId(calendarID).
		EventId(eventID).
		UserIdType(userIDType).
		CalendarEvent(buildEvent(in)).
		Build()
	resp, err := c.api.Calendar.CalendarEvent.Patch(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("update event request failed: %w", err)
	}
	if !resp.Success() {
		return nil, apiError("update event", resp.Code, resp.Msg)
	}
	return resp.Data.Event, nil
}

// DeleteEvent removes an event from a calendar.
func (c *Client) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	req := larkcalendar.NewDeleteCalendarEventReqBuilder().
		CalendarId(calendarID).
		EventId(eventID).
		Build()
	resp, err := c.api.Calendar.CalendarEvent.Delete(ctx, req)
	if err != nil {
		return fmt.Errorf("delete event request failed: %w", err)
	}
	if !resp.Success() {
		return apiError("delete event", resp.Code, resp.Msg)
	}
	return nil
}

// FreeBusyQuery is a normalized availability lookup. Exactly one of UserIDs
// or RoomID must be set; times are RFC3339 with offset as the platform
// requires.
type FreeBusyQuery struct {
	TimeMin    string
	TimeMax    string
	UserIDs    []string
	RoomID     string
	UserIDType string
}

// FreeBusy runs the availability lookup. The remote method accepts a single
// user or room per call, so a multi-user query issues one sequential call per
// id and aggregates the busy windows keyed by id.
func (c *Client) FreeBusy(ctx context.Context, q FreeBusyQuery) (map[string]interface{}, error) {
	if q.RoomID != "" && len(q.UserIDs) > 0 {
		return nil, fmt.Errorf("feishu: freebusy accepts users or a room, not both")
	}
	if q.RoomID == "" && len(q.UserIDs) == 0 {
		return nil, fmt.Errorf("feishu: freebusy needs at least one user id or a room id")
	}

	busy := make(map[string]interface{})
	if q.RoomID != "" {
		windows, err := c.freeBusyOne(ctx, q, "", q.RoomID)
		if err != nil {
			return nil, err
		}
		busy[q.RoomID] = windows
	} else {
		for _, uid := range q.UserIDs {
			windows, err := c.freeBusyOne(ctx, q, uid, "")
			if err != nil {
				return nil, fmt.Errorf("freebusy for %s: %w", uid, err)
			}
			busy[uid] = windows
		}
	}
	return map[string]interface{}{
		"time_min": q.TimeMin,
		"time_max": q.TimeMax,
		"busy":     busy,
	}, nil
}

func (c *Client) freeBusyOne(ctx context.Context, q FreeBusyQuery, userID, roomID string) ([]*larkcalendar.Freebusy, error) {
	body := larkcalendar.NewListFreebusyReqBodyBuilder().
		TimeMin(q.TimeMin).
		TimeMax(q.TimeMax)
	if userID != "" {
		body.UserId(userID)
	}
	if roomID != "" {
		body.RoomId(roomID)
	}
	req := larkcalendar.NewListFreebusyReqBuilder().
		UserIdType(q.UserIDType).
		Body(body.Build()).
		Build()
	resp, err := c.api.Calendar.Freebusy.List(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("freebusy request failed: %w", err)
	}
	if !resp.Success() {
		return nil, apiError("freebusy", resp.Code, resp.Msg)
	}
	return resp.Data.FreebusyList, nil
}
