package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/larkops/lark-mcp-server/pkg/feishu"
	"github.com/mark3labs/mcp-go/mcp"
)

// Free/busy queries want RFC3339 with a numeric offset.
const freeBusyTimeFormat = "2006-01-02T15:04:05-07:00"

func PrimaryCalendar(client *feishu.Client) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		idType, err := userIDType(request)
		if err != nil {
			return nil, err
		}
		calendarID, err := client.PrimaryCalendar(ctx, idType)
		if err != nil {
			return nil, err
		}
		jsonResponse, err := json.Marshal(map[string]string{"calendar_id": calendarID})
		if err != nil {
			return nil, fmt.Errorf("failed to serialize response: %w", err)
		}
		return mcp.NewToolResultText(string(jsonResponse)), nil
	}
}

func ListCalendars(client *feishu.Client) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		pageSize := request.GetInt("page_size", 50)
		pageToken := request.GetString("page_token", "")
		res, err := client.ListCalendars(ctx, pageSize, pageToken)
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

func eventInputFromRequest(request mcp.CallToolRequest) (feishu.EventInput, error) {
	summary, err := request.RequireString("summary")
	if err != nil {
		return feishu.EventInput{}, err
	}
	start, err := requireTime(request, "start")
	if err != nil {
		return feishu.EventInput{}, err
	}
	end, err := requireTime(request, "end")
	if err != nil {
		return feishu.EventInput{}, err
	}
	if !end.After(start) {
		return feishu.EventInput{}, fmt.Errorf("end must be after start")
	}
	return feishu.EventInput{
		Summary:     summary,
		Description: request.GetString("description", ""),
		Start:       start.Unix(),
		End:         end.Unix(),
		Timezone:    request.GetString("timezone", "UTC"),
		Location:    request.GetString("location", ""),
		NeedNotify:  request.GetBool("notify_attendees", true),
	}, nil
}

func CreateEvent(client *feishu.Client) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		in, err := eventInputFromRequest(request)
		if err != nil {
			return nil, err
		}
		idType, err := userIDType(request)
		if err != nil {
			return nil, err
		}
		attendees := mergeIDList(request, "attendee_id", "attendee_ids")
		res, err := client.CreateEvent(ctx, request.GetString("calendar_id", ""), idType, in, attendees)
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

func GetEvent(client *feishu.Client) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		calendarID, err := request.RequireString("calendar_id")
		if err != nil {
			return nil, err
		}
		eventID, err := request.RequireString("event_id")
		if err != nil {
			return nil, err
		}
		res, err := client.GetEvent(ctx, calendarID, eventID)
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

func ListEvents(client *feishu.Client) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		calendarID, err := request.RequireString("calendar_id")
		if err != nil {
			return nil, err
		}
		start, err := optionalTime(request, "start")
		if err != nil {
			return nil, err
		}
		end, err := optionalTime(request, "end")
		if err != nil {
			return nil, err
		}
		var startSec, endSec int64
		if !start.IsZero() {
			startSec = start.Unix()
		}
		if !end.IsZero() {
			endSec = end.Unix()
		}
		pageSize := request.GetInt("page_size", 50)
		pageToken := request.GetString("page_token", "")
		res, err := client.ListEvents(ctx, calendarID, startSec, endSec, pageSize, pageToken)
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

func UpdateEvent(client *feishu.Client) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		calendarID, err := request.RequireString("calendar_id")
		if err != nil {
			return nil, err
		}
		eventID, err := request.RequireString("event_id")
		if err != nil {
			return nil, err
		}
		in, err := eventInputFromRequest(request)
		if err != nil {
			return nil, err
		}
		idType, err := userIDType(request)
		if err != nil {
			return nil, err
		}
		res, err := client.UpdateEvent(ctx, calendarID, eventID, idType, in)
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

func DeleteEvent(client *feishu.Client) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		calendarID, err := request.RequireString("calendar_id")
		if err != nil {
			return nil, err
		}
		eventID, err := request.RequireString("event_id")
		if err != nil {
			return nil, err
		}
		if err := client.DeleteEvent(ctx, calendarID, eventID); err != nil {
			return nil, err
		}
		jsonResponse, err := json.Marshal(map[string]string{
			"calendar_id": calendarID,
			"event_id":    eventID,
			"status":      "deleted",
		})
		if err != nil {
			return nil, fmt.Errorf("failed to serialize response: %w", err)
		}
		return mcp.NewToolResultText(string(jsonResponse)), nil
	}
}

func FreeBusy(client *feishu.Client) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start, err := requireTime(request, "start")
		if err != nil {
			return nil, err
		}
		end, err := requireTime(request, "end")
		if err != nil {
			return nil, err
		}
		if !end.After(start) {
			return nil, fmt.Errorf("end must be after start")
		}
		if end.Sub(start) > 90*24*time.Hour {
			return nil, fmt.Errorf("freebusy window must not exceed 90 days")
		}
		idType, err := userIDType(request)
		if err != nil {
			return nil, err
		}
		res, err := client.FreeBusy(ctx, feishu.FreeBusyQuery{
			TimeMin:    start.Format(freeBusyTimeFormat),
			TimeMax:    end.Format(freeBusyTimeFormat),
			UserIDs:    mergeIDList(request, "user_id", "user_ids"),
			RoomID:     request.GetString("room_id", ""),
			UserIDType: idType,
		})
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
