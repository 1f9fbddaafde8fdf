package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/larkops/lark-mcp-server/pkg/feishu"
	"github.com/mark3labs/mcp-go/mcp"
)

func ReserveMeeting(client *feishu.Client) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		topic, err := request.RequireString("topic")
		if err != nil {
			return nil, err
		}
		end, err := optionalTime(request, "end_time")
		if err != nil {
			return nil, err
		}
		idType, err := userIDType(request)
		if err != nil {
			return nil, err
		}
		in := feishu.ReserveInput{
			Topic:      topic,
			AutoRecord: request.GetBool("auto_record", false),
			UserIDType: idType,
		}
		if !end.IsZero() {
			in.EndTime = end.Unix()
		}
		res, err := client.Reserve(ctx, in)
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

func GetReservation(client *feishu.Client) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		reserveID, err := request.RequireString("reserve_id")
		if err != nil {
			return nil, err
		}
		idType, err := userIDType(request)
		if err != nil {
			return nil, err
		}
		res, err := client.GetReservation(ctx, reserveID, idType)
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

func DeleteReservation(client *feishu.Client) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		reserveID, err := request.RequireString("reserve_id")
		if err != nil {
			return nil, err
		}
		if err := client.DeleteReservation(ctx, reserveID); err != nil {
			return nil, err
		}
		jsonResponse, err := json.Marshal(map[string]string{
			"reserve_id": reserveID,
			"status":     "deleted",
		})
		if err != nil {
			return nil, fmt.Errorf("failed to serialize response: %w", err)
		}
		return mcp.NewToolResultText(string(jsonResponse)), nil
	}
}

func ActiveMeeting(client *feishu.Client) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		reserveID, err := request.RequireString("reserve_id")
		if err != nil {
			return nil, err
		}
		res, err := client.ActiveMeeting(ctx, reserveID, request.GetBool("with_participants", false))
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

func ListMeetings(client *feishu.Client) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		meetingNo, err := request.RequireString("meeting_no")
		if err != nil {
			return nil, err
		}
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
		pageSize := request.GetInt("page_size", 20)
		pageToken := request.GetString("page_token", "")
		res, err := client.ListMeetings(ctx, meetingNo, start.Unix(), end.Unix(), pageSize, pageToken)
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
