package feishu

import (
	"context"
	"fmt"
	"strconv"

	larkvc "github.com/larksuite/oapi-sdk-go/v3/service/vc/v1"
)

// ReserveInput carries the normalized fields of a meeting reservation.
// EndTime is unix seconds; a zero value lets the platform apply its default.
type ReserveInput struct {
	Topic      string
	EndTime    int64
	AutoRecord bool
	UserIDType string
}

// Reserve applies a meeting reservation and returns the reservation id,
// meeting number and join url.
func (c *Client) Reserve(ctx context.Context, in ReserveInput) (map[string]interface{}, error) {
	settings := larkvc.NewReserveMeetingSettingBuilder().
		Topic(in.Topic).
		AutoRecord(in.AutoRecord).
		Build()
	body := larkvc.NewApplyReserveReqBodyBuilder().
		MeetingSettings(settings)
	if in.EndTime > 0 {
		body.EndTime(strconv.FormatInt(in.EndTime, 10))
	}
	req := larkvc.NewApplyReserveReqBuilder().
		UserIdType(in.UserIDType).
		Body(body.Build()).
		Build()
	resp, err := c.api.Vc.Reserve.Apply(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("reserve request failed: %w", err)
	}
	if !resp.Success() {
		return nil, apiError("reserve", resp.Code, resp.Msg)
	}
	if resp.Data.Reserve == nil {
		return nil, fmt.Errorf("feishu: reserve returned no reservation")
	}
	r := resp.Data.Reserve
	return map[string]interface{}{
		"reserve_id": r.Id,
		"meeting_no": r.MeetingNo,
		"url":        r.Url,
		"end_time":   r.EndTime,
	}, nil
}

// GetReservation fetches a reservation by id.
func (c *Client) GetReservation(ctx context.Context, reserveID, userIDType string) (interface{}, error) {
	req := larkvc.NewGetReserveReqBuilder().
		ReserveId(reserveID).
		UserIdType(userIDType).
		Build()
	resp, err := c.api.Vc.Reserve.Get(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("get reservation request failed: %w", err)
	}
	if !resp.Success() {
		return nil, apiError("get reservation", resp.Code, resp.Msg)
	}
	return resp.Data.Reserve, nil
}

// DeleteReservation releases a reservation.
func (c *Client) DeleteReservation(ctx context.Context, reserveID string) error {
	req := larkvc.NewDeleteReserveReqBuilder().
		ReserveId(reserveID).
		Build()
	resp, err := c.api.Vc.Reserve.Delete(ctx, req)
	if err != nil {
		return fmt.Errorf("delete reservation request failed: %w", err)
	}
	if !resp.Success() {
		return apiError("delete reservation", resp.Code, resp.Msg)
	}
	return nil
}

// ActiveMeeting returns the live meeting of a reservation, optionally with
// the participant list.
func (c *Client) ActiveMeeting(ctx context.Context, reserveID string, withParticipants bool) (interface{}, error) {
	req := larkvc.NewGetActiveMeetingReserveReqBuilder().
		ReserveId(reserveID).
		WithParticipants(withParticipants).
		Build()
	resp, err := c.api.Vc.Reserve.GetActiveMeeting(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("active meeting request failed: %w", err)
	}
	if !resp.Success() {
		return nil, apiError("active meeting", resp.Code, resp.Msg)
	}
	return resp.Data.Meeting, nil
}

// ListMeetings returns one page of past meetings held under a meeting number
// inside a unix-second window.
func (c *Client) ListMeetings(ctx context.Context, meetingNo string, start, end int64, pageSize int, pageToken string) (map[string]interface{}, error) {
	builder := larkvc.NewListByNoMeetingReqBuilder().
		MeetingNo(meetingNo).
		StartTime(strconv.FormatInt(start, 10)).
		EndTime(strconv.FormatInt(end, 10))
	if pageSize > 0 {
		builder.PageSize(pageSize)
	}
	if pageToken != "" {
		builder.PageToken(pageToken)
	}
	resp, err := c.api.Vc.Meeting.ListByNo(ctx, builder.Build())
	if err != nil {
		return nil, fmt.Errorf("list meetings request failed: %w", err)
	}
	if !resp.Success() {
		return nil, apiError("list meetings", resp.Code, resp.Msg)
	}
	return map[string]interface{}{
		"meeting_no": meetingNo,
		"meetings":   resp.Data.MeetingBriefs,
		"page_token": resp.Data.PageToken,
		"has_more":   resp.Data.HasMore,
	}, nil
}
