package feishu

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	larkim "github.com/larksuite/oapi-sdk-go/v3/service/im/v1"
)

// MessageInput carries a normalized outbound message. Content is the
// platform's JSON content document; plain text is wrapped by the caller.
type MessageInput struct {
	ReceiveID     string
	ReceiveIDType string
	MsgType       string
	Content       string
}

// TextContent wraps plain text into the platform's message content document.
func TextContent(text string) (string, error) {
	b, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return "", fmt.Errorf("encode text content: %w", err)
	}
	return string(b), nil
}

// SendMessage delivers a message to a user or chat. A fresh uuid is attached
// so the platform deduplicates retried deliveries.
func (c *Client) SendMessage(ctx context.Context, in MessageInput) (interface{}, error) {
	req := larkim.NewCreateMessageReqBuilder().
		ReceiveIdType(in.ReceiveIDType).
		Body(larkim.NewCreateMessageReqBodyBuilder().
			ReceiveId(in.ReceiveID).
			MsgType(in.MsgType).
			Content(in.Content).
			Uuid(uuid.NewString()).
			Build()).
		Build()
	resp, err := c.api.Im.Message.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("send message request failed: %w", err)
	}
	if !resp.Success() {
		return nil, apiError("send message", resp.Code, resp.Msg)
	}
	return resp.Data, nil
}

// Urgent escalation channels. Each maps to a distinct remote method; the
// platform charges sms and phone escalations.
const (
	UrgentChannelApp   = "app"
	UrgentChannelSms   = "sms"
	UrgentChannelPhone = "phone"
)

// Urgent escalates delivery of a previously sent message to the given
// receivers over one channel. It returns the receiver ids the platform could
// not escalate to.
func (c *Client) Urgent(ctx context.Context, channel, messageID, userIDType string, userIDs []string) ([]string, error) {
	receivers := larkim.NewUrgentReceiversBuilder().
		UserIdList(userIDs).
		Build()

	var invalid []string
	switch channel {
	case UrgentChannelApp:
		req := larkim.NewUrgentAppMessageReqBuilder().
			MessageId(messageID).
			UserIdType(userIDType).
			UrgentReceivers(receivers).
			Build()
		resp, err := c.api.Im.Message.UrgentApp(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("urgent app request failed: %w", err)
		}
		if !resp.Success() {
			return nil, apiError("urgent app", resp.Code, resp.Msg)
		}
		invalid = resp.Data.InvalidUserIdList
	case UrgentChannelSms:
		req := larkim.NewUrgentSmsMessageReqBuilder().
			MessageId(messageID).
			UserIdType(userIDType).
			UrgentReceivers(receivers).
			Build()
		resp, err := c.api.Im.Message.UrgentSms(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("urgent sms request failed: %w", err)
		}
		if !resp.Success() {
			return nil, apiError("urgent sms", resp.Code, resp.Msg)
		}
		invalid = resp.Data.InvalidUserIdList
	case UrgentChannelPhone:
		req := larkim.NewUrgentPhoneMessageReqBuilder().
			MessageId(messageID).
			UserIdType(userIDType).
			UrgentReceivers(receivers).
			Build()
		resp, err := c.api.Im.Message.UrgentPhone(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("urgent phone request failed: %w", err)
		}
		if !resp.Success() {
			return nil, apiError("urgent phone", resp.Code, resp.Msg)
		}
		invalid = resp.Data.InvalidUserIdList
	default:
		return nil, fmt.Errorf("feishu: unknown urgent channel %q", channel)
	}
	return invalid, nil
}
