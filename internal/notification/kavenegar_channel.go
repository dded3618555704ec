package notification

import (
	"context"
	"fmt"

	"github.com/kavenegar/kavenegar-go"
)

type kavenegarSMSChannel struct {
	api    *kavenegar.Kavenegar
	sender string
}

// NewKavenegarSMSChannel creates a Kavenegar-backed SMS channel.
func NewKavenegarSMSChannel(apiKey, sender string) SMSChannel {
	return &kavenegarSMSChannel{
		api:    kavenegar.New(apiKey),
		sender: sender,
	}
}

func (c *kavenegarSMSChannel) SendSMS(ctx context.Context, payload SMSPayload) (string, error) {
	if payload.Phone == "" {
		return "", fmt.Errorf("phone number is required")
	}
	if payload.Message == "" {
		return "", fmt.Errorf("message is required")
	}

	res, err := c.api.Message.Send(c.sender, []string{payload.Phone}, payload.Message, nil)
	if err != nil {
		switch err := err.(type) {
		case *kavenegar.APIError:
			return "", fmt.Errorf("kavenegar API error: %w", err)
		case *kavenegar.HTTPError:
			return "", fmt.Errorf("kavenegar HTTP error: %w", err)
		default:
			return "", fmt.Errorf("failed to send SMS: %w", err)
		}
	}

	if len(res) == 0 {
		return "", fmt.Errorf("no response entries from Kavenegar")
	}
	return fmt.Sprintf("%d", res[0].MessageID), nil
}
