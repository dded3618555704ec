package notification

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Prathamesh666/RAB-Matheran-Website/internal/config"
)

// senderAPIChannel delivers email through the Sender transactional API.
type senderAPIChannel struct {
	endpoint  string
	apiKey    string
	fromEmail string
	fromName  string
	client    *http.Client
}

// NewSenderAPIChannel creates the HTTP API delivery channel.
func NewSenderAPIChannel(cfg config.Mail) Channel {
	return &senderAPIChannel{
		endpoint:  cfg.SenderEndpoint,
		apiKey:    cfg.SenderAPIKey,
		fromEmail: cfg.AdminEmail,
		fromName:  cfg.FromName,
		client:    &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *senderAPIChannel) Name() string { return "api" }

// senderAddress identifies a sender or recipient in the API payload.
type senderAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// senderAttachment describes an inline attachment in the API payload.
type senderAttachment struct {
	Content     string `json:"content"`
	Type        string `json:"type"`
	Filename    string `json:"filename"`
	Disposition string `json:"disposition"`
	CID         string `json:"cid"`
}

type senderPayload struct {
	From        senderAddress      `json:"from"`
	To          []senderAddress    `json:"to"`
	Subject     string             `json:"subject"`
	HTML        string             `json:"html"`
	Text        string             `json:"text"`
	Attachments []senderAttachment `json:"attachments,omitempty"`
}

func (c *senderAPIChannel) Deliver(ctx context.Context, to string, msg Message, logo *InlineLogo) error {
	payload := senderPayload{
		From:    senderAddress{Email: c.fromEmail, Name: c.fromName},
		To:      []senderAddress{{Email: to}},
		Subject: msg.Subject,
		HTML:    msg.HTMLBody,
		Text:    msg.PlainBody,
	}
	if logo != nil {
		payload.Attachments = []senderAttachment{{
			Content:     base64.StdEncoding.EncodeToString(logo.Data),
			Type:        LogoMIME,
			Filename:    LogoFilename,
			Disposition: "inline",
			CID:         LogoCID,
		}}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("post to sender API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("sender API returned %d: %s", resp.StatusCode, string(detail))
	}
	return nil
}
