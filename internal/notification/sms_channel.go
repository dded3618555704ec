package notification

import (
	"context"

	"github.com/Prathamesh666/RAB-Matheran-Website/internal/config"
	"github.com/Prathamesh666/RAB-Matheran-Website/internal/errs"
	"github.com/Prathamesh666/RAB-Matheran-Website/pkg/logger"
)

// SMSPayload contains the minimal information required to send an SMS.
type SMSPayload struct {
	Phone   string
	Message string
}

// SMSChannel abstracts SMS delivery providers.
type SMSChannel interface {
	SendSMS(ctx context.Context, payload SMSPayload) (string, error)
}

type noopSMSChannel struct{}

// NewSMSChannel returns an SMS channel implementation based on the
// configured provider. Supported providers: "kavenegar" (defaults to
// noop when not configured or the provider is not supported).
func NewSMSChannel(cfg config.SMS, log *logger.Logger) SMSChannel {
	switch cfg.Provider {
	case "kavenegar":
		if cfg.APIKey == "" {
			log.Warn("SMS provider is 'kavenegar' but no API key is set, using noop channel")
			return &noopSMSChannel{}
		}
		return NewKavenegarSMSChannel(cfg.APIKey, cfg.Sender)
	case "":
		return &noopSMSChannel{}
	default:
		log.WithField("provider", cfg.Provider).Warn("unknown SMS provider, using noop channel")
		return &noopSMSChannel{}
	}
}

func (c *noopSMSChannel) SendSMS(ctx context.Context, payload SMSPayload) (string, error) {
	return "", errs.ErrNotImplemented
}
