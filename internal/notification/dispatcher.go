package notification

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Prathamesh666/RAB-Matheran-Website/internal/config"
	"github.com/Prathamesh666/RAB-Matheran-Website/pkg/logger"
	"github.com/Prathamesh666/RAB-Matheran-Website/pkg/metrics"
)

// Channel delivers a rendered message to a single recipient.
type Channel interface {
	// Name identifies the transport ("api" or "smtp") in outcomes and logs.
	Name() string
	Deliver(ctx context.Context, to string, msg Message, logo *InlineLogo) error
}

// Outcome reports how a delivery attempt went. It is used only for
// logging and metrics, never persisted.
type Outcome struct {
	Channel string
	Success bool
	Detail  string
}

// Dispatcher resolves, embeds and delivers notifications. Delivery
// failures are contained: business operations that trigger a notification
// never fail because the email could not be sent.
type Dispatcher struct {
	api        Channel
	smtp       Channel
	apiKey     string
	adminEmail string
	logoPath   string
	replyURL   ReplyURLBuilder
	log        *logger.Logger
	metrics    *metrics.Metrics
}

// NewDispatcher creates a dispatcher with the real Sender API and SMTP
// channels built from cfg.
func NewDispatcher(cfg config.Mail, replyURL ReplyURLBuilder, log *logger.Logger, m *metrics.Metrics) *Dispatcher {
	return NewDispatcherWithChannels(cfg, NewSenderAPIChannel(cfg), NewSMTPChannel(cfg), replyURL, log, m)
}

// NewDispatcherWithChannels wires explicit channels; tests inject fakes here.
func NewDispatcherWithChannels(cfg config.Mail, api, smtp Channel, replyURL ReplyURLBuilder, log *logger.Logger, m *metrics.Metrics) *Dispatcher {
	return &Dispatcher{
		api:        api,
		smtp:       smtp,
		apiKey:     cfg.SenderAPIKey,
		adminEmail: cfg.AdminEmail,
		logoPath:   cfg.LogoPath,
		replyURL:   replyURL,
		log:        log,
		metrics:    m,
	}
}

// Send resolves the request and delivers it through exactly one channel.
// The returned error is non-nil only for an unknown notification kind,
// which is a programmer error; delivery failures are reported through the
// outcome and a log line.
func (d *Dispatcher) Send(ctx context.Context, req Request) (Outcome, error) {
	msg, err := Resolve(req, d.replyURL)
	if err != nil {
		return Outcome{}, err
	}

	to := req.To
	if to == "" {
		to = req.GuestEmail()
	}
	if to == "" {
		to = d.adminEmail
	}

	return d.deliver(ctx, string(req.Kind), to, msg), nil
}

// SendMessage delivers an already rendered message, used for the admin
// quick replies where the administrator edits subject and body directly.
func (d *Dispatcher) SendMessage(ctx context.Context, to string, msg Message) Outcome {
	if to == "" {
		to = d.adminEmail
	}
	return d.deliver(ctx, "admin_reply", to, msg)
}

func (d *Dispatcher) deliver(ctx context.Context, kind, to string, msg Message) Outcome {
	// Channel selection is a one-shot choice per call; there is no
	// fallback from the API channel to SMTP on failure.
	ch := d.smtp
	if d.apiKey != "" {
		ch = d.api
	}

	logo, err := LoadLogo(d.logoPath)
	if err != nil {
		// Missing logo downgrades to no inline image.
		logo = nil
		d.log.WithField("kind", kind).Debug("logo unavailable, sending without inline image")
	}

	out := Outcome{Channel: ch.Name()}
	if err := ch.Deliver(ctx, to, msg, logo); err != nil {
		out.Detail = err.Error()
		d.log.WithFields(logrus.Fields{
			"kind":    kind,
			"channel": ch.Name(),
			"error":   err.Error(),
		}).Error("notification delivery failed")
	} else {
		out.Success = true
		out.Detail = "sent"
		d.log.WithFields(logrus.Fields{
			"kind":    kind,
			"channel": ch.Name(),
		}).Info("notification sent")
	}

	if d.metrics != nil {
		d.metrics.RecordNotification(kind, ch.Name(), out.Success)
	}
	return out
}
