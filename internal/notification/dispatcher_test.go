package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prathamesh666/RAB-Matheran-Website/internal/config"
	"github.com/Prathamesh666/RAB-Matheran-Website/internal/errs"
	"github.com/Prathamesh666/RAB-Matheran-Website/pkg/logger"
)

// fakeChannel records deliveries and returns a configurable error.
type fakeChannel struct {
	name      string
	err       error
	delivered []fakeDelivery
}

type fakeDelivery struct {
	to  string
	msg Message
}

func (c *fakeChannel) Name() string { return c.name }

func (c *fakeChannel) Deliver(ctx context.Context, to string, msg Message, logo *InlineLogo) error {
	c.delivered = append(c.delivered, fakeDelivery{to: to, msg: msg})
	return c.err
}

func newTestDispatcher(t *testing.T, apiKey string, api, smtp Channel) *Dispatcher {
	t.Helper()
	cfg := config.Mail{
		SenderAPIKey: apiKey,
		AdminEmail:   "admin@example.com",
		LogoPath:     "testdata/does-not-exist.png",
	}
	return NewDispatcherWithChannels(cfg, api, smtp, testReplyURL, logger.NewLogger("test"), nil)
}

func TestDispatcher_UsesAPIChannelWhenKeySet(t *testing.T) {
	api := &fakeChannel{name: "api"}
	smtp := &fakeChannel{name: "smtp"}
	d := newTestDispatcher(t, "secret-key", api, smtp)

	out, err := d.Send(context.Background(), NewCustomerAlert(testBooking()))
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.Equal(t, "api", out.Channel)
	assert.Len(t, api.delivered, 1)
	assert.Empty(t, smtp.delivered)
}

func TestDispatcher_FallsBackToSMTPWithoutKey(t *testing.T) {
	api := &fakeChannel{name: "api"}
	smtp := &fakeChannel{name: "smtp"}
	d := newTestDispatcher(t, "", api, smtp)

	out, err := d.Send(context.Background(), NewCustomerAlert(testBooking()))
	require.NoError(t, err)

	assert.Equal(t, "smtp", out.Channel)
	assert.Len(t, smtp.delivered, 1)
	assert.Empty(t, api.delivered)
}

func TestDispatcher_DeliveryFailureIsContained(t *testing.T) {
	smtp := &fakeChannel{name: "smtp", err: errors.New("connection refused")}
	d := newTestDispatcher(t, "", &fakeChannel{name: "api"}, smtp)

	out, err := d.Send(context.Background(), NewCustomerAlert(testBooking()))
	require.NoError(t, err)

	assert.False(t, out.Success)
	assert.Contains(t, out.Detail, "connection refused")
}

func TestDispatcher_NoFallbackOnAPIFailure(t *testing.T) {
	api := &fakeChannel{name: "api", err: errors.New("rate limited")}
	smtp := &fakeChannel{name: "smtp"}
	d := newTestDispatcher(t, "secret-key", api, smtp)

	out, err := d.Send(context.Background(), NewCustomerAlert(testBooking()))
	require.NoError(t, err)

	assert.False(t, out.Success)
	assert.Equal(t, "api", out.Channel)
	assert.Empty(t, smtp.delivered)
}

func TestDispatcher_UnknownKindError(t *testing.T) {
	d := newTestDispatcher(t, "", &fakeChannel{name: "api"}, &fakeChannel{name: "smtp"})

	_, err := d.Send(context.Background(), Request{Kind: Kind("bogus")})
	assert.ErrorIs(t, err, errs.ErrUnknownNotificationKind)
}

func TestDispatcher_RecipientPrecedence(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want string
	}{
		{
			name: "explicit To wins",
			req: func() Request {
				r := NewCustomerAlert(testBooking())
				r.To = "override@example.com"
				return r
			}(),
			want: "override@example.com",
		},
		{
			name: "guest email from field record",
			req:  NewCustomerAlert(testBooking()),
			want: "asha@example.com",
		},
		{
			name: "admin email as last resort",
			req:  NewAdminAlert(BookingFields{BookingID: "bk-1", Name: "Asha"}),
			want: "admin@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			smtp := &fakeChannel{name: "smtp"}
			d := newTestDispatcher(t, "", &fakeChannel{name: "api"}, smtp)

			_, err := d.Send(context.Background(), tt.req)
			require.NoError(t, err)
			require.Len(t, smtp.delivered, 1)
			assert.Equal(t, tt.want, smtp.delivered[0].to)
		})
	}
}

func TestDispatcher_SendMessage(t *testing.T) {
	smtp := &fakeChannel{name: "smtp"}
	d := newTestDispatcher(t, "", &fakeChannel{name: "api"}, smtp)

	msg := ComposeHTMLReply("Location Details", "<p>near the market</p>")
	out := d.SendMessage(context.Background(), "guest@example.com", msg)

	assert.True(t, out.Success)
	require.Len(t, smtp.delivered, 1)
	assert.Equal(t, "guest@example.com", smtp.delivered[0].to)
	assert.Equal(t, "Location Details", smtp.delivered[0].msg.Subject)
}

func TestDispatcher_SendMessageEmptyRecipientUsesAdmin(t *testing.T) {
	smtp := &fakeChannel{name: "smtp"}
	d := newTestDispatcher(t, "", &fakeChannel{name: "api"}, smtp)

	d.SendMessage(context.Background(), "", Message{Subject: "s", PlainBody: "p", HTMLBody: "h"})

	require.Len(t, smtp.delivered, 1)
	assert.Equal(t, "admin@example.com", smtp.delivered[0].to)
}
