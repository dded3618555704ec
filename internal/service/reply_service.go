package service

import (
	"context"
	"fmt"

	"github.com/Prathamesh666/RAB-Matheran-Website/internal/errs"
	"github.com/Prathamesh666/RAB-Matheran-Website/internal/notification"
)

// ReplyType selects one of the canned admin reply drafts.
type ReplyType string

const (
	ReplyBooking  ReplyType = "booking"
	ReplyFeedback ReplyType = "feedback"
	ReplyLocation ReplyType = "location"
)

// ReplyDraft is a prefilled reply the administrator can edit before sending.
type ReplyDraft struct {
	Subject  string
	BodyHTML string
}

var replyDrafts = map[ReplyType]ReplyDraft{
	ReplyBooking: {
		Subject: "Booking Response",
		BodyHTML: `<div class="card">
    <div class="logo">
    <img src="cid:RAG_Logo" alt="Ranchoddas Arogya Bhavan Logo" />
    </div>
<h2>Thank you for your booking inquiry</h2>
<p>   --Amin_Response_Space_Paragraph--   </p>
<p>We appreciate your interest in Shri Ranchoddas Arogya Bhavan.</p>
<p>&#128205; Location: Before Union Bank &amp; Local Market, Matheran Hill Station<br>
    &#127760; Website: <a href="https://www.ranchoddasbhavan.com">www.ranchoddasbhavan.com</a></p>
</div>`,
	},
	ReplyFeedback: {
		Subject: "Feedback Response",
		BodyHTML: `<div class="card">
    <div class="logo">
    <img src="cid:RAG_Logo" alt="Ranchoddas Arogya Bhavan Logo" />
    </div>
<h2>Thank you for your feedback</h2>
<p>   --Amin_Response_Space_Paragraph--   </p>
<p>Your thoughts help us improve our hospitality.</p>
<p>&#128205; Location: Before Union Bank &amp; Local Market, Matheran Hill Station<br>
    &#127760; Website: <a href="https://www.ranchoddasbhavan.com">www.ranchoddasbhavan.com</a></p>
</div>`,
	},
	ReplyLocation: {
		Subject: "Location Details",
		BodyHTML: `<div class="card">
    <div class="logo">
    <img src="cid:RAG_Logo" alt="Ranchoddas Arogya Bhavan Logo" />
    </div>
<h2>Our Location</h2>
<p>   --Amin_Response_Space_Paragraph--   </p>
<p>&#128205; Location: Before Union Bank &amp; Local Market, Matheran Hill Station</p>
<p>&#128205; <a href="https://goo.gl/maps/xyz123">View on Google Maps</a><br>
    &#127760; Website: <a href="https://www.ranchoddasbhavan.com">www.ranchoddasbhavan.com</a></p>
</div>`,
	},
}

// ReplyService prepares and sends the admin quick replies reachable from
// the contact form alert email.
type ReplyService interface {
	Draft(replyType ReplyType) (ReplyDraft, error)
	Send(ctx context.Context, replyType ReplyType, guestEmail, subject, bodyHTML string) (notification.Outcome, error)
}

type replyService struct {
	notifier Notifier
}

// NewReplyService creates a reply service implementation.
func NewReplyService(notifier Notifier) ReplyService {
	return &replyService{notifier: notifier}
}

// Draft returns the prefilled reply for the given type.
func (s *replyService) Draft(replyType ReplyType) (ReplyDraft, error) {
	draft, ok := replyDrafts[replyType]
	if !ok {
		return ReplyDraft{}, fmt.Errorf("%w: %q", errs.ErrInvalidReplyType, replyType)
	}
	return draft, nil
}

// Send delivers the admin-edited reply to the guest. The subject and body
// may differ from the draft; only the reply type is validated.
func (s *replyService) Send(ctx context.Context, replyType ReplyType, guestEmail, subject, bodyHTML string) (notification.Outcome, error) {
	if _, ok := replyDrafts[replyType]; !ok {
		return notification.Outcome{}, fmt.Errorf("%w: %q", errs.ErrInvalidReplyType, replyType)
	}
	msg := notification.ComposeHTMLReply(subject, bodyHTML)
	return s.notifier.SendMessage(ctx, guestEmail, msg), nil
}
