package notification

import (
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"github.com/Prathamesh666/RAB-Matheran-Website/internal/errs"
)

// Message is a fully rendered notification. PlainBody and HTMLBody carry
// the same information; the HTML is the styled variant.
type Message struct {
	Subject   string
	PlainBody string
	HTMLBody  string
}

// ReplyURLBuilder produces an absolute reply-action URL for the quick-reply
// buttons in the contact form alert. replyType is one of "booking",
// "feedback" or "location".
type ReplyURLBuilder func(replyType, guestEmail string) string

const guestHouseName = "Shri Ranchoddas Hindu Arogya Bhavan"

// styleHead is the shared <head> block of every HTML body.
const styleHead = `<head>
<style>
    body { font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px; color: #333; }
    .card { background: #fff; border-radius: 8px; padding: 20px; box-shadow: 0 2px 6px rgba(0,0,0,0.1); }
    .logo { text-align: center; margin-bottom: 20px; }
    .logo img { max-width: 180px; height: auto; border-radius: 8px; }
    h2 { color: #0b8a61; }
    .btn { display: inline-block; margin: 8px 4px; padding: 10px 16px; border-radius: 6px; text-decoration: none; font-weight: bold; color: #fff; }
    .btn-booking { background-color: #0b8a61; }
    .btn-feedback { background-color: #007bff; }
    .btn-location { background-color: #6c757d; }
</style>
</head>`

// logoBlock references the inline logo by content id; the dispatcher
// attaches the bytes under the same cid.
const logoBlock = `<div class="logo">
<img src="cid:RAG_Logo" alt="Ranchoddas Arogya Bhavan Logo" />
</div>`

var plainTemplates = map[Kind]*texttemplate.Template{
	KindAdminAlert: mustPlain("admin_alert",
		"Dear Admin, you have a new booking that has been created.\n\n"+
			"Booking ID: {{.BookingID}}\nName: {{.Name}}\nPhone: {{.Phone}}\nEmail: {{.Email}}\n"+
			"Check-in: {{.CheckIn}} to Check-out: {{.CheckOut}}\nGuests: {{.Guests}}\nNote: {{.Note}}\n\n"+
			"Please check the bookings list on the website to update the status."),
	KindCustomerAlert: mustPlain("customer_alert",
		"Dear {{.Name}},\n\nYour booking (ID: {{.BookingID}}) is generated in the system and is currently pending acceptance "+
			"for {{.CheckIn}} to {{.CheckOut}}.\n\nKindly wait for further confirmation mail.\n\n"+
			"Thanks for your cooperation.\n\nRegards,\n"+guestHouseName+"\nMatheran Hill Station"),
	KindGuestConfirmation: mustPlain("guest_confirmation",
		"Dear {{.Name}},\n\nYour booking (ID: {{.BookingID}}) has been accepted "+
			"for Check-In: {{.CheckIn}} to Check-Out: {{.CheckOut}}.\n\n"+
			"We hope you find our Guest House comfortable and pleasant.\n\n"+
			"Regards,\n"+guestHouseName+"\nMatheran Hill Station"),
	KindBookingAcceptance: mustPlain("booking_acceptance",
		"Dear {{.Name}},\n\nYour booking (ID: {{.BookingID}}) has been accepted for {{.CheckIn}} to {{.CheckOut}}.\n"+
			"We look forward to hosting you!"),
	KindBookingRejection: mustPlain("booking_rejection",
		"Dear {{.Name}},\n\nWe regret to inform you that your booking (ID: {{.BookingID}}) has been rejected "+
			"for Check-In: {{.CheckIn}} to Check-Out: {{.CheckOut}} due to certain reasons "+
			"(Contact Us to know the reason or further availability from the website).\n\n"+
			"Regards,\n"+guestHouseName+"\nMatheran Hill Station"),
	KindBookingPending: mustPlain("booking_pending",
		"Dear {{.Name}},\n\nYour booking (ID: {{.BookingID}}) is regenerated in the system and is currently pending acceptance "+
			"for {{.CheckIn}} to {{.CheckOut}}.\n\nKindly wait for further confirmation mail.\n\n"+
			"Thanks for your cooperation.\n\nRegards,\n"+guestHouseName+"\nMatheran Hill Station"),
	KindFeedbackResponse: mustPlain("feedback_response",
		"Dear {{.Name}},\n\nThank you for your feedback.\nYour thoughts help us improve our hospitality.\n"+
			"Location: Before Union Bank & Local Market, Matheran Hill Station\n"+
			"Website: www.ranchoddasbhavan.com"),
	KindContactFormAlert: mustPlain("contact_form_alert",
		"New contact form submission from {{.Name}} ({{.Email}}):\n\n{{.Message}}"),
}

var htmlTemplates = map[Kind]*htmltemplate.Template{
	KindAdminAlert: mustHTML("admin_alert", `<html>
`+styleHead+`
<body>
<div class="card">
`+logoBlock+`
<h2>New Booking Created</h2>
<p>A new booking has been created.</p>
<p><strong>Booking ID:</strong> {{.BookingID}}</p>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Check-in:</strong> {{.CheckIn}} <strong>Check-out:</strong> {{.CheckOut}}</p>
<p><strong>Guests:</strong> {{.Guests}}</p>
<p><strong>Note:</strong> {{.Note}}</p>
<p>Please check the bookings list on the website to update the status.</p>
</div>
</body>
</html>`),
	KindCustomerAlert: mustHTML("customer_alert", `<html>
`+styleHead+`
<body>
<div class="card">
`+logoBlock+`
<p>Dear {{.Name}},</p>
<p>Your booking (ID: {{.BookingID}}) is generated in the system and is currently pending acceptance
for Check-In: {{.CheckIn}} to Check-Out: {{.CheckOut}} at `+guestHouseName+` Guest House.</p>
<p>Kindly wait for further confirmation mail.</p>
<p>Thanks for your cooperation.</p>
<p>Regards,<br>`+guestHouseName+`<br>From Matheran Hill Station</p>
</div>
</body>
</html>`),
	KindGuestConfirmation: mustHTML("guest_confirmation", `<html>
`+styleHead+`
<body>
<div class="card">
`+logoBlock+`
<p>Dear {{.Name}},</p>
<p>We like to inform you that your booking (ID: {{.BookingID}}) has been accepted
for Check-In: {{.CheckIn}} to Check-Out: {{.CheckOut}}.<br>
We hope you find our Guest House comfortable and pleasant.</p>
<p>Please <a href="https://ranchoddasbhavan.com/contact">contact us</a> to check further availability.</p>
<p>Regards,<br>`+guestHouseName+`<br>Matheran Hill Station</p>
</div>
</body>
</html>`),
	KindBookingAcceptance: mustHTML("booking_acceptance",
		`<html><body><h2>Booking Accepted</h2><p>Dear {{.Name}}, your booking (ID {{.BookingID}}) has been accepted.</p></body></html>`),
	KindBookingRejection: mustHTML("booking_rejection", `<html>
`+styleHead+`
<body>
<div class="card">
`+logoBlock+`
<p>Dear {{.Name}},</p>
<p>We regret to inform you that your booking (ID: {{.BookingID}}) has been rejected
for Check-In: {{.CheckIn}} to Check-Out: {{.CheckOut}} due to certain reasons.</p>
<p>Please <a href="https://ranchoddasbhavan.com/contact">contact us</a> to know the reason or check further availability.</p>
<p>Regards,<br>`+guestHouseName+`<br>Matheran Hill Station</p>
</div>
</body>
</html>`),
	KindBookingPending: mustHTML("booking_pending", `<html>
`+styleHead+`
<body>
<div class="card">
`+logoBlock+`
<p>Dear {{.Name}},</p>
<p>Your booking (ID: {{.BookingID}}) is regenerated in the system and is currently pending acceptance
for Check-In: {{.CheckIn}} to Check-Out: {{.CheckOut}} at `+guestHouseName+` Guest House.</p>
<p>Kindly wait for further confirmation mail.</p>
<p>Thanks for your cooperation.</p>
<p>Regards,<br>`+guestHouseName+`<br>From Matheran Hill Station</p>
</div>
</body>
</html>`),
	KindFeedbackResponse: mustHTML("feedback_response", `<html>
`+styleHead+`
<body>
<div class="card">
`+logoBlock+`
<h2>Thank you for your feedback</h2>
<p>Your thoughts help us improve our hospitality.</p>
<p>Location: Before Union Bank &amp; Local Market, Matheran Hill Station<br>
Website: <a href="https://www.ranchoddasbhavan.com">www.ranchoddasbhavan.com</a></p>
</div>
</body>
</html>`),
	KindContactFormAlert: mustHTML("contact_form_alert", `<html>
`+styleHead+`
<body>
<div class="card">
`+logoBlock+`
<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> {{.Name}}<br>
<strong>Email:</strong> {{.Email}}<br>
<strong>Message:</strong> {{.Message}}</p>
<p>Quick reply options:</p>
<a href="{{.BookingURL}}" class="btn btn-booking">Reply about Booking</a>
<a href="{{.FeedbackURL}}" class="btn btn-feedback">Reply about Feedback</a>
<a href="{{.LocationURL}}" class="btn btn-location">Send Location Info</a>
</div>
</body>
</html>`),
}

var subjects = map[Kind]string{
	KindAdminAlert:        "New Booking Alert From " + guestHouseName + " - ID %s",
	KindCustomerAlert:     "Booking Created - " + guestHouseName,
	KindGuestConfirmation: "Booking Confirmation - " + guestHouseName,
	KindBookingAcceptance: "Booking Accepted - " + guestHouseName,
	KindBookingRejection:  "Booking Update - " + guestHouseName,
	KindBookingPending:    "Booking Pending - " + guestHouseName,
	KindFeedbackResponse:  "Feedback Response - " + guestHouseName,
	KindContactFormAlert:  "New Contact Form Submission from %s",
}

// contactAlertData extends the contact fields with the quick-reply URLs.
type contactAlertData struct {
	ContactFields
	BookingURL  string
	FeedbackURL string
	LocationURL string
}

// Resolve renders the subject, plain body and HTML body for a request.
// It is a pure function of the request (plus the reply URL builder for
// the contact form alert) and performs no I/O. An unsupported kind yields
// errs.ErrUnknownNotificationKind.
func Resolve(req Request, replyURL ReplyURLBuilder) (Message, error) {
	plainTmpl, ok := plainTemplates[req.Kind]
	if !ok {
		return Message{}, fmt.Errorf("%w: %q", errs.ErrUnknownNotificationKind, req.Kind)
	}
	htmlTmpl := htmlTemplates[req.Kind]

	data, subject := templateData(req, replyURL)

	var plain strings.Builder
	if err := plainTmpl.Execute(&plain, data); err != nil {
		return Message{}, fmt.Errorf("render plain body for %s: %w", req.Kind, err)
	}

	var html strings.Builder
	if err := htmlTmpl.Execute(&html, data); err != nil {
		return Message{}, fmt.Errorf("render html body for %s: %w", req.Kind, err)
	}

	return Message{
		Subject:   subject,
		PlainBody: plain.String(),
		HTMLBody:  html.String(),
	}, nil
}

// ComposeHTMLReply wraps an admin-edited HTML fragment in the shared
// style shell and adds the fixed plain-text fallback. Used by the quick
// replies, where the administrator writes the body directly.
func ComposeHTMLReply(subject, bodyHTML string) Message {
	return Message{
		Subject:   subject,
		PlainBody: "Dear visitor, From Ranchoddas Arogya Bhavan. This is an HTML email. Please view in a modern client.",
		HTMLBody:  "<html>\n" + styleHead + "\n<body>\n" + bodyHTML + "\n</body>\n</html>",
	}
}

func templateData(req Request, replyURL ReplyURLBuilder) (any, string) {
	subject := subjects[req.Kind]

	switch req.Kind {
	case KindAdminAlert:
		b := bookingOrZero(req)
		return b, fmt.Sprintf(subject, b.BookingID)
	case KindContactFormAlert:
		c := contactOrZero(req)
		data := contactAlertData{ContactFields: c}
		if replyURL != nil {
			data.BookingURL = replyURL("booking", c.Email)
			data.FeedbackURL = replyURL("feedback", c.Email)
			data.LocationURL = replyURL("location", c.Email)
		}
		return data, fmt.Sprintf(subject, c.Name)
	case KindFeedbackResponse:
		f := FeedbackFields{}
		if req.Feedback != nil {
			f = *req.Feedback
		}
		return f, subject
	default:
		return bookingOrZero(req), subject
	}
}

func bookingOrZero(req Request) BookingFields {
	if req.Booking != nil {
		return *req.Booking
	}
	return BookingFields{}
}

func contactOrZero(req Request) ContactFields {
	if req.Contact != nil {
		return *req.Contact
	}
	return ContactFields{}
}

func mustPlain(name, body string) *texttemplate.Template {
	return texttemplate.Must(texttemplate.New(name).Parse(body))
}

func mustHTML(name, body string) *htmltemplate.Template {
	return htmltemplate.Must(htmltemplate.New(name).Parse(body))
}
