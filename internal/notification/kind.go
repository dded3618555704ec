package notification

// Kind identifies the business event behind an outbound email.
type Kind string

const (
	KindAdminAlert        Kind = "admin_alert"
	KindCustomerAlert     Kind = "customer_alert"
	KindGuestConfirmation Kind = "guest_confirmation"
	KindBookingAcceptance Kind = "booking_acceptance"
	KindBookingRejection  Kind = "booking_rejection"
	KindBookingPending    Kind = "booking_pending"
	KindFeedbackResponse  Kind = "feedback_response"
	KindContactFormAlert  Kind = "contact_form_alert"
)

// BookingFields carries the booking attributes interpolated into the
// booking-related templates. Note is optional and renders blank when empty.
type BookingFields struct {
	BookingID string
	Name      string
	Phone     string
	Email     string
	CheckIn   string
	CheckOut  string
	Guests    int
	Note      string
}

// ContactFields carries the contact form attributes for the admin alert.
type ContactFields struct {
	Name    string
	Email   string
	Message string
}

// FeedbackFields carries the guest attributes for the feedback response.
type FeedbackFields struct {
	Name  string
	Email string
}

// Request ties a notification kind to the field record its templates need.
// Use the New* constructors so each kind is bound to the right record.
type Request struct {
	Kind     Kind
	Booking  *BookingFields
	Contact  *ContactFields
	Feedback *FeedbackFields

	// To overrides the recipient. When empty the guest email on the field
	// record is used, and the admin address as last resort.
	To string
}

// NewAdminAlert notifies the administrator about a freshly created booking.
func NewAdminAlert(b BookingFields) Request {
	return Request{Kind: KindAdminAlert, Booking: &b}
}

// NewCustomerAlert confirms to the guest that a booking entered the system.
func NewCustomerAlert(b BookingFields) Request {
	return Request{Kind: KindCustomerAlert, Booking: &b}
}

// NewGuestConfirmation informs the guest that a booking was accepted.
func NewGuestConfirmation(b BookingFields) Request {
	return Request{Kind: KindGuestConfirmation, Booking: &b}
}

// NewBookingAcceptance informs the guest of acceptance after an edit.
func NewBookingAcceptance(b BookingFields) Request {
	return Request{Kind: KindBookingAcceptance, Booking: &b}
}

// NewBookingRejection informs the guest that a booking was rejected.
func NewBookingRejection(b BookingFields) Request {
	return Request{Kind: KindBookingRejection, Booking: &b}
}

// NewBookingPending informs the guest that a booking is back to pending.
func NewBookingPending(b BookingFields) Request {
	return Request{Kind: KindBookingPending, Booking: &b}
}

// NewFeedbackResponse thanks the guest for submitted feedback.
func NewFeedbackResponse(f FeedbackFields) Request {
	return Request{Kind: KindFeedbackResponse, Feedback: &f}
}

// NewContactFormAlert notifies the administrator about a contact inquiry.
func NewContactFormAlert(c ContactFields) Request {
	return Request{Kind: KindContactFormAlert, Contact: &c}
}

// GuestEmail returns the guest address carried by the field record, if any.
func (r Request) GuestEmail() string {
	switch {
	case r.Booking != nil:
		return r.Booking.Email
	case r.Contact != nil:
		return r.Contact.Email
	case r.Feedback != nil:
		return r.Feedback.Email
	}
	return ""
}
