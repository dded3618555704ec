package models

import "time"

// Booking statuses as shown to the administrator.
const (
	BookingStatusPending  = "Pending"
	BookingStatusAccepted = "Accepted"
	BookingStatusRejected = "Rejected"
)

// Booking represents a guest booking request. Check-in/out dates are kept
// as "2006-01-02" strings; the handlers validate them before persisting.
type Booking struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	CheckIn   string
	CheckOut  string
	Guests    int
	Note      string
	Status    string
	CreatedAt time.Time
}
