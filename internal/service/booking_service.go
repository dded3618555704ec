package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Prathamesh666/RAB-Matheran-Website/internal/errs"
	"github.com/Prathamesh666/RAB-Matheran-Website/internal/models"
	"github.com/Prathamesh666/RAB-Matheran-Website/internal/notification"
	"github.com/Prathamesh666/RAB-Matheran-Website/internal/repository"
	"github.com/Prathamesh666/RAB-Matheran-Website/pkg/logger"
)

const dateLayout = "2006-01-02"

// CreateBookingInput carries the validated booking form fields.
type CreateBookingInput struct {
	Name     string `validate:"required"`
	Phone    string `validate:"required"`
	Email    string `validate:"required,email"`
	CheckIn  string `validate:"required"`
	CheckOut string `validate:"required"`
	Guests   int    `validate:"required,min=1"`
	Note     string
}

// BookingService encapsulates the booking lifecycle and its notifications.
type BookingService interface {
	Create(ctx context.Context, input CreateBookingInput) (*models.Booking, error)
	Get(ctx context.Context, id string) (*models.Booking, error)
	List(ctx context.Context) ([]models.Booking, error)
	Accept(ctx context.Context, id string) error
	Reject(ctx context.Context, id string) error
	Update(ctx context.Context, booking *models.Booking) error
	Delete(ctx context.Context, id string) error
}

type bookingService struct {
	repo       repository.BookingRepository
	notifier   Notifier
	sms        notification.SMSChannel
	adminPhone string
	validate   *validator.Validate
	log        *logger.Logger
}

// NewBookingService creates a booking service implementation.
func NewBookingService(
	repo repository.BookingRepository,
	notifier Notifier,
	sms notification.SMSChannel,
	adminPhone string,
	log *logger.Logger,
) BookingService {
	return &bookingService{
		repo:       repo,
		notifier:   notifier,
		sms:        sms,
		adminPhone: adminPhone,
		validate:   validator.New(),
		log:        log,
	}
}

// ValidateDates checks that both dates parse and check-out falls after
// check-in. Exported for reuse by the handlers.
func ValidateDates(checkIn, checkOut string) error {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return fmt.Errorf("%w: check-in %q", errs.ErrInvalidDates, checkIn)
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return fmt.Errorf("%w: check-out %q", errs.ErrInvalidDates, checkOut)
	}
	if !out.After(in) {
		return errs.ErrCheckOutBeforeCheckIn
	}
	return nil
}

func (s *bookingService) Create(ctx context.Context, input CreateBookingInput) (*models.Booking, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid booking submission: %w", err)
	}
	if err := ValidateDates(input.CheckIn, input.CheckOut); err != nil {
		return nil, err
	}

	booking := &models.Booking{
		Name:     input.Name,
		Phone:    input.Phone,
		Email:    input.Email,
		CheckIn:  input.CheckIn,
		CheckOut: input.CheckOut,
		Guests:   input.Guests,
		Note:     input.Note,
		Status:   models.BookingStatusPending,
	}

	id, err := s.repo.Create(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	booking.ID = id

	fields := bookingFields(booking)
	s.notify(ctx, notification.NewAdminAlert(fields))
	s.notify(ctx, notification.NewCustomerAlert(fields))
	s.alertAdminSMS(ctx, booking)

	return booking, nil
}

func (s *bookingService) Get(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, errs.ErrBookingNotFound
	}
	return booking, nil
}

func (s *bookingService) List(ctx context.Context) ([]models.Booking, error) {
	return s.repo.List(ctx)
}

func (s *bookingService) Accept(ctx context.Context, id string) error {
	booking, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.UpdateStatus(ctx, id, models.BookingStatusAccepted); err != nil {
		return fmt.Errorf("failed to accept booking: %w", err)
	}
	s.notify(ctx, notification.NewGuestConfirmation(bookingFields(booking)))
	return nil
}

func (s *bookingService) Reject(ctx context.Context, id string) error {
	booking, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.UpdateStatus(ctx, id, models.BookingStatusRejected); err != nil {
		return fmt.Errorf("failed to reject booking: %w", err)
	}
	s.notify(ctx, notification.NewBookingRejection(bookingFields(booking)))
	return nil
}

// Update persists edited booking details and tells the guest what the
// booking's current status is after the edit.
func (s *bookingService) Update(ctx context.Context, booking *models.Booking) error {
	if err := ValidateDates(booking.CheckIn, booking.CheckOut); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, booking); err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}

	fields := bookingFields(booking)
	switch booking.Status {
	case models.BookingStatusAccepted:
		s.notify(ctx, notification.NewBookingAcceptance(fields))
	case models.BookingStatusRejected:
		s.notify(ctx, notification.NewBookingRejection(fields))
	default:
		s.notify(ctx, notification.NewBookingPending(fields))
	}
	return nil
}

func (s *bookingService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	return nil
}

func (s *bookingService) notify(ctx context.Context, req notification.Request) {
	if _, err := s.notifier.Send(ctx, req); err != nil {
		s.log.WithField("kind", string(req.Kind)).Error(fmt.Sprintf("failed to dispatch notification: %v", err))
	}
}

func (s *bookingService) alertAdminSMS(ctx context.Context, booking *models.Booking) {
	if s.sms == nil || s.adminPhone == "" {
		return
	}
	payload := notification.SMSPayload{
		Phone: s.adminPhone,
		Message: fmt.Sprintf("New booking %s from %s (%s to %s, %d guests)",
			booking.ID, booking.Name, booking.CheckIn, booking.CheckOut, booking.Guests),
	}
	if _, err := s.sms.SendSMS(ctx, payload); err != nil {
		// SMS is best effort, the email alert already went out.
		s.log.WithBookingID(booking.ID).Debug(fmt.Sprintf("admin SMS not sent: %v", err))
	}
}

func bookingFields(b *models.Booking) notification.BookingFields {
	return notification.BookingFields{
		BookingID: b.ID,
		Name:      b.Name,
		Phone:     b.Phone,
		Email:     b.Email,
		CheckIn:   b.CheckIn,
		CheckOut:  b.CheckOut,
		Guests:    b.Guests,
		Note:      b.Note,
	}
}
