package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Prathamesh666/RAB-Matheran-Website/internal/models"
)

// BookingRepository handles database interactions for bookings.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) (string, error)
	FindByID(ctx context.Context, id string) (*models.Booking, error)
	List(ctx context.Context) ([]models.Booking, error)
	Update(ctx context.Context, booking *models.Booking) error
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

type bookingRepository struct {
	db *sql.DB
}

// NewBookingRepository creates a new repository instance.
func NewBookingRepository(db *sql.DB) BookingRepository {
	return &bookingRepository{db: db}
}

// Create persists a booking and returns its id.
func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) (string, error) {
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now().UTC()
	}
	if booking.Status == "" {
		booking.Status = models.BookingStatusPending
	}

	query := `
		INSERT INTO bookings (id, name, phone, email, check_in, check_out, guests, note, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		booking.ID,
		booking.Name,
		booking.Phone,
		booking.Email,
		booking.CheckIn,
		booking.CheckOut,
		booking.Guests,
		booking.Note,
		booking.Status,
		booking.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("failed to create booking: %w", err)
	}
	return booking.ID, nil
}

// FindByID retrieves a single booking, or nil when not found.
func (r *bookingRepository) FindByID(ctx context.Context, id string) (*models.Booking, error) {
	query := `
		SELECT id, name, phone, email, check_in, check_out, guests, note, status, created_at
		FROM bookings
		WHERE id = ?
		LIMIT 1
	`
	var b models.Booking
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&b.ID, &b.Name, &b.Phone, &b.Email,
		&b.CheckIn, &b.CheckOut, &b.Guests, &b.Note,
		&b.Status, &b.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find booking: %w", err)
	}
	return &b, nil
}

// List retrieves all bookings ordered by creation time.
func (r *bookingRepository) List(ctx context.Context) ([]models.Booking, error) {
	query := `
		SELECT id, name, phone, email, check_in, check_out, guests, note, status, created_at
		FROM bookings
		ORDER BY created_at ASC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]models.Booking, 0)
	for rows.Next() {
		var b models.Booking
		if err := rows.Scan(
			&b.ID, &b.Name, &b.Phone, &b.Email,
			&b.CheckIn, &b.CheckOut, &b.Guests, &b.Note,
			&b.Status, &b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}
	return bookings, nil
}

// Update rewrites every guest-editable field of a booking.
func (r *bookingRepository) Update(ctx context.Context, booking *models.Booking) error {
	query := `
		UPDATE bookings
		SET name = ?, phone = ?, email = ?, check_in = ?, check_out = ?, guests = ?, note = ?, status = ?
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query,
		booking.Name, booking.Phone, booking.Email,
		booking.CheckIn, booking.CheckOut, booking.Guests, booking.Note,
		booking.Status, booking.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("booking %s not found", booking.ID)
	}
	return nil
}

// UpdateStatus changes only the booking status.
func (r *bookingRepository) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE bookings SET status = ? WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("booking %s not found", id)
	}
	return nil
}

// Delete removes a booking.
func (r *bookingRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM bookings WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	return nil
}
