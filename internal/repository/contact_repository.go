package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Prathamesh666/RAB-Matheran-Website/internal/models"
)

// ContactRepository handles database interactions for contact inquiries.
type ContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) (string, error)
	List(ctx context.Context) ([]models.Contact, error)
}

type contactRepository struct {
	db *sql.DB
}

// NewContactRepository creates a new repository instance.
func NewContactRepository(db *sql.DB) ContactRepository {
	return &contactRepository{db: db}
}

// Create persists a contact inquiry.
func (r *contactRepository) Create(ctx context.Context, contact *models.Contact) (string, error) {
	if contact.ID == "" {
		contact.ID = uuid.New().String()
	}
	if contact.CreatedAt.IsZero() {
		contact.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO contacts (id, name, email, message, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		contact.ID, contact.Name, contact.Email, contact.Message, contact.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("failed to create contact: %w", err)
	}
	return contact.ID, nil
}

// List retrieves all contact inquiries ordered by creation time.
func (r *contactRepository) List(ctx context.Context) ([]models.Contact, error) {
	query := `
		SELECT id, name, email, message, created_at
		FROM contacts
		ORDER BY created_at ASC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer rows.Close()

	contacts := make([]models.Contact, 0)
	for rows.Next() {
		var c models.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Message, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contacts: %w", err)
	}
	return contacts, nil
}
