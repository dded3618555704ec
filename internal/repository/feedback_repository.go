package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Prathamesh666/RAB-Matheran-Website/internal/models"
)

// FeedbackRepository handles database interactions for guest feedback.
type FeedbackRepository interface {
	Create(ctx context.Context, fb *models.Feedback) (string, error)
	FindByID(ctx context.Context, id string) (*models.Feedback, error)
	List(ctx context.Context) ([]models.Feedback, error)
	Update(ctx context.Context, fb *models.Feedback) error
	Delete(ctx context.Context, id string) error
}

type feedbackRepository struct {
	db *sql.DB
}

// NewFeedbackRepository creates a new repository instance.
func NewFeedbackRepository(db *sql.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

// Create persists a feedback entry. Photo IDs are stored as a JSON array.
func (r *feedbackRepository) Create(ctx context.Context, fb *models.Feedback) (string, error) {
	if fb.ID == "" {
		fb.ID = uuid.New().String()
	}
	if fb.CreatedAt.IsZero() {
		fb.CreatedAt = time.Now().UTC()
	}

	photosJSON, err := json.Marshal(fb.Photos)
	if err != nil {
		return "", fmt.Errorf("failed to marshal photo ids: %w", err)
	}

	query := `
		INSERT INTO feedbacks (id, name, email, rating, comments, photos, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.ExecContext(ctx, query,
		fb.ID, fb.Name, fb.Email, fb.Rating, fb.Comments, string(photosJSON), fb.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("failed to create feedback: %w", err)
	}
	return fb.ID, nil
}

// FindByID retrieves a single feedback entry, or nil when not found.
func (r *feedbackRepository) FindByID(ctx context.Context, id string) (*models.Feedback, error) {
	query := `
		SELECT id, name, email, rating, comments, photos, created_at
		FROM feedbacks
		WHERE id = ?
		LIMIT 1
	`
	var fb models.Feedback
	var photosJSON string
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&fb.ID, &fb.Name, &fb.Email, &fb.Rating, &fb.Comments, &photosJSON, &fb.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find feedback: %w", err)
	}
	if err := json.Unmarshal([]byte(photosJSON), &fb.Photos); err != nil {
		return nil, fmt.Errorf("failed to unmarshal photo ids: %w", err)
	}
	return &fb, nil
}

// List retrieves all feedback entries ordered by creation time.
func (r *feedbackRepository) List(ctx context.Context) ([]models.Feedback, error) {
	query := `
		SELECT id, name, email, rating, comments, photos, created_at
		FROM feedbacks
		ORDER BY created_at ASC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedbacks: %w", err)
	}
	defer rows.Close()

	feedbacks := make([]models.Feedback, 0)
	for rows.Next() {
		var fb models.Feedback
		var photosJSON string
		if err := rows.Scan(&fb.ID, &fb.Name, &fb.Email, &fb.Rating, &fb.Comments, &photosJSON, &fb.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan feedback: %w", err)
		}
		if err := json.Unmarshal([]byte(photosJSON), &fb.Photos); err != nil {
			return nil, fmt.Errorf("failed to unmarshal photo ids: %w", err)
		}
		feedbacks = append(feedbacks, fb)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating feedbacks: %w", err)
	}
	return feedbacks, nil
}

// Update rewrites an existing feedback entry.
func (r *feedbackRepository) Update(ctx context.Context, fb *models.Feedback) error {
	photosJSON, err := json.Marshal(fb.Photos)
	if err != nil {
		return fmt.Errorf("failed to marshal photo ids: %w", err)
	}

	query := `
		UPDATE feedbacks
		SET name = ?, email = ?, rating = ?, comments = ?, photos = ?
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query, fb.Name, fb.Email, fb.Rating, fb.Comments, string(photosJSON), fb.ID)
	if err != nil {
		return fmt.Errorf("failed to update feedback: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("feedback %s not found", fb.ID)
	}
	return nil
}

// Delete removes a feedback entry.
func (r *feedbackRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM feedbacks WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete feedback: %w", err)
	}
	return nil
}
