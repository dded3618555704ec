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

// CategoryRepository handles database interactions for gallery categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) (string, error)
	Delete(ctx context.Context, id string) error
	FindByKey(ctx context.Context, key string) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	AddImage(ctx context.Context, id, filename string) error
	RemoveImage(ctx context.Context, id, filename string) error
}

type categoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository creates a new repository instance.
func NewCategoryRepository(db *sql.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// Create persists a gallery category with an empty image list.
func (r *categoryRepository) Create(ctx context.Context, category *models.Category) (string, error) {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	if category.CreatedAt.IsZero() {
		category.CreatedAt = time.Now().UTC()
	}
	if category.Images == nil {
		category.Images = []string{}
	}

	imagesJSON, err := json.Marshal(category.Images)
	if err != nil {
		return "", fmt.Errorf("failed to marshal image list: %w", err)
	}

	query := `
		INSERT INTO categories (id, cat_key, title, images, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err = r.db.ExecContext(ctx, query,
		category.ID, category.Key, category.Title, string(imagesJSON), category.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("failed to create category: %w", err)
	}
	return category.ID, nil
}

// Delete removes a category.
func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM categories WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

// FindByKey retrieves a category by its url key, or nil when not found.
func (r *categoryRepository) FindByKey(ctx context.Context, key string) (*models.Category, error) {
	query := `SELECT id, cat_key, title, images, created_at FROM categories WHERE cat_key = ? LIMIT 1`

	var c models.Category
	var imagesJSON string
	err := r.db.QueryRowContext(ctx, query, key).Scan(&c.ID, &c.Key, &c.Title, &imagesJSON, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	if err := json.Unmarshal([]byte(imagesJSON), &c.Images); err != nil {
		return nil, fmt.Errorf("failed to unmarshal image list: %w", err)
	}
	return &c, nil
}

// List retrieves all categories, newest first.
func (r *categoryRepository) List(ctx context.Context) ([]models.Category, error) {
	query := `SELECT id, cat_key, title, images, created_at FROM categories ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0)
	for rows.Next() {
		var c models.Category
		var imagesJSON string
		if err := rows.Scan(&c.ID, &c.Key, &c.Title, &imagesJSON, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		if err := json.Unmarshal([]byte(imagesJSON), &c.Images); err != nil {
			return nil, fmt.Errorf("failed to unmarshal image list: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}
	return categories, nil
}

// AddImage appends a filename to the category image list.
func (r *categoryRepository) AddImage(ctx context.Context, id, filename string) error {
	return r.mutateImages(ctx, id, func(images []string) []string {
		return append(images, filename)
	})
}

// RemoveImage drops a filename from the category image list.
func (r *categoryRepository) RemoveImage(ctx context.Context, id, filename string) error {
	return r.mutateImages(ctx, id, func(images []string) []string {
		kept := images[:0]
		for _, img := range images {
			if img != filename {
				kept = append(kept, img)
			}
		}
		return kept
	})
}

func (r *categoryRepository) mutateImages(ctx context.Context, id string, mutate func([]string) []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var imagesJSON string
	err = tx.QueryRowContext(ctx, `SELECT images FROM categories WHERE id = ? FOR UPDATE`, id).Scan(&imagesJSON)
	if err == sql.ErrNoRows {
		return fmt.Errorf("category %s not found", id)
	}
	if err != nil {
		return fmt.Errorf("failed to read image list: %w", err)
	}

	var images []string
	if err := json.Unmarshal([]byte(imagesJSON), &images); err != nil {
		return fmt.Errorf("failed to unmarshal image list: %w", err)
	}

	updated, err := json.Marshal(mutate(images))
	if err != nil {
		return fmt.Errorf("failed to marshal image list: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE categories SET images = ? WHERE id = ?`, string(updated), id); err != nil {
		return fmt.Errorf("failed to update image list: %w", err)
	}
	return tx.Commit()
}
