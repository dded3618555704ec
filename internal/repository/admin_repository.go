package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Prathamesh666/RAB-Matheran-Website/internal/models"
)

// AdminRepository handles database interactions for administrator accounts.
type AdminRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.Admin, error)
	FindByID(ctx context.Context, id uint64) (*models.Admin, error)
}

type adminRepository struct {
	db *sql.DB
}

// NewAdminRepository creates a new repository instance.
func NewAdminRepository(db *sql.DB) AdminRepository {
	return &adminRepository{db: db}
}

// FindByUsername retrieves an admin account, or nil when not found.
func (r *adminRepository) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	query := `SELECT id, username, password_hash FROM admins WHERE username = ? LIMIT 1`

	var admin models.Admin
	err := r.db.QueryRowContext(ctx, query, username).Scan(&admin.ID, &admin.Username, &admin.PasswordHash)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}
	return &admin, nil
}

// FindByID retrieves an admin account by id, or nil when not found.
func (r *adminRepository) FindByID(ctx context.Context, id uint64) (*models.Admin, error) {
	query := `SELECT id, username, password_hash FROM admins WHERE id = ? LIMIT 1`

	var admin models.Admin
	err := r.db.QueryRowContext(ctx, query, id).Scan(&admin.ID, &admin.Username, &admin.PasswordHash)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}
	return &admin, nil
}
