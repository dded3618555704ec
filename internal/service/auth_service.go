package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Prathamesh666/RAB-Matheran-Website/internal/errs"
	"github.com/Prathamesh666/RAB-Matheran-Website/internal/models"
	"github.com/Prathamesh666/RAB-Matheran-Website/internal/repository"
	"github.com/Prathamesh666/RAB-Matheran-Website/pkg/logger"
)

// AuthService handles administrator login and session management.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.Session, error)
	Logout(ctx context.Context, sessionID string) error
	Session(ctx context.Context, sessionID string) (*models.Session, error)
}

type authService struct {
	admins     repository.AdminRepository
	sessions   repository.SessionRepository
	sessionTTL time.Duration
	log        *logger.Logger
}

// NewAuthService creates an auth service implementation.
func NewAuthService(
	admins repository.AdminRepository,
	sessions repository.SessionRepository,
	sessionTTL time.Duration,
	log *logger.Logger,
) AuthService {
	return &authService{
		admins:     admins,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		log:        log,
	}
}

// Login verifies the credentials and opens a new session. The same error
// is returned for an unknown username and a wrong password.
func (s *authService) Login(ctx context.Context, username, password string) (*models.Session, error) {
	admin, err := s.admins.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}
	if admin == nil {
		return nil, errs.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	session := &models.Session{
		ID:        uuid.New().String(),
		AdminID:   admin.ID,
		Username:  admin.Username,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.sessions.Create(ctx, session, s.sessionTTL); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.log.WithField("username", username).Info("admin logged in")
	return session, nil
}

func (s *authService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

func (s *authService) Session(ctx context.Context, sessionID string) (*models.Session, error) {
	if sessionID == "" {
		return nil, errs.ErrSessionNotFound
	}
	return s.sessions.Get(ctx, sessionID)
}
