package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Prathamesh666/RAB-Matheran-Website/internal/errs"
	"github.com/Prathamesh666/RAB-Matheran-Website/internal/models"
)

// SessionRepository stores admin login sessions and one-shot flash
// messages in redis.
type SessionRepository interface {
	Create(ctx context.Context, session *models.Session, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (*models.Session, error)
	Delete(ctx context.Context, sessionID string) error
	SetFlash(ctx context.Context, sessionID, message string) error
	PopFlash(ctx context.Context, sessionID string) (string, error)
}

type sessionRepository struct {
	client *redis.Client
}

// NewSessionRepository creates a new redis-backed session store.
func NewSessionRepository(client *redis.Client) SessionRepository {
	return &sessionRepository{client: client}
}

func sessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}

func flashKey(id string) string {
	return fmt.Sprintf("flash:%s", id)
}

func (r *sessionRepository) Create(ctx context.Context, session *models.Session, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := r.client.Set(ctx, sessionKey(session.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (r *sessionRepository) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	data, err := r.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, errs.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (r *sessionRepository) SetFlash(ctx context.Context, sessionID, message string) error {
	// Flashes outlive a redirect but not much more.
	if err := r.client.Set(ctx, flashKey(sessionID), message, 5*time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to store flash message: %w", err)
	}
	return nil
}

func (r *sessionRepository) PopFlash(ctx context.Context, sessionID string) (string, error) {
	message, err := r.client.GetDel(ctx, flashKey(sessionID)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to pop flash message: %w", err)
	}
	return message, nil
}
