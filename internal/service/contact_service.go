package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/Prathamesh666/RAB-Matheran-Website/internal/models"
	"github.com/Prathamesh666/RAB-Matheran-Website/internal/notification"
	"github.com/Prathamesh666/RAB-Matheran-Website/internal/repository"
	"github.com/Prathamesh666/RAB-Matheran-Website/pkg/logger"
)

// CreateContactInput carries the validated contact form fields.
type CreateContactInput struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,email"`
	Message string `validate:"required"`
}

// ContactService records contact form submissions and alerts the admin.
type ContactService interface {
	Create(ctx context.Context, input CreateContactInput) (*models.Contact, error)
	List(ctx context.Context) ([]models.Contact, error)
}

type contactService struct {
	repo     repository.ContactRepository
	notifier Notifier
	validate *validator.Validate
	log      *logger.Logger
}

// NewContactService creates a contact service implementation.
func NewContactService(repo repository.ContactRepository, notifier Notifier, log *logger.Logger) ContactService {
	return &contactService{
		repo:     repo,
		notifier: notifier,
		validate: validator.New(),
		log:      log,
	}
}

func (s *contactService) Create(ctx context.Context, input CreateContactInput) (*models.Contact, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid contact submission: %w", err)
	}

	contact := &models.Contact{
		Name:    input.Name,
		Email:   input.Email,
		Message: input.Message,
	}
	id, err := s.repo.Create(ctx, contact)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact entry: %w", err)
	}
	contact.ID = id

	if _, err := s.notifier.Send(ctx, notification.NewContactFormAlert(notification.ContactFields{
		Name:    contact.Name,
		Email:   contact.Email,
		Message: contact.Message,
	})); err != nil {
		s.log.WithField("error", err.Error()).Error("failed to dispatch contact form alert")
	}

	return contact, nil
}

func (s *contactService) List(ctx context.Context) ([]models.Contact, error) {
	return s.repo.List(ctx)
}
