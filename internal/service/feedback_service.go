package service

import (
	"context"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Prathamesh666/RAB-Matheran-Website/internal/errs"
	"github.com/Prathamesh666/RAB-Matheran-Website/internal/models"
	"github.com/Prathamesh666/RAB-Matheran-Website/internal/notification"
	"github.com/Prathamesh666/RAB-Matheran-Website/internal/repository"
	"github.com/Prathamesh666/RAB-Matheran-Website/internal/storage"
	"github.com/Prathamesh666/RAB-Matheran-Website/pkg/logger"
)

// PhotoUpload is one image attached to a feedback submission.
type PhotoUpload struct {
	Filename string
	Data     io.Reader
}

// CreateFeedbackInput carries the validated feedback form fields.
type CreateFeedbackInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Rating   int
	Comments string
	Photos   []PhotoUpload
}

// FeedbackService encapsulates guest feedback with photo uploads.
type FeedbackService interface {
	Create(ctx context.Context, input CreateFeedbackInput) (*models.Feedback, error)
	Get(ctx context.Context, id string) (*models.Feedback, error)
	List(ctx context.Context) ([]models.Feedback, error)
	Update(ctx context.Context, fb *models.Feedback) error
	Delete(ctx context.Context, id string) error
	OpenPhoto(ctx context.Context, photoID string) (io.ReadCloser, error)
}

type feedbackService struct {
	repo     repository.FeedbackRepository
	photos   storage.PhotoStore
	notifier Notifier
	validate *validator.Validate
	log      *logger.Logger
}

// NewFeedbackService creates a feedback service implementation.
func NewFeedbackService(
	repo repository.FeedbackRepository,
	photos storage.PhotoStore,
	notifier Notifier,
	log *logger.Logger,
) FeedbackService {
	return &feedbackService{
		repo:     repo,
		photos:   photos,
		notifier: notifier,
		validate: validator.New(),
		log:      log,
	}
}

func (s *feedbackService) Create(ctx context.Context, input CreateFeedbackInput) (*models.Feedback, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid feedback submission: %w", err)
	}
	if input.Rating < 0 || input.Rating > 10 {
		return nil, errs.ErrInvalidRating
	}

	fb := &models.Feedback{
		Name:     input.Name,
		Email:    input.Email,
		Rating:   input.Rating,
		Comments: input.Comments,
		Photos:   []string{},
	}

	for _, upload := range input.Photos {
		if !allowedPhotoFile(upload.Filename) {
			s.log.WithField("filename", upload.Filename).Warn("skipping photo with disallowed file type")
			continue
		}
		photoID := uuid.New().String()
		if err := s.photos.Save(photoID, upload.Data); err != nil {
			s.log.WithFields(logrus.Fields{
				"filename": upload.Filename,
				"error":    err.Error(),
			}).Error("failed to store feedback photo")
			continue
		}
		fb.Photos = append(fb.Photos, photoID)
	}

	id, err := s.repo.Create(ctx, fb)
	if err != nil {
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}
	fb.ID = id

	if _, err := s.notifier.Send(ctx, notification.NewFeedbackResponse(notification.FeedbackFields{
		Name:  fb.Name,
		Email: fb.Email,
	})); err != nil {
		s.log.WithField("error", err.Error()).Error("failed to dispatch feedback response")
	}

	return fb, nil
}

func (s *feedbackService) Get(ctx context.Context, id string) (*models.Feedback, error) {
	fb, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if fb == nil {
		return nil, errs.ErrFeedbackNotFound
	}
	return fb, nil
}

func (s *feedbackService) List(ctx context.Context) ([]models.Feedback, error) {
	return s.repo.List(ctx)
}

func (s *feedbackService) Update(ctx context.Context, fb *models.Feedback) error {
	if fb.Rating < 0 || fb.Rating > 10 {
		return errs.ErrInvalidRating
	}
	if err := s.repo.Update(ctx, fb); err != nil {
		return fmt.Errorf("failed to update feedback: %w", err)
	}
	return nil
}

// Delete removes the feedback entry and its stored photos.
func (s *feedbackService) Delete(ctx context.Context, id string) error {
	fb, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	for _, photoID := range fb.Photos {
		if err := s.photos.Delete(photoID); err != nil {
			s.log.WithField("photo_id", photoID).Error("failed to delete feedback photo")
		}
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete feedback: %w", err)
	}
	return nil
}

func (s *feedbackService) OpenPhoto(ctx context.Context, photoID string) (io.ReadCloser, error) {
	return s.photos.Open(photoID)
}
