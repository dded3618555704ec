package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Prathamesh666/RAB-Matheran-Website/internal/errs"
	"github.com/Prathamesh666/RAB-Matheran-Website/internal/models"
	"github.com/Prathamesh666/RAB-Matheran-Website/internal/notification"
	"github.com/Prathamesh666/RAB-Matheran-Website/internal/storage"
	"github.com/Prathamesh666/RAB-Matheran-Website/pkg/logger"
)

// MockFeedbackRepository is a mock implementation of repository.FeedbackRepository.
type MockFeedbackRepository struct {
	mock.Mock
}

func (m *MockFeedbackRepository) Create(ctx context.Context, fb *models.Feedback) (string, error) {
	args := m.Called(ctx, fb)
	return args.String(0), args.Error(1)
}

func (m *MockFeedbackRepository) FindByID(ctx context.Context, id string) (*models.Feedback, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) List(ctx context.Context) ([]models.Feedback, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) Update(ctx context.Context, fb *models.Feedback) error {
	args := m.Called(ctx, fb)
	return args.Error(0)
}

func (m *MockFeedbackRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestFeedbackService_Create_WithPhotos(t *testing.T) {
	repo := new(MockFeedbackRepository)
	notifier := new(MockNotifier)
	photos := storage.NewMemoryPhotoStore()
	svc := NewFeedbackService(repo, photos, notifier, logger.NewLogger("test"))

	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Feedback")).Return("fb-1", nil)
	notifier.On("Send", mock.Anything, mock.MatchedBy(func(req notification.Request) bool {
		return req.Kind == notification.KindFeedbackResponse && req.Feedback.Email == "asha@example.com"
	})).Return(sentOutcome(), nil).Once()

	fb, err := svc.Create(context.Background(), CreateFeedbackInput{
		Name:   "Asha Patel",
		Email:  "asha@example.com",
		Rating: 9,
		Photos: []PhotoUpload{
			{Filename: "view.jpg", Data: strings.NewReader("jpeg bytes")},
			{Filename: "room.jpg", Data: strings.NewReader("more jpeg bytes")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "fb-1", fb.ID)
	require.Len(t, fb.Photos, 2)

	// The uploads are retrievable from the store under their new ids.
	for _, photoID := range fb.Photos {
		rc, err := photos.Open(photoID)
		require.NoError(t, err)
		rc.Close()
	}
	notifier.AssertExpectations(t)
}

func TestFeedbackService_Create_SkipsDisallowedPhotoTypes(t *testing.T) {
	repo := new(MockFeedbackRepository)
	notifier := new(MockNotifier)
	photos := storage.NewMemoryPhotoStore()
	svc := NewFeedbackService(repo, photos, notifier, logger.NewLogger("test"))

	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Feedback")).Return("fb-1", nil)
	notifier.On("Send", mock.Anything, mock.Anything).Return(sentOutcome(), nil)

	fb, err := svc.Create(context.Background(), CreateFeedbackInput{
		Name:   "Asha Patel",
		Email:  "asha@example.com",
		Rating: 8,
		Photos: []PhotoUpload{
			{Filename: "view.jpg", Data: strings.NewReader("jpeg bytes")},
			{Filename: "invoice.pdf", Data: strings.NewReader("pdf bytes")},
			{Filename: "script.sh", Data: strings.NewReader("#!/bin/sh")},
		},
	})
	require.NoError(t, err)
	require.Len(t, fb.Photos, 1)

	// Only the jpg made it into the store.
	rc, err := photos.Open(fb.Photos[0])
	require.NoError(t, err)
	rc.Close()
}

func TestFeedbackService_Create_InvalidRating(t *testing.T) {
	svc := NewFeedbackService(new(MockFeedbackRepository), storage.NewMemoryPhotoStore(), new(MockNotifier), logger.NewLogger("test"))

	for _, rating := range []int{-1, 11} {
		_, err := svc.Create(context.Background(), CreateFeedbackInput{
			Name:   "Asha",
			Email:  "asha@example.com",
			Rating: rating,
		})
		assert.ErrorIs(t, err, errs.ErrInvalidRating)
	}
}

func TestFeedbackService_Delete_RemovesPhotos(t *testing.T) {
	repo := new(MockFeedbackRepository)
	photos := storage.NewMemoryPhotoStore()
	svc := NewFeedbackService(repo, photos, new(MockNotifier), logger.NewLogger("test"))

	require.NoError(t, photos.Save("ph-1", strings.NewReader("bytes")))
	fb := &models.Feedback{ID: "fb-1", Photos: []string{"ph-1"}}
	repo.On("FindByID", mock.Anything, "fb-1").Return(fb, nil)
	repo.On("Delete", mock.Anything, "fb-1").Return(nil)

	require.NoError(t, svc.Delete(context.Background(), "fb-1"))

	_, err := photos.Open("ph-1")
	assert.ErrorIs(t, err, errs.ErrPhotoNotFound)
}

func TestFeedbackService_Get_NotFound(t *testing.T) {
	repo := new(MockFeedbackRepository)
	svc := NewFeedbackService(repo, storage.NewMemoryPhotoStore(), new(MockNotifier), logger.NewLogger("test"))

	repo.On("FindByID", mock.Anything, "missing").Return(nil, nil)

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, errs.ErrFeedbackNotFound)
}
