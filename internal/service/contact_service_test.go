package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Prathamesh666/RAB-Matheran-Website/internal/models"
	"github.com/Prathamesh666/RAB-Matheran-Website/internal/notification"
	"github.com/Prathamesh666/RAB-Matheran-Website/pkg/logger"
)

// MockContactRepository is a mock implementation of repository.ContactRepository.
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Create(ctx context.Context, contact *models.Contact) (string, error) {
	args := m.Called(ctx, contact)
	return args.String(0), args.Error(1)
}

func (m *MockContactRepository) List(ctx context.Context) ([]models.Contact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Contact), args.Error(1)
}

func TestContactService_Create(t *testing.T) {
	repo := new(MockContactRepository)
	notifier := new(MockNotifier)
	svc := NewContactService(repo, notifier, logger.NewLogger("test"))

	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Contact")).Return("ct-1", nil)
	notifier.On("Send", mock.Anything, mock.MatchedBy(func(req notification.Request) bool {
		return req.Kind == notification.KindContactFormAlert &&
			req.Contact != nil && req.Contact.Email == "ravi@example.com"
	})).Return(sentOutcome(), nil).Once()

	contact, err := svc.Create(context.Background(), CreateContactInput{
		Name:    "Ravi",
		Email:   "ravi@example.com",
		Message: "Do you allow pets?",
	})
	require.NoError(t, err)
	assert.Equal(t, "ct-1", contact.ID)

	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestContactService_Create_ValidationFailures(t *testing.T) {
	tests := []struct {
		name  string
		input CreateContactInput
	}{
		{"missing name", CreateContactInput{Email: "ravi@example.com", Message: "hi"}},
		{"missing email", CreateContactInput{Name: "Ravi", Message: "hi"}},
		{"bad email", CreateContactInput{Name: "Ravi", Email: "not-an-email", Message: "hi"}},
		{"missing message", CreateContactInput{Name: "Ravi", Email: "ravi@example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockContactRepository)
			notifier := new(MockNotifier)
			svc := NewContactService(repo, notifier, logger.NewLogger("test"))

			_, err := svc.Create(context.Background(), tt.input)
			assert.Error(t, err)
			repo.AssertNotCalled(t, "Create")
			notifier.AssertNotCalled(t, "Send")
		})
	}
}

func TestContactService_Create_NotificationFailureIsContained(t *testing.T) {
	repo := new(MockContactRepository)
	notifier := new(MockNotifier)
	svc := NewContactService(repo, notifier, logger.NewLogger("test"))

	repo.On("Create", mock.Anything, mock.Anything).Return("ct-1", nil)
	notifier.On("Send", mock.Anything, mock.Anything).
		Return(notification.Outcome{Channel: "smtp", Success: false, Detail: "boom"}, nil)

	_, err := svc.Create(context.Background(), CreateContactInput{
		Name:    "Ravi",
		Email:   "ravi@example.com",
		Message: "hello",
	})
	assert.NoError(t, err)
}
