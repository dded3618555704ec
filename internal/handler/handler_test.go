package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prathamesh666/RAB-Matheran-Website/internal/errs"
	"github.com/Prathamesh666/RAB-Matheran-Website/internal/models"
	"github.com/Prathamesh666/RAB-Matheran-Website/internal/notification"
	"github.com/Prathamesh666/RAB-Matheran-Website/internal/service"
	"github.com/Prathamesh666/RAB-Matheran-Website/pkg/logger"
)

type stubBookings struct {
	created []service.CreateBookingInput
	list    []models.Booking
}

func (s *stubBookings) Create(ctx context.Context, input service.CreateBookingInput) (*models.Booking, error) {
	s.created = append(s.created, input)
	return &models.Booking{ID: "bk-1"}, nil
}
func (s *stubBookings) Get(ctx context.Context, id string) (*models.Booking, error) {
	return nil, errs.ErrBookingNotFound
}
func (s *stubBookings) List(ctx context.Context) ([]models.Booking, error) { return s.list, nil }
func (s *stubBookings) Accept(ctx context.Context, id string) error        { return nil }
func (s *stubBookings) Reject(ctx context.Context, id string) error        { return nil }
func (s *stubBookings) Update(ctx context.Context, b *models.Booking) error {
	return nil
}
func (s *stubBookings) Delete(ctx context.Context, id string) error { return nil }

type stubFeedback struct{}

func (stubFeedback) Create(ctx context.Context, input service.CreateFeedbackInput) (*models.Feedback, error) {
	return &models.Feedback{ID: "fb-1"}, nil
}
func (stubFeedback) Get(ctx context.Context, id string) (*models.Feedback, error) {
	return nil, errs.ErrFeedbackNotFound
}
func (stubFeedback) List(ctx context.Context) ([]models.Feedback, error)  { return nil, nil }
func (stubFeedback) Update(ctx context.Context, fb *models.Feedback) error { return nil }
func (stubFeedback) Delete(ctx context.Context, id string) error           { return nil }
func (stubFeedback) OpenPhoto(ctx context.Context, photoID string) (io.ReadCloser, error) {
	return nil, errs.ErrPhotoNotFound
}

type stubContacts struct{}

func (stubContacts) Create(ctx context.Context, input service.CreateContactInput) (*models.Contact, error) {
	return &models.Contact{ID: "ct-1"}, nil
}
func (stubContacts) List(ctx context.Context) ([]models.Contact, error) { return nil, nil }

type stubGallery struct {
	categories []models.Category
}

func (s *stubGallery) Categories(ctx context.Context) ([]models.Category, error) {
	return s.categories, nil
}
func (s *stubGallery) Category(ctx context.Context, key string) (*models.Category, error) {
	for i := range s.categories {
		if s.categories[i].Key == key {
			return &s.categories[i], nil
		}
	}
	return nil, errs.ErrCategoryNotFound
}
func (s *stubGallery) CreateCategory(ctx context.Context, key, title string) (*models.Category, error) {
	return &models.Category{Key: key, Title: title}, nil
}
func (s *stubGallery) DeleteCategory(ctx context.Context, key string) error { return nil }
func (s *stubGallery) AddImage(ctx context.Context, key, filename string, data io.Reader) (string, error) {
	return "img-1", nil
}
func (s *stubGallery) RemoveImage(ctx context.Context, key, imageID string) error { return nil }
func (s *stubGallery) OpenImage(ctx context.Context, imageID string) (io.ReadCloser, error) {
	return nil, errs.ErrPhotoNotFound
}

type stubAuth struct {
	sessions map[string]*models.Session
}

func (s *stubAuth) Login(ctx context.Context, username, password string) (*models.Session, error) {
	return nil, errs.ErrInvalidCredentials
}
func (s *stubAuth) Logout(ctx context.Context, sessionID string) error { return nil }
func (s *stubAuth) Session(ctx context.Context, sessionID string) (*models.Session, error) {
	if session, ok := s.sessions[sessionID]; ok {
		return session, nil
	}
	return nil, errs.ErrSessionNotFound
}

type stubReplies struct{}

func (stubReplies) Draft(replyType service.ReplyType) (service.ReplyDraft, error) {
	return service.ReplyDraft{Subject: "s", BodyHTML: "b"}, nil
}
func (stubReplies) Send(ctx context.Context, replyType service.ReplyType, guestEmail, subject, bodyHTML string) (notification.Outcome, error) {
	return notification.Outcome{Success: true}, nil
}

// memorySessions satisfies repository.SessionRepository for flash storage.
type memorySessions struct {
	flashes map[string]string
}

func newMemorySessions() *memorySessions {
	return &memorySessions{flashes: map[string]string{}}
}

func (m *memorySessions) Create(ctx context.Context, session *models.Session, ttl time.Duration) error {
	return nil
}
func (m *memorySessions) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	return nil, errs.ErrSessionNotFound
}
func (m *memorySessions) Delete(ctx context.Context, sessionID string) error { return nil }
func (m *memorySessions) SetFlash(ctx context.Context, sessionID, message string) error {
	m.flashes[sessionID] = message
	return nil
}
func (m *memorySessions) PopFlash(ctx context.Context, sessionID string) (string, error) {
	message := m.flashes[sessionID]
	delete(m.flashes, sessionID)
	return message, nil
}

// handlerStubs exposes the mutable stubs behind a test handler.
type handlerStubs struct {
	bookings *stubBookings
	gallery  *stubGallery
}

func newTestHandler(t *testing.T, auth service.AuthService) (*Handler, *handlerStubs) {
	t.Helper()
	stubs := &handlerStubs{bookings: &stubBookings{}, gallery: &stubGallery{}}
	if auth == nil {
		auth = &stubAuth{sessions: map[string]*models.Session{}}
	}
	h, err := NewHandler(
		stubs.bookings, stubFeedback{}, stubContacts{},
		stubs.gallery, auth, stubReplies{},
		newMemorySessions(), logger.NewLogger("test"),
	)
	require.NoError(t, err)
	return h, stubs
}

func TestRoutes_IndexRenders(t *testing.T) {
	h, _ := newTestHandler(t, nil)

	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Shri Ranchoddas Hindu Arogya Bhavan")
}

func TestRoutes_UnknownPathRenders404Page(t *testing.T) {
	h, _ := newTestHandler(t, nil)

	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/no-such-page", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page not found")
}

func TestRoutes_AdminPagesRedirectToLogin(t *testing.T) {
	h, _ := newTestHandler(t, nil)

	for _, path := range []string{"/bookings", "/feedbacks", "/contacts", "/gallery/edit"} {
		rec := httptest.NewRecorder()
		h.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusSeeOther, rec.Code, path)
		assert.Equal(t, "/login", rec.Header().Get("Location"), path)
	}
}

func TestRoutes_AdminSessionGrantsAccess(t *testing.T) {
	auth := &stubAuth{sessions: map[string]*models.Session{
		"sess-1": {ID: "sess-1", AdminID: 1, Username: "admin"},
	}}
	h, _ := newTestHandler(t, auth)

	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	req.AddCookie(&http.Cookie{Name: "rab_session", Value: "sess-1"})
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Bookings")
}

func TestIndex_BuildsCarouselFromShowcaseCategories(t *testing.T) {
	h, stubs := newTestHandler(t, nil)
	stubs.gallery.categories = []models.Category{
		{Key: "entrances", Images: []string{"e1.jpg", "e2.jpg", "shared.jpg"}},
		{Key: "hotel_view", Images: []string{"shared.jpg", "v1.jpg", "v2.jpg", "v3.jpg", "v4.jpg"}},
		{Key: "signs", Images: []string{"s1.jpg", "s2.jpg", "s3.jpg", "s4.jpg"}},
	}

	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "/gallery/image/e1.jpg")
	assert.Contains(t, body, "/gallery/image/v4.jpg")
	// Images shared between categories appear once.
	assert.Equal(t, 1, strings.Count(body, "shared.jpg"))
	// 11 distinct images, carousel caps at 10.
	assert.Contains(t, body, "s3.jpg")
	assert.NotContains(t, body, "s4.jpg")
}

func TestGalleryCategory_PaginatesImages(t *testing.T) {
	h, stubs := newTestHandler(t, nil)
	images := make([]string, 10)
	for i := range images {
		images[i] = fmt.Sprintf("img-%02d.jpg", i+1)
	}
	stubs.gallery.categories = []models.Category{
		{ID: "cat-1", Key: "rooms", Title: "Rooms", Images: images},
	}

	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/gallery/rooms", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "img-01.jpg")
	assert.Contains(t, body, "img-08.jpg")
	assert.NotContains(t, body, "img-09.jpg")
	assert.Contains(t, body, "Page 1 of 2")

	rec = httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/gallery/rooms?page=2", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body = rec.Body.String()
	assert.Contains(t, body, "img-09.jpg")
	assert.Contains(t, body, "img-10.jpg")
	assert.NotContains(t, body, "img-08.jpg")
	assert.Contains(t, body, "Page 2 of 2")
}

func TestGalleryCategory_PageBeyondEndRendersEmpty(t *testing.T) {
	h, stubs := newTestHandler(t, nil)
	stubs.gallery.categories = []models.Category{
		{ID: "cat-1", Key: "rooms", Title: "Rooms", Images: []string{"img-01.jpg"}},
	}

	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/gallery/rooms?page=5", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "img-01.jpg")
}

func TestBookingSubmit_RedirectsWithFlash(t *testing.T) {
	h, stubs := newTestHandler(t, nil)
	bookings := stubs.bookings

	form := "name=Asha&phone=123&email=asha%40example.com&check_in=2026-10-01&check_out=2026-10-04&guests=2"
	req := httptest.NewRequest(http.MethodPost, "/booking", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/booking", rec.Header().Get("Location"))
	require.Len(t, bookings.created, 1)
	assert.Equal(t, "Asha", bookings.created[0].Name)
	assert.Equal(t, 2, bookings.created[0].Guests)
}
