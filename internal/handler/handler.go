package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/Prathamesh666/RAB-Matheran-Website/internal/middleware"
	"github.com/Prathamesh666/RAB-Matheran-Website/internal/repository"
	"github.com/Prathamesh666/RAB-Matheran-Website/internal/service"
	"github.com/Prathamesh666/RAB-Matheran-Website/pkg/logger"
)

const flashCookie = "rab_flash_id"

// Handler serves every page of the guest house site.
type Handler struct {
	renderer *renderer
	bookings service.BookingService
	feedback service.FeedbackService
	contacts service.ContactService
	gallery  service.GalleryService
	auth     service.AuthService
	replies  service.ReplyService
	sessions repository.SessionRepository
	log      *logger.Logger
}

// NewHandler creates the web handler with all its dependencies.
func NewHandler(
	bookings service.BookingService,
	feedback service.FeedbackService,
	contacts service.ContactService,
	gallery service.GalleryService,
	auth service.AuthService,
	replies service.ReplyService,
	sessions repository.SessionRepository,
	log *logger.Logger,
) (*Handler, error) {
	r, err := newRenderer(log)
	if err != nil {
		return nil, err
	}
	return &Handler{
		renderer: r,
		bookings: bookings,
		feedback: feedback,
		contacts: contacts,
		gallery:  gallery,
		auth:     auth,
		replies:  replies,
		sessions: sessions,
		log:      log,
	}, nil
}

// Routes builds the site mux. Admin-only routes get the session middleware.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	admin := middleware.RequireAdmin(h.auth)

	mux.HandleFunc("GET /{$}", h.Index)
	mux.HandleFunc("GET /about", h.About)

	mux.HandleFunc("GET /gallery", h.Gallery)
	mux.Handle("GET /gallery/edit", admin(http.HandlerFunc(h.GalleryEditPage)))
	mux.Handle("POST /gallery/edit", admin(http.HandlerFunc(h.GalleryEditAction)))
	mux.HandleFunc("GET /gallery/image/{id}", h.GalleryImage)
	mux.HandleFunc("GET /gallery/{category}", h.GalleryCategory)

	mux.HandleFunc("GET /booking", h.BookingForm)
	mux.HandleFunc("POST /booking", h.BookingSubmit)
	mux.Handle("GET /bookings", admin(http.HandlerFunc(h.Bookings)))
	mux.Handle("POST /booking/accept/{id}", admin(http.HandlerFunc(h.BookingAccept)))
	mux.Handle("POST /booking/reject/{id}", admin(http.HandlerFunc(h.BookingReject)))
	mux.Handle("GET /booking/edit/{id}", admin(http.HandlerFunc(h.BookingEditPage)))
	mux.Handle("POST /booking/edit/{id}", admin(http.HandlerFunc(h.BookingEditSubmit)))
	mux.Handle("POST /booking/delete/{id}", admin(http.HandlerFunc(h.BookingDelete)))

	mux.HandleFunc("GET /feedback", h.FeedbackForm)
	mux.HandleFunc("POST /feedback", h.FeedbackSubmit)
	mux.Handle("GET /feedbacks", admin(http.HandlerFunc(h.Feedbacks)))
	mux.HandleFunc("GET /feedback/photo/{id}", h.FeedbackPhoto)
	mux.Handle("GET /feedback/edit/{id}", admin(http.HandlerFunc(h.FeedbackEditPage)))
	mux.Handle("POST /feedback/edit/{id}", admin(http.HandlerFunc(h.FeedbackEditSubmit)))
	mux.Handle("POST /feedback/delete/{id}", admin(http.HandlerFunc(h.FeedbackDelete)))

	mux.HandleFunc("GET /contact", h.ContactForm)
	mux.HandleFunc("POST /contact", h.ContactSubmit)
	mux.Handle("GET /contacts", admin(http.HandlerFunc(h.Contacts)))
	mux.Handle("GET /reply/{type}/{email}", admin(http.HandlerFunc(h.ReplyPage)))
	mux.Handle("POST /reply/{type}/{email}", admin(http.HandlerFunc(h.ReplySubmit)))

	mux.HandleFunc("GET /login", h.LoginPage)
	mux.HandleFunc("POST /login", h.LoginSubmit)
	mux.HandleFunc("GET /logout", h.Logout)

	mux.HandleFunc("/", h.NotFound)

	return mux
}

// Gallery categories showcased on the landing page carousel, in display order.
var carouselCategories = []string{"entrances", "hotel_view", "signs"}

// carouselMax caps the number of carousel images.
const carouselMax = 10

// Index serves the landing page with its image carousel.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.renderer.render(w, http.StatusOK, "index.html", "Home", h.popFlash(w, r), h.carouselImages(r.Context()))
}

// carouselImages merges the showcase categories, keeping first-occurrence order.
func (h *Handler) carouselImages(ctx context.Context) []string {
	seen := make(map[string]bool)
	images := make([]string, 0, carouselMax)
	for _, key := range carouselCategories {
		category, err := h.gallery.Category(ctx, key)
		if err != nil {
			continue
		}
		for _, image := range category.Images {
			if seen[image] {
				continue
			}
			seen[image] = true
			images = append(images, image)
			if len(images) == carouselMax {
				return images
			}
		}
	}
	return images
}

// About serves the about page.
func (h *Handler) About(w http.ResponseWriter, r *http.Request) {
	h.renderer.render(w, http.StatusOK, "about.html", "About", h.popFlash(w, r), nil)
}

// NotFound serves the styled 404 page.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.renderer.render(w, http.StatusNotFound, "404.html", "Not Found", "", nil)
}

// flashID returns the visitor's flash cookie, setting one when absent.
func (h *Handler) flashID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(flashCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	id := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
	})
	return id
}

func (h *Handler) setFlash(w http.ResponseWriter, r *http.Request, message string) {
	if err := h.sessions.SetFlash(r.Context(), h.flashID(w, r), message); err != nil {
		h.log.WithField("error", err.Error()).Debug("flash message not stored")
	}
}

func (h *Handler) popFlash(w http.ResponseWriter, r *http.Request) string {
	message, err := h.sessions.PopFlash(r.Context(), h.flashID(w, r))
	if err != nil {
		return ""
	}
	return message
}
