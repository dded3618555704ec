package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Prathamesh666/RAB-Matheran-Website/internal/models"
	"github.com/Prathamesh666/RAB-Matheran-Website/internal/service"
	"github.com/Prathamesh666/RAB-Matheran-Website/pkg/logger"
)

type contextKey string

const sessionContextKey contextKey = "admin_session"

// SessionCookie is the cookie carrying the admin session id.
const SessionCookie = "rab_session"

// LoggingMiddleware logs every request with its duration and a request id.
func LoggingMiddleware(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := uuid.New().String()

			next.ServeHTTP(w, r)

			log.WithFields(logrus.Fields{
				"request_id": requestID,
				"method":     r.Method,
				"path":       r.URL.Path,
				"duration":   time.Since(start).String(),
			}).Info("request handled")
		})
	}
}

// RequireAdmin redirects to the login page unless a valid admin session
// cookie is present. The session is placed on the request context.
func RequireAdmin(auth service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			session, err := auth.Session(r.Context(), cookie.Value)
			if err != nil {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), sessionContextKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext returns the admin session placed by RequireAdmin.
func SessionFromContext(ctx context.Context) *models.Session {
	session, _ := ctx.Value(sessionContextKey).(*models.Session)
	return session
}

// Chain applies middlewares right to left, so the first one listed runs
// outermost.
func Chain(h http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
