package handler

import (
	"errors"
	"net/http"

	"github.com/Prathamesh666/RAB-Matheran-Website/internal/errs"
	"github.com/Prathamesh666/RAB-Matheran-Website/internal/middleware"
)

// LoginPage serves the admin login form.
func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.renderer.render(w, http.StatusOK, "login.html", "Login", h.popFlash(w, r), nil)
}

// LoginSubmit verifies the credentials and opens an admin session.
func (h *Handler) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	session, err := h.auth.Login(r.Context(), r.PostFormValue("username"), r.PostFormValue("password"))
	if err != nil {
		if !errors.Is(err, errs.ErrInvalidCredentials) {
			h.log.WithField("error", err.Error()).Error("login failed")
		}
		h.setFlash(w, r, "Invalid credentials.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    session.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	h.setFlash(w, r, "Logged in successfully.")
	http.Redirect(w, r, "/gallery/edit", http.StatusSeeOther)
}

// Logout closes the admin session.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookie); err == nil {
		if err := h.auth.Logout(r.Context(), cookie.Value); err != nil {
			h.log.WithField("error", err.Error()).Debug("session delete failed")
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:   middleware.SessionCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	h.setFlash(w, r, "Logged out.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
