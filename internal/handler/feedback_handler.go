package handler

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"path"
	"strconv"

	"github.com/Prathamesh666/RAB-Matheran-Website/internal/errs"
	"github.com/Prathamesh666/RAB-Matheran-Website/internal/service"
)

// feedback photo uploads are capped at 10MB of form memory.
const maxUploadMemory = 10 << 20

// FeedbackForm serves the public feedback form.
func (h *Handler) FeedbackForm(w http.ResponseWriter, r *http.Request) {
	h.renderer.render(w, http.StatusOK, "feedback.html", "Feedback", h.popFlash(w, r), nil)
}

// FeedbackSubmit stores the feedback with its photos and thanks the guest
// by email.
func (h *Handler) FeedbackSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	rating, _ := strconv.Atoi(r.PostFormValue("rating"))

	input := service.CreateFeedbackInput{
		Name:     r.PostFormValue("name"),
		Email:    r.PostFormValue("email"),
		Rating:   rating,
		Comments: r.PostFormValue("comments"),
	}

	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File["photos"] {
			file, err := header.Open()
			if err != nil {
				continue
			}
			defer file.Close()
			input.Photos = append(input.Photos, service.PhotoUpload{
				Filename: header.Filename,
				Data:     file,
			})
		}
	}

	if _, err := h.feedback.Create(r.Context(), input); err != nil {
		if errors.Is(err, errs.ErrInvalidRating) {
			h.setFlash(w, r, "Rating must be between 0 and 10.")
		} else {
			h.setFlash(w, r, "Could not submit your feedback. Please try again.")
		}
		http.Redirect(w, r, "/feedback", http.StatusSeeOther)
		return
	}

	h.setFlash(w, r, "Thank you for your feedback!")
	http.Redirect(w, r, "/feedback", http.StatusSeeOther)
}

// Feedbacks lists all feedback entries for the administrator.
func (h *Handler) Feedbacks(w http.ResponseWriter, r *http.Request) {
	entries, err := h.feedback.List(r.Context())
	if err != nil {
		h.log.WithField("error", err.Error()).Error("failed to list feedback")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.renderer.render(w, http.StatusOK, "feedbacks.html", "Feedback", h.popFlash(w, r), entries)
}

// FeedbackPhoto streams one stored feedback photo.
func (h *Handler) FeedbackPhoto(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	photo, err := h.feedback.OpenPhoto(r.Context(), id)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer photo.Close()

	contentType := mime.TypeByExtension(path.Ext(id))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	io.Copy(w, photo)
}

// FeedbackEditPage serves the edit form for one feedback entry.
func (h *Handler) FeedbackEditPage(w http.ResponseWriter, r *http.Request) {
	entry, err := h.feedback.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.NotFound(w, r)
		return
	}
	h.renderer.render(w, http.StatusOK, "feedback_edit.html", "Edit Feedback", h.popFlash(w, r), entry)
}

// FeedbackEditSubmit saves edits to a feedback entry.
func (h *Handler) FeedbackEditSubmit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	entry, err := h.feedback.Get(r.Context(), id)
	if err != nil {
		h.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	rating, _ := strconv.Atoi(r.PostFormValue("rating"))

	entry.Name = r.PostFormValue("name")
	entry.Email = r.PostFormValue("email")
	entry.Rating = rating
	entry.Comments = r.PostFormValue("comments")

	if err := h.feedback.Update(r.Context(), entry); err != nil {
		h.setFlash(w, r, "Could not save the feedback entry.")
		http.Redirect(w, r, "/feedback/edit/"+id, http.StatusSeeOther)
		return
	}
	h.setFlash(w, r, "Feedback updated.")
	http.Redirect(w, r, "/feedbacks", http.StatusSeeOther)
}

// FeedbackDelete removes a feedback entry and its photos.
func (h *Handler) FeedbackDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.feedback.Delete(r.Context(), id); err != nil {
		if errors.Is(err, errs.ErrFeedbackNotFound) {
			h.NotFound(w, r)
			return
		}
		h.setFlash(w, r, "Could not delete the feedback entry.")
	} else {
		h.setFlash(w, r, "Feedback deleted.")
	}
	http.Redirect(w, r, "/feedbacks", http.StatusSeeOther)
}
