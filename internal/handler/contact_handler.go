package handler

import (
	"net/http"

	"github.com/Prathamesh666/RAB-Matheran-Website/internal/service"
)

// ContactForm serves the public contact form.
func (h *Handler) ContactForm(w http.ResponseWriter, r *http.Request) {
	h.renderer.render(w, http.StatusOK, "contact.html", "Contact", h.popFlash(w, r), nil)
}

// ContactSubmit records the submission and alerts the administrator with
// the quick-reply email.
func (h *Handler) ContactSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	input := service.CreateContactInput{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Message: r.PostFormValue("message"),
	}
	if _, err := h.contacts.Create(r.Context(), input); err != nil {
		h.setFlash(w, r, "Please fill in your name, a valid email and a message.")
		http.Redirect(w, r, "/contact", http.StatusSeeOther)
		return
	}

	h.setFlash(w, r, "Thank you for contacting us. We'll get back to you soon.")
	http.Redirect(w, r, "/contact", http.StatusSeeOther)
}

// Contacts lists guest inquiries for the admin with quick-reply links.
func (h *Handler) Contacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.contacts.List(r.Context())
	if err != nil {
		h.log.WithField("error", err.Error()).Error("failed to list contacts")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.renderer.render(w, http.StatusOK, "contacts.html", "Contact Inquiries", h.popFlash(w, r), contacts)
}

// replyPageData feeds the reply editor template.
type replyPageData struct {
	ReplyType  string
	GuestEmail string
	Subject    string
	BodyHTML   string
}

// ReplyPage serves the prefilled quick-reply editor.
func (h *Handler) ReplyPage(w http.ResponseWriter, r *http.Request) {
	replyType := service.ReplyType(r.PathValue("type"))
	guestEmail := r.PathValue("email")

	draft, err := h.replies.Draft(replyType)
	if err != nil {
		h.setFlash(w, r, "Invalid reply type.")
		http.Redirect(w, r, "/contact", http.StatusSeeOther)
		return
	}

	h.renderer.render(w, http.StatusOK, "reply_to_contact.html", "Reply", h.popFlash(w, r), replyPageData{
		ReplyType:  string(replyType),
		GuestEmail: guestEmail,
		Subject:    draft.Subject,
		BodyHTML:   draft.BodyHTML,
	})
}

// ReplySubmit sends the admin-edited reply to the guest.
func (h *Handler) ReplySubmit(w http.ResponseWriter, r *http.Request) {
	replyType := service.ReplyType(r.PathValue("type"))
	guestEmail := r.PathValue("email")

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	outcome, err := h.replies.Send(r.Context(), replyType, guestEmail,
		r.PostFormValue("subject"), r.PostFormValue("body_html"))
	if err != nil {
		h.setFlash(w, r, "Invalid reply type.")
	} else if !outcome.Success {
		h.setFlash(w, r, "Reply could not be delivered.")
	} else {
		h.setFlash(w, r, "Reply sent to guest.")
	}
	http.Redirect(w, r, "/contact", http.StatusSeeOther)
}
