package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/Prathamesh666/RAB-Matheran-Website/internal/errs"
	"github.com/Prathamesh666/RAB-Matheran-Website/internal/models"
	"github.com/Prathamesh666/RAB-Matheran-Website/internal/service"
)

// BookingForm serves the public booking form.
func (h *Handler) BookingForm(w http.ResponseWriter, r *http.Request) {
	h.renderer.render(w, http.StatusOK, "booking.html", "Booking", h.popFlash(w, r), nil)
}

// BookingSubmit accepts the booking form, persists the booking and
// triggers the admin and guest notifications.
func (h *Handler) BookingSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	guests, _ := strconv.Atoi(r.PostFormValue("guests"))

	input := service.CreateBookingInput{
		Name:     r.PostFormValue("name"),
		Phone:    r.PostFormValue("phone"),
		Email:    r.PostFormValue("email"),
		CheckIn:  r.PostFormValue("check_in"),
		CheckOut: r.PostFormValue("check_out"),
		Guests:   guests,
		Note:     r.PostFormValue("note"),
	}

	if _, err := h.bookings.Create(r.Context(), input); err != nil {
		switch {
		case errors.Is(err, errs.ErrCheckOutBeforeCheckIn):
			h.setFlash(w, r, "Check-out date must be after check-in date.")
		case errors.Is(err, errs.ErrInvalidDates):
			h.setFlash(w, r, "Please provide valid check-in and check-out dates.")
		default:
			h.setFlash(w, r, "Could not submit your booking. Please check the form and try again.")
		}
		http.Redirect(w, r, "/booking", http.StatusSeeOther)
		return
	}

	h.setFlash(w, r, "Booking submitted. A confirmation email is on its way.")
	http.Redirect(w, r, "/booking", http.StatusSeeOther)
}

// Bookings lists all bookings for the administrator.
func (h *Handler) Bookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookings.List(r.Context())
	if err != nil {
		h.log.WithField("error", err.Error()).Error("failed to list bookings")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.renderer.render(w, http.StatusOK, "bookings.html", "Bookings", h.popFlash(w, r), bookings)
}

// BookingAccept marks a booking accepted and notifies the guest.
func (h *Handler) BookingAccept(w http.ResponseWriter, r *http.Request) {
	h.bookingStatusAction(w, r, h.bookings.Accept, "Booking accepted and guest notified.")
}

// BookingReject marks a booking rejected and notifies the guest.
func (h *Handler) BookingReject(w http.ResponseWriter, r *http.Request) {
	h.bookingStatusAction(w, r, h.bookings.Reject, "Booking rejected and guest notified.")
}

func (h *Handler) bookingStatusAction(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, id string) error, flash string) {
	id := r.PathValue("id")
	if err := action(r.Context(), id); err != nil {
		if errors.Is(err, errs.ErrBookingNotFound) {
			h.NotFound(w, r)
			return
		}
		h.log.WithBookingID(id).Error("booking status update failed")
		h.setFlash(w, r, "Could not update the booking.")
	} else {
		h.setFlash(w, r, flash)
	}
	http.Redirect(w, r, "/bookings", http.StatusSeeOther)
}

// BookingEditPage serves the edit form for one booking.
func (h *Handler) BookingEditPage(w http.ResponseWriter, r *http.Request) {
	booking, err := h.bookings.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.NotFound(w, r)
		return
	}
	h.renderer.render(w, http.StatusOK, "booking_edit.html", "Edit Booking", h.popFlash(w, r), booking)
}

// BookingEditSubmit saves an edited booking; the guest is told the
// booking's resulting status.
func (h *Handler) BookingEditSubmit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	existing, err := h.bookings.Get(r.Context(), id)
	if err != nil {
		h.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	guests, _ := strconv.Atoi(r.PostFormValue("guests"))

	booking := &models.Booking{
		ID:        id,
		Name:      r.PostFormValue("name"),
		Phone:     r.PostFormValue("phone"),
		Email:     r.PostFormValue("email"),
		CheckIn:   r.PostFormValue("check_in"),
		CheckOut:  r.PostFormValue("check_out"),
		Guests:    guests,
		Note:      r.PostFormValue("note"),
		Status:    r.PostFormValue("status"),
		CreatedAt: existing.CreatedAt,
	}

	if err := h.bookings.Update(r.Context(), booking); err != nil {
		h.setFlash(w, r, "Could not save the booking. Please check the dates.")
		http.Redirect(w, r, "/booking/edit/"+id, http.StatusSeeOther)
		return
	}
	h.setFlash(w, r, "Booking updated and guest notified.")
	http.Redirect(w, r, "/bookings", http.StatusSeeOther)
}

// BookingDelete removes a booking.
func (h *Handler) BookingDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.bookings.Delete(r.Context(), id); err != nil {
		if errors.Is(err, errs.ErrBookingNotFound) {
			h.NotFound(w, r)
			return
		}
		h.setFlash(w, r, "Could not delete the booking.")
	} else {
		h.setFlash(w, r, "Booking deleted.")
	}
	http.Redirect(w, r, "/bookings", http.StatusSeeOther)
}
