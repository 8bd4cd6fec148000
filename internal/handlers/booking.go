package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/OlamideOlanipekun/NaijaBites/internal/models"
	"github.com/OlamideOlanipekun/NaijaBites/internal/services"
)

type BookingHandler struct {
	booking *services.BookingService
}

func NewBookingHandler(booking *services.BookingService) *BookingHandler {
	return &BookingHandler{booking: booking}
}

// CreateReservation records a table booking request.
func (h *BookingHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var res models.Reservation
	if err := json.NewDecoder(r.Body).Decode(&res); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if err := h.booking.CreateReservation(r.Context(), &res); err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":     fmt.Sprintf("Oga %s, your table is reserved. We've sent the details to %s. See you soon!", res.Name, res.Email),
		"reservation": res,
	})
}

// CreateContactMessage records a contact form submission.
func (h *BookingHandler) CreateContactMessage(w http.ResponseWriter, r *http.Request) {
	var msg models.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if err := h.booking.CreateContactMessage(r.Context(), &msg); err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "Thank you for reaching out! We'll get back to you faster than a hot plate of Jollof.",
	})
}
