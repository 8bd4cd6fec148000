package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/OlamideOlanipekun/NaijaBites/internal/models"
	"github.com/OlamideOlanipekun/NaijaBites/internal/repository"
)

// BookingService validates and records reservation and contact submissions.
// Submission is intake only: the site confirms receipt and nothing further
// happens downstream.
type BookingService struct {
	store repository.IntakeStore
}

func NewBookingService(store repository.IntakeStore) *BookingService {
	return &BookingService{store: store}
}

// CreateReservation checks the required fields, fills form defaults, and
// appends the booking to the intake store.
func (s *BookingService) CreateReservation(ctx context.Context, res *models.Reservation) error {
	fields := make(map[string]string)
	if strings.TrimSpace(res.Name) == "" {
		fields["name"] = "Name is required"
	}
	if strings.TrimSpace(res.Email) == "" {
		fields["email"] = "Email is required"
	}
	if strings.TrimSpace(res.Date) == "" {
		fields["date"] = "Date is required"
	}
	if strings.TrimSpace(res.Time) == "" {
		fields["time"] = "Time is required"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	if res.Guests == "" {
		res.Guests = "2"
	}
	if res.Occasion == "" {
		res.Occasion = "None"
	}
	if res.TablePreference == "" {
		res.TablePreference = models.TableMainDining
	}

	res.ID = uuid.NewString()
	res.CreatedAt = time.Now().UTC()
	return s.store.AddReservation(ctx, res)
}

// CreateContactMessage checks the required fields and appends the message to
// the intake store.
func (s *BookingService) CreateContactMessage(ctx context.Context, msg *models.ContactMessage) error {
	fields := make(map[string]string)
	if strings.TrimSpace(msg.Name) == "" {
		fields["name"] = "Name is required"
	}
	if strings.TrimSpace(msg.Email) == "" {
		fields["email"] = "Email is required"
	}
	if strings.TrimSpace(msg.Message) == "" {
		fields["message"] = "Message is required"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	msg.ID = uuid.NewString()
	msg.CreatedAt = time.Now().UTC()
	return s.store.AddContactMessage(ctx, msg)
}
