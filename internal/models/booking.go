package models

import "time"

// Reservation is a table booking request from the reservations form.
type Reservation struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	Guests          string    `json:"guests"`
	Occasion        string    `json:"occasion"`
	TablePreference string    `json:"table_preference"`
	CreatedAt       time.Time `json:"created_at"`
}

// Table preference options offered by the reservations page.
const (
	TableMainDining = "Main Dining"
	TableTerrace    = "Terrace"
	TableVIPLounge  = "VIP Lounge"
)

// ContactMessage is one submission from the contact form.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
