package api

import (
	"time"

	"github.com/dmitrijs2005/eventposter/internal/client/models"
)

// The backend has shipped several spellings for the same event fields over
// time (creator_id/created_by/userId, seats/capacity, registrations_count/
// registrations). The wire types below accept all of them and normalization
// folds each group into the one canonical models shape, so the fallback
// chains never leak into a view.

type eventWire struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	EventType   string `json:"event_type"`

	EventDate *time.Time `json:"event_date"`
	Date      *time.Time `json:"date"`

	Seats    int `json:"seats"`
	Capacity int `json:"capacity"`

	CreatorID *int64 `json:"creator_id"`
	CreatedBy *int64 `json:"created_by"`
	UserID    *int64 `json:"userId"`

	RegistrationsCount *int `json:"registrations_count"`
	Registrations      *int `json:"registrations"`
	AvailableSeats     *int `json:"available_seats"`

	CreatedAt time.Time `json:"created_at"`
}

func (w *eventWire) normalize() models.Event {
	e := models.Event{
		ID:          w.ID,
		Title:       w.Title,
		Description: w.Description,
		Location:    w.Location,
		EventType:   w.EventType,
		Seats:       w.Seats,
		CreatedAt:   w.CreatedAt,
	}

	switch {
	case w.EventDate != nil:
		e.EventDate = *w.EventDate
	case w.Date != nil:
		e.EventDate = *w.Date
	}

	if e.Seats == 0 {
		e.Seats = w.Capacity
	}

	switch {
	case w.CreatorID != nil:
		e.CreatorID = *w.CreatorID
	case w.CreatedBy != nil:
		e.CreatorID = *w.CreatedBy
	case w.UserID != nil:
		e.CreatorID = *w.UserID
	}

	switch {
	case w.RegistrationsCount != nil:
		e.RegistrationsCount = *w.RegistrationsCount
	case w.Registrations != nil:
		e.RegistrationsCount = *w.Registrations
	case w.AvailableSeats != nil && e.Seats > 0:
		e.RegistrationsCount = e.Seats - *w.AvailableSeats
	}

	return e
}

func normalizeEvents(ws []eventWire) []models.Event {
	out := make([]models.Event, 0, len(ws))
	for i := range ws {
		out = append(out, ws[i].normalize())
	}
	return out
}

type registrationWire struct {
	ID        int64     `json:"id"`
	EventID   int64     `json:"event_id"`
	UserID    int64     `json:"user_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`

	EventTitle    string     `json:"event_title"`
	EventLocation string     `json:"event_location"`
	EventType     string     `json:"event_type"`
	EventDate     *time.Time `json:"event_date"`
	Date          *time.Time `json:"date"`
}

func (w *registrationWire) normalize() models.Registration {
	r := models.Registration{
		ID:            w.ID,
		EventID:       w.EventID,
		UserID:        w.UserID,
		FirstName:     w.FirstName,
		LastName:      w.LastName,
		Notes:         w.Notes,
		CreatedAt:     w.CreatedAt,
		EventTitle:    w.EventTitle,
		EventLocation: w.EventLocation,
		EventType:     w.EventType,
	}
	switch {
	case w.EventDate != nil:
		r.EventDate = *w.EventDate
	case w.Date != nil:
		r.EventDate = *w.Date
	}
	return r
}

func normalizeRegistrations(ws []registrationWire) []models.Registration {
	out := make([]models.Registration, 0, len(ws))
	for i := range ws {
		out = append(out, ws[i].normalize())
	}
	return out
}
