package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/eventposter/internal/common"
)

// Event is the canonical client-side event shape. The backend has shipped
// several spellings for the creator, capacity and registration-count fields;
// the API layer folds those into this one shape before an event reaches any
// view (see api.eventWire).
type Event struct {
	ID                 int64     `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Location           string    `json:"location"`
	EventType          string    `json:"event_type"`
	EventDate          time.Time `json:"event_date"`
	Seats              int       `json:"seats"`
	CreatorID          int64     `json:"creator_id"`
	RegistrationsCount int       `json:"registrations_count"`
	CreatedAt          time.Time `json:"created_at,omitempty"`
}

// AvailableSeats returns the remaining capacity, never negative.
func (e *Event) AvailableSeats() int {
	n := e.Seats - e.RegistrationsCount
	if n < 0 {
		return 0
	}
	return n
}

// Full reports whether the event has reached capacity.
func (e *Event) Full() bool {
	return e.Seats > 0 && e.RegistrationsCount >= e.Seats
}

// OwnedBy reports whether the given user created this event.
func (e *Event) OwnedBy(u *User) bool {
	return u != nil && u.ID == e.CreatorID
}

// EventRequest is the payload for creating or updating an event.
type EventRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	EventType   string    `json:"event_type"`
	EventDate   time.Time `json:"event_date"`
	Seats       int       `json:"seats"`
}

// Validate applies the form rules: title and type required, date required
// and strictly in the future at submit time, seats positive. The server
// revalidates; this only blocks obviously bad submissions.
func (r *EventRequest) Validate(now time.Time) error {
	var errs []error
	if r.Title == "" {
		errs = append(errs, errors.New("title is required"))
	}
	if r.EventType == "" {
		errs = append(errs, errors.New("event type is required"))
	}
	if r.EventDate.IsZero() {
		errs = append(errs, errors.New("event date is required"))
	} else if !r.EventDate.After(now) {
		errs = append(errs, errors.New("event date must be in the future"))
	}
	if r.Seats <= 0 {
		errs = append(errs, errors.New("number of seats must be greater than zero"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", common.ErrValidation, errors.Join(errs...))
	}
	return nil
}
