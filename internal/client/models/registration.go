package models

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/eventposter/internal/common"
)

// Registration is a user's registration for one event. The event display
// fields are denormalized by the server for list views and may be empty on
// freshly created registrations.
type Registration struct {
	ID        int64     `json:"id"`
	EventID   int64     `json:"event_id"`
	UserID    int64     `json:"user_id"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	EventTitle    string    `json:"event_title,omitempty"`
	EventLocation string    `json:"event_location,omitempty"`
	EventDate     time.Time `json:"event_date,omitempty"`
	EventType     string    `json:"event_type,omitempty"`
}

// RegistrationRequest is the payload for creating or updating a registration.
type RegistrationRequest struct {
	EventID   int64  `json:"event_id"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

func (r *RegistrationRequest) Validate() error {
	if r.EventID <= 0 {
		return fmt.Errorf("%w: event id is required", common.ErrValidation)
	}
	return nil
}
