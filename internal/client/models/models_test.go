package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/eventposter/internal/common"
)

func TestEventRequest_Validate(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	valid := EventRequest{
		Title:     "Go Meetup",
		EventType: "meetup",
		EventDate: now.Add(48 * time.Hour),
		Seats:     30,
	}

	t.Run("valid", func(t *testing.T) {
		r := valid
		require.NoError(t, r.Validate(now))
	})

	tests := []struct {
		name   string
		mutate func(*EventRequest)
		want   string
	}{
		{"missing title", func(r *EventRequest) { r.Title = "" }, "title is required"},
		{"missing type", func(r *EventRequest) { r.EventType = "" }, "event type is required"},
		{"missing date", func(r *EventRequest) { r.EventDate = time.Time{} }, "event date is required"},
		{"past date", func(r *EventRequest) { r.EventDate = now.Add(-time.Hour) }, "event date must be in the future"},
		{"date equal to now", func(r *EventRequest) { r.EventDate = now }, "event date must be in the future"},
		{"zero seats", func(r *EventRequest) { r.Seats = 0 }, "seats must be greater than zero"},
		{"negative seats", func(r *EventRequest) { r.Seats = -3 }, "seats must be greater than zero"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			err := r.Validate(now)
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrValidation)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestEventRequest_Validate_CollectsAllErrors(t *testing.T) {
	r := EventRequest{}
	err := r.Validate(time.Now())
	require.Error(t, err)
	for _, want := range []string{"title", "event type", "event date", "seats"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestEvent_AvailableSeatsAndFull(t *testing.T) {
	e := Event{Seats: 10, RegistrationsCount: 4}
	assert.Equal(t, 6, e.AvailableSeats())
	assert.False(t, e.Full())

	e.RegistrationsCount = 10
	assert.Equal(t, 0, e.AvailableSeats())
	assert.True(t, e.Full())

	// server over-admitted; do not render a negative number
	e.RegistrationsCount = 12
	assert.Equal(t, 0, e.AvailableSeats())
	assert.True(t, e.Full())
}

func TestEvent_OwnedBy(t *testing.T) {
	e := Event{CreatorID: 7}
	assert.True(t, e.OwnedBy(&User{ID: 7}))
	assert.False(t, e.OwnedBy(&User{ID: 8}))
	assert.False(t, e.OwnedBy(nil))
}

func TestRegistrationRequest_Validate(t *testing.T) {
	r := RegistrationRequest{EventID: 42, Notes: "vegetarian"}
	require.NoError(t, r.Validate())

	r.EventID = 0
	assert.ErrorIs(t, r.Validate(), common.ErrValidation)
}

func TestSignupRequest_Validate(t *testing.T) {
	r := SignupRequest{Username: "alice", Password: "pw", Email: "a@example.org"}
	require.NoError(t, r.Validate())

	r.Email = ""
	err := r.Validate()
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Contains(t, err.Error(), "email is required")
}

func TestCredentials_Validate(t *testing.T) {
	c := Credentials{Username: "alice", Password: "pw"}
	require.NoError(t, c.Validate())

	c.Password = ""
	assert.ErrorIs(t, c.Validate(), common.ErrValidation)
}
