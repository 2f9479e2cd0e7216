package cli

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/eventposter/internal/client/models"
)

func TestDashboardListsBothHalves(t *testing.T) {
	f := &fakeAPI{
		myEvents: []models.Event{
			{ID: 5, Title: "GopherCon", EventDate: futureDate(t), Seats: 10, RegistrationsCount: 4},
		},
		myRegs: []models.Registration{
			{ID: 12, EventID: 3, EventTitle: "Go Meetup", EventDate: futureDate(t)},
		},
	}
	a, out := newTestApp(f, readerFromLines())
	loginTestUser(t, a, "alice")

	a.dashboardPage(context.Background())

	s := out.String()
	if !strings.Contains(s, "GopherCon") || !strings.Contains(s, "4/10 registered") {
		t.Fatalf("events half missing: %q", s)
	}
	if !strings.Contains(s, "Go Meetup") || !strings.Contains(s, "cancel <reg id>") {
		t.Fatalf("registrations half missing: %q", s)
	}
}

func TestDashboardPartialFailure(t *testing.T) {
	f := &fakeAPI{
		myEventsErr: errors.New("boom"),
		myRegs: []models.Registration{
			{ID: 12, EventID: 3, EventTitle: "Go Meetup", EventDate: futureDate(t)},
		},
	}
	a, out := newTestApp(f, readerFromLines())
	loginTestUser(t, a, "alice")

	a.dashboardPage(context.Background())

	s := out.String()
	if !strings.Contains(s, "ERROR: boom") {
		t.Fatalf("events error not surfaced: %q", s)
	}
	if !strings.Contains(s, "Go Meetup") {
		t.Fatalf("registrations should still render: %q", s)
	}
}

func TestDashboardEmpty(t *testing.T) {
	a, out := newTestApp(&fakeAPI{}, readerFromLines())
	loginTestUser(t, a, "alice")

	a.dashboardPage(context.Background())

	s := out.String()
	if !strings.Contains(s, "(none yet, try 'new')") || !strings.Contains(s, "(none yet, try 'events')") {
		t.Fatalf("empty hints missing: %q", s)
	}
}
