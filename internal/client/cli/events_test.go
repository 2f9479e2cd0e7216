package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/eventposter/internal/client/models"
)

func TestEventsPageEmpty(t *testing.T) {
	a, out := newTestApp(&fakeAPI{}, readerFromLines())
	a.eventsPage(context.Background())
	if !strings.Contains(out.String(), "No events yet.") {
		t.Fatalf("output: %q", out.String())
	}
}

func TestEventDetailsOwnerHint(t *testing.T) {
	f := &fakeAPI{
		getEventOut: &models.Event{
			ID: 5, Title: "GopherCon", EventType: "conference",
			EventDate: futureDate(t), Seats: 10, CreatorID: 7,
		},
	}
	a, out := newTestApp(f, readerFromLines())
	loginTestUser(t, a, "alice")

	a.eventDetailsPage(context.Background(), 5)
	if !strings.Contains(out.String(), "You created this event.") {
		t.Fatalf("owner hint missing: %q", out.String())
	}
}

func TestEventDetailsRegisterHint(t *testing.T) {
	f := &fakeAPI{
		getEventOut: &models.Event{
			ID: 5, Title: "GopherCon", EventType: "conference",
			EventDate: futureDate(t), Seats: 10, RegistrationsCount: 4, CreatorID: 99,
		},
	}
	a, out := newTestApp(f, readerFromLines())

	a.eventDetailsPage(context.Background(), 5)
	s := out.String()
	if !strings.Contains(s, "4/10 taken, 6 available") {
		t.Fatalf("availability missing: %q", s)
	}
	if !strings.Contains(s, "register 5") {
		t.Fatalf("register hint missing: %q", s)
	}
}

func TestEventDetailsFullEvent(t *testing.T) {
	f := &fakeAPI{
		getEventOut: &models.Event{
			ID: 5, Title: "GopherCon", EventType: "conference",
			EventDate: futureDate(t), Seats: 2, RegistrationsCount: 2, CreatorID: 99,
		},
	}
	a, out := newTestApp(f, readerFromLines())

	a.eventDetailsPage(context.Background(), 5)
	if !strings.Contains(out.String(), "reached its capacity") {
		t.Fatalf("output: %q", out.String())
	}
}
