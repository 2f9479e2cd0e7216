package cli

import (
	"context"
	"time"

	"github.com/dmitrijs2005/eventposter/internal/client/models"
)

const dateLayout = "2006-01-02 15:04"

func (a *App) homePage(ctx context.Context) {
	a.println("EventPoster: find events, or post your own.")
	a.println("Type 'events' to browse, 'help' for all commands.")
}

func (a *App) eventsPage(ctx context.Context) {
	a.println("Loading events...")
	events, err := a.api.ListEvents(ctx)
	if err != nil {
		a.showError(err)
		return
	}
	if ctx.Err() != nil {
		return
	}

	if len(events) == 0 {
		a.println("No events yet.")
		return
	}
	a.println("Upcoming events:")
	for _, e := range events {
		a.printf("  #%-4d %-30s %-16s %s  %d/%d registered\n",
			e.ID, e.Title, e.Location, e.EventDate.Format(dateLayout),
			e.RegistrationsCount, e.Seats)
	}
	a.println("Use 'show <id>' for details.")
}

func (a *App) eventDetailsPage(ctx context.Context, id int64) {
	a.println("Loading event...")
	event, err := a.api.GetEvent(ctx, id)
	if err != nil {
		a.showError(err)
		return
	}
	if ctx.Err() != nil {
		return
	}

	a.printf("#%d %s\n", event.ID, event.Title)
	if event.Description != "" {
		a.println(event.Description)
	}
	a.printf("  Type:     %s\n", event.EventType)
	a.printf("  Location: %s\n", event.Location)
	a.printf("  Date:     %s\n", event.EventDate.Format(dateLayout))
	a.printf("  Seats:    %d/%d taken, %d available\n",
		event.RegistrationsCount, event.Seats, event.AvailableSeats())
	if event.EventDate.Before(time.Now()) {
		a.println("  This event has already taken place.")
	}

	var user *models.User
	if sess := a.sessions.Get(ctx); sess != nil {
		user = sess.User
	}
	switch {
	case event.OwnedBy(user):
		a.printf("You created this event. Use 'edit %d' or 'delete %d'.\n", event.ID, event.ID)
	case event.Full():
		a.println("This event has reached its capacity.")
	default:
		a.printf("Use 'register %d' to attend.\n", event.ID)
	}
}
