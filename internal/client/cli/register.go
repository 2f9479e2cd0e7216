package cli

import (
	"context"
	"time"

	"github.com/dmitrijs2005/eventposter/internal/client/models"
)

func (a *App) registerForEventPage(ctx context.Context, eventID int64) {
	event, err := a.api.GetEvent(ctx, eventID)
	if err != nil {
		a.showError(err)
		return
	}

	var user *models.User
	if sess := a.sessions.Get(ctx); sess != nil {
		user = sess.User
	}
	switch {
	case event.OwnedBy(user):
		a.println("You created this event, no registration needed.")
		return
	case event.Full():
		a.println("This event has reached its capacity.")
		return
	case event.EventDate.Before(time.Now()):
		a.println("This event has already taken place.")
		return
	}

	a.printf("Registering for %q on %s\n", event.Title, event.EventDate.Format(dateLayout))

	first, err := getSimpleText(a.reader, "First name", a.out)
	if err != nil {
		a.showError(err)
		return
	}
	last, err := getSimpleText(a.reader, "Last name", a.out)
	if err != nil {
		a.showError(err)
		return
	}
	notes, err := getSimpleText(a.reader, "Notes (optional)", a.out)
	if err != nil {
		a.showError(err)
		return
	}

	req := models.RegistrationRequest{
		EventID:   eventID,
		FirstName: first,
		LastName:  last,
		Notes:     notes,
	}
	if err := req.Validate(); err != nil {
		a.showError(err)
		return
	}

	if _, err := a.api.CreateRegistration(ctx, req); err != nil {
		a.showError(err)
		return
	}

	a.navigate(ctx, confirmationURL("registration-successful", event.Title, event.ID))
}
