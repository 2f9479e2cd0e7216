package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/eventposter/internal/client/models"
)

func (a *App) createEventPage(ctx context.Context) {
	req, err := a.promptEventForm(models.EventRequest{})
	if err != nil {
		a.showError(err)
		return
	}

	if err := req.Validate(time.Now()); err != nil {
		a.showError(err)
		return
	}

	id, err := a.api.CreateEvent(ctx, req)
	if err != nil {
		a.showError(err)
		return
	}

	a.navigate(ctx, confirmationURL("event-created", req.Title, id))
}

func (a *App) editEventPage(ctx context.Context, id int64) {
	event, err := a.api.GetEvent(ctx, id)
	if err != nil {
		a.showError(err)
		return
	}

	var user *models.User
	if sess := a.sessions.Get(ctx); sess != nil {
		user = sess.User
	}
	if !event.OwnedBy(user) {
		a.println("Only the creator can edit this event.")
		return
	}

	req, err := a.promptEventForm(models.EventRequest{
		Title:       event.Title,
		Description: event.Description,
		Location:    event.Location,
		EventType:   event.EventType,
		EventDate:   event.EventDate,
		Seats:       event.Seats,
	})
	if err != nil {
		a.showError(err)
		return
	}

	if err := req.Validate(time.Now()); err != nil {
		a.showError(err)
		return
	}

	if err := a.api.UpdateEvent(ctx, id, req); err != nil {
		a.showError(err)
		return
	}

	a.navigate(ctx, confirmationURL("event-updated", req.Title, id))
}

// promptEventForm walks the user through the event fields. Non-zero values
// in cur become defaults, so the same form serves create and edit.
func (a *App) promptEventForm(cur models.EventRequest) (models.EventRequest, error) {
	var req models.EventRequest
	var err error

	if req.Title, err = GetTextWithDefault(a.reader, "Title", cur.Title, a.out); err != nil {
		return req, err
	}
	if req.Description, err = GetTextWithDefault(a.reader, "Description", cur.Description, a.out); err != nil {
		return req, err
	}
	if req.Location, err = GetTextWithDefault(a.reader, "Location", cur.Location, a.out); err != nil {
		return req, err
	}
	if req.EventType, err = GetTextWithDefault(a.reader, "Type (conference, workshop, meetup...)", cur.EventType, a.out); err != nil {
		return req, err
	}

	dateDefault := ""
	if !cur.EventDate.IsZero() {
		dateDefault = cur.EventDate.Format(dateLayout)
	}
	dateStr, err := GetTextWithDefault(a.reader, "Date ("+dateLayout+")", dateDefault, a.out)
	if err != nil {
		return req, err
	}
	if dateStr != "" {
		req.EventDate, err = time.ParseInLocation(dateLayout, dateStr, time.Local)
		if err != nil {
			return req, fmt.Errorf("invalid date %q, expected format %s", dateStr, dateLayout)
		}
	}

	seats, err := GetInt(a.reader, "Seats", cur.Seats, a.out)
	if err != nil {
		return req, err
	}
	req.Seats = seats

	return req, nil
}

func (a *App) deleteEventAction(ctx context.Context, id int64) {
	event, err := a.api.GetEvent(ctx, id)
	if err != nil {
		a.showError(err)
		return
	}

	var user *models.User
	if sess := a.sessions.Get(ctx); sess != nil {
		user = sess.User
	}
	if !event.OwnedBy(user) {
		a.println("Only the creator can delete this event.")
		return
	}

	prompt := fmt.Sprintf("Delete %q? All %d registrations will be removed with it (y/N)",
		event.Title, event.RegistrationsCount)
	answer, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		a.showError(err)
		return
	}
	if answer != "y" && answer != "Y" {
		a.println("Cancelled.")
		return
	}

	if err := a.api.DeleteEvent(ctx, id); err != nil {
		a.showError(err)
		return
	}

	a.navigate(ctx, confirmationURL("event-deleted", event.Title, 0))
}

func (a *App) cancelRegistrationAction(ctx context.Context, idArg string) {
	id, err := strconv.ParseInt(idArg, 10, 64)
	if err != nil || id <= 0 {
		a.printf("Invalid registration id: %q\n", idArg)
		return
	}

	if err := a.api.DeleteRegistration(ctx, id); err != nil {
		a.showError(err)
		return
	}

	a.navigate(ctx, confirmationURL("registration-deleted", "", 0))
}
