package cli

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/eventposter/internal/client/models"
)

// dashboardPage shows the user's own events and registrations. Both lists
// are fetched concurrently; either half failing does not hide the other.
func (a *App) dashboardPage(ctx context.Context) {
	a.println("Loading your dashboard...")

	var (
		wg            sync.WaitGroup
		events        []models.Event
		registrations []models.Registration
		eventsErr     error
		regsErr       error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		events, eventsErr = a.api.MyEvents(ctx)
	}()
	go func() {
		defer wg.Done()
		registrations, regsErr = a.api.MyRegistrations(ctx)
	}()
	wg.Wait()

	if ctx.Err() != nil {
		return
	}

	a.println("Your events:")
	switch {
	case eventsErr != nil:
		a.showError(eventsErr)
	case len(events) == 0:
		a.println("  (none yet, try 'new')")
	default:
		for _, e := range events {
			a.printf("  #%-4d %-30s %s  %d/%d registered\n",
				e.ID, e.Title, e.EventDate.Format(dateLayout),
				e.RegistrationsCount, e.Seats)
		}
	}

	a.println("Your registrations:")
	switch {
	case regsErr != nil:
		a.showError(regsErr)
	case len(registrations) == 0:
		a.println("  (none yet, try 'events')")
	default:
		for _, r := range registrations {
			title := r.EventTitle
			if title == "" {
				title = "(event)"
			}
			a.printf("  reg #%-4d event #%-4d %-30s %s\n",
				r.ID, r.EventID, title, r.EventDate.Format(dateLayout))
		}
		a.println("Use 'cancel <reg id>' to cancel a registration.")
	}

	if sess := a.sessions.Get(ctx); sess != nil {
		if exp, ok := sess.TokenExpiry(); ok {
			a.printf("Session token expires %s.\n", exp.Format(dateLayout))
		}
	}
}
