package cli

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"
)

// confirmationParams carry what the completed action was and, when relevant,
// which event it touched. They arrive as query parameters on /confirmation.
type confirmationParams struct {
	Action    string
	EventName string
	EventID   int64
}

func confirmationParamsFromQuery(q url.Values) confirmationParams {
	p := confirmationParams{
		Action:    q.Get("action"),
		EventName: q.Get("event"),
	}
	if id, err := strconv.ParseInt(q.Get("eventId"), 10, 64); err == nil && id > 0 {
		p.EventID = id
	}
	return p
}

func (p confirmationParams) message() string {
	switch p.Action {
	case "registration-successful":
		return fmt.Sprintf("You are registered for %q.", p.EventName)
	case "event-created":
		return fmt.Sprintf("Event %q created.", p.EventName)
	case "event-updated":
		return fmt.Sprintf("Event %q updated.", p.EventName)
	case "event-deleted":
		return fmt.Sprintf("Event %q deleted.", p.EventName)
	case "registration-deleted":
		return "Your registration was cancelled."
	default:
		return "Done."
	}
}

// destination decides where the countdown lands.
func (p confirmationParams) destination() string {
	switch p.Action {
	case "registration-successful", "event-deleted", "registration-deleted":
		return "/dashboard"
	case "event-created", "event-updated":
		if p.EventID > 0 {
			return fmt.Sprintf("/events/%d", p.EventID)
		}
		return "/dashboard"
	default:
		return "/"
	}
}

const countdownSeconds = 5

// confirmationPage shows the result banner and a visible countdown, then
// redirects. The redirect fires at most once even if the context is
// cancelled while the final tick is being handled.
func (a *App) confirmationPage(ctx context.Context, p confirmationParams) {
	a.println(p.message())

	dest := p.destination()
	var once sync.Once
	redirect := func() {
		once.Do(func() {
			a.navigate(ctx, dest)
		})
	}

	ticker := time.NewTicker(a.countdownTick)
	defer ticker.Stop()

	remaining := countdownSeconds
	a.printf("Continuing to %s in %d...\n", dest, remaining)
	for remaining > 0 {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			remaining--
			if remaining > 0 {
				a.printf("%d...\n", remaining)
			}
		}
	}
	redirect()
}
