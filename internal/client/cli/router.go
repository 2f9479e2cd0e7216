package cli

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/eventposter/internal/client/guard"
)

// navigate is the single entry point into any view. It opens a fresh view
// context (cancelling whatever view was active), asks the route guard
// whether the current session may see the path, and either renders the view
// or falls through to the login form.
func (a *App) navigate(ctx context.Context, rawPath string) {
	viewCtx := a.beginView(ctx)

	u, err := url.Parse(rawPath)
	if err != nil {
		a.showError(err)
		return
	}

	dec := guard.Check(a.sessions.Get(viewCtx), u.Path)
	if !dec.Allowed {
		a.log.Debug(viewCtx, "redirecting unauthenticated user", "path", u.Path, "to", dec.Redirect)
		a.println("Please log in to continue.")
		a.navigate(ctx, dec.Redirect)
		return
	}

	a.render(viewCtx, u)
}

func (a *App) render(ctx context.Context, u *url.URL) {
	path := u.Path
	segs := strings.Split(strings.Trim(path, "/"), "/")

	switch {
	case path == "" || path == "/":
		a.homePage(ctx)
	case path == "/events":
		a.eventsPage(ctx)
	case path == "/events/new":
		a.createEventPage(ctx)
	case path == "/dashboard":
		a.dashboardPage(ctx)
	case path == "/login":
		a.loginPage(ctx)
	case path == "/register":
		a.signupPage(ctx)
	case path == "/confirmation":
		a.confirmationPage(ctx, confirmationParamsFromQuery(u.Query()))
	case len(segs) == 2 && segs[0] == "events":
		if id, ok := parseID(segs[1]); ok {
			a.eventDetailsPage(ctx, id)
			return
		}
		a.notFoundPage(path)
	case len(segs) == 3 && segs[0] == "events" && segs[2] == "edit":
		if id, ok := parseID(segs[1]); ok {
			a.editEventPage(ctx, id)
			return
		}
		a.notFoundPage(path)
	case len(segs) == 3 && segs[0] == "events" && segs[2] == "register":
		if id, ok := parseID(segs[1]); ok {
			a.registerForEventPage(ctx, id)
			return
		}
		a.notFoundPage(path)
	default:
		a.notFoundPage(path)
	}
}

func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	return id, err == nil && id > 0
}

func (a *App) notFoundPage(path string) {
	a.printf("Nothing here: %s\n", path)
}
