package cli

import (
	"context"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/eventposter/internal/client/models"
)

func (a *App) loginPage(ctx context.Context) {
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		a.showError(err)
		return
	}
	password, err := getPassword(a.out)
	if err != nil {
		a.showError(err)
		return
	}

	sess, err := a.api.Login(ctx, models.Credentials{Username: username, Password: password})
	if err != nil {
		a.showError(err)
		return
	}

	a.printf("Welcome back, %s!\n", sess.Username())
	a.navigate(ctx, "/dashboard")
}

func (a *App) signupPage(ctx context.Context) {
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		a.showError(err)
		return
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		a.showError(err)
		return
	}
	password, err := getPassword(a.out)
	if err != nil {
		a.showError(err)
		return
	}

	req := models.SignupRequest{Username: username, Email: email, Password: password}
	if err := a.api.Signup(ctx, req); err != nil {
		a.showError(err)
		return
	}

	a.println("Account created. Please log in.")
	a.navigate(ctx, "/login")
}

// Logout destroys the local session; there is nothing to revoke on the
// server for a bearer token.
func (a *App) Logout(ctx context.Context) {
	if err := a.api.Logout(ctx); err != nil {
		a.showError(err)
		return
	}
	a.println("Logged out.")
	a.navigate(ctx, "/")
}

// Whoami re-validates the session against the server. A rejected token
// clears the session as a side effect of the API call.
func (a *App) Whoami(ctx context.Context) {
	user, err := a.api.CurrentUser(ctx)
	if err != nil {
		a.showError(err)
		return
	}
	a.printf("Logged in as %s (id %d)\n", user.Username, user.ID)

	if sess := a.sessions.Get(ctx); sess != nil {
		if exp, ok := sess.TokenExpiry(); ok {
			a.printf("Token expires %s (unverified, informational only)\n", exp.Format(dateLayout))
		}
	}
}

// confirmationURL builds the /confirmation path the forms navigate to after
// a successful mutation.
func confirmationURL(action, eventName string, eventID int64) string {
	q := url.Values{}
	q.Set("action", action)
	if eventName != "" {
		q.Set("event", eventName)
	}
	if eventID > 0 {
		q.Set("eventId", strconv.FormatInt(eventID, 10))
	}
	return "/confirmation?" + q.Encode()
}
