// Package guard decides whether a requested view may render for the current
// session. The decision is a pure function of the session snapshot at render
// time: a stale-but-present token still passes, and server-side rejections
// are handled by the page that made the call, not here.
package guard

import (
	"regexp"

	"github.com/dmitrijs2005/eventposter/internal/client/session"
)

// LoginPath is where unauthenticated users are sent for gated views.
const LoginPath = "/login"

// Decision is the outcome of a guard check: either the view renders, or the
// caller must navigate to Redirect instead.
type Decision struct {
	Allowed  bool
	Redirect string
}

// Gated views: the dashboard, event creation and event editing. Everything
// else is public.
var gatedPaths = []*regexp.Regexp{
	regexp.MustCompile(`^/dashboard$`),
	regexp.MustCompile(`^/events/new$`),
	regexp.MustCompile(`^/events/\d+/edit$`),
}

// Check gates path behind an authenticated session. Token presence alone is
// authority: a session whose user record failed to parse still passes,
// because the pair invariant means that state should not occur and denying
// it would lock out a legitimately logged-in user.
func Check(sess *session.Session, path string) Decision {
	if sess.Present() {
		return Decision{Allowed: true}
	}
	for _, re := range gatedPaths {
		if re.MatchString(path) {
			return Decision{Redirect: LoginPath}
		}
	}
	return Decision{Allowed: true}
}
