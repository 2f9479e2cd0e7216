// Package session owns the client-wide notion of "who is logged in".
//
// A Session pairs an opaque auth token with the user identity the server
// returned at login. Both halves are persisted together in durable local
// storage and are always written and cleared as a pair. Components observe
// session changes through Store.Subscribe rather than polling, including
// changes made by another process sharing the same storage.
package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/eventposter/internal/client/models"
)

// Session is the logged-in identity. A nil *Session means "not logged in".
//
// User may be nil if the persisted user record was malformed; the token is
// still the authority for "logged in" in that case, and the next /me call
// repairs or destroys the session.
type Session struct {
	Token string
	User  *models.User
}

// Present reports whether a usable session exists. Nil-safe.
func (s *Session) Present() bool {
	return s != nil && s.Token != ""
}

// Username returns the display name, or "" when unknown.
func (s *Session) Username() string {
	if s == nil || s.User == nil {
		return ""
	}
	return s.User.Username
}

// TokenExpiry extracts the exp claim from the token without verifying the
// signature. Display/diagnostics only; the server remains the authority on
// token validity and this result must never gate an action.
func (s *Session) TokenExpiry() (time.Time, bool) {
	if !s.Present() {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.Token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
