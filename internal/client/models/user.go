// Package models holds the canonical client-side shapes for EventPoster
// domain data, plus the request types submitted by forms. The server is the
// source of truth; everything here is a transient copy fetched per render.
package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/eventposter/internal/common"
)

// User is the identity half of a session and the creator of events.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// SignupRequest is the payload for POST /register.
type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// Validate checks required fields before the request leaves the client.
func (r *SignupRequest) Validate() error {
	var errs []error
	if r.Username == "" {
		errs = append(errs, errors.New("username is required"))
	}
	if r.Password == "" {
		errs = append(errs, errors.New("password is required"))
	}
	if r.Email == "" {
		errs = append(errs, errors.New("email is required"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", common.ErrValidation, errors.Join(errs...))
	}
	return nil
}

// Credentials is the payload for POST /login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c *Credentials) Validate() error {
	if c.Username == "" || c.Password == "" {
		return fmt.Errorf("%w: username and password are required", common.ErrValidation)
	}
	return nil
}
