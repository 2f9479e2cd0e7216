// Package api is the sole module allowed to talk to the EventPoster REST
// backend. One method per endpoint; every call attaches the bearer token
// when a session is present, propagates structured errors on any non-2xx,
// and normalizes the wire shapes before they reach a view. No retries, no
// caching: each call is a fresh round trip and the server stays the
// authority on consistency.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/eventposter/internal/client/models"
	"github.com/dmitrijs2005/eventposter/internal/client/session"
	"github.com/dmitrijs2005/eventposter/internal/logging"
)

type Client struct {
	baseURL  string
	http     *http.Client
	sessions *session.Store
	log      logging.Logger
}

// New builds a client for the given base URL (origin + /api prefix).
// The session store supplies the bearer token per call and receives the
// session on login / loses it on logout or a rejected token.
func New(baseURL string, timeout time.Duration, sessions *session.Store, log logging.Logger) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: timeout},
		sessions: sessions,
		log:      log,
	}
}

// do performs one round trip. The Authorization header is attached iff a
// token exists in the session store at call time. A 401 on an authenticated
// call means the stored token is no longer accepted, so the session is
// destroyed before the error is returned.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	authed := false
	if sess := c.sessions.Get(ctx); sess.Present() {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
		authed = true
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Message: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Status: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		if resp.StatusCode == http.StatusUnauthorized && authed {
			if clearErr := c.sessions.Clear(ctx); clearErr != nil {
				c.log.Warn(ctx, "failed to clear rejected session", "error", clearErr)
			}
		}
		return &Error{Status: resp.StatusCode, Message: serverMessage(data)}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// serverMessage extracts the backend's error text, which it sends as
// {"error": "..."} (sometimes {"message": "..."}). Falls back to the raw
// body so nothing is swallowed.
func serverMessage(body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return strings.TrimSpace(string(body))
}

// ---- auth ----

// Signup creates an account. It does not log the user in; the original
// flow sends them to the login form afterwards.
func (c *Client) Signup(ctx context.Context, req models.SignupRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, "/register", req, nil)
}

// Login authenticates and, on success, stores the returned token/user pair
// in the session store so every open view observes the change.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (*session.Session, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	var resp struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/login", creds, &resp); err != nil {
		return nil, err
	}
	if err := c.sessions.Set(ctx, resp.Token, resp.User); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	return &session.Session{Token: resp.Token, User: &resp.User}, nil
}

// Logout destroys the local session. The backend holds no server-side
// session state for the bearer token, so no network call is involved.
func (c *Client) Logout(ctx context.Context) error {
	return c.sessions.Clear(ctx)
}

// CurrentUser re-validates the session against the server.
func (c *Client) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ---- events ----

func (c *Client) ListEvents(ctx context.Context) ([]models.Event, error) {
	var ws []eventWire
	if err := c.do(ctx, http.MethodGet, "/events", nil, &ws); err != nil {
		return nil, err
	}
	return normalizeEvents(ws), nil
}

func (c *Client) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	var w eventWire
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/events/%d", id), nil, &w); err != nil {
		return nil, err
	}
	e := w.normalize()
	return &e, nil
}

func (c *Client) MyEvents(ctx context.Context) ([]models.Event, error) {
	var ws []eventWire
	if err := c.do(ctx, http.MethodGet, "/my-events", nil, &ws); err != nil {
		return nil, err
	}
	return normalizeEvents(ws), nil
}

// CreateEvent validates the form and returns the new event's id.
func (c *Client) CreateEvent(ctx context.Context, req models.EventRequest) (int64, error) {
	if err := req.Validate(time.Now()); err != nil {
		return 0, err
	}
	var resp struct {
		ID int64 `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/events", req, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

func (c *Client) UpdateEvent(ctx context.Context, id int64, req models.EventRequest) error {
	if err := req.Validate(time.Now()); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/events/%d", id), req, nil)
}

func (c *Client) DeleteEvent(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/events/%d", id), nil, nil)
}

// ---- registrations ----

// ListRegistrations lists registrations, optionally scoped to one event
// (eventID > 0).
func (c *Client) ListRegistrations(ctx context.Context, eventID int64) ([]models.Registration, error) {
	path := "/registrations"
	if eventID > 0 {
		path = fmt.Sprintf("/registrations?event_id=%d", eventID)
	}
	var ws []registrationWire
	if err := c.do(ctx, http.MethodGet, path, nil, &ws); err != nil {
		return nil, err
	}
	return normalizeRegistrations(ws), nil
}

func (c *Client) MyRegistrations(ctx context.Context) ([]models.Registration, error) {
	var ws []registrationWire
	if err := c.do(ctx, http.MethodGet, "/my-registrations", nil, &ws); err != nil {
		return nil, err
	}
	return normalizeRegistrations(ws), nil
}

func (c *Client) GetRegistration(ctx context.Context, id int64) (*models.Registration, error) {
	var w registrationWire
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/registrations/%d", id), nil, &w); err != nil {
		return nil, err
	}
	r := w.normalize()
	return &r, nil
}

func (c *Client) CreateRegistration(ctx context.Context, req models.RegistrationRequest) (*models.Registration, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var w registrationWire
	if err := c.do(ctx, http.MethodPost, "/registrations", req, &w); err != nil {
		return nil, err
	}
	r := w.normalize()
	return &r, nil
}

func (c *Client) UpdateRegistration(ctx context.Context, id int64, req models.RegistrationRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/registrations/%d", id), req, nil)
}

func (c *Client) DeleteRegistration(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/registrations/%d", id), nil, nil)
}
