package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/eventposter/internal/client/models"
	"github.com/dmitrijs2005/eventposter/internal/logging"
)

// ErrEmptyToken rejects a Set with no token: the pair is all-or-nothing.
var ErrEmptyToken = errors.New("session token must not be empty")

// Store is the single source of truth for the current session. All reads and
// writes go through durable Storage; subscribers are notified on every
// change, whether it originated in this process (Set/Clear) or outside it
// (Watch / NotifyExternalChange).
type Store struct {
	storage Storage
	log     logging.Logger

	mu   sync.RWMutex
	subs map[uuid.UUID]func(*Session)

	// wmu serializes storage writes with the watcher's read-and-compare,
	// so the watcher never reports this process's own writes. fp is the
	// last storage content this process has seen.
	wmu sync.Mutex
	fp  string
}

func NewStore(storage Storage, log logging.Logger) *Store {
	return &Store{
		storage: storage,
		log:     log,
		subs:    make(map[uuid.UUID]func(*Session)),
	}
}

// Set persists the token/user pair atomically and notifies subscribers.
func (s *Store) Set(ctx context.Context, token string, user models.User) error {
	if token == "" {
		return ErrEmptyToken
	}

	userJSON, err := json.Marshal(user)
	if err != nil {
		return err
	}

	s.wmu.Lock()
	if err := s.storage.Save(ctx, []byte(token), userJSON); err != nil {
		s.wmu.Unlock()
		return err
	}
	s.fp = fingerprint([]byte(token), userJSON)
	s.wmu.Unlock()

	s.notify(&Session{Token: token, User: &user})
	return nil
}

// Clear removes the pair and notifies subscribers. Safe to call when no
// session exists; the notification still fires so views settle on the same
// logged-out state.
func (s *Store) Clear(ctx context.Context) error {
	s.wmu.Lock()
	if err := s.storage.Clear(ctx); err != nil {
		s.wmu.Unlock()
		return err
	}
	s.fp = fingerprint(nil, nil)
	s.wmu.Unlock()

	s.notify(nil)
	return nil
}

// Get reads the current session from durable storage. Malformed persisted
// data is never surfaced as an error: an unreadable store or a missing token
// yields absent, and a readable token with an unparsable user record yields
// a token-only session. Both cases are logged for diagnostics.
func (s *Store) Get(ctx context.Context) *Session {
	token, userJSON, err := s.storage.Load(ctx)
	if err != nil {
		s.log.Warn(ctx, "failed to read persisted session, treating as logged out", "error", err)
		return nil
	}
	if len(token) == 0 {
		return nil
	}

	sess := &Session{Token: string(token)}
	if len(userJSON) > 0 {
		var user models.User
		if err := json.Unmarshal(userJSON, &user); err != nil {
			s.log.Warn(ctx, "malformed persisted user record", "error", err)
		} else {
			sess.User = &user
		}
	}
	return sess
}

// Subscribe registers fn to run on every session change. The returned
// function removes the subscription.
func (s *Store) Subscribe(fn func(*Session)) (unsubscribe func()) {
	id := uuid.New()

	s.mu.Lock()
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// NotifyExternalChange re-reads storage and fans the result out to
// subscribers. Watch calls it when another process mutated the storage;
// tests may call it directly to simulate that.
func (s *Store) NotifyExternalChange(ctx context.Context) {
	s.wmu.Lock()
	if token, user, err := s.storage.Load(ctx); err == nil {
		s.fp = fingerprint(token, user)
	}
	s.wmu.Unlock()

	s.notify(s.Get(ctx))
}

// Watch polls storage at the given interval and raises a change
// notification whenever the persisted pair differs from what this process
// last saw. This is the cross-process analogue of a storage-change event;
// it returns when ctx is cancelled.
func (s *Store) Watch(ctx context.Context, interval time.Duration) {
	// Baseline against the current content so the first tick does not
	// report a change that predates the watch.
	s.wmu.Lock()
	if token, user, err := s.storage.Load(ctx); err == nil {
		s.fp = fingerprint(token, user)
	}
	s.wmu.Unlock()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if s.externallyChanged(ctx) {
				s.log.Debug(ctx, "session changed outside this process")
				s.notify(s.Get(ctx))
			}
		case <-ctx.Done():
			return
		}
	}
}

func (s *Store) externallyChanged(ctx context.Context) bool {
	s.wmu.Lock()
	defer s.wmu.Unlock()

	token, user, err := s.storage.Load(ctx)
	if err != nil {
		s.log.Warn(ctx, "session watch: storage read failed", "error", err)
		return false
	}
	fp := fingerprint(token, user)
	changed := s.fp != fp
	s.fp = fp
	return changed
}

func (s *Store) notify(sess *Session) {
	s.mu.RLock()
	fns := make([]func(*Session), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn(sess)
	}
}

func fingerprint(token, user []byte) string {
	return string(token) + "\x00" + string(user)
}
