// Package cli implements the interactive EventPoster terminal client: a
// REPL whose commands navigate between views the same way the original
// browser client routed between pages. Every view entry passes through the
// route guard, and all network access goes through the API client.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/eventposter/internal/client/api"
	"github.com/dmitrijs2005/eventposter/internal/client/config"
	"github.com/dmitrijs2005/eventposter/internal/client/models"
	"github.com/dmitrijs2005/eventposter/internal/client/session"
	"github.com/dmitrijs2005/eventposter/internal/logging"
)

// apiClient is the command surface the views need; *api.Client satisfies it
// and tests substitute a fake.
type apiClient interface {
	Signup(ctx context.Context, req models.SignupRequest) error
	Login(ctx context.Context, creds models.Credentials) (*session.Session, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)

	ListEvents(ctx context.Context) ([]models.Event, error)
	GetEvent(ctx context.Context, id int64) (*models.Event, error)
	MyEvents(ctx context.Context) ([]models.Event, error)
	CreateEvent(ctx context.Context, req models.EventRequest) (int64, error)
	UpdateEvent(ctx context.Context, id int64, req models.EventRequest) error
	DeleteEvent(ctx context.Context, id int64) error

	ListRegistrations(ctx context.Context, eventID int64) ([]models.Registration, error)
	MyRegistrations(ctx context.Context) ([]models.Registration, error)
	GetRegistration(ctx context.Context, id int64) (*models.Registration, error)
	CreateRegistration(ctx context.Context, req models.RegistrationRequest) (*models.Registration, error)
	UpdateRegistration(ctx context.Context, id int64, req models.RegistrationRequest) error
	DeleteRegistration(ctx context.Context, id int64) error
}

type App struct {
	config   *config.Config
	api      apiClient
	sessions *session.Store
	log      logging.Logger
	reader   *bufio.Reader
	out      io.Writer

	// countdownTick is the confirmation-view tick; one second in
	// production, shortened in tests.
	countdownTick time.Duration

	// The active view owns a context that is cancelled on navigation, so
	// a superseded view can never apply a late result.
	viewMu     sync.Mutex
	viewRoot   context.Context
	viewCancel context.CancelFunc
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	db, err := session.OpenDatabase(ctx, filepath.Join(cfg.DataDir, "session.db"))
	if err != nil {
		return nil, fmt.Errorf("error initializing session database: %w", err)
	}

	log := logging.NewTextLogger(os.Stderr)
	sessions := session.NewStore(session.NewSQLiteStorage(db), log)
	client := api.New(cfg.APIBaseURL, cfg.RequestTimeout, sessions, log)

	return &App{
		config:        cfg,
		api:           client,
		sessions:      sessions,
		log:           log,
		reader:        bufio.NewReader(os.Stdin),
		out:           os.Stdout,
		countdownTick: time.Second,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	// The prompt and any other subscriber stay in sync with logins and
	// logouts made by a second client sharing the session database.
	go a.sessions.Watch(ctx, a.config.WatchInterval)

	unsubscribe := a.sessions.Subscribe(func(sess *session.Session) {
		if sess.Present() {
			a.printf("(session changed: logged in as %s)\n", sess.Username())
		} else {
			a.printf("(session changed: logged out)\n")
		}
	})
	defer unsubscribe()

	a.Root(ctx)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.sessions.Get(ctx).Present()
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// showError renders the error banner for a failed user action. Errors are
// terminal for the action: nothing retries, the user re-initiates.
func (a *App) showError(err error) {
	a.printf("ERROR: %v\n", err)
}

// beginView cancels the previous view's context and opens a new one. New
// views derive from the first context ever seen, not the caller's, because
// a view that navigates onward passes its own (about to be cancelled)
// context in.
func (a *App) beginView(ctx context.Context) context.Context {
	a.viewMu.Lock()
	defer a.viewMu.Unlock()
	if a.viewRoot == nil {
		a.viewRoot = ctx
	}
	if a.viewCancel != nil {
		a.viewCancel()
	}
	viewCtx, cancel := context.WithCancel(a.viewRoot)
	a.viewCancel = cancel
	return viewCtx
}
