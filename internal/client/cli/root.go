package cli

import (
	"context"
	"errors"
	"io"
	"strings"
)

// Root runs the command loop. Each command maps onto a view path and goes
// through navigate, so the route guard applies uniformly no matter how a
// view is reached.
func (a *App) Root(ctx context.Context) {
	a.navigate(ctx, "/")

	for {
		if err := ctx.Err(); err != nil {
			return
		}

		a.printf("%s ", a.prompt(ctx))
		line, err := a.reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				a.println("Bye!")
				return
			}
			a.showError(err)
			return
		}

		cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
		arg = strings.TrimSpace(arg)
		if cmd == "" {
			continue
		}
		if cmd == "exit" || cmd == "quit" {
			a.println("Bye!")
			return
		}

		a.dispatch(ctx, cmd, arg)
	}
}

func (a *App) prompt(ctx context.Context) string {
	if sess := a.sessions.Get(ctx); sess.Present() {
		return sess.Username() + ">"
	}
	return "guest>"
}

func (a *App) dispatch(ctx context.Context, cmd, arg string) {
	switch cmd {
	case "help":
		a.helpPage()
	case "home":
		a.navigate(ctx, "/")
	case "events":
		a.navigate(ctx, "/events")
	case "show":
		a.navigate(ctx, "/events/"+arg)
	case "new":
		a.navigate(ctx, "/events/new")
	case "edit":
		a.navigate(ctx, "/events/"+arg+"/edit")
	case "register":
		a.navigate(ctx, "/events/"+arg+"/register")
	case "delete":
		if id, ok := parseID(arg); ok {
			a.deleteEventAction(ctx, id)
		} else {
			a.printf("Invalid event id: %q\n", arg)
		}
	case "cancel":
		a.cancelRegistrationAction(ctx, arg)
	case "dashboard":
		a.navigate(ctx, "/dashboard")
	case "login":
		a.navigate(ctx, "/login")
	case "signup":
		a.navigate(ctx, "/register")
	case "logout":
		a.Logout(ctx)
	case "whoami":
		a.Whoami(ctx)
	case "open":
		// Escape hatch: jump to any view path directly.
		a.navigate(ctx, arg)
	default:
		a.printf("Unknown command %q, type 'help'.\n", cmd)
	}
}

func (a *App) helpPage() {
	a.println(`Commands:
  events             list upcoming events
  show <id>          event details
  register <id>      register for an event
  cancel <reg id>    cancel one of your registrations
  new                create an event (login required)
  edit <id>          edit your event (login required)
  delete <id>        delete your event (login required)
  dashboard          your events and registrations (login required)
  login              log in
  signup             create an account
  logout             log out
  whoami             show the current user
  open <path>        open a view by its path
  help               this text
  exit               quit`)
}
