package router

import (
	"context"
	"errors"
	"fmt"

	"github.com/apomind/apomind-cli/internal/logging"
	"github.com/apomind/apomind-cli/internal/session"
)

// ErrRedirectLoop is returned when guards keep bouncing a navigation between
// paths without ever allowing a view to render.
var ErrRedirectLoop = errors.New("redirect loop")

// maxRedirects bounds a single navigation. Two hops cover every legal guard
// chain; anything deeper is a wiring bug.
const maxRedirects = 8

// View renders a screen and returns the path to navigate to next. An empty
// next path ends the navigation loop.
type View interface {
	Render(ctx context.Context) (next string, err error)
}

// ViewFunc adapts a function to the View interface.
type ViewFunc func(ctx context.Context) (string, error)

func (f ViewFunc) Render(ctx context.Context) (string, error) { return f(ctx) }

type route struct {
	view  View
	guard Guard
}

// Router resolves paths to guarded views against the controller's published
// session state.
type Router struct {
	ctrl     *session.Controller
	log      logging.Logger
	routes   map[string]route
	notFound View
}

func New(ctrl *session.Controller, log logging.Logger) *Router {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Router{
		ctrl:   ctrl,
		log:    log,
		routes: make(map[string]route),
	}
}

// Handle registers a view under a path. A nil guard means the view is public.
func (r *Router) Handle(path string, v View, g Guard) {
	r.routes[path] = route{view: v, guard: g}
}

// HandleNotFound registers the view rendered for unknown paths.
func (r *Router) HandleNotFound(v View) {
	r.notFound = v
}

// Navigate renders the view for path, following guard redirects, and returns
// the next path the rendered view asks for. It waits for the session state to
// resolve first: guards are never evaluated against the unresolved state.
func (r *Router) Navigate(ctx context.Context, path string) (string, error) {
	if err := r.ctrl.WaitResolved(ctx); err != nil {
		return "", err
	}

	for range maxRedirects {
		rt, ok := r.routes[path]
		if !ok {
			if r.notFound == nil {
				return "", fmt.Errorf("no view registered for %q", path)
			}
			return r.notFound.Render(ctx)
		}

		if rt.guard != nil {
			st, _ := r.ctrl.Snapshot()
			d := rt.guard(st)
			if d.Pending {
				// cannot happen after WaitResolved; bail out rather than
				// guess
				return "", session.ErrUnresolved
			}
			if !d.Allow {
				r.log.Debug(ctx, "route redirected", "from", path, "to", d.RedirectTo, "state", st.String())
				path = d.RedirectTo
				continue
			}
		}

		return rt.view.Render(ctx)
	}

	return "", fmt.Errorf("%w at %q", ErrRedirectLoop, path)
}

// Run drives the navigation loop from start until a view returns an empty
// next path or ctx is done.
func (r *Router) Run(ctx context.Context, start string) error {
	path := start
	for path != "" {
		if err := ctx.Err(); err != nil {
			return err
		}
		next, err := r.Navigate(ctx, path)
		if err != nil {
			return err
		}
		path = next
	}
	return nil
}
