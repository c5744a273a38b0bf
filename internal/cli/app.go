package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	_ "modernc.org/sqlite"

	"github.com/apomind/apomind-cli/internal/api"
	"github.com/apomind/apomind-cli/internal/config"
	"github.com/apomind/apomind-cli/internal/logging"
	"github.com/apomind/apomind-cli/internal/router"
	"github.com/apomind/apomind-cli/internal/session"
	"github.com/apomind/apomind-cli/internal/store"
)

// App ties the client together: config, local store, backend client, session
// controller, and the routed views.
type App struct {
	config *config.Config
	api    api.Client
	store  *store.SQLiteStore
	db     *sql.DB
	ctrl   *session.Controller
	router *router.Router
	log    logging.Logger

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.NewNopLogger()
	}
	ctx := context.Background()

	st, db, err := store.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("initializing local storage: %w", err)
	}

	apiClient := api.NewHTTPClient(cfg.ServerBaseURL, cfg.RequestTimeout)

	a := &App{
		config: cfg,
		api:    apiClient,
		store:  st,
		db:     db,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}

	a.ctrl = session.NewController(apiClient, st, log)
	a.ctrl.OnChange(a.toast)

	a.router = router.New(a.ctrl, log)
	a.routes()

	return a, nil
}

func (a *App) routes() {
	r := a.router
	r.Handle(router.PathIndex, router.ViewFunc(a.indexView), nil)
	r.Handle(router.PathLogin, router.ViewFunc(a.loginView), router.RequiresAnonymous)
	r.Handle(router.PathRegister, router.ViewFunc(a.registerView), router.RequiresAnonymous)
	r.Handle(router.PathSurvey, router.ViewFunc(a.surveyView), router.RequiresAuthenticated)
	r.Handle(router.PathHome, router.ViewFunc(a.homeView), router.RequiresAuthenticated)
	r.Handle(router.PathProfile, router.ViewFunc(a.profileView), router.RequiresAuthenticated)
	r.HandleNotFound(router.ViewFunc(a.notFoundView))
}

// Run resolves the persisted session and drives the navigation loop until
// the user quits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	fmt.Fprintln(a.out, titleStyle.Render("Apomind"))
	a.ctrl.Resolve(ctx)

	err := a.router.Run(ctx, router.PathIndex)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Close releases the API client and the local database.
func (a *App) Close() {
	if err := a.api.Close(); err != nil {
		a.log.Warn(context.Background(), "closing api client", "err", err)
	}
	if err := a.db.Close(); err != nil {
		a.log.Warn(context.Background(), "closing database", "err", err)
	}
}

// toast renders the structured result of a session operation as a one-line
// notification, the way the web client popped toasts.
func (a *App) toast(ev session.Event) {
	if ev.Err != nil {
		fmt.Fprintln(a.out, toastErrStyle.Render(errorReason(ev)))
		return
	}

	var msg string
	switch ev.Op {
	case session.OpLogin:
		msg = "Login successful. Welcome back to Apomind!"
	case session.OpRegister:
		msg = "Registration successful. Welcome to Apomind!"
	case session.OpCompleteOnboarding:
		msg = "Survey saved. You're all set."
	case session.OpUpdateProfile:
		msg = "Profile updated."
	case session.OpLogout:
		msg = "You have been logged out."
	default:
		return
	}
	fmt.Fprintln(a.out, toastOKStyle.Render(msg))
}

// errorReason picks the user-facing line for a failed operation.
func errorReason(ev session.Event) string {
	switch {
	case errors.Is(ev.Err, api.ErrAuthRejected):
		if ev.Op == session.OpRegister {
			return "Registration failed: " + ev.Err.Error()
		}
		return "Invalid credentials. Please try again."
	case errors.Is(ev.Err, api.ErrUnavailable):
		return "Server unavailable. Please try again later."
	default:
		return "Something went wrong: " + ev.Err.Error()
	}
}

func (a *App) status() string {
	st, sess := a.ctrl.Snapshot()
	if sess == nil {
		return statusStyle.Render("(" + st.String() + ")")
	}
	return statusStyle.Render("(" + sess.Username + ", " + st.String() + ")")
}
