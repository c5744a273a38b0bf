package cli

import (
	"context"
	"fmt"

	"github.com/apomind/apomind-cli/internal/router"
)

// indexView is the landing screen. It translates a command into the next
// path; the router's guards decide what actually renders, so typing "login"
// while signed in lands on the survey or home view, exactly like the
// original redirect wrappers.
func (a *App) indexView(ctx context.Context) (string, error) {
	st, _ := a.ctrl.Snapshot()

	fmt.Fprintln(a.out, a.status())
	if st.Authenticated() {
		fmt.Fprintln(a.out, "Commands: home, profile, survey, logout, quit")
	} else {
		fmt.Fprintln(a.out, "Commands: login, register, quit")
	}

	cmd, err := GetSimpleText(a.reader, "Where to?", a.out)
	if err != nil {
		return "", err
	}

	switch cmd {
	case "login":
		return router.PathLogin, nil
	case "register":
		return router.PathRegister, nil
	case "home":
		return router.PathHome, nil
	case "profile":
		return router.PathProfile, nil
	case "survey":
		return router.PathSurvey, nil
	case "logout":
		if err := a.ctrl.Logout(ctx); err != nil {
			a.log.Debug(ctx, "logout refused", "err", err)
		}
		return router.PathIndex, nil
	case "quit", "exit", "q":
		fmt.Fprintln(a.out, "Bye!")
		return "", nil
	case "":
		return router.PathIndex, nil
	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
		return router.PathIndex, nil
	}
}

func (a *App) notFoundView(ctx context.Context) (string, error) {
	fmt.Fprintln(a.out, dimStyle.Render("Page not found."))
	return router.PathIndex, nil
}
