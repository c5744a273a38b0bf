package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/apomind/apomind-cli/internal/api"
	"github.com/apomind/apomind-cli/internal/common"
	"github.com/apomind/apomind-cli/internal/router"
	"github.com/apomind/apomind-cli/internal/session"
)

// loginView prompts for credentials and signs the user in. After a
// successful login the user continues to the survey if onboarding is still
// pending, otherwise straight home. On a user-correctable failure the view
// renders again; the failure itself is already on screen via the toast
// listener.
func (a *App) loginView(ctx context.Context) (string, error) {
	fmt.Fprintln(a.out, titleStyle.Render("Sign in"))

	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return "", err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(password)

	if err := a.ctrl.Login(ctx, email, password); err != nil {
		if errors.Is(err, api.ErrAuthRejected) {
			return router.PathLogin, nil
		}
		return router.PathIndex, nil
	}

	return a.afterAuthPath(), nil
}

// registerView creates an account. A new account always continues to the
// survey.
func (a *App) registerView(ctx context.Context) (string, error) {
	fmt.Fprintln(a.out, titleStyle.Render("Create your account"))

	name, err := GetSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return "", err
	}
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return "", err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(password)

	if err := a.ctrl.Register(ctx, name, email, password); err != nil {
		if errors.Is(err, api.ErrAuthRejected) {
			return router.PathRegister, nil
		}
		return router.PathIndex, nil
	}

	return router.PathSurvey, nil
}

func (a *App) afterAuthPath() string {
	st, _ := a.ctrl.Snapshot()
	if st == session.StateIncomplete {
		return router.PathSurvey
	}
	return router.PathHome
}
