package cli

import (
	"context"
	"fmt"

	"github.com/apomind/apomind-cli/internal/router"
	"github.com/apomind/apomind-cli/internal/session"
)

// profileView shows the session and lets the user change their display
// name. Email and id are shown but not editable.
func (a *App) profileView(ctx context.Context) (string, error) {
	_, sess := a.ctrl.Snapshot()

	fmt.Fprintln(a.out, titleStyle.Render("Your profile"))
	fmt.Fprintln(a.out, "Name:  ", sess.Username)
	fmt.Fprintln(a.out, "Email: ", sess.Email)
	fmt.Fprintln(a.out, "ID:    ", sess.ID)

	if savedAt, err := a.store.SavedAt(ctx); err == nil && !savedAt.IsZero() {
		fmt.Fprintln(a.out, dimStyle.Render("Session saved "+savedAt.Local().Format("2006-01-02 15:04")))
	}

	name, err := GetSimpleText(a.reader, "New display name (leave empty to keep)", a.out)
	if err != nil {
		return "", err
	}

	if name != "" && name != sess.Username {
		if err := a.ctrl.UpdateProfile(ctx, session.ProfileUpdate{Username: &name}); err != nil {
			a.log.Warn(ctx, "updating profile", "err", err)
		}
	}

	return router.PathHome, nil
}
