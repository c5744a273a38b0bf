package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/apomind/apomind-cli/internal/router"
)

// chatMessage is one transcript entry of the assistant conversation.
type chatMessage struct {
	ID   string
	Role string // "user" or "assistant"
	Text string
}

// homeView is the main screen: a chat loop with the learning assistant.
// Slash commands navigate away; anything else goes to the backend.
func (a *App) homeView(ctx context.Context) (string, error) {
	fmt.Fprintln(a.out, titleStyle.Render("Apomind assistant"), a.status())
	fmt.Fprintln(a.out, dimStyle.Render("Type a question, or /profile, /history, /logout, /quit"))

	var transcript []chatMessage

	for {
		line, err := GetSimpleText(a.reader, "you", a.out)
		if err != nil {
			return "", err
		}

		switch line {
		case "":
			continue
		case "/profile":
			return router.PathProfile, nil
		case "/logout":
			if err := a.ctrl.Logout(ctx); err != nil {
				a.log.Debug(ctx, "logout refused", "err", err)
			}
			return router.PathIndex, nil
		case "/quit", "/exit":
			fmt.Fprintln(a.out, "Bye!")
			return "", nil
		case "/history":
			for _, m := range transcript {
				fmt.Fprintf(a.out, "%s %s: %s\n", dimStyle.Render(m.ID[:8]), m.Role, m.Text)
			}
			continue
		}

		_, sess := a.ctrl.Snapshot()
		transcript = append(transcript, chatMessage{ID: uuid.NewString(), Role: "user", Text: line})

		reply, err := a.api.Chat(ctx, sess.ID, line)
		if err != nil {
			fmt.Fprintln(a.out, toastErrStyle.Render("The assistant is unreachable right now."))
			continue
		}

		transcript = append(transcript, chatMessage{ID: uuid.NewString(), Role: "assistant", Text: reply})
		fmt.Fprintln(a.out, assistantStyle.Render("apomind:"), reply)
	}
}
