package session

import (
	"encoding/json"

	"github.com/apomind/apomind-cli/internal/api"
)

// Session is the sole persisted entity: the authenticated user as the
// backend declared it. ID and Email never change after creation; Username is
// user-editable; CompletedSurvey only ever goes false -> true.
type Session struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	Username        string `json:"username"`
	CompletedSurvey bool   `json:"completedSurvey"`
}

// ProfileUpdate carries the fields a user may edit. Immutable fields (id,
// email) have no representation here, so they cannot be touched.
type ProfileUpdate struct {
	Username *string
}

// State enumerates the controller's four states.
type State int

const (
	// StateUnresolved is the initial state, before the store has been
	// consulted. Guards must treat it as "decision pending", never as
	// StateAnonymous.
	StateUnresolved State = iota

	// StateAnonymous means no session exists.
	StateAnonymous

	// StateIncomplete means a session exists with the onboarding survey
	// still pending.
	StateIncomplete

	// StateComplete means a session exists and onboarding is done.
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateUnresolved:
		return "unresolved"
	case StateAnonymous:
		return "anonymous"
	case StateIncomplete:
		return "authenticated-incomplete"
	case StateComplete:
		return "authenticated-complete"
	default:
		return "unknown"
	}
}

// Authenticated reports whether the state carries a session.
func (s State) Authenticated() bool {
	return s == StateIncomplete || s == StateComplete
}

func stateOf(s *Session) State {
	switch {
	case s == nil:
		return StateAnonymous
	case s.CompletedSurvey:
		return StateComplete
	default:
		return StateIncomplete
	}
}

func (s *Session) clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

func encodeSession(s *Session) ([]byte, error) {
	return json.Marshal(s)
}

func decodeSession(record []byte) (*Session, error) {
	var s Session
	if err := json.Unmarshal(record, &s); err != nil {
		return nil, err
	}
	if s.ID == "" || s.Email == "" {
		return nil, errMissingFields
	}
	return &s, nil
}

func sessionFromAccount(a *api.Account) *Session {
	return &Session{
		ID:              a.ID,
		Email:           a.Email,
		Username:        a.Username,
		CompletedSurvey: a.CompletedSurvey,
	}
}
