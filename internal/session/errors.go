package session

import "errors"

var (
	// ErrBusy is returned when a mutating operation is issued while another
	// one is still suspended on the network. The new call takes no effect.
	ErrBusy = errors.New("another session operation is in flight")

	// ErrNotAuthenticated is returned by operations that need a session when
	// none exists.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrAlreadyAuthenticated is returned by Login/Register when a session
	// already exists.
	ErrAlreadyAuthenticated = errors.New("already authenticated")

	// ErrUnresolved is returned by mutating operations issued before Resolve
	// has run.
	ErrUnresolved = errors.New("session state not resolved yet")

	errMissingFields = errors.New("session record is missing required fields")
)
