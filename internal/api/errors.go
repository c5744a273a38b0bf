package api

import "errors"

var (
	// ErrAuthRejected marks user-correctable failures: bad credentials on
	// login, duplicate account on registration.
	ErrAuthRejected = errors.New("authentication rejected")

	// ErrUnavailable marks transient transport or server failures. The
	// operation did not take effect and may be retried.
	ErrUnavailable = errors.New("server unavailable")
)
