// Package api talks to the Apomind backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) for the
//     backend operations the client needs: Login/Register, Courses,
//     SaveSelectedCourses, Chat, and Ping.
//  2. A concrete HTTP implementation (see HTTPClient) that sends JSON
//     requests, applies per-call timeouts, and maps transport failures and
//     HTTP status codes to sentinel errors.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrAuthRejected (bad credentials, duplicate account) and
// ErrUnavailable (transport failure, server-side fault). The wrapped message
// carries the human-readable reason reported by the server, when there is
// one, so callers can surface it to the user directly.
//
// All operations accept a context.Context and honor cancellation/timeouts.
package api
