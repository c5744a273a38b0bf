// Package session owns the client's identity.
//
// # Overview
//
// The Controller holds the single in-memory Session (or none), exposes the
// operations that establish, refresh, and destroy it, and mirrors every
// mutation to the durable store before anyone can observe it. Consumers
// receive the controller as an explicit dependency; there is no package-level
// singleton.
//
// # State machine
//
// StateUnresolved -> Resolve -> StateAnonymous | StateIncomplete | StateComplete
// StateAnonymous  -> Login / Register -> StateIncomplete | StateComplete
// StateIncomplete -> CompleteOnboarding -> StateComplete (irreversible)
// authenticated   -> UpdateProfile (same state), Logout -> StateAnonymous
//
// Mutating operations are serialized: a second call while one is suspended on
// the network is rejected with ErrBusy. The store write completes before the
// in-memory state changes and before listeners are notified, so an observer
// can never see a state the store does not already hold.
//
// # Failures
//
// Backend failures surface as api.ErrAuthRejected or api.ErrUnavailable with
// the state unchanged. A corrupt persisted record found by Resolve degrades
// to StateAnonymous; no error escapes. Nothing here is fatal to the
// controller itself.
package session
