// Package router maps paths to views and gates them with guards over the
// session state, mirroring the routing of the original web client.
//
// Guards are pure: they read a session.State and decide allow, redirect, or
// pending (while the state is still unresolved). They never mutate anything.
// The Router consults the session controller's published state only, never
// the store.
package router
