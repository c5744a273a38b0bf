// Package cli is the terminal front-end of the Apomind client.
//
// It wires configuration, local session storage, the backend API client, and
// the session controller, then renders the application's views (index, login,
// register, survey, home/chat, profile) through a guarded router, the same
// way the original web client composed pages behind route wrappers.
//
// Presentation of operation results (toast lines) is a listener on the
// session controller's events; the controller itself knows nothing about
// output. Start the app with App.Run(ctx), which resolves the persisted
// session and then blocks in the navigation loop until the user quits.
package cli
