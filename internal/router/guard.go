package router

import "github.com/apomind/apomind-cli/internal/session"

// Well-known paths.
const (
	PathIndex    = "/"
	PathLogin    = "/login"
	PathRegister = "/register"
	PathSurvey   = "/survey"
	PathHome     = "/home"
	PathProfile  = "/profile"
)

// Decision is a guard's verdict for a requested path.
type Decision struct {
	// Allow permits the view to render. When false and Pending is false,
	// RedirectTo names where to go instead.
	Allow bool

	// RedirectTo is the redirect target when the view may not render.
	RedirectTo string

	// Pending means the session state is still unresolved and no decision
	// can be trusted yet. Unresolved is never treated as anonymous.
	Pending bool
}

// Guard decides whether a view may render for the given state. Guards are
// idempotent and side-effect free.
type Guard func(session.State) Decision

// RequiresAuthenticated allows authenticated states and sends everyone else
// to the login view. Used by the protected views (home, survey, profile).
func RequiresAuthenticated(st session.State) Decision {
	switch st {
	case session.StateIncomplete, session.StateComplete:
		return Decision{Allow: true}
	case session.StateUnresolved:
		return Decision{Pending: true}
	default:
		return Decision{RedirectTo: PathLogin}
	}
}

// RequiresAnonymous allows only the anonymous state. A signed-in user is sent
// where they belong instead: the survey while onboarding is pending, the main
// view once it is done. Used by the login and registration views.
func RequiresAnonymous(st session.State) Decision {
	switch st {
	case session.StateAnonymous:
		return Decision{Allow: true}
	case session.StateIncomplete:
		return Decision{RedirectTo: PathSurvey}
	case session.StateComplete:
		return Decision{RedirectTo: PathHome}
	default:
		return Decision{Pending: true}
	}
}
