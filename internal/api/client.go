package api

import "context"

// Account is the backend's view of an authenticated user, as returned by the
// login and registration endpoints.
type Account struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	Username        string `json:"username"`
	CompletedSurvey bool   `json:"completedSurvey"`
}

// Course is a catalog entry offered during onboarding.
type Course struct {
	Name string `json:"course_name"`
}

// Client is the contract with the Apomind backend. The backend is a black
// box: only this surface matters to the rest of the client.
type Client interface {
	// Login exchanges credentials for the account record.
	Login(ctx context.Context, email string, password []byte) (*Account, error)

	// Register creates a new account and returns its record.
	Register(ctx context.Context, username, email string, password []byte) (*Account, error)

	// Courses fetches the course catalog for the onboarding survey.
	Courses(ctx context.Context) ([]Course, error)

	// SaveSelectedCourses stores the user's course selection. Its success is
	// what completes onboarding.
	SaveSelectedCourses(ctx context.Context, userID string, courses []string) error

	// Chat sends a message to the assistant and returns the reply text.
	Chat(ctx context.Context, userID, message string) (string, error)

	// Ping checks server liveness.
	Ping(ctx context.Context) error

	// Close releases underlying transport resources.
	Close() error
}
