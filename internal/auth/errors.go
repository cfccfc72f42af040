package auth

import "fmt"

// ValidationError reports a missing required form field. It is surfaced to
// the user as-is.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return e.Field + " is required."
}

// DuplicateUsernameError reports a registration attempt for a name that is
// already taken. It originates from the store's uniqueness constraint, not
// from a separate existence check.
type DuplicateUsernameError struct {
	Username string
}

func (e *DuplicateUsernameError) Error() string {
	return fmt.Sprintf("User %s is already registered.", e.Username)
}

// AuthenticationError reports a failed login attempt. Reason is the
// user-visible message and distinguishes the unknown-username and
// wrong-password cases; neither changes session state.
type AuthenticationError struct {
	Reason string
}

func (e *AuthenticationError) Error() string {
	return e.Reason
}
