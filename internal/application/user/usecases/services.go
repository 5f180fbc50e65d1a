package usecases

import "helpdesk/internal/shared/actor"

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenService issues and validates bearer tokens for authenticated actors.
type TokenService interface {
	Generate(a actor.Actor) (string, error)
	Validate(token string) (actor.Actor, error)
}

// WelcomeNotifier sends the post-registration email. Best effort; a failed
// send never fails registration.
type WelcomeNotifier interface {
	NotifyWelcome(recipient, name string) error
}
