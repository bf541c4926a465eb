package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Sentinel errors for the auth subsystem. The HTTP error handler maps each of
// these to a status code and a client-safe message.
var (
	// ErrValidation covers any missing required field on a request payload.
	ErrValidation = errors.New("required field missing")
	// ErrAccountExists is returned when registering an email already in use.
	ErrAccountExists = errors.New("user already exists")
	// ErrInvalidCredentials covers both unknown email and wrong password;
	// clients cannot tell which of the two failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccountNotFound is a store-level error; the auth service translates
	// it to ErrInvalidCredentials before it can reach a client.
	ErrAccountNotFound = errors.New("account not found")
	// ErrTokenInvalid is the uniform verification failure: malformed token,
	// bad signature, and past expiry are indistinguishable to callers.
	ErrTokenInvalid = errors.New("token invalid")
	// ErrAuthRequired is returned when a protected route receives no token.
	ErrAuthRequired = errors.New("authentication required")
	// ErrForbidden is returned when the caller's role does not grant access.
	ErrForbidden = errors.New("access forbidden")
	// ErrTooManyAttempts is returned when the login throttle trips. It maps
	// to the same client-facing rejection as bad credentials.
	ErrTooManyAttempts = errors.New("too many failed login attempts")
)

// Account is a stored credential record. The password is only ever persisted
// as a bcrypt hash; the plaintext never leaves the registration/login path.
type Account struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the request-scoped result of verifying a token: who the caller
// is and what role their token carries. It is attached to the request context
// by the auth middleware and discarded when the request ends.
type Identity struct {
	SubjectID string
	Role      string
}

// ValidRole reports whether r is one of the known roles.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleUser
}
