package ports

import (
	"context"

	"github.com/brightcart/storefront-api/internal/core/domain"
)

// RegisterInput carries a registration request. Role is optional and defaults
// to "user" when empty.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	RemoteIP string
}

// LoginInput carries a login request.
type LoginInput struct {
	Email    string
	Password string
	RemoteIP string
}

// LogoutInput carries the token being discarded, when the client presented
// one.
type LogoutInput struct {
	Token    string
	RemoteIP string
}

// AuthService implements the registration, login, and logout use cases.
// Logout is best-effort bookkeeping: it never fails the request, it only
// records who logged out when the token still verifies.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.Account, error)
	Login(ctx context.Context, in LoginInput) (string, *domain.Account, error)
	Logout(ctx context.Context, in LogoutInput)
}
