package ports

import "github.com/brightcart/storefront-api/internal/core/domain"

// TokenService signs and verifies the compact claim set carried by clients.
// Verify returns domain.ErrTokenInvalid for every failure mode; corruption,
// signature mismatch, and expiry are indistinguishable to callers.
type TokenService interface {
	Issue(subjectID, role string) (string, error)
	Verify(token string) (*domain.Identity, error)
}
