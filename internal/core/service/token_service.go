package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/brightcart/storefront-api/internal/core/domain"
)

const defaultTokenTTL = time.Hour

// tokenClaims is the claim set embedded in issued tokens: subject, role,
// issued-at, and expiry.
type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies HS256 JWTs with a process-wide secret.
// Rotating the secret silently invalidates every outstanding token.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for the given subject and role, expiring after the
// configured TTL.
func (s *TokenService) Issue(subjectID, role string) (string, error) {
	now := s.now().UTC()
	claims := tokenClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks signature and expiry and returns the embedded identity.
// Every failure mode collapses into domain.ErrTokenInvalid: callers must not
// be able to tell a forged token from an expired one.
func (s *TokenService) Verify(token string) (*domain.Identity, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil || !parsed.Valid {
		return nil, domain.ErrTokenInvalid
	}
	if claims.Subject == "" || claims.Role == "" {
		return nil, domain.ErrTokenInvalid
	}
	return &domain.Identity{SubjectID: claims.Subject, Role: claims.Role}, nil
}
