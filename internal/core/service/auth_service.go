package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/brightcart/storefront-api/internal/api/metrics"
	"github.com/brightcart/storefront-api/internal/core/domain"
	"github.com/brightcart/storefront-api/internal/core/ports"
)

const bcryptCost = 10

// AuthEventSink receives audit events for async persistence. Satisfied by the
// queue dispatcher; a nil sink disables auditing (tests).
type AuthEventSink interface {
	Enqueue(event domain.AuthEvent)
}

// AuthService implements registration and login.
type AuthService struct {
	repo     ports.AccountRepository
	tokens   ports.TokenService
	throttle ports.LoginThrottle
	audit    AuthEventSink
	log      zerolog.Logger
}

func NewAuthService(
	repo ports.AccountRepository,
	tokens ports.TokenService,
	throttle ports.LoginThrottle,
	audit AuthEventSink,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, throttle: throttle, audit: audit, log: log}
}

// Register creates an account with a bcrypt-hashed password. Presence checks
// only; email format and password strength are not enforced.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.Account, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrValidation
	}
	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrValidation
	}

	// Fast-path rejection. The unique index on email is what actually closes
	// the race between concurrent registrations.
	if _, err := s.repo.FindByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrAccountExists
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues(role).Inc()
	s.record(domain.AuthEvent{Email: in.Email, Action: domain.AuditRegister, RemoteIP: in.RemoteIP})
	s.log.Info().Str("email", in.Email).Str("role", role).Msg("account registered")
	return created, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password surface the same error; login never reveals whether an account
// exists.
func (s *AuthService) Login(ctx context.Context, in ports.LoginInput) (string, *domain.Account, error) {
	if in.Email == "" || in.Password == "" {
		return "", nil, domain.ErrValidation
	}

	if s.throttle != nil {
		blocked, err := s.throttle.Blocked(ctx, in.Email)
		if err != nil {
			s.log.Warn().Err(err).Msg("login throttle unavailable, continuing")
		} else if blocked {
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
	}

	account, err := s.repo.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return "", nil, s.rejectLogin(ctx, in)
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(in.Password)) != nil {
		return "", nil, s.rejectLogin(ctx, in)
	}

	token, err := s.tokens.Issue(account.ID, account.Role)
	if err != nil {
		return "", nil, err
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, in.Email); err != nil {
			s.log.Warn().Err(err).Msg("login throttle reset failed")
		}
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.record(domain.AuthEvent{Email: in.Email, Action: domain.AuditLoginSuccess, RemoteIP: in.RemoteIP})
	return token, account, nil
}

// Logout records an audit event for the token being discarded. An absent or
// unverifiable token still logs the client out at the HTTP layer; it just
// leaves no attributable audit trail.
func (s *AuthService) Logout(ctx context.Context, in ports.LogoutInput) {
	if in.Token == "" {
		return
	}
	identity, err := s.tokens.Verify(in.Token)
	if err != nil {
		return
	}
	s.record(domain.AuthEvent{Subject: identity.SubjectID, Action: domain.AuditLogout, RemoteIP: in.RemoteIP})
	s.log.Info().Str("subject", identity.SubjectID).Msg("account logged out")
}

func (s *AuthService) rejectLogin(ctx context.Context, in ports.LoginInput) error {
	if s.throttle != nil {
		if err := s.throttle.RecordFailure(ctx, in.Email); err != nil {
			s.log.Warn().Err(err).Msg("login throttle record failed")
		}
	}
	metrics.LoginsTotal.WithLabelValues("rejected").Inc()
	s.record(domain.AuthEvent{Email: in.Email, Action: domain.AuditLoginFailure, RemoteIP: in.RemoteIP})
	return domain.ErrInvalidCredentials
}

func (s *AuthService) record(event domain.AuthEvent) {
	if s.audit == nil {
		return
	}
	event.Timestamp = time.Now().UTC()
	s.audit.Enqueue(event)
}
