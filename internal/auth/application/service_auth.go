package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ramordeeple/patient-management/internal/auth/domain"
	"github.com/ramordeeple/patient-management/internal/auth/ports"
)

// Authenticate verifies credentials and mints a token with the stored role.
// A missing user and a wrong password both come back as ErrUnauthorized so
// the response cannot distinguish which one happened.
func (s *Service) Authenticate(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return LoginResponse{}, domain.ErrUnauthorized
	}

	lockKey := "login:" + email
	if s.lockouts != nil {
		lockState, lockErr := s.lockouts.Get(ctx, lockKey)
		if lockErr == nil && lockState.LockedUntil != nil && lockState.LockedUntil.After(s.nowFn()) {
			slog.Default().WarnContext(ctx, "account lockout active",
				"service", s.cfg.ServiceName,
				"module", "application",
				"operation", "authenticate",
				"outcome", "blocked",
				"email", email,
				"locked_until", lockState.LockedUntil,
			)
			return LoginResponse{}, domain.ErrUnauthorized
		}
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		s.recordFailure(ctx, lockKey)
		return LoginResponse{}, domain.ErrUnauthorized
	}

	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		s.recordFailure(ctx, lockKey)
		return LoginResponse{}, domain.ErrUnauthorized
	}

	if s.lockouts != nil {
		_ = s.lockouts.Clear(ctx, lockKey)
	}

	token, err := s.signer.Issue(user.Email, user.Role)
	if err != nil {
		return LoginResponse{}, fmt.Errorf("issue token: %w", err)
	}
	return LoginResponse{Token: token}, nil
}

// ValidateToken delegates to the signer; any verification error collapses to
// a plain failure for the caller.
func (s *Service) ValidateToken(ctx context.Context, raw string) (ports.TokenClaims, error) {
	claims, err := s.signer.Verify(raw)
	if err != nil {
		slog.Default().DebugContext(ctx, "token rejected",
			"service", s.cfg.ServiceName,
			"module", "application",
			"operation", "validate_token",
			"outcome", "failure",
			"error", err,
		)
		return ports.TokenClaims{}, domain.ErrUnauthorized
	}
	return claims, nil
}

func (s *Service) recordFailure(ctx context.Context, lockKey string) {
	if s.lockouts == nil {
		return
	}
	if _, err := s.lockouts.RecordFailure(ctx, lockKey, s.nowFn(), s.cfg.LockoutThreshold, s.cfg.LockoutWindow); err != nil {
		slog.Default().WarnContext(ctx, "failed to record login failure",
			"service", s.cfg.ServiceName,
			"module", "application",
			"operation", "record_failure",
			"outcome", "failure",
			"error", err,
		)
	}
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return "", fmt.Errorf("%w: email", domain.ErrInvalidInput)
	}
	return email, nil
}
