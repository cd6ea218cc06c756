package security

import (
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ramordeeple/patient-management/internal/auth/domain"
	"github.com/ramordeeple/patient-management/internal/auth/ports"
)

// JWTSigner implements HS256 token signing/verification. The key is derived
// once from the base64-encoded shared secret and never rotates during the
// process lifetime. Keys are held at adapter level so the application layer
// stays crypto-library agnostic.
type JWTSigner struct {
	key   []byte
	ttl   time.Duration
	nowFn func() time.Time
}

// NewJWTSigner builds a signer from the configured base64 secret.
func NewJWTSigner(base64Secret string, ttl time.Duration) (*JWTSigner, error) {
	if base64Secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	key, err := base64.StdEncoding.DecodeString(base64Secret)
	if err != nil {
		return nil, fmt.Errorf("decode jwt secret: %w", err)
	}
	if ttl <= 0 {
		ttl = 10 * time.Hour
	}
	return &JWTSigner{key: key, ttl: ttl, nowFn: func() time.Time { return time.Now().UTC() }}, nil
}

type authJWTClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func (s *JWTSigner) Issue(subject, role string) (string, error) {
	now := s.nowFn()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, authJWTClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})
	return token.SignedString(s.key)
}

// Verify parses and checks the token. A signature mismatch reports
// domain.ErrSignatureInvalid; every other structural or temporal violation
// collapses to domain.ErrTokenMalformedOrExpired. Expiry is strict, no leeway.
func (s *JWTSigner) Verify(raw string) (ports.TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(raw, &authJWTClaims{}, func(token *jwt.Token) (any, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
		}
		return s.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.nowFn))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return ports.TokenClaims{}, domain.ErrSignatureInvalid
		}
		return ports.TokenClaims{}, domain.ErrTokenMalformedOrExpired
	}

	claims, ok := parsed.Claims.(*authJWTClaims)
	if !ok || !parsed.Valid {
		return ports.TokenClaims{}, domain.ErrTokenMalformedOrExpired
	}
	if claims.ExpiresAt == nil {
		return ports.TokenClaims{}, domain.ErrTokenMalformedOrExpired
	}

	out := ports.TokenClaims{
		Subject:   claims.Subject,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt.Time.UTC(),
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time.UTC()
	}
	return out, nil
}

var _ ports.TokenSigner = (*JWTSigner)(nil)
