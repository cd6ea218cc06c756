package ports

import "time"

// TokenClaims is the decoded content of a verified bearer token.
type TokenClaims struct {
	Subject   string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenSigner issues and verifies signed bearer tokens. Verification failure
// is a typed error value (domain.ErrSignatureInvalid or
// domain.ErrTokenMalformedOrExpired), never a panic.
type TokenSigner interface {
	Issue(subject, role string) (string, error)
	Verify(raw string) (TokenClaims, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
