package security

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ramordeeple/patient-management/internal/auth/domain"
)

const testSecret = "dGhpcy1pcy1hLXRlc3Qtc2VjcmV0LXRoaXMtaXMtYS10ZXN0LXNlY3JldA=="

func newTestSigner(t *testing.T) *JWTSigner {
	t.Helper()
	signer, err := NewJWTSigner(testSecret, 10*time.Hour)
	if err != nil {
		t.Fatalf("new signer: %v", err)
	}
	return signer
}

func TestJWTIssueAndVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	signer := newTestSigner(t)
	raw, err := signer.Issue("testuser@test.com", "ADMIN")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := signer.Verify(raw)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Subject != "testuser@test.com" {
		t.Fatalf("expected subject testuser@test.com, got %s", claims.Subject)
	}
	if claims.Role != "ADMIN" {
		t.Fatalf("expected role ADMIN, got %s", claims.Role)
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt); got != 10*time.Hour {
		t.Fatalf("expected 10h lifetime, got %s", got)
	}
}

func TestJWTVerifyRejectsTamperedSignature(t *testing.T) {
	t.Parallel()

	signer := newTestSigner(t)
	raw, err := signer.Issue("testuser@test.com", "ADMIN")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		t.Fatalf("expected 3 token segments, got %d", len(parts))
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = signer.Verify(tampered)
	if !errors.Is(err, domain.ErrSignatureInvalid) {
		t.Fatalf("expected ErrSignatureInvalid, got %v", err)
	}
}

func TestJWTVerifyRejectsWrongKey(t *testing.T) {
	t.Parallel()

	signer := newTestSigner(t)
	other, err := NewJWTSigner(base64.StdEncoding.EncodeToString([]byte("another-key-another-key-another!")), time.Hour)
	if err != nil {
		t.Fatalf("new signer: %v", err)
	}

	raw, err := other.Issue("testuser@test.com", "ADMIN")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, err = signer.Verify(raw)
	if !errors.Is(err, domain.ErrSignatureInvalid) {
		t.Fatalf("expected ErrSignatureInvalid, got %v", err)
	}
}

func TestJWTVerifyRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	signer := newTestSigner(t)
	issued := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	signer.nowFn = func() time.Time { return issued }

	raw, err := signer.Issue("testuser@test.com", "ADMIN")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	signer.nowFn = func() time.Time { return issued.Add(10*time.Hour + time.Second) }
	_, err = signer.Verify(raw)
	if !errors.Is(err, domain.ErrTokenMalformedOrExpired) {
		t.Fatalf("expected ErrTokenMalformedOrExpired, got %v", err)
	}
}

func TestJWTVerifyExpiresWithRealClock(t *testing.T) {
	t.Parallel()

	// No clock injection: the signer's own clock must keep moving after
	// construction for expiry to ever trip in production.
	signer, err := NewJWTSigner(testSecret, time.Second)
	if err != nil {
		t.Fatalf("new signer: %v", err)
	}
	raw, err := signer.Issue("testuser@test.com", "ADMIN")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := signer.Verify(raw); err != nil {
		t.Fatalf("fresh token must verify: %v", err)
	}

	time.Sleep(2500 * time.Millisecond)
	if _, err := signer.Verify(raw); !errors.Is(err, domain.ErrTokenMalformedOrExpired) {
		t.Fatalf("expected token to expire after its ttl elapsed, got %v", err)
	}
}

func TestJWTVerifyRejectsGarbage(t *testing.T) {
	t.Parallel()

	signer := newTestSigner(t)
	for _, raw := range []string{"", "not-a-token", "a.b", "a.b.c"} {
		if _, err := signer.Verify(raw); !errors.Is(err, domain.ErrTokenMalformedOrExpired) {
			t.Fatalf("expected ErrTokenMalformedOrExpired for %q, got %v", raw, err)
		}
	}
}

func TestNewJWTSignerRejectsBadSecret(t *testing.T) {
	t.Parallel()

	if _, err := NewJWTSigner("", time.Hour); err == nil {
		t.Fatal("expected error for empty secret")
	}
	if _, err := NewJWTSigner("not base64!!", time.Hour); err == nil {
		t.Fatal("expected error for invalid base64 secret")
	}
}
