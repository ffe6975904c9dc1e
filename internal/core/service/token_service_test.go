package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/microposts/posts-api/internal/core/domain"
)

func TestTokenService_IssueVerify_RoundTrip(t *testing.T) {
	svc := NewTokenService("secret", "HS256", 30*time.Minute)

	for _, subject := range []string{"alice@example.com", "bob", "u@x.io"} {
		token, err := svc.Issue(subject)
		if err != nil {
			t.Fatalf("Issue(%q) returned error: %v", subject, err)
		}

		principal, err := svc.Verify(token)
		if err != nil {
			t.Fatalf("Verify returned error: %v", err)
		}
		if principal.Subject != subject {
			t.Fatalf("expected subject %q, got %q", subject, principal.Subject)
		}
		if principal.ExpiresAt.IsZero() {
			t.Fatalf("expected expiry to be set")
		}
	}
}

func TestTokenService_ExpiryBoundary(t *testing.T) {
	issuedAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	clock := issuedAt
	svc := NewTokenService("secret", "HS256", 30*time.Minute).
		WithClock(func() time.Time { return clock })

	token, err := svc.Issue("alice")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// One second before expiry: still valid.
	clock = issuedAt.Add(30*time.Minute - time.Second)
	if _, err := svc.Verify(token); err != nil {
		t.Fatalf("expected token valid one second before expiry, got %v", err)
	}

	// At the expiry instant: invalid.
	clock = issuedAt.Add(30 * time.Minute)
	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired at expiry instant, got %v", err)
	}

	// Well past expiry: still invalid.
	clock = issuedAt.Add(time.Hour)
	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired after expiry, got %v", err)
	}
}

func TestTokenService_BadSignature(t *testing.T) {
	issuer := NewTokenService("secret-a", "HS256", time.Hour)
	verifier := NewTokenService("secret-b", "HS256", time.Hour)

	token, err := issuer.Issue("alice")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, domain.ErrTokenSignature) {
		t.Fatalf("expected ErrTokenSignature, got %v", err)
	}
}

func TestTokenService_TamperedPayload(t *testing.T) {
	svc := NewTokenService("secret", "HS256", time.Hour)
	token, err := svc.Issue("alice")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected 3 token segments, got %d", len(parts))
	}
	forged := parts[0] + "." + parts[1] + "x." + parts[2]

	if _, err := svc.Verify(forged); err == nil {
		t.Fatalf("expected verification of tampered token to fail")
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("secret", "HS256", time.Hour)

	for _, raw := range []string{"", "not-a-token", "a.b", "a.b.c"} {
		if _, err := svc.Verify(raw); !errors.Is(err, domain.ErrTokenMalformed) {
			t.Fatalf("Verify(%q): expected ErrTokenMalformed, got %v", raw, err)
		}
	}
}

func TestTokenService_MissingSubject(t *testing.T) {
	svc := NewTokenService("secret", "HS256", time.Hour)

	// Signed with the right secret but carrying no sub claim.
	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed for missing subject, got %v", err)
	}
}

func TestTokenService_MissingExpiry(t *testing.T) {
	svc := NewTokenService("secret", "HS256", time.Hour)

	claims := jwt.RegisteredClaims{Subject: "alice"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(token); err == nil {
		t.Fatalf("expected token without exp claim to be rejected")
	}
}

func TestTokenService_RejectsNonHMACAlgorithm(t *testing.T) {
	// "none" tokens must never verify, regardless of payload.
	svc := NewTokenService("secret", "HS256", time.Hour)

	claims := jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(token); err == nil {
		t.Fatalf("expected unsigned token to be rejected")
	}
}

func TestTokenService_UnknownAlgorithmFallsBackToHS256(t *testing.T) {
	svc := NewTokenService("secret", "RS256", time.Hour)

	token, err := svc.Issue("alice")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := svc.Verify(token); err != nil {
		t.Fatalf("expected fallback HS256 token to verify, got %v", err)
	}
}
