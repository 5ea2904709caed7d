package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nlog/notes-system/internal/core/domain"
)

func TestNewTokenService_FailsClosed(t *testing.T) {
	if _, err := NewTokenService("", "HS256"); err == nil {
		t.Fatalf("expected error for empty secret")
	}
	if _, err := NewTokenService("secret", "RS256"); err == nil {
		t.Fatalf("expected error for unsupported algorithm")
	}
	if _, err := NewTokenService("secret", "none"); err == nil {
		t.Fatalf("expected error for none algorithm")
	}
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc, err := NewTokenService("secret", "HS256")
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}

	token, err := svc.Issue("john@example.com", time.Hour)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Subject != "john@example.com" {
		t.Fatalf("unexpected subject: %s", claims.Subject)
	}
	if !claims.ExpiresAt.After(time.Now()) {
		t.Fatalf("expiry should be in the future, got %v", claims.ExpiresAt)
	}
}

func TestTokenService_ZeroTTLExpired(t *testing.T) {
	svc, _ := NewTokenService("secret", "HS256")

	token, err := svc.Issue("john@example.com", 0)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// exp is truncated to whole seconds, so it is already in the past.
	if _, err := svc.Verify(token); err != domain.ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer, _ := NewTokenService("secret-a", "HS256")
	verifier, _ := NewTokenService("secret-b", "HS256")

	token, err := issuer.Issue("john@example.com", time.Hour)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := verifier.Verify(token); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenService_AlgorithmMismatch(t *testing.T) {
	svc, _ := NewTokenService("secret", "HS256")

	// Same secret, different HMAC method: must be rejected, not accepted.
	other := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"sub": "john@example.com",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := other.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := svc.Verify(signed); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc, _ := NewTokenService("secret", "HS256")

	if _, err := svc.Verify("not-a-token"); err != domain.ErrTokenMalformed {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestTokenService_MissingSubject(t *testing.T) {
	svc, _ := NewTokenService("secret", "HS256")

	anon := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := anon.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := svc.Verify(signed); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
