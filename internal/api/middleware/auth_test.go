package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nlog/notes-system/internal/core/domain"
)

type stubTokens struct {
	claims *domain.TokenClaims
	err    error
}

func (s *stubTokens) Issue(string, time.Duration) (string, error) { return "token", nil }

func (s *stubTokens) Verify(string) (*domain.TokenClaims, error) {
	return s.claims, s.err
}

type stubAccounts struct {
	accounts map[string]*domain.Account
}

func (s *stubAccounts) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	if a, ok := s.accounts[email]; ok {
		return a, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (s *stubAccounts) Create(_ context.Context, a *domain.Account) (*domain.Account, error) {
	return a, nil
}

func runAuth(t *testing.T, tokens *stubTokens, accounts *stubAccounts, header string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(tokens, accounts)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called
}

func TestAuth_ValidToken(t *testing.T) {
	tokens := &stubTokens{claims: &domain.TokenClaims{Subject: "john@example.com"}}
	accounts := &stubAccounts{accounts: map[string]*domain.Account{
		"john@example.com": {Email: "john@example.com", Name: "John"},
	}}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(tokens, accounts)(func(c echo.Context) error {
		called = true
		if c.Get(IdentityKey) != "john@example.com" {
			t.Fatalf("identity not set, got %v", c.Get(IdentityKey))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	tokens := &stubTokens{claims: &domain.TokenClaims{Subject: "john@example.com"}}
	accounts := &stubAccounts{accounts: map[string]*domain.Account{}}

	rec, called := runAuth(t, tokens, accounts, "")
	if called {
		t.Fatalf("next should not be called")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_WrongScheme(t *testing.T) {
	tokens := &stubTokens{claims: &domain.TokenClaims{Subject: "john@example.com"}}
	accounts := &stubAccounts{accounts: map[string]*domain.Account{}}

	rec, called := runAuth(t, tokens, accounts, "Basic dXNlcjpwdw==")
	if called {
		t.Fatalf("next should not be called")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	tokens := &stubTokens{err: domain.ErrTokenInvalid}
	accounts := &stubAccounts{accounts: map[string]*domain.Account{}}

	rec, called := runAuth(t, tokens, accounts, "Bearer bad-token")
	if called {
		t.Fatalf("next should not be called")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	tokens := &stubTokens{err: domain.ErrTokenExpired}
	accounts := &stubAccounts{accounts: map[string]*domain.Account{}}

	rec, called := runAuth(t, tokens, accounts, "Bearer stale-token")
	if called {
		t.Fatalf("next should not be called")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_AccountGone(t *testing.T) {
	// Token verifies but the subject no longer has an account.
	tokens := &stubTokens{claims: &domain.TokenClaims{Subject: "ghost@example.com"}}
	accounts := &stubAccounts{accounts: map[string]*domain.Account{}}

	rec, called := runAuth(t, tokens, accounts, "Bearer orphan-token")
	if called {
		t.Fatalf("next should not be called")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
