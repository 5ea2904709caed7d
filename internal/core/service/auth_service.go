package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/nlog/notes-system/internal/core/domain"
	"github.com/nlog/notes-system/internal/core/ports"
	"github.com/nlog/notes-system/internal/pkg/password"
)

// AuthService implements signup and login.
type AuthService struct {
	accounts ports.AccountRepository
	tokens   ports.TokenService
	tokenTTL time.Duration
	logger   zerolog.Logger
}

func NewAuthService(accounts ports.AccountRepository, tokens ports.TokenService, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}
	return &AuthService{accounts: accounts, tokens: tokens, tokenTTL: tokenTTL, logger: logger}
}

// SignUp registers a new account. The duplicate check is a read before the
// insert; the unique index on email inside the repository closes the race
// window between concurrent signups.
func (s *AuthService) SignUp(ctx context.Context, name, email, plain string) (*domain.Account, error) {
	if name == "" || email == "" || plain == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if _, err := s.accounts.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, err
	}

	hash, err := password.Hash(plain)
	if err != nil {
		return nil, err
	}

	created, err := s.accounts.Create(ctx, &domain.Account{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", email).Msg("account created")
	return created, nil
}

// Login verifies the credentials and returns a fresh access token whose
// subject is the account email. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, plain string) (string, error) {
	if email == "" || plain == "" {
		return "", domain.ErrInvalidCredentials
	}

	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !password.Verify(plain, account.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(account.Email, s.tokenTTL)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("email", email).Msg("login succeeded")
	return token, nil
}
