package ports

import (
	"context"

	"github.com/nlog/notes-system/internal/core/domain"
)

type AuthService interface {
	SignUp(ctx context.Context, name, email, password string) (*domain.Account, error)
	Login(ctx context.Context, email, password string) (string, error)
}
