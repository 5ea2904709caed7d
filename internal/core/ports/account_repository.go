package ports

import (
	"context"

	"github.com/nlog/notes-system/internal/core/domain"
)

// AccountRepository defines the interface for account persistence.
type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
}
