package ports

import (
	"time"

	"github.com/nlog/notes-system/internal/core/domain"
)

// TokenService issues and verifies self-contained access tokens. Tokens are
// stateless: verification is signature plus expiry, no lookup.
type TokenService interface {
	Issue(subject string, ttl time.Duration) (string, error)
	Verify(token string) (*domain.TokenClaims, error)
}
