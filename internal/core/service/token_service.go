package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nlog/notes-system/internal/core/domain"
)

// DefaultTokenTTL is how long an access token stays valid unless the caller
// overrides it.
const DefaultTokenTTL = 30 * time.Minute

// TokenService issues and verifies HMAC-signed JWTs. The signing method is
// fixed at construction; tokens presented with any other method are rejected.
type TokenService struct {
	secret []byte
	method *jwt.SigningMethodHMAC
}

// NewTokenService builds a TokenService for the given symmetric secret and
// algorithm name (HS256, HS384 or HS512). An empty secret or an unknown
// algorithm is a configuration error and fails closed.
func NewTokenService(secret, algorithm string) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("token service: empty signing secret")
	}

	var method *jwt.SigningMethodHMAC
	switch algorithm {
	case "HS256":
		method = jwt.SigningMethodHS256
	case "HS384":
		method = jwt.SigningMethodHS384
	case "HS512":
		method = jwt.SigningMethodHS512
	default:
		return nil, fmt.Errorf("token service: unsupported algorithm %q", algorithm)
	}

	return &TokenService{secret: []byte(secret), method: method}, nil
}

// Issue signs a token for subject expiring at now + ttl. The ttl is taken
// as given; a zero ttl produces a token that is already expired.
func (s *TokenService) Issue(subject string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(ttl).Unix(),
	}

	t := jwt.NewWithClaims(s.method, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and expiry of token and returns its claims.
func (s *TokenService) Verify(token string) (*domain.TokenClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != s.method.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, domain.ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domain.ErrTokenExpired
		default:
			return nil, domain.ErrTokenInvalid
		}
	}
	if !tkn.Valid {
		return nil, domain.ErrTokenInvalid
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, domain.ErrTokenInvalid
	}

	out := &domain.TokenClaims{Subject: sub}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}
