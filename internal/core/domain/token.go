package domain

import "time"

// TokenClaims is the verified payload of an access token. Subject is the
// account email the token was issued for.
type TokenClaims struct {
	Subject   string
	ExpiresAt time.Time
}
