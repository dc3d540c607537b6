package ports

import "github.com/bistroboss/restaurant-api/internal/core/domain"

// TokenService issues and verifies signed session tokens. Verification is a
// pure cryptographic check against the process-wide signing secret; there is
// no server-side revocation.
type TokenService interface {
	// Issue produces a signed token for the given email with a fixed
	// expiry. Repeated calls for the same email yield distinct valid tokens.
	Issue(email string) (string, error)
	// Verify returns the embedded claims, domain.ErrTokenExpired when past
	// expiry, or domain.ErrInvalidToken for anything malformed or forged.
	Verify(token string) (domain.Claims, error)
}
