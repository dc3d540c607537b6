package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bistroboss/restaurant-api/internal/core/domain"
)

const defaultTokenTTL = 5 * time.Hour

// TokenService issues and verifies HS256 session tokens. The signing secret
// is loaded once at startup and never rotated at runtime.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token carrying the subject email and a fixed expiry.
func (s *TokenService) Issue(email string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"exp":   s.now().Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the embedded claims.
func (s *TokenService) Verify(token string) (domain.Claims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Claims{}, domain.ErrTokenExpired
		}
		return domain.Claims{}, domain.ErrInvalidToken
	}
	if !tkn.Valid {
		return domain.Claims{}, domain.ErrInvalidToken
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return domain.Claims{}, domain.ErrInvalidToken
	}

	return domain.Claims{Email: email}, nil
}
