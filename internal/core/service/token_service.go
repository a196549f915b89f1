package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fullstack-app/catalog-api/internal/core/domain"
	"github.com/fullstack-app/catalog-api/internal/core/ports"
)

const defaultTokenTTL = 24 * time.Hour

// TokenService issues and verifies HS256-signed JWTs. Tokens are stateless:
// validity is determined entirely by signature and expiry, there is no
// revocation list.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

type tokenClaims struct {
	Login string `json:"login"`
	jwt.RegisteredClaims
}

// Issue signs a token carrying the user ID as subject and the login as a
// custom claim, expiring after the configured TTL.
func (s *TokenService) Issue(userID, login string) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Login: login,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates a token. Verification is all-or-nothing: any
// failure collapses to domain.ErrInvalidCredentials.
func (s *TokenService) Verify(token string) (*ports.TokenClaims, error) {
	claims := &tokenClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid || claims.Subject == "" {
		return nil, domain.ErrInvalidCredentials
	}

	return &ports.TokenClaims{UserID: claims.Subject, Login: claims.Login}, nil
}
