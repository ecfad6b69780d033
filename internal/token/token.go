// Package token issues and verifies the signed session credentials that carry
// an account id and role between requests.
//
// Tokens are HS256 JWTs. Verification is stateless: there is no server-side
// session list, so a token cannot be revoked before it expires. With a zero
// TTL tokens never expire.
package token

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/store-ratings/internal/access"
	"github.com/BruksfildServices01/store-ratings/internal/httperr"
	"github.com/BruksfildServices01/store-ratings/internal/models"
)

var (
	ErrMissing   = httperr.ErrAuth("auth_missing", "Access denied")
	ErrMalformed = httperr.ErrAuth("auth_malformed", "Invalid token")
)

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewService(secret []byte, ttl time.Duration) *Service {
	key := make([]byte, len(secret))
	copy(key, secret)
	return &Service{
		secret: key,
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *Service) Issue(accountID uint, role models.Role) (string, error) {
	if accountID == 0 || !role.Valid() {
		return "", errors.New("token: cannot issue for an incomplete identity")
	}

	now := s.now()
	claims := Claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  strconv.FormatUint(uint64(accountID), 10),
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if s.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Service) Verify(raw string) (access.Identity, error) {
	if raw == "" {
		return access.Identity{}, ErrMissing
	}

	var claims Claims
	tok, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !tok.Valid {
		return access.Identity{}, ErrMalformed
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || id == 0 {
		return access.Identity{}, ErrMalformed
	}
	role := models.Role(claims.Role)
	if !role.Valid() {
		return access.Identity{}, ErrMalformed
	}

	return access.Identity{AccountID: uint(id), Role: role}, nil
}
