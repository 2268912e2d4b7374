package jwt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"moviecatalog/internal/domain"
)

// MinSecretLen is the minimum signing key length HS256 needs.
const MinSecretLen = 32

var (
	ErrSecretTooShort = fmt.Errorf("jwt secret must be at least %d bytes", MinSecretLen)
	ErrInvalidToken   = errors.New("invalid token")
)

type Service struct {
	secret []byte
	ttl    time.Duration
}

// Claims carries the authenticated identity. Roles is a comma-joined list
// of role names.
type Claims struct {
	UserID int64  `json:"uid"`
	Email  string `json:"email"`
	Roles  string `json:"roles"`
	jwtlib.RegisteredClaims
}

// Username is the token subject.
func (c *Claims) Username() string { return c.Subject }

// RoleNames splits the comma-joined roles claim.
func (c *Claims) RoleNames() []string {
	if c.Roles == "" {
		return nil
	}
	return strings.Split(c.Roles, ",")
}

// New validates the signing key length and returns a token service.
// Short keys are a fatal configuration error for the caller.
func New(secret string, ttl time.Duration) (*Service, error) {
	if len(secret) < MinSecretLen {
		return nil, ErrSecretTooShort
	}
	return &Service{secret: []byte(secret), ttl: ttl}, nil
}

// GenerateToken issues a signed token for the user, expiring after the
// configured TTL.
func (s *Service) GenerateToken(u *domain.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: u.ID,
		Email:  u.Email,
		Roles:  strings.Join(u.RoleNames(), ","),
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   u.Username,
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken checks signature, structure and expiry. Expiry and the other
// claims must only be read from the result of a successful validation.
func (s *Service) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (any, error) {
		if t.Method.Alg() != jwtlib.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
