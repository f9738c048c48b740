package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophsecrets/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the identity carried by a session token plus the standard claims.
type Claims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// TokenIssuer signs session tokens.
type TokenIssuer interface {
	Issue(id, email, name string) (string, error)
}

// TokenVerifier checks signature and expiry and returns the embedded claims.
type TokenVerifier interface {
	Verify(token string) (*Claims, error)
}

// TokenManager issues and verifies HS256 session tokens with a fixed key
// injected at construction. It holds no mutable state.
type TokenManager struct {
	secretKey []byte
	validity  time.Duration
	now       func() time.Time
}

type TokenOption func(*TokenManager)

// WithClock overrides time.Now; used to simulate expiry.
func WithClock(now func() time.Time) TokenOption {
	return func(m *TokenManager) { m.now = now }
}

func NewTokenManager(secretKey []byte, validity time.Duration, opts ...TokenOption) (*TokenManager, error) {
	if len(secretKey) == 0 {
		return nil, common.ErrMissingSigningKey
	}
	if validity <= 0 {
		validity = common.DefaultTokenValidity
	}
	m := &TokenManager{secretKey: secretKey, validity: validity, now: time.Now}
	for _, o := range opts {
		o(m)
	}
	return m, nil
}

// Validity is the token lifetime; the web layer uses it as cookie Max-Age.
func (m *TokenManager) Validity() time.Duration {
	return m.validity
}

func (m *TokenManager) Issue(id, email, name string) (string, error) {
	now := m.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: id,
		Email:  email,
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.validity)),
		},
	})

	tokenString, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return tokenString, nil
}

func (m *TokenManager) Verify(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, common.ErrTokenMissing
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
