package jwt

import (
	"errors"
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired is returned when a token has expired.
	ErrTokenExpired = errors.New("token is expired")
	// ErrTokenInvalid is returned for malformed, tampered or foreign-signed tokens.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrMissingSecret is returned when the manager is built without a signing secret.
	ErrMissingSecret = errors.New("jwt secret key is not configured")
)

// DefaultAccessTokenTTL is used when a non-positive TTL is passed to NewTokenManager.
const DefaultAccessTokenTTL = 30 * time.Minute

// Claims defines the custom JWT claims structure. The subject is the user's email.
type Claims struct {
	jwtlib.RegisteredClaims
}

// TokenManager issues and verifies stateless access tokens.
// There is no revocation list: expiry is the only way a token stops working.
type TokenManager interface {
	GenerateToken(subject string) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
}

// Option customises a token manager.
type Option func(*tokenManager)

// WithClock replaces the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(m *tokenManager) { m.now = now }
}

// NewTokenManager creates a TokenManager signing with HS256.
// It fails when secretKey is empty so a misconfigured process never starts serving.
func NewTokenManager(secretKey string, ttl time.Duration, opts ...Option) (TokenManager, error) {
	if secretKey == "" {
		return nil, ErrMissingSecret
	}
	if ttl <= 0 {
		ttl = DefaultAccessTokenTTL
	}
	m := &tokenManager{secretKey: []byte(secretKey), ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

type tokenManager struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

// GenerateToken creates a signed access token for subject and returns it with its expiry.
func (m *tokenManager) GenerateToken(subject string) (string, time.Time, error) {
	now := m.now()
	expiresAt := now.Add(m.ttl)
	claims := Claims{
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwtlib.NewNumericDate(expiresAt),
			IssuedAt:  jwtlib.NewNumericDate(now),
		},
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// ValidateAccessToken parses the token, checks the signature and the expiry.
func (m *tokenManager) ValidateAccessToken(tokenString string) (*Claims, error) {
	token, err := jwtlib.ParseWithClaims(tokenString, &Claims{}, func(token *jwtlib.Token) (interface{}, error) {
		return m.secretKey, nil
	},
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithExpirationRequired(),
		jwtlib.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
