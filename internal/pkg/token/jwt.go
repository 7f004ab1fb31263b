// Package token issues and validates the bearer tokens that carry an
// authenticated identity. Tokens are RS256-signed JWTs: the private key
// signs, the public key verifies, so a validator never needs signing
// secrets. The key pair is loaded once at startup and never rotated.
package token

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/quicktaste/ordering-api/internal/core/domain"
)

const defaultTTL = time.Hour

// Claims is the signed payload embedded in every token.
type Claims struct {
	Roles string `json:"roles"`
	jwt.RegisteredClaims
}

// Service signs and verifies identity tokens.
type Service struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	ttl        time.Duration
}

// NewService builds a Service around an RSA key pair. A validation-only
// instance may pass nil for privateKey; Issue then fails.
func NewService(privateKey *rsa.PrivateKey, publicKey *rsa.PublicKey, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Service{privateKey: privateKey, publicKey: publicKey, ttl: ttl}
}

// Issue signs a token for the given identity, expiring after the
// configured TTL.
func (s *Service) Issue(id domain.Identity) (string, error) {
	if s.privateKey == nil {
		return "", errors.New("token: no signing key configured")
	}
	now := time.Now()
	claims := Claims{
		Roles: domain.JoinRoles(id.Roles),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.Subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := t.SignedString(s.privateKey)
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

// Validate parses and verifies a raw token. It returns the embedded
// identity, domain.ErrTokenExpired for an otherwise valid token past its
// expiry, or domain.ErrInvalidToken for bad signatures, wrong algorithms
// and malformed claims.
func (s *Service) Validate(raw string) (domain.Identity, error) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodRS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.publicKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Identity{}, domain.ErrTokenExpired
		}
		return domain.Identity{}, domain.ErrInvalidToken
	}
	if !t.Valid || claims.Subject == "" {
		return domain.Identity{}, domain.ErrInvalidToken
	}

	return domain.Identity{
		Subject: claims.Subject,
		Roles:   domain.ParseRoles(claims.Roles),
	}, nil
}

// LoadPrivateKey reads a PEM-encoded RSA private key from disk.
func LoadPrivateKey(path string) (*rsa.PrivateKey, error) {
	pem, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("token: read private key: %w", err)
	}
	key, err := jwt.ParseRSAPrivateKeyFromPEM(pem)
	if err != nil {
		return nil, fmt.Errorf("token: parse private key: %w", err)
	}
	return key, nil
}

// LoadPublicKey reads a PEM-encoded RSA public key from disk.
func LoadPublicKey(path string) (*rsa.PublicKey, error) {
	pem, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("token: read public key: %w", err)
	}
	key, err := jwt.ParseRSAPublicKeyFromPEM(pem)
	if err != nil {
		return nil, fmt.Errorf("token: parse public key: %w", err)
	}
	return key, nil
}
