package token

import (
	"crypto/rand"
	"crypto/rsa"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/quicktaste/ordering-api/internal/core/domain"
)

func testKeyPair(t *testing.T) (*rsa.PrivateKey, *rsa.PublicKey) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	return key, &key.PublicKey
}

func TestIssueValidate_RoundTrip(t *testing.T) {
	priv, pub := testKeyPair(t)
	svc := NewService(priv, pub, time.Hour)

	want := domain.Identity{Subject: "alice", Roles: []string{domain.RoleUser, domain.RoleAdmin}}
	raw, err := svc.Issue(want)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	got, err := svc.Validate(raw)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if got.Subject != want.Subject {
		t.Fatalf("subject = %q, want %q", got.Subject, want.Subject)
	}
	if len(got.Roles) != 2 || got.Roles[0] != domain.RoleUser || got.Roles[1] != domain.RoleAdmin {
		t.Fatalf("roles = %v, want %v", got.Roles, want.Roles)
	}
}

func TestValidate_Expired(t *testing.T) {
	priv, pub := testKeyPair(t)
	svc := NewService(priv, pub, time.Hour)

	// Sign a token whose expiry is already in the past.
	past := time.Now().Add(-time.Minute)
	claims := Claims{
		Roles: domain.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			IssuedAt:  jwt.NewNumericDate(past.Add(-time.Hour)),
			ExpiresAt: jwt.NewNumericDate(past),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(priv)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := svc.Validate(raw); err != domain.ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidate_TamperedSignature(t *testing.T) {
	priv, pub := testKeyPair(t)
	svc := NewService(priv, pub, time.Hour)

	raw, err := svc.Issue(domain.Identity{Subject: "alice", Roles: []string{domain.RoleUser}})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Flip a byte in the signature segment.
	idx := strings.LastIndex(raw, ".") + 1
	sig := []byte(raw[idx:])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := raw[:idx] + string(sig)

	if _, err := svc.Validate(tampered); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestValidate_WrongKeyAndAlgorithm(t *testing.T) {
	priv, _ := testKeyPair(t)
	_, otherPub := testKeyPair(t)

	issuer := NewService(priv, &priv.PublicKey, time.Hour)
	raw, err := issuer.Issue(domain.Identity{Subject: "alice", Roles: []string{domain.RoleUser}})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Verifier holding a different public key must reject.
	verifier := NewService(nil, otherPub, time.Hour)
	if _, err := verifier.Validate(raw); err != domain.ErrInvalidToken {
		t.Fatalf("wrong key: expected ErrInvalidToken, got %v", err)
	}

	// HMAC-signed token must be rejected regardless of its payload.
	hmac, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "alice",
		"roles": domain.RoleAdmin,
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign hmac: %v", err)
	}
	if _, err := issuer.Validate(hmac); err != domain.ErrInvalidToken {
		t.Fatalf("hmac: expected ErrInvalidToken, got %v", err)
	}
}

func TestValidate_Malformed(t *testing.T) {
	priv, pub := testKeyPair(t)
	svc := NewService(priv, pub, time.Hour)

	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Validate(raw); err != domain.ErrInvalidToken {
			t.Fatalf("%q: expected ErrInvalidToken, got %v", raw, err)
		}
	}
}

func TestValidate_MissingSubject(t *testing.T) {
	priv, pub := testKeyPair(t)
	svc := NewService(priv, pub, time.Hour)

	claims := Claims{
		Roles: domain.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(priv)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := svc.Validate(raw); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for empty subject, got %v", err)
	}
}

func TestIssue_NoSigningKey(t *testing.T) {
	_, pub := testKeyPair(t)
	svc := NewService(nil, pub, time.Hour)
	if _, err := svc.Issue(domain.Identity{Subject: "alice"}); err == nil {
		t.Fatalf("expected error issuing without a private key")
	}
}
