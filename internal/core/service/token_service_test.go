package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/simfut/league-api/internal/core/domain"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue("alice", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if claims.Subject != "alice" {
		t.Fatalf("expected subject alice, got %q", claims.Subject)
	}
	if claims.Role != domain.RoleAdmin {
		t.Fatalf("expected role ADMIN, got %q", claims.Role)
	}
	if !claims.ExpiresAt.After(claims.IssuedAt) {
		t.Fatalf("expiry %v not after issue time %v", claims.ExpiresAt, claims.IssuedAt)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	for _, token := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		if _, err := svc.Verify(token); !errors.Is(err, domain.ErrTokenMalformed) {
			t.Fatalf("token %q: expected ErrTokenMalformed, got %v", token, err)
		}
	}
}

func TestTokenService_TamperedSignature(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue("alice", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	// Flip the final signature character.
	last := token[len(token)-1]
	flipped := byte('A')
	if last == 'A' {
		flipped = 'B'
	}
	tampered := token[:len(token)-1] + string(flipped)

	if _, err := svc.Verify(tampered); !errors.Is(err, domain.ErrTokenSignatureInvalid) {
		t.Fatalf("expected ErrTokenSignatureInvalid, got %v", err)
	}
}

func TestTokenService_TamperedPayload(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue("alice", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	// Swap in a re-encoded payload claiming ADMIN while keeping the original
	// signature: structurally valid, cryptographically not.
	forged, err := NewTokenService("other-secret", time.Hour).Issue("alice", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	parts := strings.Split(token, ".")
	forgedParts := strings.Split(forged, ".")
	tampered := strings.Join([]string{parts[0], forgedParts[1], parts[2]}, ".")

	if _, err := svc.Verify(tampered); !errors.Is(err, domain.ErrTokenSignatureInvalid) {
		t.Fatalf("expected ErrTokenSignatureInvalid, got %v", err)
	}
}

func TestTokenService_WrongKey(t *testing.T) {
	token, err := NewTokenService("their-secret", time.Hour).Issue("alice", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	svc := NewTokenService("our-secret", time.Hour)
	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrTokenSignatureInvalid) {
		t.Fatalf("expected ErrTokenSignatureInvalid, got %v", err)
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	// Correctly signed but past its lifetime.
	now := time.Now().UTC()
	expired := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
		Role: domain.RoleUser,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expired).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	_, err = svc.Verify(token)
	if !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired and no other error, got %v", err)
	}
}

func TestTokenService_RejectsMissingExpiry(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	// Correctly signed but with no exp claim. Such a token would never
	// expire, so verification must reject it outright.
	eternal := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  "alice",
			IssuedAt: jwt.NewNumericDate(time.Now().UTC()),
		},
		Role: domain.RoleAdmin,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, eternal).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed for token without expiry, got %v", err)
	}
}

func TestTokenService_RejectsUnexpectedAlg(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	// alg=none tokens must never verify.
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "mallory",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Role: domain.RoleAdmin,
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if _, err := svc.Verify(token); err == nil {
		t.Fatalf("expected verification failure for alg=none token")
	}
}
