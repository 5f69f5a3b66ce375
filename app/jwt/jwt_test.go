package jwtutil

import (
	"testing"
)

func TestSignAndParse(t *testing.T) {
	t.Parallel()

	s := &Signer{Secret: []byte("super-secret"), Issuer: "devcamper", ExpMin: 60}

	tok, err := s.Sign("user-123", "publisher")
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	claims, err := s.Parse(tok)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Fatalf("userID mismatch: got %q want %q", claims.UserID, "user-123")
	}
	if claims.Role != "publisher" {
		t.Fatalf("role mismatch: got %q want %q", claims.Role, "publisher")
	}
}

func TestParse_Expired(t *testing.T) {
	t.Parallel()

	s := &Signer{Secret: []byte("secret"), Issuer: "devcamper", ExpMin: -1}
	tok, err := s.Sign("u1", "user")
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	if _, err := s.Parse(tok); err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	signer := &Signer{Secret: []byte("right-secret"), ExpMin: 60}
	tok, err := signer.Sign("u2", "user")
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	other := &Signer{Secret: []byte("wrong-secret"), ExpMin: 60}
	if _, err := other.Parse(tok); err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	s := &Signer{Secret: []byte("k"), ExpMin: 60}
	if _, err := s.Parse("not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}
