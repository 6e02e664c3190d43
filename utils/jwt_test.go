package utils

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("round-trip-secret", time.Hour)

	token, err := m.Generate("user-42", "client", "dana@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	identity, err := m.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if identity.ID != "user-42" || identity.Role != "client" || identity.Email != "dana@example.com" {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestTokenExpired(t *testing.T) {
	m := NewTokenManager("expiry-secret", -time.Minute)

	token, err := m.Generate("user-42", "client", "dana@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := m.Verify(token); err == nil {
		t.Fatal("want error for expired token")
	}
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, err := issuer.Generate("user-42", "client", "dana@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := verifier.Verify(token); err == nil {
		t.Fatal("want error for token signed with a different secret")
	}
}

func TestTokenGarbage(t *testing.T) {
	m := NewTokenManager("garbage-secret", time.Hour)
	if _, err := m.Verify("definitely.not.ajwt"); err == nil {
		t.Fatal("want error for malformed token")
	}
}

func TestHashTokenDeterministic(t *testing.T) {
	a := HashToken("some-token")
	b := HashToken("some-token")
	c := HashToken("other-token")

	if a != b {
		t.Fatal("same input produced different hashes")
	}
	if a == c {
		t.Fatal("different inputs produced the same hash")
	}
	if a == "some-token" {
		t.Fatal("hash equals plaintext")
	}
}
