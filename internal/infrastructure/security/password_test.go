package security

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptVerifier(t *testing.T) {
	v := NewBcryptVerifier(bcrypt.MinCost)

	hash, err := v.Hash("secret1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secret1" {
		t.Fatalf("expected password to be hashed")
	}
	if !v.Verify("secret1", hash) {
		t.Fatalf("expected matching password to verify")
	}
	if v.Verify("secret2", hash) {
		t.Fatalf("expected wrong password to fail")
	}
	if v.Verify("secret1", "not-a-bcrypt-hash") {
		t.Fatalf("malformed hash must not verify")
	}
	if v.Verify("secret1", "") {
		t.Fatalf("empty hash must not verify")
	}
}

func TestNewBcryptVerifier_FallsBackToDefaultCost(t *testing.T) {
	if got := NewBcryptVerifier(0).cost; got != bcrypt.DefaultCost {
		t.Fatalf("expected default cost, got %d", got)
	}
	if got := NewBcryptVerifier(bcrypt.MaxCost + 1).cost; got != bcrypt.DefaultCost {
		t.Fatalf("expected default cost, got %d", got)
	}
}
