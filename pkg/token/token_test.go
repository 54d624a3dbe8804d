package token

import (
	"testing"
	"time"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	c := NewJWT([]byte("test-secret"), time.Hour)
	tok, err := c.Issue(42)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	id, err := c.Verify(tok)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected user id 42, got %d", id)
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	c := NewJWT([]byte("test-secret"), time.Hour)
	issued := time.Now().UTC()
	c.now = func() time.Time { return issued }
	tok, err := c.Issue(7)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	c.now = func() time.Time { return issued.Add(2 * time.Hour) }
	if _, err := c.Verify(tok); err != ErrExpired {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	issuer := NewJWT([]byte("key-a"), time.Hour)
	verifier := NewJWT([]byte("key-b"), time.Hour)
	tok, err := issuer.Issue(7)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := verifier.Verify(tok); err != ErrInvalid {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	c := NewJWT([]byte("test-secret"), time.Hour)
	for _, tok := range []string{"", "not-a-token", "aaaa.bbbb.cccc"} {
		if _, err := c.Verify(tok); err == nil {
			t.Fatalf("expected error for %q", tok)
		}
	}
}
