package jwt

import (
	"FlowHub/config"
	"testing"
	"time"
)

func newVerifier(t *testing.T, secret string) *Verifier {
	t.Helper()
	v, err := NewVerifier(&config.Config{Jwt: &config.Jwt{Secret: secret}})
	if err != nil {
		t.Fatalf("NewVerifier failed: %v", err)
	}
	return v
}

func TestParseToken(t *testing.T) {
	v := newVerifier(t, "test-secret")
	token, err := GenerateToken([]byte("test-secret"), "user_123", "a@example.com", time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := v.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if claims.Subject != "user_123" || claims.Email != "a@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	v := newVerifier(t, "test-secret")
	token, _ := GenerateToken([]byte("other-secret"), "user_123", "", time.Minute)
	if _, err := v.ParseToken(token); err == nil {
		t.Fatal("expected error for token signed with another secret")
	}
}

func TestParseToken_Expired(t *testing.T) {
	v := newVerifier(t, "test-secret")
	token, _ := GenerateToken([]byte("test-secret"), "user_123", "", -time.Minute)
	if _, err := v.ParseToken(token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestNewVerifier_RequiresKey(t *testing.T) {
	if _, err := NewVerifier(&config.Config{Jwt: &config.Jwt{}}); err == nil {
		t.Fatal("expected error without secret or public key")
	}
}
