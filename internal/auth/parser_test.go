package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestParser_Parse(t *testing.T) {
	const secret = "test-secret"
	parser := NewParser(secret)
	userID := uuid.New()

	t.Run("valid token", func(t *testing.T) {
		raw := signToken(t, secret, jwt.MapClaims{
			"sub":  userID.String(),
			"name": "Dana",
			"exp":  time.Now().Add(time.Hour).Unix(),
		})
		principal, err := parser.Parse(raw)
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}
		if principal.UserID != userID || principal.Name != "Dana" {
			t.Fatalf("unexpected principal: %+v", principal)
		}
		if principal.Anonymous() {
			t.Fatal("expected authenticated principal")
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		raw := signToken(t, "other-secret", jwt.MapClaims{"sub": userID.String()})
		if _, err := parser.Parse(raw); err == nil {
			t.Fatal("expected error for wrong secret")
		}
	})

	t.Run("expired token", func(t *testing.T) {
		raw := signToken(t, secret, jwt.MapClaims{
			"sub": userID.String(),
			"exp": time.Now().Add(-time.Hour).Unix(),
		})
		if _, err := parser.Parse(raw); err == nil {
			t.Fatal("expected error for expired token")
		}
	})

	t.Run("subject is not a uuid", func(t *testing.T) {
		raw := signToken(t, secret, jwt.MapClaims{"sub": "user-42"})
		if _, err := parser.Parse(raw); err == nil {
			t.Fatal("expected error for malformed subject")
		}
	})
}
