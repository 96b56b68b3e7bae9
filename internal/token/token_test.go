package token_test

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"geotask/internal/token"
)

// signToken builds a real HS256 token. Decode never verifies the signature,
// but the wire format has to be genuine.
func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func TestDecode(t *testing.T) {
	tok := signToken(t, jwt.MapClaims{
		"sub":   "user-42",
		"email": "a@b.com",
	})

	claims, err := token.Decode(tok)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if claims.UserID != "user-42" {
		t.Errorf("expected UserID %q, got %q", "user-42", claims.UserID)
	}
	if claims.Email != "a@b.com" {
		t.Errorf("expected Email %q, got %q", "a@b.com", claims.Email)
	}
}

func TestDecode_MissingSub(t *testing.T) {
	tok := signToken(t, jwt.MapClaims{"email": "a@b.com"})

	if _, err := token.Decode(tok); err == nil {
		t.Error("expected error for missing sub claim")
	}
}

func TestDecode_MissingEmail(t *testing.T) {
	tok := signToken(t, jwt.MapClaims{"sub": "user-42"})

	if _, err := token.Decode(tok); err == nil {
		t.Error("expected error for missing email claim")
	}
}

func TestDecode_Garbage(t *testing.T) {
	if _, err := token.Decode("not.a.jwt"); err == nil {
		t.Error("expected error for malformed token")
	}
}
