package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestJWTManager_GenerateAndValidate(t *testing.T) {
	m := NewJWTManager("test-secret", 7*24*time.Hour)

	token, err := m.GenerateToken(42, "ana@example.com", "Ana Lopez")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	id, err := claims.UserID()
	if err != nil || id != 42 {
		t.Fatalf("UserID = %d, %v; want 42", id, err)
	}
	if claims.Email != "ana@example.com" || claims.Name != "Ana Lopez" {
		t.Errorf("unexpected claims: %+v", claims)
	}
	if claims.ID == "" {
		t.Error("expected a token id")
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != 7*24*time.Hour {
		t.Errorf("lifetime = %s, want 168h", got)
	}
	if !m.IsValid(token) {
		t.Error("IsValid should accept a fresh token")
	}
}

func TestJWTManager_Expired(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	issued := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return issued }

	token, err := m.GenerateToken(1, "a@b.c", "A B")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	m.now = func() time.Time { return issued.Add(2 * time.Hour) }
	if _, err := m.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestJWTManager_WrongSecret(t *testing.T) {
	token, _ := NewJWTManager("secret-a", time.Hour).GenerateToken(1, "a@b.c", "A B")
	if NewJWTManager("secret-b", time.Hour).IsValid(token) {
		t.Fatal("token signed with another secret must be rejected")
	}
}

func TestJWTManager_RejectsNoneAlgorithm(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	claims := Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}
	if m.IsValid(unsigned) {
		t.Fatal("alg=none must be rejected")
	}
}

func TestJWTManager_RejectsBadSubject(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	claims := Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "not-a-number",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	signed, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if m.IsValid(signed) {
		t.Fatal("non-numeric subject must be rejected")
	}
}

func TestJWTManager_Garbage(t *testing.T) {
	if NewJWTManager("secret", time.Hour).IsValid("not.a.jwt") {
		t.Fatal("garbage must be rejected")
	}
}
