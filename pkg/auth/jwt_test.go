package auth

import (
	"testing"
	"time"
)

const testSecret = "test-secret"

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken(42, RoleAdmin, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := ValidateToken(token, testSecret)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("expected user id 42, got %d", claims.UserID)
	}
	if claims.Role != RoleAdmin {
		t.Errorf("expected role %q, got %q", RoleAdmin, claims.Role)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(1, RoleAdmin, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := ValidateToken(token, "other-secret"); err == nil {
		t.Fatal("expected signature error, got nil")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	token, err := GenerateToken(1, RoleAdmin, testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := ValidateToken(token, testSecret); err == nil {
		t.Fatal("expected expiry error, got nil")
	}
}

func TestFromAuthHeader(t *testing.T) {
	token, err := GenerateToken(7, RoleAdmin, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := FromAuthHeader("Bearer "+token, testSecret)
	if err != nil {
		t.Fatalf("FromAuthHeader failed: %v", err)
	}
	if claims.UserID != 7 {
		t.Errorf("expected user id 7, got %d", claims.UserID)
	}

	for _, header := range []string{"", token, "Basic " + token} {
		if _, err := FromAuthHeader(header, testSecret); err == nil {
			t.Errorf("expected error for header %q, got nil", header)
		}
	}
}
