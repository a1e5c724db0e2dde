package service

import (
	"errors"
	"testing"

	"bardabar-be-svc/internal/config"
	"bardabar-be-svc/internal/repository"
	"bardabar-be-svc/pkg/auth"
)

const testJWTSecret = "unit-test-secret"

func newAdminService(t *testing.T) AdminService {
	t.Helper()
	jwtConfig := config.JWTConfig{Secret: testJWTSecret, TTLHours: 1}
	return NewAdminService(repository.NewAdminRepository(newTestDB(t)), jwtConfig, testLogger())
}

func TestVerifyPasswordDefault(t *testing.T) {
	svc := newAdminService(t)

	result, err := svc.VerifyPassword(DefaultAdminPassword)
	if err != nil {
		t.Fatalf("VerifyPassword failed: %v", err)
	}
	if !result.Success || result.Token == "" {
		t.Fatalf("expected success with token, got %+v", result)
	}

	claims, err := auth.ValidateToken(result.Token, testJWTSecret)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.Role != auth.RoleAdmin {
		t.Errorf("expected admin role claim, got %q", claims.Role)
	}
	if !svc.Status(claims.UserID) {
		t.Errorf("expected admin status for user %d", claims.UserID)
	}
}

func TestVerifyPasswordWrong(t *testing.T) {
	svc := newAdminService(t)

	result, err := svc.VerifyPassword("not-the-password")
	if err != nil {
		t.Fatalf("VerifyPassword failed: %v", err)
	}
	if result.Success || result.Token != "" {
		t.Errorf("expected failure without token, got %+v", result)
	}
}

func TestVerifyPasswordReusesAdminUser(t *testing.T) {
	svc := newAdminService(t)

	first, err := svc.VerifyPassword(DefaultAdminPassword)
	if err != nil {
		t.Fatalf("first VerifyPassword failed: %v", err)
	}
	second, err := svc.VerifyPassword(DefaultAdminPassword)
	if err != nil {
		t.Fatalf("second VerifyPassword failed: %v", err)
	}

	firstClaims, err := auth.ValidateToken(first.Token, testJWTSecret)
	if err != nil {
		t.Fatalf("first token invalid: %v", err)
	}
	secondClaims, err := auth.ValidateToken(second.Token, testJWTSecret)
	if err != nil {
		t.Fatalf("second token invalid: %v", err)
	}
	if firstClaims.UserID != secondClaims.UserID {
		t.Errorf("logins created separate admin users: %d vs %d", firstClaims.UserID, secondClaims.UserID)
	}
}

func TestSetPassword(t *testing.T) {
	svc := newAdminService(t)

	if err := svc.SetPassword("new-password"); err != nil {
		t.Fatalf("SetPassword failed: %v", err)
	}

	old, err := svc.VerifyPassword(DefaultAdminPassword)
	if err != nil {
		t.Fatalf("VerifyPassword failed: %v", err)
	}
	if old.Success {
		t.Error("default password still accepted after change")
	}

	current, err := svc.VerifyPassword("new-password")
	if err != nil {
		t.Fatalf("VerifyPassword failed: %v", err)
	}
	if !current.Success {
		t.Error("new password rejected")
	}
}

func TestSetPasswordRequiresValue(t *testing.T) {
	svc := newAdminService(t)

	if err := svc.SetPassword(""); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestEnsureAdminUnknownUser(t *testing.T) {
	svc := newAdminService(t)

	if err := svc.EnsureAdmin(12345); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
