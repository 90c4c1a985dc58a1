package utils

import (
	"testing"

	"restaurant-backend/config"
)

func TestGenerateAndValidateToken(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret", JWTExpiry: "1h"}

	token, err := GenerateToken(3, "081234567890", "manager")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if claims.EmployeeID != 3 {
		t.Errorf("employee id = %d, want 3", claims.EmployeeID)
	}
	if claims.Phone != "081234567890" {
		t.Errorf("phone = %q, want 081234567890", claims.Phone)
	}
	if claims.Role != "manager" {
		t.Errorf("role = %q, want manager", claims.Role)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret", JWTExpiry: "1h"}
	token, err := GenerateToken(3, "081234567890", "cashier")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	config.AppConfig.JWTSecret = "another-secret"
	if _, err := ValidateToken(token); err == nil {
		t.Error("token signed with a different secret should not validate")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}
	if _, err := ValidateToken("not-a-token"); err == nil {
		t.Error("garbage token should not validate")
	}
}
