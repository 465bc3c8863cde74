package utils

import "testing"

// Test: generar y validar un token conserva los claims
func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken(1, "admin", true)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if claims.UserID != 1 || claims.Username != "admin" || !claims.IsAdmin {
		t.Errorf("Claims did not round-trip: %+v", claims)
	}
}

// Test: un token adulterado no valida
func TestValidateToken_Tampered(t *testing.T) {
	token, err := GenerateToken(1, "admin", true)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := ValidateToken(token + "x"); err == nil {
		t.Error("Expected a tampered token to be rejected")
	}
}

// Test: IsAdmin es una función pura del input
func TestIsAdmin(t *testing.T) {
	if IsAdmin(nil) {
		t.Error("nil claims must not be privileged")
	}
	if IsAdmin(&Claims{IsAdmin: false}) {
		t.Error("Claims without the flag must not be privileged")
	}
	if !IsAdmin(&Claims{IsAdmin: true}) {
		t.Error("Claims with the flag must be privileged")
	}
}
