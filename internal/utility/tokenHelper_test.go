package utility

import "testing"

func TestGenerateAndValidateToken(t *testing.T) {
	token, refreshToken, err := GenerateAllTokens("a@x.com", "Rahul", "Sharma", "u1")
	if err != nil {
		t.Fatalf("error generating tokens: %v", err)
	}
	if token == "" || refreshToken == "" {
		t.Fatal("expected non-empty tokens")
	}
	if token == refreshToken {
		t.Error("access and refresh tokens should differ")
	}

	claims, errMsg := ValidateToken(token)
	if errMsg != "" {
		t.Fatalf("expected token to validate, got: %s", errMsg)
	}
	if claims.Email != "a@x.com" || claims.Uid != "u1" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	if _, errMsg := ValidateToken("not-a-jwt"); errMsg == "" {
		t.Error("expected garbage token to be rejected")
	}
}

func TestValidateTokenRejectsTampered(t *testing.T) {
	token, _, err := GenerateAllTokens("a@x.com", "Rahul", "Sharma", "u1")
	if err != nil {
		t.Fatalf("error generating tokens: %v", err)
	}
	tampered := token[:len(token)-2] + "xx"
	if _, errMsg := ValidateToken(tampered); errMsg == "" {
		t.Error("expected tampered token to be rejected")
	}
}
