package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"taskhub/config"
	"taskhub/models"
)

func init() {
	config.AppConfig.JWTSecret = "test-secret"
}

func testUser(id uint, role models.Role) *models.User {
	u := &models.User{Username: "alice", Email: "alice@example.com", Role: role}
	u.ID = id
	return u
}

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateJWTToken(testUser(42, models.RoleManager))
	if err != nil {
		t.Fatalf("GenerateJWTToken: %v", err)
	}

	claims, err := ParseJWTToken(token)
	if err != nil {
		t.Fatalf("ParseJWTToken: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Role != models.RoleManager {
		t.Errorf("Role = %s, want Manager", claims.Role)
	}
}

func TestParseTokenBadSignature(t *testing.T) {
	claims := &Claims{
		UserID: 7,
		Role:   models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("some-other-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ParseJWTToken(signed); err == nil {
		t.Error("expected error for token signed with a different secret")
	}
}

func TestParseTokenExpired(t *testing.T) {
	claims := &Claims{
		UserID: 7,
		Role:   models.RoleMember,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.AppConfig.JWTSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ParseJWTToken(signed); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestParseTokenMalformed(t *testing.T) {
	if _, err := ParseJWTToken("not-a-token"); err == nil {
		t.Error("expected error for malformed token")
	}
}
