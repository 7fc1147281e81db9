package jwt

import (
	"testing"
	"time"

	"petcare-facility-api/config"

	"github.com/google/uuid"
)

func newTestService(accessExpiry time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  accessExpiry,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := newTestService(15 * time.Minute)
	userID := uuid.New()

	token, tokenID, err := svc.GenerateAccessToken(userID, "staff@petcare.test", 2)
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}
	if tokenID == "" {
		t.Fatal("expected a token id")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("expected user id %s, got %s", userID, claims.UserID)
	}
	if claims.Email != "staff@petcare.test" {
		t.Fatalf("unexpected email %q", claims.Email)
	}
	if claims.RoleID != 2 {
		t.Fatalf("expected role id 2, got %d", claims.RoleID)
	}
	if claims.TokenType != AccessToken {
		t.Fatalf("expected access token, got %q", claims.TokenType)
	}
	if claims.TokenID != tokenID {
		t.Fatalf("token id mismatch: %q vs %q", claims.TokenID, tokenID)
	}
}

func TestRefreshTokenType(t *testing.T) {
	svc := newTestService(15 * time.Minute)

	token, _, err := svc.GenerateRefreshToken(uuid.New(), "owner@petcare.test", 3)
	if err != nil {
		t.Fatalf("GenerateRefreshToken failed: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.TokenType != RefreshToken {
		t.Fatalf("expected refresh token, got %q", claims.TokenType)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, _, err := newTestService(15 * time.Minute).GenerateAccessToken(uuid.New(), "a@b.test", 1)
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	other := NewJWTService(config.JWTConfig{Secret: "different-secret", AccessExpiry: time.Minute})
	if _, err := other.ValidateToken(token); err == nil {
		t.Fatal("expected validation to fail with the wrong secret")
	}
}

func TestValidateToken_Expired(t *testing.T) {
	token, _, err := newTestService(-time.Minute).GenerateAccessToken(uuid.New(), "a@b.test", 1)
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	if _, err := newTestService(-time.Minute).ValidateToken(token); err == nil {
		t.Fatal("expected validation to fail for an expired token")
	}
}
