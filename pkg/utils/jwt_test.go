package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/StephenEkwedike/FunRobin/internal/domain/enum"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	userID := uuid.New()

	token, err := manager.GenerateAccessToken(userID, "trader@example.com", enum.PlanPro)
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	claims, err := manager.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken failed: %v", err)
	}

	if claims.UserID != userID {
		t.Errorf("user ID = %v, want %v", claims.UserID, userID)
	}
	if claims.Email != "trader@example.com" {
		t.Errorf("email = %q, want trader@example.com", claims.Email)
	}
	if claims.Plan != enum.PlanPro {
		t.Errorf("plan = %q, want pro", claims.Plan)
	}
}

func TestAccessTokenWrongSecret(t *testing.T) {
	manager := NewJWTManager("secret-a", time.Hour, 24*time.Hour)
	other := NewJWTManager("secret-b", time.Hour, 24*time.Hour)

	token, err := manager.GenerateAccessToken(uuid.New(), "trader@example.com", enum.PlanFree)
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	if _, err := other.ValidateAccessToken(token); err == nil {
		t.Fatal("expected validation to fail with a different secret")
	}
}

func TestExpiredAccessToken(t *testing.T) {
	manager := NewJWTManager("test-secret", -time.Minute, 24*time.Hour)

	token, err := manager.GenerateAccessToken(uuid.New(), "trader@example.com", enum.PlanFree)
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	if _, err := manager.ValidateAccessToken(token); err == nil {
		t.Fatal("expected validation to fail for expired token")
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	userID := uuid.New()

	token, err := manager.GenerateRefreshToken(userID)
	if err != nil {
		t.Fatalf("GenerateRefreshToken failed: %v", err)
	}

	got, err := manager.ValidateRefreshToken(token)
	if err != nil {
		t.Fatalf("ValidateRefreshToken failed: %v", err)
	}
	if got != userID {
		t.Errorf("user ID = %v, want %v", got, userID)
	}
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	userID := uuid.New()

	refresh, err := manager.GenerateRefreshToken(userID)
	if err != nil {
		t.Fatalf("GenerateRefreshToken failed: %v", err)
	}

	// A refresh token carries no plan or email, so it must not validate as an
	// access token with usable claims beyond the subject.
	claims, err := manager.ValidateAccessToken(refresh)
	if err == nil && claims.Email != "" {
		t.Fatal("refresh token validated with access claims")
	}
}
