package jwtmw

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TestGenerator_GenerateToken は生成されたトークンが有効で正しいクレームを含むことを検証します。
func TestGenerator_GenerateToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		userID uint
		uname  string
		email  string
	}{
		{"basic user", 1, "Test", "user@example.com"},
		{"user with special email", 42, "Tag User", "user+tag@example.com"},
		{"large user id", 999999, "big", "test@test.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gen := NewGenerator("test-secret", 15*time.Minute)
			tokenStr, err := gen.GenerateToken(tt.userID, tt.uname, tt.email)

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tokenStr == "" {
				t.Fatal("expected non-empty token")
			}

			// 検証すると発行時のID・ユーザー名・メールアドレスが復元できる
			claims := &Claims{}
			parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
				return []byte("test-secret"), nil
			})
			if err != nil || !parsed.Valid {
				t.Fatalf("token failed verification: %v", err)
			}
			if claims.User.ID != tt.userID {
				t.Errorf("expected id %d, got %d", tt.userID, claims.User.ID)
			}
			if claims.User.Username != tt.uname {
				t.Errorf("expected username %q, got %q", tt.uname, claims.User.Username)
			}
			if claims.User.Email != tt.email {
				t.Errorf("expected email %q, got %q", tt.email, claims.User.Email)
			}
		})
	}
}

// TestGenerator_GenerateToken_Expiration はexpクレームが設定したTTLを反映することを検証します。
func TestGenerator_GenerateToken_Expiration(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("test-secret", 15*time.Minute)
	tokenStr, err := gen.GenerateToken(1, "Test", "user@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims := &Claims{}
	if _, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	}); err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}

	got := claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time)
	if got != 15*time.Minute {
		t.Errorf("expected 15m validity window, got %v", got)
	}
}

// TestGenerator_GenerateToken_WrongSecret は別の鍵では検証に失敗することを確認します。
func TestGenerator_GenerateToken_WrongSecret(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("test-secret", 15*time.Minute)
	tokenStr, err := gen.GenerateToken(1, "Test", "user@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	})
	if err == nil {
		t.Error("expected verification to fail with a different secret")
	}
}
