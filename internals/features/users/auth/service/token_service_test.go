package service

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"

	userModel "kelasku_backend/internals/features/users/user/model"
)

func TestComputeRefreshHash(t *testing.T) {
	a := ComputeRefreshHash("token-a", "secret")
	b := ComputeRefreshHash("token-a", "secret")
	if !bytes.Equal(a, b) {
		t.Fatal("hash must be deterministic for the same input")
	}
	if bytes.Equal(a, ComputeRefreshHash("token-b", "secret")) {
		t.Fatal("different tokens must not collide")
	}
	if bytes.Equal(a, ComputeRefreshHash("token-a", "other-secret")) {
		t.Fatal("different secrets must not collide")
	}
	if len(a) != 32 {
		t.Fatalf("hash length = %d, want 32 (sha256)", len(a))
	}
}

func TestBuildAccessClaims(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	u := &userModel.UserModel{
		UserID:       uuid.New(),
		UserFullName: "Ada Lovelace",
		UserEmail:    "ada@example.com",
	}

	claims := BuildAccessClaims(u, now)

	if claims["sub"] != u.UserID.String() {
		t.Errorf("sub = %v", claims["sub"])
	}
	if claims["user_name"] != "Ada Lovelace" {
		t.Errorf("user_name = %v", claims["user_name"])
	}
	if claims["email"] != "ada@example.com" {
		t.Errorf("email = %v", claims["email"])
	}
	iat, _ := claims["iat"].(int64)
	exp, _ := claims["exp"].(int64)
	if exp-iat != int64(AccessTokenTTL/time.Second) {
		t.Errorf("exp-iat = %d, want %d", exp-iat, int64(AccessTokenTTL/time.Second))
	}
}
