package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/yng-express/parcel-admin/internal/core/domain"
)

func TestAuthService_RegisterAndLogin(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, "secret", time.Hour)
	ctx := context.Background()

	user, err := svc.Register(ctx, "Alice", "alice@example.com", "s3cret-pass", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.PasswordHash == "s3cret-pass" {
		t.Fatalf("password stored in plaintext")
	}

	token, logged, err := svc.Login(ctx, "alice@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if logged.Email != "alice@example.com" {
		t.Fatalf("unexpected user %q", logged.Email)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims["email"] != "alice@example.com" || claims["role"] != domain.RoleAdmin {
		t.Fatalf("unexpected claims: %v", claims)
	}
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, "secret", time.Hour)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Alice", "alice@example.com", "s3cret-pass", domain.RoleAgent); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, err := svc.Login(ctx, "alice@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_LoginUnknownUser(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(), "secret", time.Hour)

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, "secret", time.Hour)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Alice", "alice@example.com", "s3cret-pass", domain.RoleAdmin); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, err := svc.Register(ctx, "Other Alice", "alice@example.com", "other-pass", domain.RoleAgent)
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_RegisterRejectsUnknownRole(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(), "secret", time.Hour)

	_, err := svc.Register(context.Background(), "Alice", "alice@example.com", "s3cret-pass", "superuser")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
