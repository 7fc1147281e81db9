package usecase

import (
	"context"
	"testing"
	"time"

	"petcare-facility-api/config"
	"petcare-facility-api/internal/delivery/dto"
	"petcare-facility-api/internal/domain/entity"
	"petcare-facility-api/internal/repository"
	"petcare-facility-api/pkg/jwt"

	"gorm.io/gorm"
)

func newAuthUsecaseForTest(t *testing.T) (AuthUsecase, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	log := newTestLogger()
	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
	// Login stores tokens in Redis; the failure paths below return before
	// that, so no client is needed here.
	return NewAuthUsecase(
		db,
		log,
		repository.NewUserRepository(),
		repository.NewRoleRepository(),
		jwtService,
		nil,
	), db
}

func TestRegister(t *testing.T) {
	uc, db := newAuthUsecaseForTest(t)
	ctx := context.Background()

	resp, err := uc.Register(ctx, &dto.RegisterRequest{
		Email:    "staff@petcare.test",
		Password: "secret123",
		FullName: "Staff Member",
		Role:     entity.RoleStaff,
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if resp.Role != entity.RoleStaff {
		t.Fatalf("expected role %q, got %q", entity.RoleStaff, resp.Role)
	}

	var user entity.User
	if err := db.Where("email = ?", "staff@petcare.test").First(&user).Error; err != nil {
		t.Fatalf("failed to load registered user: %v", err)
	}
	if user.RoleID != entity.RoleIDStaff {
		t.Fatalf("expected role id %d, got %d", entity.RoleIDStaff, user.RoleID)
	}
	if user.Password == "secret123" {
		t.Fatal("password must be stored hashed")
	}
}

func TestRegister_DefaultsToUserRole(t *testing.T) {
	uc, _ := newAuthUsecaseForTest(t)

	resp, err := uc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "owner@petcare.test",
		Password: "secret123",
		FullName: "Pet Owner",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if resp.Role != entity.RoleUser {
		t.Fatalf("expected role %q, got %q", entity.RoleUser, resp.Role)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	uc, _ := newAuthUsecaseForTest(t)

	_, err := uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@petcare.test",
		Password: "whatever",
	})
	if err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	uc, _ := newAuthUsecaseForTest(t)
	ctx := context.Background()

	if _, err := uc.Register(ctx, &dto.RegisterRequest{
		Email:    "owner@petcare.test",
		Password: "secret123",
		FullName: "Pet Owner",
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, err := uc.Login(ctx, &dto.LoginRequest{
		Email:    "owner@petcare.test",
		Password: "wrong-password",
	})
	if err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_InactiveUser(t *testing.T) {
	uc, db := newAuthUsecaseForTest(t)
	ctx := context.Background()

	if _, err := uc.Register(ctx, &dto.RegisterRequest{
		Email:    "owner@petcare.test",
		Password: "secret123",
		FullName: "Pet Owner",
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := db.Model(&entity.User{}).Where("email = ?", "owner@petcare.test").Update("is_active", false).Error; err != nil {
		t.Fatalf("failed to deactivate user: %v", err)
	}

	_, err := uc.Login(ctx, &dto.LoginRequest{
		Email:    "owner@petcare.test",
		Password: "secret123",
	})
	if err != ErrUserInactive {
		t.Fatalf("expected ErrUserInactive, got %v", err)
	}
}

func TestGetCurrentUser(t *testing.T) {
	uc, db := newAuthUsecaseForTest(t)
	ctx := context.Background()

	if _, err := uc.Register(ctx, &dto.RegisterRequest{
		Email:    "owner@petcare.test",
		Password: "secret123",
		FullName: "Pet Owner",
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	var user entity.User
	if err := db.Where("email = ?", "owner@petcare.test").First(&user).Error; err != nil {
		t.Fatalf("failed to load user: %v", err)
	}

	resp, err := uc.GetCurrentUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetCurrentUser failed: %v", err)
	}
	if resp.Email != "owner@petcare.test" {
		t.Fatalf("unexpected email %q", resp.Email)
	}
	if resp.Role != entity.RoleUser {
		t.Fatalf("expected role %q, got %q", entity.RoleUser, resp.Role)
	}
}
