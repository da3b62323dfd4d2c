package service

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/blogicum-next/internal/config"
	"github.com/blogicum-next/internal/models"
	"github.com/blogicum-next/internal/repository"
)

func setupUserAuthServiceTest(t *testing.T) (*UserAuthService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	cfg := &config.Config{
		UserJWT: config.JWTConfig{
			SecretKey:   "unit-test-secret",
			ExpireHours: 1,
		},
		Security: config.SecurityConfig{
			PasswordPolicy: config.PasswordPolicyConfig{
				MinLength:     8,
				RequireLower:  true,
				RequireNumber: true,
			},
		},
	}
	return NewUserAuthService(cfg, repository.NewUserRepository(db)), db
}

func TestUserRegisterAndLogin(t *testing.T) {
	svc, _ := setupUserAuthServiceTest(t)

	user, token, _, err := svc.Register(RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password1",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.ID == 0 || token == "" {
		t.Fatalf("register should return persisted user and token")
	}
	if user.PasswordHash == "password1" {
		t.Fatalf("password must not be stored in plain text")
	}

	claims, err := svc.ParseUserJWT(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.UserID != user.ID || claims.Username != "alice" {
		t.Fatalf("claims mismatch: user_id=%d username=%q", claims.UserID, claims.Username)
	}

	logged, token, _, err := svc.Login("alice", "password1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if logged.ID != user.ID || token == "" {
		t.Fatalf("login should return same user and a token")
	}
}

func TestUserRegisterValidation(t *testing.T) {
	svc, _ := setupUserAuthServiceTest(t)

	if _, _, _, err := svc.Register(RegisterInput{Username: "bad name", Email: "a@b.com", Password: "password1"}); !errors.Is(err, ErrInvalidUsername) {
		t.Fatalf("space in username want ErrInvalidUsername got %v", err)
	}
	if _, _, _, err := svc.Register(RegisterInput{Username: "alice", Email: "not-an-email", Password: "password1"}); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("bad email want ErrInvalidEmail got %v", err)
	}
	if _, _, _, err := svc.Register(RegisterInput{Username: "alice", Email: "a@b.com", Password: "short1"}); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("short password want ErrWeakPassword got %v", err)
	}
	if _, _, _, err := svc.Register(RegisterInput{Username: "alice", Email: "a@b.com", Password: "passwords"}); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("password without digit want ErrWeakPassword got %v", err)
	}
}

func TestUserRegisterDuplicates(t *testing.T) {
	svc, _ := setupUserAuthServiceTest(t)

	if _, _, _, err := svc.Register(RegisterInput{Username: "alice", Email: "alice@example.com", Password: "password1"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, _, err := svc.Register(RegisterInput{Username: "alice", Email: "other@example.com", Password: "password1"}); !errors.Is(err, ErrUsernameExists) {
		t.Fatalf("duplicate username want ErrUsernameExists got %v", err)
	}
	if _, _, _, err := svc.Register(RegisterInput{Username: "bob", Email: "alice@example.com", Password: "password1"}); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("duplicate email want ErrEmailExists got %v", err)
	}
}

func TestUserLoginFailures(t *testing.T) {
	svc, db := setupUserAuthServiceTest(t)

	user, _, _, err := svc.Register(RegisterInput{Username: "alice", Email: "alice@example.com", Password: "password1"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, _, err := svc.Login("alice", "wrong-password-1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password want ErrInvalidCredentials got %v", err)
	}
	if _, _, _, err := svc.Login("nobody", "password1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown user want ErrInvalidCredentials got %v", err)
	}

	if err := db.Model(&models.User{}).Where("id = ?", user.ID).Update("status", "disabled").Error; err != nil {
		t.Fatalf("disable user failed: %v", err)
	}
	if _, _, _, err := svc.Login("alice", "password1"); !errors.Is(err, ErrUserDisabled) {
		t.Fatalf("disabled user want ErrUserDisabled got %v", err)
	}
}

func TestUserChangePassword(t *testing.T) {
	svc, db := setupUserAuthServiceTest(t)

	user, _, _, err := svc.Register(RegisterInput{Username: "alice", Email: "alice@example.com", Password: "password1"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := svc.ChangePassword(user.ID, "wrong-password-1", "newpassword1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong old password want ErrInvalidCredentials got %v", err)
	}
	if err := svc.ChangePassword(user.ID, "password1", "weak"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("weak new password want ErrWeakPassword got %v", err)
	}
	if err := svc.ChangePassword(user.ID, "password1", "newpassword1"); err != nil {
		t.Fatalf("change password failed: %v", err)
	}

	// 改密后旧 Token 全量失效
	var stored models.User
	if err := db.First(&stored, user.ID).Error; err != nil {
		t.Fatalf("reload user failed: %v", err)
	}
	if stored.TokenVersion != user.TokenVersion+1 {
		t.Fatalf("token version want %d got %d", user.TokenVersion+1, stored.TokenVersion)
	}
	if stored.TokenInvalidBefore == nil {
		t.Fatalf("token invalid before should be set")
	}

	if _, _, _, err := svc.Login("alice", "newpassword1"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
}

func TestUserUpdateProfile(t *testing.T) {
	svc, _ := setupUserAuthServiceTest(t)

	user, _, _, err := svc.Register(RegisterInput{Username: "alice", Email: "alice@example.com", Password: "password1"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, _, _, err := svc.Register(RegisterInput{Username: "bob", Email: "bob@example.com", Password: "password1"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	taken := "bob"
	if _, err := svc.UpdateProfile(user.ID, ProfileInput{Username: &taken}); !errors.Is(err, ErrUsernameExists) {
		t.Fatalf("taken username want ErrUsernameExists got %v", err)
	}

	newName := "alice2"
	first := "Alice"
	updated, err := svc.UpdateProfile(user.ID, ProfileInput{Username: &newName, FirstName: &first})
	if err != nil {
		t.Fatalf("update profile failed: %v", err)
	}
	if updated.Username != "alice2" || updated.FirstName != "Alice" {
		t.Fatalf("profile not applied: username=%q first_name=%q", updated.Username, updated.FirstName)
	}
	if updated.LastName != "" {
		t.Fatalf("untouched field should keep value, got %q", updated.LastName)
	}
}
