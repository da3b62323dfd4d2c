package service

import (
	"errors"
	"testing"

	"github.com/blogicum-next/internal/config"
)

func TestValidatePassword(t *testing.T) {
	full := config.PasswordPolicyConfig{
		MinLength:      8,
		RequireUpper:   true,
		RequireLower:   true,
		RequireNumber:  true,
		RequireSpecial: true,
	}

	cases := []struct {
		name     string
		policy   config.PasswordPolicyConfig
		password string
		weak     bool
	}{
		{"empty policy accepts anything", config.PasswordPolicyConfig{}, "", false},
		{"too short", config.PasswordPolicyConfig{MinLength: 8}, "short", true},
		{"unicode length counted in runes", config.PasswordPolicyConfig{MinLength: 8}, "пароль12", false},
		{"missing upper", full, "password1!", true},
		{"missing number", full, "Password!!", true},
		{"missing special", full, "Password11", true},
		{"all requirements met", full, "Password1!", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validatePassword(tc.policy, tc.password)
			if tc.weak {
				if !errors.Is(err, ErrWeakPassword) {
					t.Fatalf("want ErrWeakPassword got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("want nil got %v", err)
			}
		})
	}
}
