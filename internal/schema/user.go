package schema

import "strings"

type CreateUserInput struct {
	Email string `json:"email" validate:"required,email,max=255"`
	Name  string `json:"name" validate:"required,min=1,max=255"`
}

// NormalizedEmail is the trimmed lower-case email used for lookups.
func (in CreateUserInput) NormalizedEmail() string { return NormalizeEmail(in.Email) }

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,max=128"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func NormalizeEmail(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
