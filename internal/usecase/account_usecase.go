// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"moteo/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Handle   string `json:"handle" validate:"required"`
	Password string `json:"password" validate:"required"`
	City     string `json:"city" validate:"required"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Handle   string `json:"handle" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileInput defines the data for rewriting an account's password and city.
type UpdateProfileInput struct {
	Handle   string `json:"handle" validate:"required"`
	Password string `json:"password" validate:"required"`
	City     string `json:"city" validate:"required"`
}

// --- Output DTOs ---

// ProfileView is the externally visible projection of an account.
// It never carries the password hash.
type ProfileView struct {
	Handle string `json:"handle"`
	City   string `json:"city"`
}

// NewProfileView builds the safe projection from an account entity.
func NewProfileView(account *entity.Account) *ProfileView {
	if account == nil {
		return nil
	}

	return &ProfileView{
		Handle: account.Handle,
		City:   account.City,
	}
}

// RegisterOutput returns the newly created account's visible information.
type RegisterOutput struct {
	Profile *ProfileView `json:"profile"`
}

// LoginOutput confirms which handle authenticated successfully.
type LoginOutput struct {
	Handle string `json:"handle"`
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*ProfileView, error)
	GetProfile(ctx context.Context, handle string) (*ProfileView, error)
}
