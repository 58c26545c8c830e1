// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "moteo/internal/delivery/context"
	"moteo/internal/domain/entity"
	domainerrors "moteo/internal/domain/errors"
	"moteo/internal/domain/repository"
	"moteo/internal/domain/service"
	"moteo/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// isBlank reports whether a field is empty or whitespace-only.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Register orchestrates the account registration process.
// The password is hashed before anything touches the store, and the
// store's uniqueness guarantee decides conflicts, not the pre-check.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if isBlank(input.Handle) || isBlank(input.Password) || isBlank(input.City) {
		return nil, errors.Wrap(domainerrors.ErrInvalidInput, "registration rejected on blank field")
	}

	srv.log(ctx).Info("Starting registration", slog.String("handle", input.Handle))

	// Friendlier early answer for the common case. Losing the race between
	// this check and the insert is fine; Create resolves it.
	taken, err := srv.accountRepo.Exists(ctx, input.Handle)
	if err != nil {
		srv.log(ctx).Error("Failed to check handle availability", slog.String("handle", input.Handle), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to check handle availability")
	}
	if taken {
		return nil, errors.Wrap(domainerrors.ErrHandleTaken, "registration rejected on taken handle")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	newAccount := &entity.Account{
		Handle:       input.Handle,
		PasswordHash: hashedPassword,
		City:         input.City,
	}

	if err := srv.accountRepo.Create(ctx, newAccount); err != nil {
		srv.log(ctx).Error("Failed to create account", slog.String("handle", input.Handle), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create account during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.String("handle", newAccount.Handle))

	return &usecase.RegisterOutput{Profile: usecase.NewProfileView(newAccount)}, nil
}

// Login verifies a handle and password pair against the store.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if isBlank(input.Handle) || isBlank(input.Password) {
		return nil, errors.Wrap(domainerrors.ErrInvalidInput, "login rejected on blank field")
	}

	srv.log(ctx).Debug("Starting login", slog.String("handle", input.Handle))

	storedHash, err := srv.accountRepo.FindPasswordHash(ctx, input.Handle)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Warn("Login failed on unknown handle", slog.String("handle", input.Handle))

			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "login failed")
		}
		srv.log(ctx).Error("Failed to load password hash", slog.String("handle", input.Handle), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load password hash for login")
	}

	// Check password outside any store call (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, storedHash) {
		srv.log(ctx).Warn("Login failed on password mismatch", slog.String("handle", input.Handle))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	srv.log(ctx).Debug("Login succeeded", slog.String("handle", input.Handle))

	return &usecase.LoginOutput{Handle: input.Handle}, nil
}

// UpdateProfile rewrites the stored password hash and city for a handle.
// The rewrite is unconditional; no proof of the prior password is required.
func (srv *accountService) UpdateProfile(ctx context.Context, input *usecase.UpdateProfileInput) (*usecase.ProfileView, error) {
	if isBlank(input.Handle) || isBlank(input.Password) || isBlank(input.City) {
		return nil, errors.Wrap(domainerrors.ErrInvalidInput, "profile update rejected on blank field")
	}

	srv.log(ctx).Info("Starting profile update", slog.String("handle", input.Handle))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during profile update", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during profile update")
	}

	if err := srv.accountRepo.UpdateCredentials(ctx, input.Handle, hashedPassword, input.City); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Warn("Profile update failed on unknown handle", slog.String("handle", input.Handle))

			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "profile update failed")
		}
		srv.log(ctx).Error("Failed to update account", slog.String("handle", input.Handle), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update account credentials")
	}

	srv.log(ctx).Debug("Profile update completed", slog.String("handle", input.Handle))

	return &usecase.ProfileView{Handle: input.Handle, City: input.City}, nil
}

// GetProfile retrieves the visible projection of an account by handle.
func (srv *accountService) GetProfile(ctx context.Context, handle string) (*usecase.ProfileView, error) {
	if isBlank(handle) {
		return nil, errors.Wrap(domainerrors.ErrInvalidInput, "profile lookup rejected on blank handle")
	}

	account, err := srv.accountRepo.FindProfile(ctx, handle)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "profile lookup failed")
		}
		srv.log(ctx).Error("Failed to load profile", slog.String("handle", handle), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return usecase.NewProfileView(account), nil
}
