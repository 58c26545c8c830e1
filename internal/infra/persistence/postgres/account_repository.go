// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"moteo/internal/domain/entity"
	domainerrors "moteo/internal/domain/errors"
	"moteo/internal/domain/repository"
	"moteo/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements the repository.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a repository.AccountRepository interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// Exists reports whether an account with the given handle is persisted.
func (repo *accountRepository) Exists(ctx context.Context, handle string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("handle = ?", handle).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check handle existence")
	}

	return count > 0, nil
}

// Create persists a new account. The unique index on handle is the final
// arbiter: a concurrent insert of the same handle loses here with a
// conflict error, regardless of what Exists reported earlier.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrHandleTaken.WrapMessage("handle already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAccountCreationFailed.WrapMessage("missing required account information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	// Update the account entity with the generated timestamps
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// FindPasswordHash retrieves only the stored password hash for a handle.
func (repo *accountRepository) FindPasswordHash(ctx context.Context, handle string) (string, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Select("password_hash").
		Where("handle = ?", handle).
		First(&accountM).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", repository.ErrAccountNotFound
		}

		return "", errors.Wrap(err, "failed to find password hash by handle")
	}

	return accountM.PasswordHash, nil
}

// UpdateCredentials rewrites the password hash and city in one UPDATE.
// Zero affected rows means the handle is not persisted.
func (repo *accountRepository) UpdateCredentials(ctx context.Context, handle, passwordHash, city string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("handle = ?", handle).
		Updates(map[string]any{
			"password_hash": passwordHash,
			"city":          city,
		})
	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return domainerrors.ErrInternalError.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update account credentials")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// FindProfile retrieves the externally visible columns of an account.
func (repo *accountRepository) FindProfile(ctx context.Context, handle string) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Select("handle", "city", "created_at", "updated_at").
		Where("handle = ?", handle).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by handle")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toAccountDomain(&accountM), nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		Handle:       data.Handle,
		PasswordHash: data.PasswordHash,
		City:         data.City,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel for persistence.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		Handle:       data.Handle,
		PasswordHash: data.PasswordHash,
		City:         data.City,
	}
}
