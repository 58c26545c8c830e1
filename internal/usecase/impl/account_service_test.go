package impl

import (
	"context"
	"testing"

	"moteo/internal/domain/entity"
	domainerrors "moteo/internal/domain/errors"
	"moteo/internal/domain/repository"
	mockRepo "moteo/internal/mocks/repository"
	mockSvc "moteo/internal/mocks/service"
	"moteo/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service     usecase.AccountUsecase
	accountRepo *mockRepo.MockAccountRepository
	hasher      *mockSvc.MockPasswordHasher
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	service := NewAccountService(AccountServiceParams{
		AccountRepo: accountRepo,
		Hasher:      hasher,
		Logger:      newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:     service,
		accountRepo: accountRepo,
		hasher:      hasher,
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Handle:   "rider42",
		Password: "open-sesame",
		City:     "Lyon",
	}

	fx.accountRepo.EXPECT().Exists(ctx, input.Handle).Return(false, nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(ctx context.Context, account *entity.Account) {
			assert.Equal(t, input.Handle, account.Handle)
			assert.Equal(t, "hashed_password", account.PasswordHash)
			assert.Equal(t, input.City, account.City)
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Handle, output.Profile.Handle)
	assert.Equal(t, input.City, output.Profile.City)
}

func TestAccountService_Register_BlankFields(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	inputs := []*usecase.RegisterInput{
		{Handle: "", Password: "secret", City: "Lyon"},
		{Handle: "rider42", Password: "", City: "Lyon"},
		{Handle: "rider42", Password: "secret", City: ""},
		{Handle: "   ", Password: "secret", City: "Lyon"},
	}

	for _, input := range inputs {
		output, err := fx.service.Register(ctx, input)

		require.Error(t, err)
		assert.Nil(t, output)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
	}
}

func TestAccountService_Register_HandleTaken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Handle:   "rider42",
		Password: "open-sesame",
		City:     "Lyon",
	}

	fx.accountRepo.EXPECT().Exists(ctx, input.Handle).Return(true, nil)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrHandleTaken))
}

func TestAccountService_Register_ConflictOnInsert(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Handle:   "rider42",
		Password: "open-sesame",
		City:     "Lyon",
	}

	// Exists said free, but a concurrent registration won the insert race.
	fx.accountRepo.EXPECT().Exists(ctx, input.Handle).Return(false, nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Return(domainerrors.ErrHandleTaken.WrapMessage("handle already exists"))

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrHandleTaken))
}

func TestAccountService_Register_HashFailure(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Handle:   "rider42",
		Password: "open-sesame",
		City:     "Lyon",
	}

	fx.accountRepo.EXPECT().Exists(ctx, input.Handle).Return(false, nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("cost out of range"))

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Handle:   "rider42",
		Password: "open-sesame",
	}

	fx.accountRepo.EXPECT().FindPasswordHash(ctx, input.Handle).Return("stored_hash", nil)
	fx.hasher.EXPECT().Check(input.Password, "stored_hash").Return(true)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Handle, output.Handle)
}

func TestAccountService_Login_BlankFields(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Handle: "", Password: "secret"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))

	output, err = fx.service.Login(ctx, &usecase.LoginInput{Handle: "rider42", Password: "  "})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestAccountService_Login_UnknownHandle(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Handle:   "ghost",
		Password: "open-sesame",
	}

	fx.accountRepo.EXPECT().
		FindPasswordHash(ctx, input.Handle).
		Return("", repository.ErrAccountNotFound)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Handle:   "rider42",
		Password: "not-the-password",
	}

	fx.accountRepo.EXPECT().FindPasswordHash(ctx, input.Handle).Return("stored_hash", nil)
	fx.hasher.EXPECT().Check(input.Password, "stored_hash").Return(false)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_UpdateProfile_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.UpdateProfileInput{
		Handle:   "rider42",
		Password: "new-secret",
		City:     "Marseille",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("new_hash", nil)
	fx.accountRepo.EXPECT().
		UpdateCredentials(ctx, input.Handle, "new_hash", input.City).
		Return(nil)

	output, err := fx.service.UpdateProfile(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Handle, output.Handle)
	assert.Equal(t, input.City, output.City)
}

func TestAccountService_UpdateProfile_UnknownHandle(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.UpdateProfileInput{
		Handle:   "ghost",
		Password: "new-secret",
		City:     "Marseille",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("new_hash", nil)
	fx.accountRepo.EXPECT().
		UpdateCredentials(ctx, input.Handle, "new_hash", input.City).
		Return(repository.ErrAccountNotFound)

	output, err := fx.service.UpdateProfile(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestAccountService_UpdateProfile_BlankFields(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.UpdateProfileInput{
		Handle:   "rider42",
		Password: "new-secret",
		City:     " ",
	}

	output, err := fx.service.UpdateProfile(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestAccountService_GetProfile_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.accountRepo.EXPECT().
		FindProfile(ctx, "rider42").
		Return(&entity.Account{Handle: "rider42", City: "Lyon"}, nil)

	output, err := fx.service.GetProfile(ctx, "rider42")

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "rider42", output.Handle)
	assert.Equal(t, "Lyon", output.City)
}

func TestAccountService_GetProfile_UnknownHandle(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.accountRepo.EXPECT().
		FindProfile(ctx, "ghost").
		Return(nil, repository.ErrAccountNotFound)

	output, err := fx.service.GetProfile(ctx, "ghost")

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestAccountService_GetProfile_BlankHandle(t *testing.T) {
	fx := createTestAccountService(t)

	output, err := fx.service.GetProfile(context.Background(), "   ")

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}
