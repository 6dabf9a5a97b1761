package impl

import (
	"context"
	"testing"
	"time"

	"kitchen/internal/domain/entity"
	domainerrors "kitchen/internal/domain/errors"
	"kitchen/internal/domain/repository"
	"kitchen/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service      usecase.AuthUsecase
	otpRepo      *mockOTPRepo
	userRepo     *mockUserRepo
	otpGenerator *mockOTPGenerator
	tokens       *mockCustomerTokens
}

func createTestAuthService(t *testing.T, debug bool) authServiceFixtures {
	t.Helper()

	otpRepo := new(mockOTPRepo)
	userRepo := new(mockUserRepo)
	otpGenerator := new(mockOTPGenerator)
	tokens := new(mockCustomerTokens)

	service := &authService{
		otpRepo:      otpRepo,
		userRepo:     userRepo,
		otpGenerator: otpGenerator,
		tokenService: tokens,
		otpTTL:       10 * time.Minute,
		debug:        debug,
		logger:       testLogger(),
	}

	return authServiceFixtures{
		service:      service,
		otpRepo:      otpRepo,
		userRepo:     userRepo,
		otpGenerator: otpGenerator,
		tokens:       tokens,
	}
}

func TestAuthService_RequestOTP_RequiresContact(t *testing.T) {
	fx := createTestAuthService(t, false)

	_, err := fx.service.RequestOTP(context.Background(), &usecase.RequestOTPInput{})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CONTACT_REQUIRED", appErr.ErrorCode())
	fx.otpRepo.AssertNotCalled(t, "Create")
}

func TestAuthService_RequestOTP_StoresCodeWithExpiry(t *testing.T) {
	fx := createTestAuthService(t, false)

	ctx := context.Background()
	fx.otpGenerator.On("Generate").Return("123456", nil)

	var stored *entity.OTPCode
	fx.otpRepo.On("Create", ctx, mock.AnythingOfType("*entity.OTPCode")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*entity.OTPCode)
		}).
		Return(nil)

	output, err := fx.service.RequestOTP(ctx, &usecase.RequestOTPInput{Email: "alice@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "OTP sent successfully", output.Message)
	assert.Empty(t, output.Code) // not running in debug mode

	require.NotNil(t, stored)
	assert.Equal(t, "123456", stored.Code)
	assert.Equal(t, "alice@example.com", stored.Email)
	assert.False(t, stored.Consumed)
	assert.WithinDuration(t, stored.CreatedAt.Add(10*time.Minute), stored.ExpiresAt, time.Second)
}

func TestAuthService_RequestOTP_DebugEchoesCode(t *testing.T) {
	fx := createTestAuthService(t, true)

	ctx := context.Background()
	fx.otpGenerator.On("Generate").Return("654321", nil)
	fx.otpRepo.On("Create", ctx, mock.AnythingOfType("*entity.OTPCode")).Return(nil)

	output, err := fx.service.RequestOTP(ctx, &usecase.RequestOTPInput{Phone: "+919876543210"})
	require.NoError(t, err)
	assert.Equal(t, "654321", output.Code)
}

func TestAuthService_RequestOTP_SecondRequestKeepsEarlierCodeValid(t *testing.T) {
	fx := createTestAuthService(t, false)

	ctx := context.Background()
	fx.otpGenerator.On("Generate").Return("111111", nil).Once()
	fx.otpGenerator.On("Generate").Return("222222", nil).Once()
	fx.otpRepo.On("Create", ctx, mock.AnythingOfType("*entity.OTPCode")).Return(nil)

	input := &usecase.RequestOTPInput{Email: "alice@example.com"}
	_, err := fx.service.RequestOTP(ctx, input)
	require.NoError(t, err)
	_, err = fx.service.RequestOTP(ctx, input)
	require.NoError(t, err)

	// Issuing only ever inserts; earlier records are never touched.
	fx.otpRepo.AssertNumberOfCalls(t, "Create", 2)
	fx.otpRepo.AssertNotCalled(t, "MarkConsumed")

	// The first code still redeems after the second was issued.
	userID := uuid.New()
	first := &entity.OTPCode{
		ID:        uuid.New(),
		Code:      "111111",
		Email:     "alice@example.com",
		CreatedAt: time.Now().UTC(),
		ExpiresAt: time.Now().UTC().Add(10 * time.Minute),
	}
	fx.otpRepo.On("FindUnconsumed", ctx, "111111", "alice@example.com", "").Return(first, nil)
	fx.otpRepo.On("MarkConsumed", ctx, first.ID).Return(nil)
	fx.userRepo.On("FindByContact", ctx, "alice@example.com", "").
		Return(&entity.User{ID: userID, Email: "alice@example.com", Name: "Alice"}, nil)
	fx.tokens.On("Issue", userID).Return("signed-token", nil)

	output, err := fx.service.VerifyOTP(ctx, &usecase.VerifyOTPInput{
		Email: "alice@example.com",
		Code:  "111111",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.AccessToken)
}

func TestAuthService_VerifyOTP_ExistingUser(t *testing.T) {
	fx := createTestAuthService(t, false)

	ctx := context.Background()
	userID := uuid.New()
	record := &entity.OTPCode{
		ID:        uuid.New(),
		Code:      "123456",
		Email:     "alice@example.com",
		CreatedAt: time.Now().UTC(),
		ExpiresAt: time.Now().UTC().Add(5 * time.Minute),
	}

	fx.otpRepo.On("FindUnconsumed", ctx, "123456", "alice@example.com", "").Return(record, nil)
	fx.otpRepo.On("MarkConsumed", ctx, record.ID).Return(nil)
	fx.userRepo.On("FindByContact", ctx, "alice@example.com", "").
		Return(&entity.User{ID: userID, Email: "alice@example.com", Name: "Alice"}, nil)
	fx.tokens.On("Issue", userID).Return("signed-token", nil)

	output, err := fx.service.VerifyOTP(ctx, &usecase.VerifyOTPInput{
		Email: "alice@example.com",
		Code:  "123456",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.AccessToken)
	assert.Equal(t, "bearer", output.TokenType)
	assert.Equal(t, userID, output.User.ID)
	fx.otpRepo.AssertExpectations(t)
	fx.userRepo.AssertNotCalled(t, "Create")
}

func TestAuthService_VerifyOTP_FirstLoginCreatesUser(t *testing.T) {
	fx := createTestAuthService(t, false)

	ctx := context.Background()
	record := &entity.OTPCode{
		ID:        uuid.New(),
		Code:      "123456",
		Phone:     "+919876543210",
		CreatedAt: time.Now().UTC(),
		ExpiresAt: time.Now().UTC().Add(5 * time.Minute),
	}

	fx.otpRepo.On("FindUnconsumed", ctx, "123456", "", "+919876543210").Return(record, nil)
	fx.otpRepo.On("MarkConsumed", ctx, record.ID).Return(nil)
	fx.userRepo.On("FindByContact", ctx, "", "+919876543210").Return(nil, repository.ErrUserNotFound)

	var created *entity.User
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.User)
		}).
		Return(nil)
	fx.tokens.On("Issue", mock.AnythingOfType("uuid.UUID")).Return("signed-token", nil)

	output, err := fx.service.VerifyOTP(ctx, &usecase.VerifyOTPInput{
		Phone: "+919876543210",
		Code:  "123456",
	})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, "New User", created.Name)
	assert.Equal(t, "+919876543210", created.Phone)
	assert.Equal(t, created.ID, output.User.ID)
}

func TestAuthService_VerifyOTP_UnknownCode(t *testing.T) {
	fx := createTestAuthService(t, false)

	ctx := context.Background()
	fx.otpRepo.On("FindUnconsumed", ctx, "000000", "alice@example.com", "").
		Return(nil, repository.ErrOTPNotFound)

	_, err := fx.service.VerifyOTP(ctx, &usecase.VerifyOTPInput{
		Email: "alice@example.com",
		Code:  "000000",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "OTP_INVALID", appErr.ErrorCode())
}

func TestAuthService_VerifyOTP_ExpiredCodeFailsIdentically(t *testing.T) {
	fx := createTestAuthService(t, false)

	ctx := context.Background()
	record := &entity.OTPCode{
		ID:        uuid.New(),
		Code:      "123456",
		Email:     "alice@example.com",
		CreatedAt: time.Now().UTC().Add(-20 * time.Minute),
		ExpiresAt: time.Now().UTC().Add(-10 * time.Minute),
	}

	fx.otpRepo.On("FindUnconsumed", ctx, "123456", "alice@example.com", "").Return(record, nil)

	_, err := fx.service.VerifyOTP(ctx, &usecase.VerifyOTPInput{
		Email: "alice@example.com",
		Code:  "123456",
	})
	require.Error(t, err)

	// Expired and unknown codes produce the same error.
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "OTP_INVALID", appErr.ErrorCode())
	fx.otpRepo.AssertNotCalled(t, "MarkConsumed")
}
