package impl

import (
	"context"
	"log/slog"
	"time"

	"kitchen/config"
	deliverycontext "kitchen/internal/delivery/context"
	"kitchen/internal/domain/entity"
	domainerrors "kitchen/internal/domain/errors"
	"kitchen/internal/domain/repository"
	"kitchen/internal/domain/service"
	"kitchen/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	otpRepo      repository.OTPRepository
	userRepo     repository.UserRepository
	otpGenerator service.OTPGenerator
	tokenService service.CustomerTokenService
	otpTTL       time.Duration
	debug        bool
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	OTPRepo      repository.OTPRepository
	UserRepo     repository.UserRepository
	OTPGenerator service.OTPGenerator
	TokenService service.CustomerTokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		otpRepo:      params.OTPRepo,
		userRepo:     params.UserRepo,
		otpGenerator: params.OTPGenerator,
		tokenService: params.TokenService,
		otpTTL:       params.Config.Auth.OTPTTL,
		debug:        params.Config.Env.Debug,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestOTP issues a fresh one-time code for the given contact method.
// Issuing a new code never invalidates earlier unexpired ones.
func (srv *authService) RequestOTP(ctx context.Context, input *usecase.RequestOTPInput) (*usecase.RequestOTPOutput, error) {
	if input.Email == "" && input.Phone == "" {
		return nil, errors.Wrap(domainerrors.ErrContactRequired, "request otp")
	}

	code, err := srv.otpGenerator.Generate()
	if err != nil {
		srv.log(ctx).Error("Failed to generate OTP", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate otp")
	}

	now := time.Now().UTC()
	record := &entity.OTPCode{
		ID:        uuid.New(),
		Code:      code,
		Email:     input.Email,
		Phone:     input.Phone,
		CreatedAt: now,
		ExpiresAt: now.Add(srv.otpTTL),
	}

	if err := srv.otpRepo.Create(ctx, record); err != nil {
		srv.log(ctx).Error("Failed to store OTP", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store otp")
	}

	// No delivery channel is wired yet, so the code is logged for operators.
	// TODO: send the code over email/SMS once a provider is integrated.
	srv.log(ctx).Info("OTP issued",
		slog.String("email", input.Email), slog.String("phone", input.Phone), slog.String("otp", code))

	output := &usecase.RequestOTPOutput{Message: "OTP sent successfully"}
	if srv.debug {
		output.Code = code
	}

	return output, nil
}

// VerifyOTP redeems a code and returns a customer session token, creating
// the account on first login. Unknown and expired codes fail identically.
func (srv *authService) VerifyOTP(ctx context.Context, input *usecase.VerifyOTPInput) (*usecase.VerifyOTPOutput, error) {
	if input.Email == "" && input.Phone == "" {
		return nil, errors.Wrap(domainerrors.ErrContactRequired, "verify otp")
	}

	record, err := srv.otpRepo.FindUnconsumed(ctx, input.Code, input.Email, input.Phone)
	if err != nil {
		if errors.Is(err, repository.ErrOTPNotFound) {
			srv.log(ctx).Warn("OTP verification failed",
				slog.String("email", input.Email), slog.String("phone", input.Phone))

			return nil, errors.Wrap(domainerrors.ErrOTPInvalid, "verify otp")
		}

		return nil, errors.Wrap(err, "failed to find otp")
	}

	if record.IsExpired(time.Now().UTC()) {
		srv.log(ctx).Warn("Expired OTP presented",
			slog.String("email", input.Email), slog.String("phone", input.Phone))

		return nil, errors.Wrap(domainerrors.ErrOTPInvalid, "verify otp")
	}

	if err := srv.otpRepo.MarkConsumed(ctx, record.ID); err != nil {
		return nil, errors.Wrap(err, "failed to consume otp")
	}

	user, err := srv.findOrCreateUser(ctx, input.Email, input.Phone)
	if err != nil {
		return nil, err
	}

	accessToken, err := srv.tokenService.Issue(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue customer token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue customer token")
	}

	srv.log(ctx).Info("Customer logged in", slog.Any("userID", user.ID))

	return &usecase.VerifyOTPOutput{
		AccessToken: accessToken,
		TokenType:   "bearer",
		User:        user,
	}, nil
}

// findOrCreateUser loads the account for the verified contact, registering a
// placeholder account on first login.
func (srv *authService) findOrCreateUser(ctx context.Context, email, phone string) (*entity.User, error) {
	user, err := srv.userRepo.FindByContact(ctx, email, phone)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user by contact")
	}

	now := time.Now().UTC()
	newUser := &entity.User{
		ID:        uuid.New(),
		Email:     email,
		Phone:     phone,
		Name:      "New User",
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		srv.log(ctx).Error("Failed to create user on first login", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user on first login")
	}

	srv.log(ctx).Info("Registered new customer", slog.Any("userID", newUser.ID))

	return newUser, nil
}
