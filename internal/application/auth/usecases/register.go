package usecases

import (
	"context"
	stderrors "errors"
	"strings"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/config"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type RegisterCommand struct {
	Name     string
	Email    string
	Password string
}

// RegisterUseCase completes a signup. When OTP gating is enabled the email
// must carry a verified marker, which is consumed here so it cannot be
// replayed for a second account.
type RegisterUseCase struct {
	userRepo     user.Repository
	otpStore     OTPStore
	hasher       PasswordHasher
	tokenService SessionTokenService
	otpConfig    config.OTPConfig
	logger       logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	otpStore OTPStore,
	hasher PasswordHasher,
	tokenService SessionTokenService,
	otpConfig config.OTPConfig,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:     userRepo,
		otpStore:     otpStore,
		hasher:       hasher,
		tokenService: tokenService,
		otpConfig:    otpConfig,
		logger:       logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*AuthResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	email := user.NormalizeEmail(cmd.Email)

	if uc.otpConfig.Required {
		if err := uc.otpStore.ConsumeVerified(ctx, email); err != nil {
			if stderrors.Is(err, ErrOTPNotVerified) {
				uc.logger.Warnw("registration attempted without verified email", "email", email)
				return nil, errors.NewConflictError("email not verified")
			}
			uc.logger.Errorw("OTP store error", "email", email, "error", err)
			return nil, err
		}
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}

	newUser, err := user.NewUser(cmd.Name, email, hash, user.RoleUser)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to create user", "email", email, "error", err)
		return nil, err
	}

	token, err := uc.tokenService.Generate(newUser.ID())
	if err != nil {
		uc.logger.Errorw("failed to generate session token", "user_id", newUser.ID(), "error", err)
		return nil, errors.NewInternalError("failed to create session")
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "email", email)

	return &AuthResult{
		User:  ToUserDTO(newUser),
		Token: token,
	}, nil
}

func (uc *RegisterUseCase) validateCommand(cmd RegisterCommand) error {
	if len(strings.TrimSpace(cmd.Name)) == 0 {
		return errors.NewValidationError("name is required")
	}
	if len(cmd.Name) > 100 {
		return errors.NewValidationError("name exceeds maximum length of 100 characters")
	}
	if !user.ValidEmail(user.NormalizeEmail(cmd.Email)) {
		return errors.NewValidationError("invalid email address")
	}
	if len(cmd.Password) < 6 {
		return errors.NewValidationError("password must be at least 6 characters")
	}
	if len(cmd.Password) > 72 {
		// bcrypt truncates beyond 72 bytes
		return errors.NewValidationError("password exceeds maximum length of 72 characters")
	}
	return nil
}
