package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginUseCase struct {
	userRepo     user.Repository
	hasher       PasswordHasher
	tokenService SessionTokenService
	logger       logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokenService SessionTokenService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*AuthResult, error) {
	email := user.NormalizeEmail(cmd.Email)
	if !user.ValidEmail(email) || cmd.Password == "" {
		return nil, apperrors.NewValidationError("email and password are required")
	}

	existingUser, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		// The same message for unknown email and wrong password, so login
		// responses do not reveal which emails are registered.
		if apperrors.IsNotFoundError(err) {
			uc.logger.Warnw("login attempt for unknown email", "email", email)
			return nil, apperrors.NewUnauthorizedError("invalid credentials")
		}
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, err
	}

	if err := uc.hasher.Verify(cmd.Password, existingUser.PasswordHash()); err != nil {
		uc.logger.Warnw("login attempt with wrong password", "user_id", existingUser.ID())
		return nil, apperrors.NewUnauthorizedError("invalid credentials")
	}

	token, err := uc.tokenService.Generate(existingUser.ID())
	if err != nil {
		uc.logger.Errorw("failed to generate session token", "user_id", existingUser.ID(), "error", err)
		return nil, apperrors.NewInternalError("failed to create session")
	}

	uc.logger.Infow("user logged in successfully", "user_id", existingUser.ID())

	return &AuthResult{
		User:  ToUserDTO(existingUser),
		Token: token,
	}, nil
}
