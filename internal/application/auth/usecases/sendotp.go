package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type SendOTPCommand struct {
	Email string
}

// SendOTPUseCase issues a signup code. Issuance is independent of
// registration state; duplicate accounts are rejected at registration, not
// here, so the response does not reveal which emails already have one.
type SendOTPUseCase struct {
	otpStore OTPStore
	email    EmailSender
	logger   logger.Interface
}

func NewSendOTPUseCase(
	otpStore OTPStore,
	email EmailSender,
	logger logger.Interface,
) *SendOTPUseCase {
	return &SendOTPUseCase{
		otpStore: otpStore,
		email:    email,
		logger:   logger,
	}
}

func (uc *SendOTPUseCase) Execute(ctx context.Context, cmd SendOTPCommand) error {
	email := user.NormalizeEmail(cmd.Email)
	if !user.ValidEmail(email) {
		return errors.NewValidationError("invalid email address")
	}

	// A re-request overwrites the previous code and restarts its TTL.
	code, err := uc.otpStore.Generate(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to generate OTP", "error", err)
		return errors.NewInternalError("failed to generate OTP")
	}

	if err := uc.email.SendOTPEmail(email, code); err != nil {
		uc.logger.Errorw("failed to send OTP email", "email", email, "error", err)
		return errors.NewInternalError("failed to send OTP email")
	}

	uc.logger.Infow("OTP sent", "email", email)
	return nil
}
