package usecases

import (
	"context"
	stderrors "errors"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type VerifyOTPCommand struct {
	Email string
	Code  string
}

type VerifyOTPUseCase struct {
	otpStore OTPStore
	logger   logger.Interface
}

func NewVerifyOTPUseCase(
	otpStore OTPStore,
	logger logger.Interface,
) *VerifyOTPUseCase {
	return &VerifyOTPUseCase{
		otpStore: otpStore,
		logger:   logger,
	}
}

func (uc *VerifyOTPUseCase) Execute(ctx context.Context, cmd VerifyOTPCommand) error {
	email := user.NormalizeEmail(cmd.Email)
	if !user.ValidEmail(email) {
		return errors.NewValidationError("invalid email address")
	}
	if cmd.Code == "" {
		return errors.NewValidationError("code is required")
	}

	if err := uc.otpStore.Verify(ctx, email, cmd.Code); err != nil {
		switch {
		case stderrors.Is(err, ErrOTPNotFound):
			uc.logger.Warnw("OTP verification for absent code", "email", email)
			return errors.NewNotFoundError("no OTP pending for this email")
		case stderrors.Is(err, ErrOTPInvalid):
			uc.logger.Warnw("OTP verification failed", "email", email)
			return errors.NewValidationError("invalid OTP code")
		}
		uc.logger.Errorw("OTP store error", "email", email, "error", err)
		return err
	}

	uc.logger.Infow("OTP verified", "email", email)
	return nil
}
