package usecases

import (
	"context"
	"errors"
)

// Sentinel errors reported by OTPStore implementations.
var (
	// ErrOTPNotFound means no code is pending for the email: expired, never
	// issued, or already consumed by a successful verification.
	ErrOTPNotFound = errors.New("no OTP pending for this email")
	// ErrOTPInvalid means a code is pending but does not match the submission.
	ErrOTPInvalid = errors.New("invalid OTP code")
	// ErrOTPNotVerified means registration was attempted without a prior
	// successful verification, or the verified marker was already consumed.
	ErrOTPNotVerified = errors.New("email not verified")
)

// PasswordHasher abstracts bcrypt so use cases stay testable.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// SessionTokenService issues signed session tokens carried in the auth cookie.
type SessionTokenService interface {
	Generate(userID uint) (string, error)
}

// OTPStore keeps signup verification state.
type OTPStore interface {
	Generate(ctx context.Context, email string) (string, error)
	Verify(ctx context.Context, email, code string) error
	ConsumeVerified(ctx context.Context, email string) error
}

// EmailSender delivers the signup OTP.
type EmailSender interface {
	SendOTPEmail(to, code string) error
}

type SendOTPExecutor interface {
	Execute(ctx context.Context, cmd SendOTPCommand) error
}

type VerifyOTPExecutor interface {
	Execute(ctx context.Context, cmd VerifyOTPCommand) error
}

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd RegisterCommand) (*AuthResult, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*AuthResult, error)
}

type GetCurrentUserExecutor interface {
	Execute(ctx context.Context, query GetCurrentUserQuery) (*UserDTO, error)
}
