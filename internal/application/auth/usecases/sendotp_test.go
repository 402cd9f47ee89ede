package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "helpdesk/internal/shared/errors"
)

func TestSendOTPUseCase_Execute_Success(t *testing.T) {
	var generatedFor string
	otpStore := &mockOTPStore{
		GenerateFunc: func(ctx context.Context, email string) (string, error) {
			generatedFor = email
			return "424242", nil
		},
	}
	var sentTo, sentCode string
	sender := &mockEmailSender{
		SendOTPEmailFunc: func(to, code string) error {
			sentTo = to
			sentCode = code
			return nil
		},
	}

	useCase := NewSendOTPUseCase(otpStore, sender, &mockLogger{})
	err := useCase.Execute(context.Background(), SendOTPCommand{Email: " Alice@Example.COM "})

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", generatedFor)
	assert.Equal(t, "alice@example.com", sentTo)
	assert.Equal(t, "424242", sentCode)
}

func TestSendOTPUseCase_Execute_InvalidEmail(t *testing.T) {
	useCase := NewSendOTPUseCase(&mockOTPStore{}, &mockEmailSender{}, &mockLogger{})

	err := useCase.Execute(context.Background(), SendOTPCommand{Email: "not-an-email"})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestSendOTPUseCase_Execute_GenerateFailure(t *testing.T) {
	otpStore := &mockOTPStore{
		GenerateFunc: func(ctx context.Context, email string) (string, error) {
			return "", errors.New("redis unavailable")
		},
	}
	sender := &mockEmailSender{
		SendOTPEmailFunc: func(to, code string) error {
			t.Fatal("no email may be sent when code generation fails")
			return nil
		},
	}

	useCase := NewSendOTPUseCase(otpStore, sender, &mockLogger{})
	err := useCase.Execute(context.Background(), SendOTPCommand{Email: "alice@example.com"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to generate OTP")
}

func TestSendOTPUseCase_Execute_SendFailure(t *testing.T) {
	sender := &mockEmailSender{
		SendOTPEmailFunc: func(to, code string) error {
			return errors.New("smtp connection refused")
		},
	}

	useCase := NewSendOTPUseCase(&mockOTPStore{}, sender, &mockLogger{})
	err := useCase.Execute(context.Background(), SendOTPCommand{Email: "alice@example.com"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send OTP email")
}
