package cache

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"

	"helpdesk/internal/application/auth/usecases"
)

const (
	otpCodePrefix     = "otp:"
	otpVerifiedPrefix = "verified:"
	otpCodeDigits     = 6
)

// OTPStore keeps signup OTP state in Redis. Two keys per email: the pending
// code and, after a successful check, a one-shot verified marker consumed by
// registration.
type OTPStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewOTPStore creates a new OTPStore instance
func NewOTPStore(client *redis.Client, ttlSeconds int) *OTPStore {
	return &OTPStore{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
}

// Generate creates a 6-digit code for the email and stores it with the
// configured TTL. Re-requesting overwrites the previous code and resets the
// clock.
func (s *OTPStore) Generate(ctx context.Context, email string) (string, error) {
	code, err := randomDigits(otpCodeDigits)
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP code: %w", err)
	}

	key := otpCodePrefix + email
	if err := s.client.Set(ctx, key, code, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store OTP code: %w", err)
	}

	return code, nil
}

// Verify checks the submitted code against the stored one. On success the
// code is deleted and a verified marker with the same TTL takes its place.
func (s *OTPStore) Verify(ctx context.Context, email, code string) error {
	key := otpCodePrefix + email
	stored, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return usecases.ErrOTPNotFound
		}
		return fmt.Errorf("failed to get OTP code: %w", err)
	}

	if stored != code {
		return usecases.ErrOTPInvalid
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, key)
	pipe.Set(ctx, otpVerifiedPrefix+email, "1", s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark email verified: %w", err)
	}

	return nil
}

// ConsumeVerified atomically checks and removes the verified marker. A second
// registration attempt with the same marker fails.
func (s *OTPStore) ConsumeVerified(ctx context.Context, email string) error {
	key := otpVerifiedPrefix + email

	// GETDEL is atomic: get the value and delete the key in one operation
	_, err := s.client.GetDel(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return usecases.ErrOTPNotVerified
		}
		return fmt.Errorf("failed to consume verified marker: %w", err)
	}

	return nil
}

func randomDigits(n int) (string, error) {
	max := big.NewInt(10)
	buf := make([]byte, n)
	for i := range buf {
		d, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = byte('0' + d.Int64())
	}
	return string(buf), nil
}
