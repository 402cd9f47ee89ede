package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/application/auth/usecases"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { client.Close() })

	return client, mr
}

func TestOTPStore_GenerateAndVerify(t *testing.T) {
	client, mr := setupTestRedis(t)
	store := NewOTPStore(client, 600)
	ctx := context.Background()

	code, err := store.Generate(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Len(t, code, 6)
	for _, r := range code {
		assert.True(t, r >= '0' && r <= '9')
	}

	require.NoError(t, store.Verify(ctx, "alice@example.com", code))

	// The code key is replaced by the verified marker.
	assert.False(t, mr.Exists("otp:alice@example.com"))
	assert.True(t, mr.Exists("verified:alice@example.com"))

	// The code is consumed; a repeat verification finds nothing.
	err = store.Verify(ctx, "alice@example.com", code)
	assert.ErrorIs(t, err, usecases.ErrOTPNotFound)
}

func TestOTPStore_Verify_WrongCode(t *testing.T) {
	client, mr := setupTestRedis(t)
	store := NewOTPStore(client, 600)
	ctx := context.Background()

	_, err := store.Generate(ctx, "alice@example.com")
	require.NoError(t, err)

	err = store.Verify(ctx, "alice@example.com", "000000")
	assert.ErrorIs(t, err, usecases.ErrOTPInvalid)

	// A failed attempt does not consume the code.
	assert.True(t, mr.Exists("otp:alice@example.com"))
}

func TestOTPStore_Verify_NoCode(t *testing.T) {
	client, _ := setupTestRedis(t)
	store := NewOTPStore(client, 600)

	err := store.Verify(context.Background(), "alice@example.com", "123456")
	assert.ErrorIs(t, err, usecases.ErrOTPNotFound)
}

func TestOTPStore_Verify_ExpiredCode(t *testing.T) {
	client, mr := setupTestRedis(t)
	store := NewOTPStore(client, 600)
	ctx := context.Background()

	code, err := store.Generate(ctx, "alice@example.com")
	require.NoError(t, err)

	mr.FastForward(601 * time.Second)

	err = store.Verify(ctx, "alice@example.com", code)
	assert.ErrorIs(t, err, usecases.ErrOTPNotFound)
}

func TestOTPStore_Generate_OverwritesPreviousCode(t *testing.T) {
	client, _ := setupTestRedis(t)
	store := NewOTPStore(client, 600)
	ctx := context.Background()

	first, err := store.Generate(ctx, "alice@example.com")
	require.NoError(t, err)

	second, err := store.Generate(ctx, "alice@example.com")
	require.NoError(t, err)

	if first != second {
		assert.ErrorIs(t, store.Verify(ctx, "alice@example.com", first), usecases.ErrOTPInvalid)
	}
	require.NoError(t, store.Verify(ctx, "alice@example.com", second))
}

func TestOTPStore_ConsumeVerified_OneShot(t *testing.T) {
	client, _ := setupTestRedis(t)
	store := NewOTPStore(client, 600)
	ctx := context.Background()

	code, err := store.Generate(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NoError(t, store.Verify(ctx, "alice@example.com", code))

	require.NoError(t, store.ConsumeVerified(ctx, "alice@example.com"))

	// The marker is gone after the first consumption.
	err = store.ConsumeVerified(ctx, "alice@example.com")
	assert.ErrorIs(t, err, usecases.ErrOTPNotVerified)
}

func TestOTPStore_ConsumeVerified_NeverVerified(t *testing.T) {
	client, _ := setupTestRedis(t)
	store := NewOTPStore(client, 600)

	err := store.ConsumeVerified(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, usecases.ErrOTPNotVerified)
}
