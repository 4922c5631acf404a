package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ahorro-bot/internal/model"
)

func TestRegisterIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first, err := repo.Register(ctx, 42, "Ana")
	require.NoError(t, err)
	assert.Equal(t, "Ana", first.Name)

	// Repeated registration is a no-op, not an overwrite.
	second, err := repo.Register(ctx, 42, "Bob")
	require.NoError(t, err)
	assert.Equal(t, "Ana", second.Name)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&model.User{}).Where("telegram_id = ?", 42).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUnregisterRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.Register(ctx, 42, "Ana")
	require.NoError(t, err)

	require.NoError(t, repo.Unregister(ctx, 42))

	var count int64
	require.NoError(t, db.Model(&model.User{}).Where("telegram_id = ?", 42).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	assert.ErrorIs(t, repo.Unregister(ctx, 42), ErrUserNotFound)
}

func TestUnregisterUnknownUser(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	assert.ErrorIs(t, repo.Unregister(context.Background(), 777), ErrUserNotFound)
}

func TestListAll(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.Register(ctx, 1, "Ana")
	require.NoError(t, err)
	_, err = repo.Register(ctx, 2, "Bob")
	require.NoError(t, err)

	users, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
