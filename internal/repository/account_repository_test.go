package repository

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"ahorro-bot/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, SeedAccounts(db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return db
}

func setBalance(t *testing.T, db *gorm.DB, id uint, balance int64) {
	t.Helper()
	require.NoError(t, db.Model(&model.Account{}).Where("id = ?", id).Update("balance", balance).Error)
}

func TestSeedAccountsKeepsExistingBalances(t *testing.T) {
	db := newTestDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	setBalance(t, db, 1, 700)
	require.NoError(t, SeedAccounts(db))

	account, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Cuenta Pesos", account.Name)
	assert.Equal(t, int64(700), account.Balance)
}

func TestGetByIDNotFound(t *testing.T) {
	repo := NewAccountRepository(newTestDB(t))

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestDebitSufficientFunds(t *testing.T) {
	db := newTestDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	setBalance(t, db, 1, 1500)

	account, err := repo.Debit(ctx, 1, 1500)
	require.NoError(t, err)
	assert.Equal(t, int64(0), account.Balance)
}

func TestDebitInsufficientFundsLeavesBalanceUntouched(t *testing.T) {
	db := newTestDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	setBalance(t, db, 1, 1500)

	_, err := repo.Debit(ctx, 1, 1500)
	require.NoError(t, err)

	_, err = repo.Debit(ctx, 1, 1)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	account, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), account.Balance)
}

func TestDebitAccountNotFound(t *testing.T) {
	repo := NewAccountRepository(newTestDB(t))

	_, err := repo.Debit(context.Background(), 99, 10)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestCreditHasNoUpperBound(t *testing.T) {
	db := newTestDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	account, err := repo.Credit(ctx, 2, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(100), account.Balance)

	account, err = repo.Credit(ctx, 2, 40)
	require.NoError(t, err)
	assert.Equal(t, int64(140), account.Balance)
}

func TestCreditAccountNotFound(t *testing.T) {
	repo := NewAccountRepository(newTestDB(t))

	_, err := repo.Credit(context.Background(), 99, 10)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestConcurrentDebitsDoNotLoseUpdates(t *testing.T) {
	db := newTestDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	const (
		workers = 10
		amount  = int64(10)
	)
	setBalance(t, db, 1, workers*amount)

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Debit(ctx, 1, amount)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	account, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), account.Balance)
}
