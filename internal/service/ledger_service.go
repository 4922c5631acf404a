package service

import (
	"context"
	"fmt"

	"ahorro-bot/internal/model"
	"ahorro-bot/internal/repository"
)

// MutationResult describes a completed balance change.
type MutationResult struct {
	Account    model.Account
	Amount     int64
	OldBalance int64
	NewBalance int64
}

// LedgerService wraps the balance mutation logic of the savings accounts.
type LedgerService struct {
	accountRepo *repository.AccountRepository
}

func NewLedgerService(accountRepo *repository.AccountRepository) *LedgerService {
	return &LedgerService{accountRepo: accountRepo}
}

func (s *LedgerService) GetAccount(ctx context.Context, id uint) (*model.Account, error) {
	return s.accountRepo.GetByID(ctx, id)
}

func (s *LedgerService) ListAccounts(ctx context.Context) ([]model.Account, error) {
	return s.accountRepo.ListAll(ctx)
}

// Debit registers a purchase against the account. Insufficient funds leave the
// balance untouched and surface as repository.ErrInsufficientFunds.
func (s *LedgerService) Debit(ctx context.Context, id uint, amount int64) (*MutationResult, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("debit amount must be positive, got %d", amount)
	}
	account, err := s.accountRepo.Debit(ctx, id, amount)
	if err != nil {
		return nil, err
	}
	return &MutationResult{
		Account:    *account,
		Amount:     amount,
		OldBalance: account.Balance + amount,
		NewBalance: account.Balance,
	}, nil
}

// Credit deposits the amount into the account. There is no upper bound.
func (s *LedgerService) Credit(ctx context.Context, id uint, amount int64) (*MutationResult, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("credit amount must be positive, got %d", amount)
	}
	account, err := s.accountRepo.Credit(ctx, id, amount)
	if err != nil {
		return nil, err
	}
	return &MutationResult{
		Account:    *account,
		Amount:     amount,
		OldBalance: account.Balance - amount,
		NewBalance: account.Balance,
	}, nil
}
