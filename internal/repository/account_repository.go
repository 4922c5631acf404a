package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"ahorro-bot/internal/model"
)

// AccountRepository reads and mutates the savings accounts.
// Accounts are addressed strictly by their numeric ID; the display name is
// presentation data.
type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) GetByID(ctx context.Context, id uint) (*model.Account, error) {
	var account model.Account
	if err := r.db.WithContext(ctx).First(&account, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account %d: %w", id, err)
	}
	return &account, nil
}

func (r *AccountRepository) ListAll(ctx context.Context) ([]model.Account, error) {
	var accounts []model.Account
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}

// Debit subtracts amount from the account balance. The check and the write
// happen in one transaction whose first statement is the guarded update, so
// two concurrent debits cannot lose one of the writes.
func (r *AccountRepository) Debit(ctx context.Context, id uint, amount int64) (*model.Account, error) {
	var account model.Account
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Account{}).
			Where("id = ? AND balance >= ?", id, amount).
			Update("balance", gorm.Expr("balance - ?", amount))
		if res.Error != nil {
			return fmt.Errorf("debit account %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			if err := tx.First(&account, id).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					return ErrAccountNotFound
				}
				return fmt.Errorf("find account %d: %w", id, err)
			}
			return ErrInsufficientFunds
		}
		if err := tx.First(&account, id).Error; err != nil {
			return fmt.Errorf("reload account %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// Credit adds amount to the account balance. There is no upper bound.
func (r *AccountRepository) Credit(ctx context.Context, id uint, amount int64) (*model.Account, error) {
	var account model.Account
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Account{}).
			Where("id = ?", id).
			Update("balance", gorm.Expr("balance + ?", amount))
		if res.Error != nil {
			return fmt.Errorf("credit account %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrAccountNotFound
		}
		if err := tx.First(&account, id).Error; err != nil {
			return fmt.Errorf("reload account %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &account, nil
}
