package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"ahorro-bot/internal/model"
)

// UserRepository manages the opt-in registry of Telegram users.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Register stores the user unless the telegram ID is already present.
// A repeated registration is a silent no-op and keeps the original name.
func (r *UserRepository) Register(ctx context.Context, telegramID int64, name string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("telegram_id = ?", telegramID).
		Attrs(model.User{TelegramID: telegramID, Name: name}).
		FirstOrCreate(&user).Error
	if err != nil {
		return nil, fmt.Errorf("register user %d: %w", telegramID, err)
	}
	return &user, nil
}

// Unregister deletes the user's row, reporting ErrUserNotFound when there was
// nothing to delete.
func (r *UserRepository) Unregister(ctx context.Context, telegramID int64) error {
	res := r.db.WithContext(ctx).Where("telegram_id = ?", telegramID).Delete(&model.User{})
	if res.Error != nil {
		return fmt.Errorf("unregister user %d: %w", telegramID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) ListAll(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
