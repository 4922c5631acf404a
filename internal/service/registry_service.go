package service

import (
	"context"

	"ahorro-bot/internal/model"
	"ahorro-bot/internal/repository"
)

// RegistryService manages the opt-in user registry behind /save and /leave.
type RegistryService struct {
	userRepo *repository.UserRepository
}

func NewRegistryService(userRepo *repository.UserRepository) *RegistryService {
	return &RegistryService{userRepo: userRepo}
}

func (s *RegistryService) Register(ctx context.Context, telegramID int64, name string) (*model.User, error) {
	return s.userRepo.Register(ctx, telegramID, name)
}

func (s *RegistryService) Unregister(ctx context.Context, telegramID int64) error {
	return s.userRepo.Unregister(ctx, telegramID)
}

func (s *RegistryService) ListRegistered(ctx context.Context) ([]model.User, error) {
	return s.userRepo.ListAll(ctx)
}
