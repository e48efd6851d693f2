package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/wavegames/walletlink/database/models"
	"github.com/wavegames/walletlink/database/repositories"
)

// UserService covers the create-once, read-many profile surface keyed by
// wallet address.
type UserService interface {
	CreateUser(ctx context.Context, address string) (*models.User, error)
	GetUserByAddress(ctx context.Context, address string) (*models.User, error)
}

type userService struct {
	users repositories.UserRepository
}

func NewUserService(users repositories.UserRepository) UserService {
	return &userService{users: users}
}

// CreateUser inserts a fresh profile for address. Existence is checked by
// the unique constraint on the insert itself, not by a prior read, so two
// concurrent creates cannot both succeed.
func (s *userService) CreateUser(ctx context.Context, address string) (*models.User, error) {
	user := &models.User{
		Address:    address,
		Points:     0,
		LastPlayed: time.Now().Unix(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrUserExists
		}
		slog.Error("Failed to create user",
			slog.String("address", address),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("User created", slog.String("address", address))
	return user, nil
}

func (s *userService) GetUserByAddress(ctx context.Context, address string) (*models.User, error) {
	user, err := s.users.GetByAddress(ctx, address)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
