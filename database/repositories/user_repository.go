package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/uptrace/bun"

	"github.com/wavegames/walletlink/database/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByAddress(ctx context.Context, address string) (*models.User, error)
	GetAddressOwnerForUpdate(ctx context.Context, idb bun.IDB, address string) (*models.User, error)
	UpsertByDiscordID(ctx context.Context, idb bun.IDB, discordID, address string) error
	ClaimAddress(ctx context.Context, idb bun.IDB, userID int64, discordID string) error
}

type userRepository struct {
	db *bun.DB
}

func NewUserRepository(db *bun.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().Model(user).Exec(ctx)
	if err != nil {
		if IsUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *userRepository) GetByAddress(ctx context.Context, address string) (*models.User, error) {
	slog.Debug("UserRepository.GetByAddress called",
		slog.String("type", "db"),
		slog.String("operation", "GetByAddress"),
		slog.String("address", address))

	user := new(models.User)
	err := r.db.NewSelect().
		Model(user).
		Where("address = ?", address).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		slog.Error("Database error when getting user",
			slog.String("type", "db"),
			slog.String("operation", "GetByAddress"),
			slog.String("address", address),
			slog.String("error", err.Error()))
		return nil, err
	}

	return user, nil
}

// GetAddressOwnerForUpdate fetches the row holding address and locks it for
// the remainder of the surrounding transaction, so the caller's decision is
// not invalidated by a concurrent link for the same address.
func (r *userRepository) GetAddressOwnerForUpdate(ctx context.Context, idb bun.IDB, address string) (*models.User, error) {
	user := new(models.User)
	err := idb.NewSelect().
		Model(user).
		Where("address = ?", address).
		For("UPDATE").
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return user, nil
}

// UpsertByDiscordID creates the profile row for discordID or moves an
// existing one to a new address. A unique violation here means another row
// already holds the address.
func (r *userRepository) UpsertByDiscordID(ctx context.Context, idb bun.IDB, discordID, address string) error {
	now := time.Now()
	user := &models.User{
		Address:    address,
		DiscordID:  discordID,
		Points:     0,
		LastPlayed: now.Unix(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := idb.NewInsert().
		Model(user).
		On("CONFLICT (discord_id) DO UPDATE").
		Set("address = EXCLUDED.address").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)

	if err != nil {
		if IsUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to upsert user link: %w", err)
	}
	return nil
}

// ClaimAddress attaches discordID to a profile row that was created by
// address alone and has no Discord account yet.
func (r *userRepository) ClaimAddress(ctx context.Context, idb bun.IDB, userID int64, discordID string) error {
	_, err := idb.NewUpdate().
		Model((*models.User)(nil)).
		Set("discord_id = ?", discordID).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", userID).
		Exec(ctx)

	if err != nil {
		if IsUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to claim address: %w", err)
	}
	return nil
}
