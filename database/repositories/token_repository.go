package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/uptrace/bun"

	"github.com/wavegames/walletlink/database/models"
)

type TokenRepository interface {
	GetByTokenAndDiscordID(ctx context.Context, token, discordID string) (*models.LinkToken, error)
	MarkUsed(ctx context.Context, idb bun.IDB, token string) (int64, error)
}

type tokenRepository struct {
	db *bun.DB
}

func NewTokenRepository(db *bun.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) GetByTokenAndDiscordID(ctx context.Context, token, discordID string) (*models.LinkToken, error) {
	slog.Debug("TokenRepository.GetByTokenAndDiscordID called",
		slog.String("type", "db"),
		slog.String("operation", "GetByTokenAndDiscordID"),
		slog.String("discord_id", discordID))

	linkToken := new(models.LinkToken)
	err := r.db.NewSelect().
		Model(linkToken).
		Where("token = ?", token).
		Where("discord_id = ?", discordID).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		slog.Error("Database error when getting link token",
			slog.String("type", "db"),
			slog.String("operation", "GetByTokenAndDiscordID"),
			slog.String("discord_id", discordID),
			slog.String("error", err.Error()))
		return nil, err
	}

	return linkToken, nil
}

// MarkUsed flips the token's used flag, conditioned on it still being unused.
// The affected-row count tells the caller whether it won the redemption: a
// concurrent redeemer that lost the race sees zero rows.
func (r *tokenRepository) MarkUsed(ctx context.Context, idb bun.IDB, token string) (int64, error) {
	res, err := idb.NewUpdate().
		Model((*models.LinkToken)(nil)).
		Set("used = ?", true).
		Where("token = ?", token).
		Where("used = ?", false).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to mark token used: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected, nil
}
