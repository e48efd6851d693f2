package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/uptrace/bun"

	"github.com/wavegames/walletlink/database/repositories"
)

// LinkResult is the confirmation payload for a successful redemption.
type LinkResult struct {
	Address   string `json:"address"`
	DiscordID string `json:"discord_id"`
}

// LinkService consumes one-time link tokens to bind a wallet address to the
// Discord account the token was issued for.
type LinkService interface {
	RedeemToken(ctx context.Context, token, discordID, address string) (*LinkResult, error)
}

type linkService struct {
	tokens repositories.TokenRepository
	users  repositories.UserRepository
	tx     repositories.TransactionManager
}

func NewLinkService(tokens repositories.TokenRepository, users repositories.UserRepository, tx repositories.TransactionManager) LinkService {
	return &linkService{
		tokens: tokens,
		users:  users,
		tx:     tx,
	}
}

// RedeemToken validates the token against the requested Discord id, then
// links the address inside a single transaction:
//
//  1. the (token, discord) pair must exist and be unused
//  2. the address must not belong to a different Discord account
//  3. the profile row is created, moved, or claimed
//  4. the token is flipped to used, conditioned on still being unused
//
// Losing either race (token or address) rolls the transaction back, so a
// failed redemption leaves no writes behind.
func (s *linkService) RedeemToken(ctx context.Context, token, discordID, address string) (*LinkResult, error) {
	linkToken, err := s.tokens.GetByTokenAndDiscordID(ctx, token, discordID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			slog.Warn("Token verification failed",
				slog.String("discord_id", discordID))
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to verify token: %w", err)
	}

	if linkToken.Used {
		slog.Warn("Token replay attempt",
			slog.String("discord_id", discordID))
		return nil, ErrTokenAlreadyUsed
	}

	err = s.tx.WithTransaction(ctx, repositories.SerializableTransactionOptions(), func(ctx context.Context, tx bun.Tx) error {
		if err := s.linkAddress(ctx, tx, discordID, address); err != nil {
			return err
		}

		affected, err := s.tokens.MarkUsed(ctx, tx, token)
		if err != nil {
			return fmt.Errorf("failed to finalize token: %w", err)
		}
		if affected == 0 {
			// A concurrent redemption got there first.
			return ErrTokenAlreadyUsed
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrAddressConflict) || errors.Is(err, ErrTokenAlreadyUsed) {
			return nil, err
		}
		slog.Error("Failed to link discord account",
			slog.String("discord_id", discordID),
			slog.String("address", address),
			slog.String("error", err.Error()))
		return nil, err
	}

	slog.Info("Discord account linked",
		slog.String("discord_id", discordID),
		slog.String("address", address))

	return &LinkResult{Address: address, DiscordID: discordID}, nil
}

// linkAddress decides how the address attaches to the profile row while
// holding a row lock on any existing owner of the address.
func (s *linkService) linkAddress(ctx context.Context, tx bun.Tx, discordID, address string) error {
	owner, err := s.users.GetAddressOwnerForUpdate(ctx, tx, address)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		// Nobody holds the address; create or move the row for this account.
		if err := s.users.UpsertByDiscordID(ctx, tx, discordID, address); err != nil {
			if errors.Is(err, repositories.ErrDuplicate) {
				return ErrAddressConflict
			}
			return fmt.Errorf("failed to upsert user: %w", err)
		}
		return nil

	case err != nil:
		return fmt.Errorf("failed to check address owner: %w", err)

	case owner.DiscordID == discordID:
		// Already linked to this account; nothing to write.
		return nil

	case owner.DiscordID == "":
		// Profile was created by address alone; attach the Discord account.
		if err := s.users.ClaimAddress(ctx, tx, owner.ID, discordID); err != nil {
			if errors.Is(err, repositories.ErrDuplicate) {
				return ErrAddressConflict
			}
			return fmt.Errorf("failed to claim address: %w", err)
		}
		return nil

	default:
		return ErrAddressConflict
	}
}
