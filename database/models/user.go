package models

import (
	"time"

	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID        int64  `bun:"id,pk,autoincrement"`
	Address   string `bun:"address,notnull,unique"`
	DiscordID string `bun:"discord_id,unique,nullzero"`

	// Mutated by the game loop, not by this service.
	Points     int64  `bun:"points,notnull,default:0"`
	LastPlayed int64  `bun:"last_played,notnull"`
	Team       string `bun:"team,nullzero"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}
