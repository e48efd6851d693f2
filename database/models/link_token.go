package models

import (
	"time"

	"github.com/uptrace/bun"
)

// LinkToken is a one-time capability issued by the Discord bot that proves
// the bearer controls the Discord account it was issued for. Tokens are
// created outside this service and kept after redemption as an audit trail.
type LinkToken struct {
	bun.BaseModel `bun:"table:tokens,alias:t"`

	ID        int64     `bun:"id,pk,autoincrement"`
	Token     string    `bun:"token,notnull,unique"`
	DiscordID string    `bun:"discord_id,notnull"`
	Used      bool      `bun:"used,notnull,default:false"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}
