package models

import dbmodels "github.com/wavegames/walletlink/database/models"

// LinkDiscordRequest is the body of POST /link, sent by the wallet-connect
// page after the bot hands the user a link token.
type LinkDiscordRequest struct {
	Token   string `json:"token"`
	Discord string `json:"discord"`
	Address string `json:"address"`
}

// UserCreateRequest is the body of POST /user.
type UserCreateRequest struct {
	Address string `json:"address"`
}

// UserProfileDTO is the public shape of a profile row.
type UserProfileDTO struct {
	DiscordID  string `json:"discord_id"`
	Address    string `json:"address"`
	Points     int64  `json:"points"`
	LastPlayed int64  `json:"last_played"`
	Team       string `json:"team"`
}

// NewUserProfileDTO maps a database row to its public shape.
func NewUserProfileDTO(user *dbmodels.User) *UserProfileDTO {
	return &UserProfileDTO{
		DiscordID:  user.DiscordID,
		Address:    user.Address,
		Points:     user.Points,
		LastPlayed: user.LastPlayed,
		Team:       user.Team,
	}
}

// FieldError describes a single invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
