package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/wavegames/walletlink/models"
	"github.com/wavegames/walletlink/services"
	"github.com/wavegames/walletlink/utils"
)

// LinkDiscord redeems a one-time link token and binds the wallet address to
// the Discord account the token was issued for.
func LinkDiscord(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.LinkDiscordRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}

		if fieldErrors := utils.ValidateLinkRequest(&req); len(fieldErrors) > 0 {
			return utils.HandleValidationErrors(c, fieldErrors)
		}

		address := utils.NormalizeAddress(req.Address)

		result, err := webApp.LinkService.RedeemToken(c.Context(), req.Token, req.Discord, address)
		switch {
		case errors.Is(err, services.ErrInvalidToken):
			return utils.SendUnauthorized(c, "Invalid token")
		case errors.Is(err, services.ErrTokenAlreadyUsed):
			return utils.SendUnauthorized(c, "Token already used")
		case errors.Is(err, services.ErrAddressConflict):
			return utils.SendBadRequest(c, "Address already linked to another Discord account", nil)
		case err != nil:
			slog.Error("Link request failed",
				slog.String("discord_id", req.Discord),
				slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Database error")
		}

		return utils.SendSuccess(c, result, "Discord linked successfully")
	}
}
