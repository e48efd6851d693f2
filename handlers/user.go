package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/wavegames/walletlink/models"
	"github.com/wavegames/walletlink/services"
	"github.com/wavegames/walletlink/utils"
)

// UserDetail returns the profile for the address in the query string.
func UserDetail(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		address := c.Query("address")
		if address == "" {
			return utils.SendBadRequest(c, "Address parameter is required", nil)
		}
		if !utils.IsValidAddress(address) {
			return utils.SendBadRequest(c, "Invalid Ethereum address", nil)
		}

		user, err := webApp.UserService.GetUserByAddress(c.Context(), utils.NormalizeAddress(address))
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return utils.SendNotFound(c, "User not found")
		case err != nil:
			slog.Error("User lookup failed",
				slog.String("address", address),
				slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Database error")
		}

		return utils.SendSuccess(c, models.NewUserProfileDTO(user), "")
	}
}

// UserCreate registers a fresh profile for a wallet address.
func UserCreate(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UserCreateRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}

		if fieldErrors := utils.ValidateUserCreateRequest(&req); len(fieldErrors) > 0 {
			return utils.HandleValidationErrors(c, fieldErrors)
		}

		user, err := webApp.UserService.CreateUser(c.Context(), utils.NormalizeAddress(req.Address))
		switch {
		case errors.Is(err, services.ErrUserExists):
			return utils.SendConflict(c, "User already exists", nil)
		case err != nil:
			slog.Error("User creation failed",
				slog.String("address", req.Address),
				slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Database error")
		}

		return utils.SendCreated(c, models.NewUserProfileDTO(user), "User created successfully")
	}
}
