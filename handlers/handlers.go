package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/wavegames/walletlink/config"
	"github.com/wavegames/walletlink/database"
	"github.com/wavegames/walletlink/services"
	"github.com/wavegames/walletlink/utils"
)

// WebApp represents the web application with all dependencies
type WebApp struct {
	Config      *config.Config
	DB          *database.DB
	LinkService services.LinkService
	UserService services.UserService
	Version     string
	Commit      string
}

func HealthCheck(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status := "healthy"
		if webApp.DB != nil {
			if err := webApp.DB.Ping(c.Context()); err != nil {
				slog.Error("Health check: database unreachable",
					slog.String("error", err.Error()))
				status = "unhealthy"
			}
		}

		payload := fiber.Map{
			"status":  status,
			"version": webApp.Version,
			"commit":  webApp.Commit,
		}

		if status != "healthy" {
			return utils.SendJSON(c, fiber.StatusServiceUnavailable, payload)
		}
		return utils.SendSuccess(c, payload, "Health check successful")
	}
}
