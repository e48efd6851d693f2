package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/wavegames/walletlink/config"
	"github.com/wavegames/walletlink/database"
	"github.com/wavegames/walletlink/database/repositories"
	"github.com/wavegames/walletlink/handlers"
	"github.com/wavegames/walletlink/logger"
	"github.com/wavegames/walletlink/middleware"
	"github.com/wavegames/walletlink/services"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	configPath := "config.toml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	// Logger first so config errors are readable
	slog.SetDefault(slog.New(logger.NewHandler("WalletLink", slog.LevelInfo)))

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	slog.SetDefault(slog.New(logger.NewHandler("WalletLink", cfg.Log.Level)))

	slog.Info("Starting WalletLink backend API",
		slog.String("version", version),
		slog.String("commit", commit))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger.LogSystem("Connecting to database...")
	db, err := database.New(ctx, database.DBConfig{
		Host:         cfg.DB.Host,
		Port:         cfg.DB.Port,
		User:         cfg.DB.User,
		Password:     cfg.DB.Password,
		Database:     cfg.DB.Database,
		PoolSize:     cfg.DB.PoolSize,
		MaxIdleConns: cfg.DB.MaxIdleConns,
		MaxLifetime:  cfg.DB.MaxLifetime,
	})
	if err != nil {
		logger.LogError("Failed to connect to database", err)
		os.Exit(1)
	}
	logger.LogSystem("Database connected successfully")

	if err := db.InitSchema(ctx); err != nil {
		logger.LogError("Failed to initialize schema", err)
		os.Exit(1)
	}

	// Repositories and services
	userRepo := repositories.NewUserRepository(db.BunDB())
	tokenRepo := repositories.NewTokenRepository(db.BunDB())
	txManager := repositories.NewTransactionManager(db.BunDB())

	webApp := &handlers.WebApp{
		Config:      cfg,
		DB:          db,
		LinkService: services.NewLinkService(tokenRepo, userRepo, txManager),
		UserService: services.NewUserService(userRepo),
		Version:     version,
		Commit:      commit,
	}

	app := fiber.New(fiber.Config{
		AppName:      "WalletLink Backend API",
		ServerHeader: "WalletLink-Backend",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(middleware.SecurityHeaders())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Web.AllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(middleware.LoggingMiddleware())

	setupRoutes(app, webApp)

	address := cfg.Web.Address()
	slog.Info("Starting backend server", slog.String("address", address))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := app.Listen(address); err != nil {
			slog.Error("Failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-c
	slog.Info("Shutting down backend server...")

	ctx, cancel = context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		slog.Error("Server shutdown error", slog.String("error", err.Error()))
	}

	db.Close()

	slog.Info("Backend server shutdown complete")
}

// setupRoutes configures all application routes
func setupRoutes(app *fiber.App, webApp *handlers.WebApp) {
	app.Get("/health", handlers.HealthCheck(webApp))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "WalletLink Backend API",
			"version": webApp.Version,
			"status":  "running",
		})
	})

	// Token redemption gets a tight per-IP budget; the token space must not
	// be guessable by hammering this endpoint.
	app.Post("/link", middleware.LinkRateLimit(), handlers.LinkDiscord(webApp))

	app.Get("/user", middleware.APIRateLimit(), handlers.UserDetail(webApp))
	app.Post("/user", middleware.APIRateLimit(), handlers.UserCreate(webApp))

	// Fallback for unmatched routes
	app.Use(func(c *fiber.Ctx) error {
		slog.Warn("No route matched for request",
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("ip", c.IP()),
		)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "Not Found",
			"message": "The requested endpoint does not exist",
		})
	})
}
