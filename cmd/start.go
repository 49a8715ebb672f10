package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"extension-monitor/core/config"
	"extension-monitor/core/feed"
	"extension-monitor/core/loader"
	"extension-monitor/core/logger"
	"extension-monitor/core/middleware/auth"
	"extension-monitor/core/middleware/rayid"
	"extension-monitor/feature/dashboard"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the dashboard server",
	Long:  `Starts the HTTP server and loads the dashboard feature.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Initialize Feed Client
		client, err := feed.NewClient(cfg.Feed)
		if err != nil {
			return fmt.Errorf("failed to create feed client: %w", err)
		}

		app := newApp(cfg, client, logg)

		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port), zap.String("feed", cfg.Feed.URL))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 4. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

// newApp wires middleware and features into a Fiber app.
func newApp(cfg *config.Config, client feed.Client, logg *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	// RayID must be first to trace everything
	app.Use(rayid.New())
	app.Use(logger.Middleware(logg))

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Use(auth.New(auth.Config{
		ApiKey: cfg.Server.ApiKey,
		Next:   func(c *fiber.Ctx) bool { return c.Path() == "/healthz" },
	}))

	mgr := loader.NewManager()
	mgr.Register(dashboard.NewFeature(client, cfg.Feed.SubmissionsKey, cfg.Server.CacheControl(), logg))

	loaded, err := mgr.LoadAll(app)
	if err != nil {
		logg.Fatal("Failed to load features", zap.Error(err))
	}
	logg.Info("Features loaded", zap.Strings("features", loaded))

	return app
}

func init() {
	RootCmd.AddCommand(startCmd)
}
