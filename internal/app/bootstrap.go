package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"skill-pulse/internal/config"
	"skill-pulse/internal/database/migration"
	"skill-pulse/internal/database/seeder"
	"skill-pulse/internal/delivery/http/middleware"
	"skill-pulse/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap runs migrations (and seeders when enabled), then builds the
// Fiber app with middleware and routes mounted. The returned cleanup
// closes every long-lived resource held by the container.
func Bootstrap(cfg config.Config, c *Container) (*App, func() error, error) {
	if c == nil {
		return nil, nil, fmt.Errorf("nil container")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := (migration.Runner{Dir: "migrations"}).Run(ctx, c.DB.SQLDB()); err != nil {
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}

	if cfg.App.SeedOnBoot {
		runner := seeder.Runner{Seeders: []seeder.Seeder{seeder.DemoUsers{}}}
		if err := runner.Run(ctx, c.DB); err != nil {
			return nil, nil, fmt.Errorf("run seeders: %w", err)
		}
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	f.Use(middleware.NewErrorMiddleware().Middleware())

	routes.NewRegistry(cfg, c.DB, c.Cache, c.Hub, c.Logger).Register(f)

	app := &App{Fiber: f, Container: c}
	return app, c.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
