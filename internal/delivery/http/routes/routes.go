package routes

import (
	"log"

	"skill-pulse/internal/config"
	"skill-pulse/internal/database"
	"skill-pulse/internal/delivery/http/handler"
	"skill-pulse/internal/infrastructure/cache"
	"skill-pulse/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	cfg    config.Config
	db     database.DB
	cache  *cache.Redis
	hub    *ws.Hub
	logger *log.Logger
}

func NewRegistry(cfg config.Config, db database.DB, redis *cache.Redis, hub *ws.Hub, logger *log.Logger) *Registry {
	return &Registry{cfg: cfg, db: db, cache: redis, hub: hub, logger: logger}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	handler.NewHealthHandler(r.db).RegisterRoutes(app)

	wsHandler := ws.NewHandler(r.hub, r.logger)
	app.Get("/ws/assessments", wsHandler.HandleAssessmentsWS)

	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.cfg, r.db, r.cache, r.hub, r.logger)
}
