package routes

import (
	"log"

	"skill-pulse/internal/config"
	"skill-pulse/internal/database"
	"skill-pulse/internal/delivery/http/handler"
	"skill-pulse/internal/delivery/http/middleware"
	"skill-pulse/internal/infrastructure/cache"
	"skill-pulse/internal/pkg/jwt"
	"skill-pulse/internal/repository"
	"skill-pulse/internal/usecase"
	"skill-pulse/internal/ws"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, cfg config.Config, db database.DB, redis *cache.Redis, hub *ws.Hub, logger *log.Logger) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(db)
	assessmentRepo := repository.NewPostgresAssessmentRepository(db)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	assessmentUC := usecase.NewAssessmentUsecase(assessmentRepo, redis, ws.NewSubmissionNotifier(hub))
	heatmapUC := usecase.NewHeatmapUsecase(userRepo, assessmentRepo, redis, logger)
	searchUC := usecase.NewSearchUsecase(userRepo, assessmentRepo, redis, logger)

	authHandler := handler.NewAuthHandler(authUC)
	assessmentHandler := handler.NewAssessmentHandler(assessmentUC)
	heatmapHandler := handler.NewHeatmapHandler(heatmapUC)
	searchHandler := handler.NewSearchHandler(searchUC)

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	protected := r.Group("", authMw.Middleware())

	authHandler.RegisterProtectedRoutes(protected.Group("/auth"))
	assessmentHandler.RegisterRoutes(protected.Group("/assessments"))
	heatmapHandler.RegisterRoutes(protected.Group("/heatmap"))
	searchHandler.RegisterRoutes(protected.Group("/search"))
}
