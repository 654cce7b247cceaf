package handler

import (
	"strings"

	"skill-pulse/internal/delivery/http/dto"
	"skill-pulse/internal/delivery/http/middleware"
	"skill-pulse/internal/pkg/response"
	"skill-pulse/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type HeatmapHandler struct {
	uc usecase.HeatmapUsecase
}

func NewHeatmapHandler(uc usecase.HeatmapUsecase) *HeatmapHandler {
	return &HeatmapHandler{uc: uc}
}

func (h *HeatmapHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.Get)
}

// Get builds the team heatmap for the requested columns, e.g.
// GET /heatmap?skills=react,node,sql. Column order follows the query
// exactly.
func (h *HeatmapHandler) Get(c fiber.Ctx) error {
	skillKeys := parseSkillKeys(c.Query("skills"))

	hm, err := h.uc.BuildHeatmap(c.Context(), skillKeys)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	res := dto.HeatmapResponse{
		Skills: skillKeys,
		Users:  hm.Users,
		Matrix: hm.Matrix,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func parseSkillKeys(raw string) []string {
	keys := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		keys = append(keys, part)
	}
	return keys
}
