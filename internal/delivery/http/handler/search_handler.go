package handler

import (
	"strconv"
	"strings"

	"skill-pulse/internal/delivery/http/dto"
	"skill-pulse/internal/delivery/http/middleware"
	"skill-pulse/internal/pkg/response"
	"skill-pulse/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const (
	defaultSearchSkill = "react"
	defaultSearchMin   = 3
)

type SearchHandler struct {
	uc usecase.SearchUsecase
}

func NewSearchHandler(uc usecase.SearchUsecase) *SearchHandler {
	return &SearchHandler{uc: uc}
}

func (h *SearchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.Search)
}

// Search handles GET /search?skill=react&min=3. Results keep user
// enumeration order; ranking is the client's job.
func (h *SearchHandler) Search(c fiber.Ctx) error {
	skill := strings.TrimSpace(c.Query("skill"))
	if skill == "" {
		skill = defaultSearchSkill
	}

	min := float64(defaultSearchMin)
	if raw := strings.TrimSpace(c.Query("min")); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid min rating", nil, err)
		}
		min = parsed
	}

	matches, err := h.uc.Search(c.Context(), skill, min)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	results := make([]dto.SearchResultItem, 0, len(matches))
	for _, m := range matches {
		results = append(results, dto.SearchResultItem{
			UserID:      m.UserID,
			Username:    m.Username,
			Rating:      m.Rating,
			Skills:      m.Skills,
			SubmittedAt: m.SubmittedAt,
		})
	}

	res := dto.SearchResponse{
		Skill:   skill,
		Min:     min,
		Results: results,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
