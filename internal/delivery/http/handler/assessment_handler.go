package handler

import (
	"errors"

	"skill-pulse/internal/delivery/http/dto"
	"skill-pulse/internal/delivery/http/middleware"
	"skill-pulse/internal/domain/assessment"
	"skill-pulse/internal/pkg/response"
	"skill-pulse/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AssessmentHandler struct {
	uc usecase.AssessmentUsecase
}

type submitAssessmentRequest struct {
	Skills map[string]float64 `json:"skills"`
}

func NewAssessmentHandler(uc usecase.AssessmentUsecase) *AssessmentHandler {
	return &AssessmentHandler{uc: uc}
}

func (h *AssessmentHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Submit)
	r.Get("/me", h.Me)
}

// Submit stores a new assessment for the authenticated caller. The
// caller identity always comes from the token, never the body.
func (h *AssessmentHandler) Submit(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req submitAssessmentRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Skills JSON required", nil, err)
	}

	created, err := h.uc.Submit(c.Context(), userID, assessment.SkillMap(req.Skills))
	if err != nil {
		return mapAssessmentUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageOK, assessmentResponse(created))
}

func (h *AssessmentHandler) Me(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	latest, err := h.uc.Latest(c.Context(), userID)
	if err != nil {
		return mapAssessmentUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, assessmentResponse(latest))
}

func assessmentResponse(a assessment.Assessment) dto.AssessmentResponse {
	return dto.AssessmentResponse{
		ID:          a.ID,
		UserID:      a.UserID,
		Skills:      a.Skills,
		SubmittedAt: a.SubmittedAt,
	}
}

func mapAssessmentUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Skills JSON required", nil, err)
	case errors.Is(err, usecase.ErrNoAssessment):
		return middleware.NewAppError(fiber.StatusNotFound, "No assessment found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
