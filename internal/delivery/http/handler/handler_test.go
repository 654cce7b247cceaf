package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"skill-pulse/internal/delivery/http/middleware"
	"skill-pulse/internal/domain/assessment"
	"skill-pulse/internal/domain/heatmap"
	"skill-pulse/internal/pkg/response"
	"skill-pulse/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type stubHeatmapUsecase struct {
	hm  heatmap.Heatmap
	err error
}

func (s stubHeatmapUsecase) BuildHeatmap(context.Context, []string) (heatmap.Heatmap, error) {
	return s.hm, s.err
}

type stubSearchUsecase struct {
	matches []heatmap.Match
	err     error
}

func (s stubSearchUsecase) Search(context.Context, string, float64) ([]heatmap.Match, error) {
	return s.matches, s.err
}

type stubAssessmentUsecase struct {
	submitted assessment.Assessment
	latest    assessment.Assessment
	submitErr error
	latestErr error

	gotSkills assessment.SkillMap
}

func (s *stubAssessmentUsecase) Submit(_ context.Context, callerID uuid.UUID, skills assessment.SkillMap) (assessment.Assessment, error) {
	s.gotSkills = skills
	if s.submitErr != nil {
		return assessment.Assessment{}, s.submitErr
	}
	a := s.submitted
	a.UserID = callerID
	return a, nil
}

func (s *stubAssessmentUsecase) Latest(context.Context, uuid.UUID) (assessment.Assessment, error) {
	return s.latest, s.latestErr
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// newTestApp mirrors the production middleware chain, replacing the
// JWT middleware with one that injects a fixed caller identity.
func newTestApp(callerID uuid.UUID, register func(r fiber.Router)) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware().Middleware())
	app.Use(func(c fiber.Ctx) error {
		c.Locals(middleware.CtxUserIDKey, callerID)
		return c.Next()
	})
	register(app)
	return app
}

func decodeEnvelope(t *testing.T, body io.Reader) envelope {
	t.Helper()
	var env envelope
	if err := json.NewDecoder(body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return env
}

func TestHeatmapHandler_Get(t *testing.T) {
	uc := stubHeatmapUsecase{hm: heatmap.Heatmap{
		Users:  []string{"alice"},
		Matrix: [][]float64{{4, 0}},
	}}
	app := newTestApp(uuid.New(), func(r fiber.Router) {
		NewHeatmapHandler(uc).RegisterRoutes(r.Group("/heatmap"))
	})

	req := httptest.NewRequest("GET", "/heatmap/?skills=react,%20sql,", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	env := decodeEnvelope(t, resp.Body)
	var data struct {
		Skills []string    `json:"skills"`
		Users  []string    `json:"users"`
		Matrix [][]float64 `json:"matrix"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(data.Skills) != 2 || data.Skills[0] != "react" || data.Skills[1] != "sql" {
		t.Fatalf("unexpected parsed skills: %v", data.Skills)
	}
	if len(data.Matrix) != 1 || data.Matrix[0][0] != 4 {
		t.Fatalf("unexpected matrix: %v", data.Matrix)
	}
}

func TestHeatmapHandler_StoreUnavailable(t *testing.T) {
	uc := stubHeatmapUsecase{err: usecase.ErrStoreUnavailable}
	app := newTestApp(uuid.New(), func(r fiber.Router) {
		NewHeatmapHandler(uc).RegisterRoutes(r.Group("/heatmap"))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/heatmap/", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}

	env := decodeEnvelope(t, resp.Body)
	if env.Message != response.MessageInternalServerError {
		t.Fatalf("internal cause leaked: %q", env.Message)
	}
}

func TestSearchHandler_Defaults(t *testing.T) {
	uc := stubSearchUsecase{matches: []heatmap.Match{}}
	app := newTestApp(uuid.New(), func(r fiber.Router) {
		NewSearchHandler(uc).RegisterRoutes(r.Group("/search"))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/search/", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	env := decodeEnvelope(t, resp.Body)
	var data struct {
		Skill   string        `json:"skill"`
		Min     float64       `json:"min"`
		Results []interface{} `json:"results"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.Skill != "react" || data.Min != 3 {
		t.Fatalf("unexpected defaults: skill=%q min=%v", data.Skill, data.Min)
	}
	if data.Results == nil {
		t.Fatalf("expected empty results array, got null")
	}
}

func TestSearchHandler_InvalidMin(t *testing.T) {
	app := newTestApp(uuid.New(), func(r fiber.Router) {
		NewSearchHandler(stubSearchUsecase{}).RegisterRoutes(r.Group("/search"))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/search/?min=abc", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestAssessmentHandler_Submit(t *testing.T) {
	callerID := uuid.New()
	uc := &stubAssessmentUsecase{submitted: assessment.Assessment{
		ID:          uuid.New(),
		Skills:      assessment.SkillMap{"react": 4},
		SubmittedAt: time.Now().UTC(),
	}}
	app := newTestApp(callerID, func(r fiber.Router) {
		NewAssessmentHandler(uc).RegisterRoutes(r.Group("/assessments"))
	})

	req := httptest.NewRequest("POST", "/assessments/", strings.NewReader(`{"skills":{"react":4}}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if uc.gotSkills.Rating("react") != 4 {
		t.Fatalf("skills not passed through: %v", uc.gotSkills)
	}
}

func TestAssessmentHandler_SubmitMissingSkills(t *testing.T) {
	uc := &stubAssessmentUsecase{submitErr: usecase.ErrInvalidInput}
	app := newTestApp(uuid.New(), func(r fiber.Router) {
		NewAssessmentHandler(uc).RegisterRoutes(r.Group("/assessments"))
	})

	req := httptest.NewRequest("POST", "/assessments/", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestAssessmentHandler_MeNotFound(t *testing.T) {
	uc := &stubAssessmentUsecase{latestErr: usecase.ErrNoAssessment}
	app := newTestApp(uuid.New(), func(r fiber.Router) {
		NewAssessmentHandler(uc).RegisterRoutes(r.Group("/assessments"))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/assessments/me", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
