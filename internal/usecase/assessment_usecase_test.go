package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"skill-pulse/internal/domain/assessment"

	"github.com/google/uuid"
)

func TestAssessmentSubmit_NilSkillMapRejected(t *testing.T) {
	uc := NewAssessmentUsecase(&mockAssessmentRepo{}, nil, nil)

	_, err := uc.Submit(context.Background(), uuid.New(), nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAssessmentSubmit_EmptySkillMapAllowed(t *testing.T) {
	repo := &mockAssessmentRepo{}
	uc := NewAssessmentUsecase(repo, nil, nil)

	a, err := uc.Submit(context.Background(), uuid.New(), assessment.SkillMap{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected 1 created assessment, got %d", len(repo.created))
	}
	if a.Skills == nil || len(a.Skills) != 0 {
		t.Fatalf("expected empty skill map stored verbatim, got %#v", a.Skills)
	}
}

func TestAssessmentSubmit_EmptySkillNameRejected(t *testing.T) {
	uc := NewAssessmentUsecase(&mockAssessmentRepo{}, nil, nil)

	_, err := uc.Submit(context.Background(), uuid.New(), assessment.SkillMap{"": 3})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAssessmentSubmit_InvalidatesCacheAndNotifies(t *testing.T) {
	repo := &mockAssessmentRepo{}
	inv := &recordingInvalidator{}
	not := &recordingNotifier{}
	uc := NewAssessmentUsecase(repo, inv, not)

	callerID := uuid.New()
	a, err := uc.Submit(context.Background(), callerID, assessment.SkillMap{"react": 4})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if a.UserID != callerID {
		t.Fatalf("assessment not owned by caller")
	}
	if inv.calls != 1 {
		t.Fatalf("expected 1 invalidation, got %d", inv.calls)
	}
	if len(not.userIDs) != 1 || not.userIDs[0] != callerID {
		t.Fatalf("expected notification for caller, got %v", not.userIDs)
	}
}

func TestAssessmentSubmit_StoreFailure(t *testing.T) {
	repo := &mockAssessmentRepo{createErr: errors.New("connection refused")}
	inv := &recordingInvalidator{}
	uc := NewAssessmentUsecase(repo, inv, nil)

	_, err := uc.Submit(context.Background(), uuid.New(), assessment.SkillMap{"react": 4})
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
	if inv.calls != 0 {
		t.Fatalf("cache must not be invalidated on failed write")
	}
}

func TestAssessmentLatest_NoneIsNotAnError(t *testing.T) {
	uc := NewAssessmentUsecase(&mockAssessmentRepo{}, nil, nil)

	_, err := uc.Latest(context.Background(), uuid.New())
	if !errors.Is(err, ErrNoAssessment) {
		t.Fatalf("expected ErrNoAssessment, got %v", err)
	}
}

func TestAssessmentLatest_ReturnsStoredSnapshot(t *testing.T) {
	userID := uuid.New()
	stored := assessment.Assessment{
		ID:          uuid.New(),
		UserID:      userID,
		Skills:      assessment.SkillMap{"react": 2},
		SubmittedAt: time.Now().UTC(),
	}
	uc := NewAssessmentUsecase(&mockAssessmentRepo{
		latest: map[uuid.UUID]assessment.Assessment{userID: stored},
	}, nil, nil)

	got, err := uc.Latest(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.ID != stored.ID {
		t.Fatalf("unexpected assessment: %+v", got)
	}
	// Earlier ratings must not be merged forward: the snapshot is
	// returned exactly as stored.
	if len(got.Skills) != 1 || got.Skills["react"] != 2 {
		t.Fatalf("unexpected skills: %v", got.Skills)
	}
}
