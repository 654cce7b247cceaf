package usecase

import (
	"context"
	"errors"
	"time"

	"skill-pulse/internal/domain/assessment"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNoAssessment = errors.New("no assessment found")
)

type AssessmentUsecase interface {
	// Submit persists a new immutable assessment for the caller. An
	// empty skill map is a valid submission; a nil one is not.
	Submit(ctx context.Context, callerID uuid.UUID, skills assessment.SkillMap) (assessment.Assessment, error)

	// Latest resolves the caller's current snapshot, ErrNoAssessment
	// when they have never submitted.
	Latest(ctx context.Context, userID uuid.UUID) (assessment.Assessment, error)
}

// Invalidator drops cached aggregation results after a write. The
// Redis adapter implements it; a nil-safe no-op stands in when caching
// is disabled.
type Invalidator interface {
	InvalidateAggregates(ctx context.Context)
}

// Notifier pushes a submission event to connected dashboard clients.
type Notifier interface {
	AssessmentSubmitted(userID uuid.UUID, submittedAt time.Time)
}

type Assessments struct {
	repo        assessment.Repository
	invalidator Invalidator
	notifier    Notifier

	now func() time.Time
}

func NewAssessmentUsecase(repo assessment.Repository, invalidator Invalidator, notifier Notifier) *Assessments {
	return &Assessments{repo: repo, invalidator: invalidator, notifier: notifier, now: time.Now}
}

func (u *Assessments) Submit(ctx context.Context, callerID uuid.UUID, skills assessment.SkillMap) (assessment.Assessment, error) {
	if callerID == uuid.Nil {
		return assessment.Assessment{}, ErrInvalidInput
	}
	if skills == nil {
		return assessment.Assessment{}, ErrInvalidInput
	}
	for key := range skills {
		if key == "" {
			return assessment.Assessment{}, ErrInvalidInput
		}
	}

	a := assessment.Assessment{
		ID:          uuid.New(),
		UserID:      callerID,
		Skills:      skills,
		SubmittedAt: u.now().UTC(),
	}

	if err := u.repo.Create(ctx, a); err != nil {
		return assessment.Assessment{}, ErrInternal
	}

	if u.invalidator != nil {
		u.invalidator.InvalidateAggregates(ctx)
	}
	if u.notifier != nil {
		u.notifier.AssessmentSubmitted(a.UserID, a.SubmittedAt)
	}

	return a, nil
}

func (u *Assessments) Latest(ctx context.Context, userID uuid.UUID) (assessment.Assessment, error) {
	if userID == uuid.Nil {
		return assessment.Assessment{}, ErrInvalidInput
	}

	a, err := u.repo.LatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, assessment.ErrNoAssessment) {
			return assessment.Assessment{}, ErrNoAssessment
		}
		return assessment.Assessment{}, ErrInternal
	}
	return a, nil
}
