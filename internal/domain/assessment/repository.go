package assessment

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNoAssessment marks a user with zero submissions. Callers surface
// it as "no data yet", not as a failure.
var ErrNoAssessment = errors.New("no assessment found")

type Repository interface {
	Create(ctx context.Context, a Assessment) error

	// LatestByUser resolves the submission with the maximum
	// submitted_at for the user, ties broken by id, or
	// ErrNoAssessment when the user has never submitted.
	LatestByUser(ctx context.Context, userID uuid.UUID) (Assessment, error)
}
