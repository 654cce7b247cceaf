package usecase

import (
	"context"
	"errors"

	"skill-pulse/internal/domain/assessment"
	"skill-pulse/internal/domain/heatmap"
	"skill-pulse/internal/domain/user"
)

// ErrStoreUnavailable aborts a whole aggregation when any single user
// lookup fails; a partial heatmap or search result would be
// indistinguishable from a complete one.
var ErrStoreUnavailable = errors.New("store unavailable")

// resolveTeamSnapshots is the one read pass shared by the heatmap and
// threshold-search fan-outs: enumerate every user, resolve their
// latest assessment, and drop users who have never submitted.
func resolveTeamSnapshots(ctx context.Context, users user.Repository, assessments assessment.Repository) ([]heatmap.Snapshot, error) {
	refs, err := users.List(ctx)
	if err != nil {
		return nil, ErrStoreUnavailable
	}

	snaps := make([]heatmap.Snapshot, 0, len(refs))
	for _, ref := range refs {
		a, err := assessments.LatestByUser(ctx, ref.ID)
		if err != nil {
			if errors.Is(err, assessment.ErrNoAssessment) {
				continue
			}
			return nil, ErrStoreUnavailable
		}
		snaps = append(snaps, heatmap.Snapshot{
			UserID:      ref.ID,
			Username:    ref.Username,
			Skills:      a.Skills,
			SubmittedAt: a.SubmittedAt,
		})
	}
	return snaps, nil
}
