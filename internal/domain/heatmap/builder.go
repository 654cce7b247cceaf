// Package heatmap holds the pure aggregation logic over resolved
// latest-assessment snapshots. It performs no I/O; the usecase layer
// feeds it one consistent read pass over the store.
package heatmap

import (
	"time"

	"skill-pulse/internal/domain/assessment"

	"github.com/google/uuid"
)

// Snapshot pairs a user with their latest skill map. Users without any
// assessment never appear here; the usecase skips them before
// aggregating.
type Snapshot struct {
	UserID      uuid.UUID
	Username    string
	Skills      assessment.SkillMap
	SubmittedAt time.Time
}

// Heatmap is a users-by-skills rating matrix. Rows follow the order of
// the snapshots given to Build; columns follow the caller's key order.
type Heatmap struct {
	Users  []string
	Matrix [][]float64
}

// Build materializes the matrix. A skill key absent from a user's map
// becomes cell value 0; with no snapshots the result is an empty user
// list and an empty matrix.
func Build(snaps []Snapshot, skillKeys []string) Heatmap {
	users := make([]string, 0, len(snaps))
	matrix := make([][]float64, 0, len(snaps))

	for _, s := range snaps {
		row := make([]float64, len(skillKeys))
		for i, key := range skillKeys {
			row[i] = s.Skills.Rating(key)
		}
		users = append(users, s.Username)
		matrix = append(matrix, row)
	}

	return Heatmap{Users: users, Matrix: matrix}
}

// Match is one threshold-search hit.
type Match struct {
	UserID      uuid.UUID
	Username    string
	Rating      float64
	Skills      assessment.SkillMap
	SubmittedAt time.Time
}

// Threshold filters snapshots down to users whose rating for skillKey
// is at least minRating, defaulting missing keys to 0. Output keeps
// the input order; callers wanting ranked results sort on their side.
func Threshold(snaps []Snapshot, skillKey string, minRating float64) []Match {
	out := make([]Match, 0, len(snaps))
	for _, s := range snaps {
		rating := s.Skills.Rating(skillKey)
		if rating < minRating {
			continue
		}
		out = append(out, Match{
			UserID:      s.UserID,
			Username:    s.Username,
			Rating:      rating,
			Skills:      s.Skills,
			SubmittedAt: s.SubmittedAt,
		})
	}
	return out
}
