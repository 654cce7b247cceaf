package usecase

import (
	"context"
	"log"

	"skill-pulse/internal/domain/assessment"
	"skill-pulse/internal/domain/heatmap"
	"skill-pulse/internal/domain/user"
)

type SearchUsecase interface {
	// Search returns every user whose latest rating for skillKey meets
	// minRating, in user enumeration order. An empty skillKey is legal
	// and rates everyone 0.
	Search(ctx context.Context, skillKey string, minRating float64) ([]heatmap.Match, error)
}

type ThresholdSearch struct {
	users       user.Repository
	assessments assessment.Repository
	cache       AggregateCache
	logger      *log.Logger
}

func NewSearchUsecase(users user.Repository, assessments assessment.Repository, cache AggregateCache, logger *log.Logger) *ThresholdSearch {
	return &ThresholdSearch{users: users, assessments: assessments, cache: cache, logger: logger}
}

func (u *ThresholdSearch) Search(ctx context.Context, skillKey string, minRating float64) ([]heatmap.Match, error) {
	key := SearchCacheKey(skillKey, minRating)
	if u.cache != nil {
		var cached []heatmap.Match
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err == nil && hit {
			return cached, nil
		}
	}

	snaps, err := resolveTeamSnapshots(ctx, u.users, u.assessments)
	if err != nil {
		return nil, err
	}

	matches := heatmap.Threshold(snaps, skillKey, minRating)

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, matches, aggregateCacheTTL); err != nil && u.logger != nil {
			u.logger.Printf("search cache set failed | key=%s err=%v", key, err)
		}
	}

	return matches, nil
}
