package usecase

import (
	"context"
	"log"
	"time"

	"skill-pulse/internal/domain/assessment"
	"skill-pulse/internal/domain/heatmap"
	"skill-pulse/internal/domain/user"
)

const aggregateCacheTTL = 60 * time.Second

type HeatmapUsecase interface {
	BuildHeatmap(ctx context.Context, skillKeys []string) (heatmap.Heatmap, error)
}

type HeatmapBuilder struct {
	users       user.Repository
	assessments assessment.Repository
	cache       AggregateCache
	logger      *log.Logger
}

func NewHeatmapUsecase(users user.Repository, assessments assessment.Repository, cache AggregateCache, logger *log.Logger) *HeatmapBuilder {
	return &HeatmapBuilder{users: users, assessments: assessments, cache: cache, logger: logger}
}

func (u *HeatmapBuilder) BuildHeatmap(ctx context.Context, skillKeys []string) (heatmap.Heatmap, error) {
	if skillKeys == nil {
		skillKeys = []string{}
	}

	key := HeatmapCacheKey(skillKeys)
	if u.cache != nil {
		var cached heatmap.Heatmap
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err == nil && hit {
			return cached, nil
		}
	}

	snaps, err := resolveTeamSnapshots(ctx, u.users, u.assessments)
	if err != nil {
		return heatmap.Heatmap{}, err
	}

	hm := heatmap.Build(snaps, skillKeys)

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, hm, aggregateCacheTTL); err != nil && u.logger != nil {
			u.logger.Printf("heatmap cache set failed | key=%s err=%v", key, err)
		}
	}

	return hm, nil
}
