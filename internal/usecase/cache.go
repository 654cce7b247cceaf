package usecase

import (
	"context"
	"time"
)

// AggregateCache is the read-through cache in front of the heatmap and
// threshold-search fan-outs. Implementations must treat an unavailable
// backend as a miss, never as a failure.
type AggregateCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}
