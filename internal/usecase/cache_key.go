package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"
)

// Cached aggregates live under these prefixes; a submission wipes both
// pattern spaces.
const (
	heatmapKeyPrefix = "heatmap:"
	searchKeyPrefix  = "search:"
)

// HeatmapCacheKey is stable for a given ordered key list: the column
// order is part of the result, so it is part of the key. Keys are
// hashed exactly as given. Ratings resolve by exact map lookup, so
// "React" and "react" are different columns and must never share a
// cache entry.
func HeatmapCacheKey(skillKeys []string) string {
	b, _ := json.Marshal(skillKeys)
	sum := sha256.Sum256(b)
	return heatmapKeyPrefix + hex.EncodeToString(sum[:])
}

func SearchCacheKey(skillKey string, minRating float64) string {
	b, _ := json.Marshal(skillKey)
	in := string(b) + ":" + strconv.FormatFloat(minRating, 'g', -1, 64)
	sum := sha256.Sum256([]byte(in))
	return searchKeyPrefix + hex.EncodeToString(sum[:])
}
