package assessment

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SkillMap is one submission's full skill-name to rating snapshot. Keys
// are caller-supplied and carry no fixed taxonomy; ratings are not
// range-checked by the server.
type SkillMap map[string]float64

// Rating returns the rating for key, or 0 when the key was never
// rated. Aggregations rely on this default.
func (m SkillMap) Rating(key string) float64 {
	if m == nil {
		return 0
	}
	return m[key]
}

// Encode renders the map as canonical JSON for storage. encoding/json
// emits map keys in sorted order, so equal maps always produce equal
// blobs.
func (m SkillMap) Encode() (string, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func DecodeSkillMap(blob string) (SkillMap, error) {
	var m SkillMap
	if err := json.Unmarshal([]byte(blob), &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = SkillMap{}
	}
	return m, nil
}

// Assessment is immutable once created; revising a rating means
// submitting a new one.
type Assessment struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Skills      SkillMap
	SubmittedAt time.Time
}
