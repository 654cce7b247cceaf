package dto

import (
	"time"

	"github.com/google/uuid"
)

type SearchResultItem struct {
	UserID      uuid.UUID          `json:"user_id"`
	Username    string             `json:"username"`
	Rating      float64            `json:"rating"`
	Skills      map[string]float64 `json:"skills"`
	SubmittedAt time.Time          `json:"submitted_at"`
}

type SearchResponse struct {
	Skill   string             `json:"skill"`
	Min     float64            `json:"min"`
	Results []SearchResultItem `json:"results"`
}
