package dto

import (
	"time"

	"github.com/google/uuid"
)

type AssessmentResponse struct {
	ID          uuid.UUID          `json:"id"`
	UserID      uuid.UUID          `json:"user_id"`
	Skills      map[string]float64 `json:"skills"`
	SubmittedAt time.Time          `json:"submitted_at"`
}
