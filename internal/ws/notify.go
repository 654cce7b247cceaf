package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type AssessmentSubmittedEvent struct {
	Type        string `json:"type"`
	UserID      string `json:"user_id"`
	SubmittedAt string `json:"submitted_at"`
}

// SubmissionNotifier broadcasts submission events so open dashboards
// can refetch the heatmap.
type SubmissionNotifier struct {
	hub *Hub
}

func NewSubmissionNotifier(hub *Hub) *SubmissionNotifier {
	return &SubmissionNotifier{hub: hub}
}

func (n *SubmissionNotifier) AssessmentSubmitted(userID uuid.UUID, submittedAt time.Time) {
	if n == nil || n.hub == nil {
		return
	}

	evt := AssessmentSubmittedEvent{
		Type:        "assessment_submitted",
		UserID:      userID.String(),
		SubmittedAt: submittedAt.UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	n.hub.Broadcast(b)
}
