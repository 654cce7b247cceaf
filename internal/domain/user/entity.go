package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// Ref is the projection used when enumerating the whole team for
// aggregation; it deliberately carries no credential material.
type Ref struct {
	ID       uuid.UUID
	Username string
}
