package seeder

import (
	"context"
	"time"

	"skill-pulse/internal/database"
	"skill-pulse/internal/domain/assessment"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const demoPassword = "Password123!"

// DemoUsers seeds a small team with one assessment each so the
// heatmap renders something on a fresh install. It is a no-op unless
// the users table is empty.
type DemoUsers struct{}

func (DemoUsers) Name() string { return "demo_users" }

func (DemoUsers) Run(ctx context.Context, db database.DB) error {
	var count int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	demo := []struct {
		username string
		skills   assessment.SkillMap
	}{
		{"manager", assessment.SkillMap{"react": 4, "node": 5, "sql": 3, "azure": 4}},
		{"alice", assessment.SkillMap{"react": 3, "node": 3, "sql": 4, "azure": 2}},
		{"bob", assessment.SkillMap{"react": 5, "node": 2, "sql": 2, "azure": 3}},
	}

	now := time.Now().UTC()
	for _, d := range demo {
		userID := uuid.New()
		if _, err := db.Exec(ctx,
			`INSERT INTO users (id, username, password_hash) VALUES ($1, $2, $3)`,
			userID, d.username, string(hash),
		); err != nil {
			return err
		}

		blob, err := d.skills.Encode()
		if err != nil {
			return err
		}
		if _, err := db.Exec(ctx,
			`INSERT INTO assessments (id, user_id, submitted_at, skills) VALUES ($1, $2, $3, $4)`,
			uuid.New(), userID, now, blob,
		); err != nil {
			return err
		}
	}

	return nil
}
