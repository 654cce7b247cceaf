package repository

import (
	"context"
	"database/sql"
	"errors"

	"skill-pulse/internal/database"
	"skill-pulse/internal/domain/assessment"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresAssessmentRepository struct {
	db database.DB
}

func NewPostgresAssessmentRepository(db database.DB) *PostgresAssessmentRepository {
	return &PostgresAssessmentRepository{db: db}
}

func (r *PostgresAssessmentRepository) Create(ctx context.Context, a assessment.Assessment) error {
	blob, err := a.Skills.Encode()
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO assessments (id, user_id, submitted_at, skills)
		 VALUES ($1, $2, $3, $4)`,
		a.ID, a.UserID, a.SubmittedAt, blob,
	)
	return err
}

// LatestByUser relies on the (user_id, submitted_at DESC) index; the
// id tiebreak makes concurrent equal-timestamp submissions resolve
// deterministically.
func (r *PostgresAssessmentRepository) LatestByUser(ctx context.Context, userID uuid.UUID) (assessment.Assessment, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, submitted_at, skills
		 FROM assessments
		 WHERE user_id = $1
		 ORDER BY submitted_at DESC, id DESC
		 LIMIT 1`,
		userID,
	)

	var a assessment.Assessment
	var blob string
	if err := row.Scan(&a.ID, &a.UserID, &a.SubmittedAt, &blob); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return assessment.Assessment{}, assessment.ErrNoAssessment
		}
		return assessment.Assessment{}, err
	}

	skills, err := assessment.DecodeSkillMap(blob)
	if err != nil {
		return assessment.Assessment{}, err
	}
	a.Skills = skills
	return a, nil
}
