package postgres

import (
	"context"
	"fmt"

	"go-internmatch-backend/internal/domain"
	"go-internmatch-backend/pkg/apperror"

	"github.com/jackc/pgx/v5/pgxpool"
)

type skillRepo struct {
	db *pgxpool.Pool
}

func NewSkillRepository(db *pgxpool.Pool) domain.SkillRepository {
	return &skillRepo{db: db}
}

// ReplaceForCandidate rebuilds the candidate's rated set inside one
// transaction: delete everything, then find-or-create each catalog row and
// relink. The catalog upsert is a single atomic statement so two requests
// creating the same skill name concurrently converge on one row instead of
// racing a check-then-insert.
func (r *skillRepo) ReplaceForCandidate(ctx context.Context, profileID int64, skills []domain.RatedSkillInput) ([]domain.RatedSkill, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM user_skills WHERE candidate_profile_id = $1`, profileID); err != nil {
		return nil, apperror.Internal(fmt.Errorf("failed to clear skills: %w", err))
	}

	// Case-insensitive dedup: the lower(name) unique index is the conflict
	// target, and the no-op DO UPDATE makes RETURNING yield the existing id
	// with its first-seen casing.
	upsert := `
		INSERT INTO skills (name) VALUES ($1)
		ON CONFLICT ((lower(name))) DO UPDATE SET name = skills.name
		RETURNING id`
	link := `
		INSERT INTO user_skills (candidate_profile_id, skill_id, rating)
		VALUES ($1, $2, $3)
		ON CONFLICT (candidate_profile_id, skill_id) DO UPDATE SET rating = EXCLUDED.rating`

	for _, in := range skills {
		var skillID int64
		if err := tx.QueryRow(ctx, upsert, in.Name).Scan(&skillID); err != nil {
			return nil, apperror.Internal(fmt.Errorf("failed to upsert skill %q: %w", in.Name, err))
		}
		if _, err := tx.Exec(ctx, link, profileID, skillID, in.Rating); err != nil {
			return nil, apperror.Internal(fmt.Errorf("failed to link skill %q: %w", in.Name, err))
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.Internal(err)
	}

	return r.ListForCandidate(ctx, profileID)
}

func (r *skillRepo) ListForCandidate(ctx context.Context, profileID int64) ([]domain.RatedSkill, error) {
	query := `
		SELECT s.id, s.name, us.rating
		FROM user_skills us
		JOIN skills s ON s.id = us.skill_id
		WHERE us.candidate_profile_id = $1
		ORDER BY us.rating DESC, s.name`
	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	skills := []domain.RatedSkill{}
	for rows.Next() {
		var s domain.RatedSkill
		if err := rows.Scan(&s.SkillID, &s.Name, &s.Rating); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}
