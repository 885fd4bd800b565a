package postgres

import (
	"context"
	"strings"

	"go-internmatch-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CatalogSuggester suggests skills by matching free text against the global
// skill catalog. It stands in for an external suggestion service and shares
// its degrade-to-empty contract.
type CatalogSuggester struct {
	db *pgxpool.Pool
}

func NewCatalogSuggester(db *pgxpool.Pool) domain.SkillSuggester {
	return &CatalogSuggester{db: db}
}

func (s *CatalogSuggester) Suggest(ctx context.Context, text string) ([]domain.SkillSuggestion, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []domain.SkillSuggestion{}, nil
	}

	rows, err := s.db.Query(ctx, `
		SELECT name FROM skills
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY (lower(name) = lower($1)) DESC, length(name), name
		LIMIT 10`, text)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	suggestions := []domain.SkillSuggestion{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		suggestions = append(suggestions, domain.SkillSuggestion{Name: name})
	}
	return suggestions, rows.Err()
}
