package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/brazilian-soccer/internal/domain/match"
)

const selectMatchesQuery = `SELECT id, played_at, home_team, away_team, home_goals, away_goals,
       competition, season, round, venue
FROM matches
ORDER BY id`

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// ListMatches returns matches in insertion order.
func (r *MatchRepository) ListMatches(ctx context.Context) ([]match.Match, error) {
	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, selectMatchesQuery); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, match.Match{
			PlayedAt:    row.PlayedAt,
			HomeTeam:    row.HomeTeam,
			AwayTeam:    row.AwayTeam,
			HomeGoals:   row.HomeGoals,
			AwayGoals:   row.AwayGoals,
			Competition: row.Competition,
			Season:      row.Season,
			Round:       row.Round,
			Venue:       row.Venue,
		})
	}
	return out, nil
}

// ReplaceMatches swaps the table contents for matches.
func (r *MatchRepository) ReplaceMatches(ctx context.Context, matches []match.Match) error {
	for i, m := range matches {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("validate match %d: %w", i, err)
		}
	}

	return replaceTable(ctx, r.db, "matches", matchCopyColumns, len(matches), func(i int) []any {
		m := matches[i]
		return []any{
			m.PlayedAt, m.HomeTeam, m.AwayTeam, m.HomeGoals, m.AwayGoals,
			m.Competition, m.Season, m.Round, m.Venue,
		}
	})
}
