package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/brazilian-soccer/internal/domain/player"
)

const selectPlayersQuery = `SELECT id, source_id, name, nationality, club, rating, position, attributes
FROM players
ORDER BY id`

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) ListPlayers(ctx context.Context) ([]player.Player, error) {
	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, selectPlayersQuery); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		attrs, err := decodeAttributes(row.Attributes)
		if err != nil {
			return nil, fmt.Errorf("player %d: %w", row.ID, err)
		}
		out = append(out, player.Player{
			ID:          row.SourceID,
			Name:        row.Name,
			Nationality: row.Nationality,
			Club:        row.Club.String,
			Rating:      intPtr(row.Rating),
			Position:    row.Position,
			Attributes:  attrs,
		})
	}
	return out, nil
}

func (r *PlayerRepository) ReplacePlayers(ctx context.Context, players []player.Player) error {
	encoded := make([]string, len(players))
	for i, p := range players {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("validate player %d: %w", i, err)
		}
		attrs, err := encodeAttributes(p.Attributes)
		if err != nil {
			return fmt.Errorf("player %d: %w", i, err)
		}
		encoded[i] = attrs
	}

	return replaceTable(ctx, r.db, "players", playerCopyColumns, len(players), func(i int) []any {
		p := players[i]
		return []any{
			p.ID, p.Name, p.Nationality, nullString(p.Club), nullInt(p.Rating), p.Position, encoded[i],
		}
	})
}
