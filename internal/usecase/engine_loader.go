package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/brazilian-soccer/internal/domain/match"
	"github.com/riskibarqy/brazilian-soccer/internal/domain/player"
	"github.com/riskibarqy/brazilian-soccer/internal/platform/logging"
	"github.com/riskibarqy/brazilian-soccer/internal/queryengine"
)

// LoadEngine reads both sources once and indexes them. players may be nil
// for a match-only engine.
func LoadEngine(ctx context.Context, matches match.Source, players player.Source, logger *logging.Logger, opts ...queryengine.Option) (*queryengine.Engine, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LoadEngine")
	defer span.End()

	if logger == nil {
		logger = logging.Default()
	}
	if matches == nil {
		return nil, fmt.Errorf("%w: match source is not configured", ErrDependencyUnavailable)
	}

	start := time.Now()
	matchRows, err := matches.ListMatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list matches: %w", ErrDependencyUnavailable, err)
	}

	var playerRows []player.Player
	if players != nil {
		playerRows, err = players.ListPlayers(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: list players: %w", ErrDependencyUnavailable, err)
		}
	}

	engine := queryengine.New(matchRows, playerRows, opts...)
	logger.InfoContext(ctx, "query engine ready",
		"matches", engine.MatchCount(),
		"players", engine.PlayerCount(),
		"teams", len(engine.Teams()),
		"duration", time.Since(start),
	)
	return engine, nil
}
