package player

import "context"

// Source yields the full player collection in load order.
type Source interface {
	ListPlayers(ctx context.Context) ([]Player, error)
}

// Writer replaces the persisted player collection.
type Writer interface {
	ReplacePlayers(ctx context.Context, items []Player) error
}
