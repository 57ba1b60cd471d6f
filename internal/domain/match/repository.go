package match

import "context"

// Source yields the full match collection in load order.
type Source interface {
	ListMatches(ctx context.Context) ([]Match, error)
}

// Writer replaces the persisted match collection.
type Writer interface {
	ReplaceMatches(ctx context.Context, items []Match) error
}
