// Package queryengine answers analytical queries over an immutable set of
// match and player records. An Engine is safe for concurrent readers.
package queryengine

import (
	"slices"

	"github.com/riskibarqy/brazilian-soccer/internal/domain/match"
	"github.com/riskibarqy/brazilian-soccer/internal/domain/player"
	"github.com/riskibarqy/brazilian-soccer/internal/domain/teamname"
)

// Engine is the query surface over the record store.
type Engine struct {
	store      *store
	resolver   *Resolver
	normalizer *teamname.Normalizer
	cutoff     float64
}

type Option func(*Engine)

// WithSimilarityCutoff sets the minimum ratio for fuzzy team resolution.
func WithSimilarityCutoff(cutoff float64) Option {
	return func(e *Engine) {
		if cutoff > 0 && cutoff <= 1 {
			e.cutoff = cutoff
		}
	}
}

// WithNormalizer sets the normalizer applied to caller-supplied team names.
func WithNormalizer(n *teamname.Normalizer) Option {
	return func(e *Engine) {
		if n != nil {
			e.normalizer = n
		}
	}
}

// New indexes matches and players once. Team names in the records must
// already be canonical.
func New(matches []match.Match, players []player.Player, opts ...Option) *Engine {
	e := &Engine{cutoff: DefaultSimilarityCutoff}
	for _, opt := range opts {
		opt(e)
	}
	if e.normalizer == nil {
		e.normalizer = teamname.NewNormalizer(nil)
	}

	e.store = newStore(matches, players)
	e.resolver = NewResolver(e.store.teamNames, e.cutoff)
	return e
}

// ResolveTeam maps a caller-supplied name to a known team. The query is
// normalized first; an exact known name wins before fuzzy matching runs.
func (e *Engine) ResolveTeam(query string) (string, bool) {
	if e.store.isTeam(query) {
		return query, true
	}
	normalized := e.normalizer.Normalize(query)
	if normalized == "" {
		return "", false
	}
	if e.store.isTeam(normalized) {
		return normalized, true
	}
	return e.resolver.Resolve(normalized)
}

func (e *Engine) Normalizer() *teamname.Normalizer {
	return e.normalizer
}

// Teams returns every known team name, sorted.
func (e *Engine) Teams() []string {
	return slices.Clone(e.store.teamNames)
}

// Seasons returns every season present in the matches, ascending.
func (e *Engine) Seasons() []int {
	return slices.Clone(e.store.seasons)
}

// Competitions summarizes each competition in first-seen order.
func (e *Engine) Competitions() []match.Competition {
	out := make([]match.Competition, 0, len(e.store.competitions))
	for _, name := range e.store.competitions {
		bucket := e.store.byCompetition[name]
		seen := make(map[int]struct{})
		seasons := make([]int, 0)
		for _, m := range bucket {
			if _, ok := seen[m.Season]; ok {
				continue
			}
			seen[m.Season] = struct{}{}
			seasons = append(seasons, m.Season)
		}
		slices.Sort(seasons)
		out = append(out, match.Competition{
			Name:    name,
			Format:  match.FormatOf(name),
			Seasons: seasons,
			Matches: len(bucket),
		})
	}
	return out
}

func (e *Engine) MatchCount() int {
	return len(e.store.matches)
}

func (e *Engine) PlayerCount() int {
	return len(e.store.players)
}

// clampLimit treats non-positive limits as an empty result.
func clampLimit(limit, size int) int {
	if limit <= 0 {
		return 0
	}
	if limit > size {
		return size
	}
	return limit
}
