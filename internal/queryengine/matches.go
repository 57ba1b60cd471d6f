package queryengine

import (
	"cmp"
	"slices"
	"time"

	"github.com/riskibarqy/brazilian-soccer/internal/domain/match"
)

// Side restricts team match lookups to one side of the fixture.
type Side int

const (
	SideAny Side = iota
	SideHome
	SideAway
)

// MatchesBetween returns every meeting of the two teams, oldest first.
// A team paired with itself has no meetings.
func (e *Engine) MatchesBetween(team1, team2 string) []match.Match {
	t1, ok1 := e.ResolveTeam(team1)
	t2, ok2 := e.ResolveTeam(team2)
	if !ok1 || !ok2 || t1 == t2 {
		return []match.Match{}
	}
	return e.between(t1, t2)
}

func (e *Engine) between(t1, t2 string) []match.Match {
	out := make([]match.Match, 0)
	for _, m := range e.store.byTeam[t1] {
		if (m.HomeTeam == t1 && m.AwayTeam == t2) || (m.HomeTeam == t2 && m.AwayTeam == t1) {
			out = append(out, m)
		}
	}
	return sortedByDate(out)
}

// MatchesByTeam returns a team's matches, oldest first, optionally restricted
// to one side.
func (e *Engine) MatchesByTeam(team string, side Side) []match.Match {
	name, ok := e.ResolveTeam(team)
	if !ok {
		return []match.Match{}
	}
	return e.teamMatches(name, side, 0)
}

func (e *Engine) teamMatches(name string, side Side, season int) []match.Match {
	out := make([]match.Match, 0, len(e.store.byTeam[name]))
	for _, m := range e.store.byTeam[name] {
		if season != 0 && m.Season != season {
			continue
		}
		switch side {
		case SideHome:
			if m.HomeTeam != name {
				continue
			}
		case SideAway:
			if m.AwayTeam != name {
				continue
			}
		}
		out = append(out, m)
	}
	return sortedByDate(out)
}

// MatchesByDateRange scans every match with both bounds inclusive. An
// inverted range matches nothing.
func (e *Engine) MatchesByDateRange(start, end time.Time) []match.Match {
	out := make([]match.Match, 0)
	if end.Before(start) {
		return out
	}
	for _, m := range e.store.matches {
		if m.PlayedAt.Before(start) || m.PlayedAt.After(end) {
			continue
		}
		out = append(out, m)
	}
	return sortedByDate(out)
}

// MatchesByCompetition looks the competition up by exact name.
func (e *Engine) MatchesByCompetition(competition string) []match.Match {
	return sortedByDate(slices.Clone(e.store.byCompetition[competition]))
}

func (e *Engine) MatchesBySeason(season int) []match.Match {
	return sortedByDate(slices.Clone(e.store.bySeason[season]))
}

// AllMatches returns the full collection in load order.
func (e *Engine) AllMatches() []match.Match {
	return slices.Clone(e.store.matches)
}

// BiggestWins orders matches by goal margin, widest first. Equal margins keep
// load order. An empty competition covers all matches.
func (e *Engine) BiggestWins(competition string, limit int) []match.Match {
	candidates := e.store.matches
	if competition != "" {
		candidates = e.store.byCompetition[competition]
	}

	order := firstSeenOrder(len(candidates))
	slices.SortFunc(order, func(a, b int) int {
		if c := cmp.Compare(candidates[b].GoalMargin(), candidates[a].GoalMargin()); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	n := clampLimit(limit, len(order))
	out := make([]match.Match, 0, n)
	for _, idx := range order[:n] {
		out = append(out, candidates[idx])
	}
	return out
}

// AverageGoalsPerMatch averages total goals over the filtered matches. An
// empty competition or a zero season disables that filter.
func (e *Engine) AverageGoalsPerMatch(competition string, season int) float64 {
	candidates := e.store.matches
	if competition != "" {
		candidates = e.store.byCompetition[competition]
	}

	count, goals := 0, 0
	for _, m := range candidates {
		if season != 0 && m.Season != season {
			continue
		}
		count++
		goals += m.TotalGoals()
	}
	if count == 0 {
		return 0
	}
	return float64(goals) / float64(count)
}

func sortedByDate(items []match.Match) []match.Match {
	if items == nil {
		return []match.Match{}
	}
	slices.SortStableFunc(items, func(a, b match.Match) int {
		return a.PlayedAt.Compare(b.PlayedAt)
	})
	return items
}
