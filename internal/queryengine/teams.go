package queryengine

import (
	"fmt"

	"github.com/riskibarqy/brazilian-soccer/internal/domain/stats"
)

// TeamStatistics aggregates a team's results, restricted to season unless it
// is stats.AllSeasons. ok is false when the team cannot be resolved; a known
// team without matches yields zeroed stats.
func (e *Engine) TeamStatistics(team string, season int) (stats.TeamStats, bool) {
	name, ok := e.ResolveTeam(team)
	if !ok {
		return stats.TeamStats{}, false
	}

	out := stats.TeamStats{Team: name, Season: season}
	for _, m := range e.teamMatches(name, SideAny, season) {
		scored, conceded, _ := m.GoalsFor(name)
		out.Add(scored, conceded)
	}
	return out, true
}

// HeadToHead aggregates every meeting from team1's perspective.
func (e *Engine) HeadToHead(team1, team2 string) (stats.HeadToHeadStats, bool) {
	t1, ok1 := e.ResolveTeam(team1)
	t2, ok2 := e.ResolveTeam(team2)
	if !ok1 || !ok2 {
		return stats.HeadToHeadStats{}, false
	}

	out := stats.HeadToHeadStats{Team1: t1, Team2: t2}
	if t1 == t2 {
		return out, true
	}
	for _, m := range e.between(t1, t2) {
		goals1, goals2, _ := m.GoalsFor(t1)
		out.Add(goals1, goals2)
	}
	return out, true
}

// HomeRecord aggregates a team's home matches.
func (e *Engine) HomeRecord(team string, season int) (stats.Record, bool) {
	return e.sideRecord(team, season, SideHome, "Home matches")
}

// AwayRecord aggregates a team's away matches.
func (e *Engine) AwayRecord(team string, season int) (stats.Record, bool) {
	return e.sideRecord(team, season, SideAway, "Away matches")
}

func (e *Engine) sideRecord(team string, season int, side Side, label string) (stats.Record, bool) {
	name, ok := e.ResolveTeam(team)
	if !ok {
		return stats.Record{}, false
	}

	if season != stats.AllSeasons {
		label = fmt.Sprintf("%s in %d", label, season)
	}
	out := stats.Record{Team: name, Context: label}
	for _, m := range e.teamMatches(name, side, season) {
		scored, conceded, _ := m.GoalsFor(name)
		out.Add(scored, conceded)
	}
	return out, true
}
